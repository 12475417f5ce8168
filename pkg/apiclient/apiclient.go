// Package apiclient wraps outbound calls to the store's REST API. It speaks
// JSON by default and multipart form-data when a payload carries files, and
// converts every non-2xx response into a typed *APIError.
package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// APIError carries the HTTP status of a failed request and, when the server
// supplied one, its message field.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: %d (%s)", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: %d", e.StatusCode)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == fiber.StatusNotFound
}

// TokenSource supplies the bearer token attached to outgoing requests.
// It returns "" when no session is active.
type TokenSource func() string

// Client is a thin wrapper over fiber's HTTP agent, bound to a base URL.
type Client struct {
	baseURL string
	timeout time.Duration
	token   TokenSource
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets a per-request timeout. The zero default means none: a
// non-responding backend blocks the caller indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithTokenSource attaches an Authorization bearer token to every request.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

// New creates a Client for the given API base URL, e.g.
// "http://127.0.0.1:8000/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{baseURL: baseURL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FormFile is a binary field of a multipart payload.
type FormFile struct {
	Field   string
	Name    string
	Content []byte
}

// Form is a multipart form-data payload. The transport sets the content type
// together with its boundary; callers must not set it themselves.
type Form struct {
	Fields map[string][]string
	Files  []FormFile
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(endpoint string, out interface{}) error {
	return c.call(fiber.MethodGet, endpoint, nil, out)
}

// Post issues a POST request. A *Form body is sent as multipart form-data,
// anything else is marshaled to JSON.
func (c *Client) Post(endpoint string, body, out interface{}) error {
	return c.call(fiber.MethodPost, endpoint, body, out)
}

// Patch issues a PATCH request with the same body handling as Post.
func (c *Client) Patch(endpoint string, body, out interface{}) error {
	return c.call(fiber.MethodPatch, endpoint, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(endpoint string, out interface{}) error {
	return c.call(fiber.MethodDelete, endpoint, nil, out)
}

func (c *Client) call(method, endpoint string, body, out interface{}) error {
	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + endpoint)
	if err := a.Parse(); err != nil {
		return fmt.Errorf("prepare %s %s: %w", method, endpoint, err)
	}

	if c.token != nil {
		if tok := c.token(); tok != "" {
			a.Set(fiber.HeaderAuthorization, "Bearer "+tok)
		}
	}
	if c.timeout > 0 {
		a.Timeout(c.timeout)
	}

	switch b := body.(type) {
	case nil:
	case *Form:
		args := fiber.AcquireArgs()
		defer fiber.ReleaseArgs(args)
		for field, values := range b.Fields {
			for _, v := range values {
				args.Add(field, v)
			}
		}
		for _, f := range b.Files {
			a.FileData(&fiber.FormFile{Fieldname: f.Field, Name: f.Name, Content: f.Content})
		}
		a.MultipartForm(args)
	default:
		a.JSON(b)
	}

	code, respBody, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%s %s: %w", method, endpoint, errs[0])
	}

	log.WithFields(log.Fields{"method": method, "endpoint": endpoint, "status": code}).
		Debug("api call")

	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return errorFromBody(code, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response from %s: %w", endpoint, err)
		}
	}
	return nil
}

// errorFromBody builds the APIError for a non-2xx response. The error body
// is optional JSON with a message field; a body that fails to parse must not
// mask the original status.
func errorFromBody(code int, body []byte) error {
	apiErr := &APIError{StatusCode: code}
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}
