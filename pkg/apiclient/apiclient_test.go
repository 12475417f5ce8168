package apiclient_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopiadmin/pkg/apiclient"
)

func TestClient_GetDecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/categories", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"categories":[{"id":"c-1","title":"Beans"}]}`)
	}))
	defer srv.Close()

	client := apiclient.New(srv.URL)

	var out struct {
		Categories []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"categories"`
	}
	err := client.Get("/categories", &out)
	require.NoError(t, err)
	require.Len(t, out.Categories, 1)
	assert.Equal(t, "c-1", out.Categories[0].ID)
}

func TestClient_PostSendsJSONContentType(t *testing.T) {
	var gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	client := apiclient.New(srv.URL)
	err := client.Post("/categories/create", map[string]string{"title": "Seasonal"}, nil)
	require.NoError(t, err)
	assert.Contains(t, gotContentType, "application/json")
	assert.JSONEq(t, `{"title":"Seasonal"}`, gotBody)
}

func TestClient_MultipartLeavesContentTypeToTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		assert.Equal(t, "Espresso Blend", r.FormValue("name"))
		assert.Equal(t, []string{"c-1", "c-2"}, r.MultipartForm.Value["category_ids"])

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "beans.png", header.Filename)
		content, _ := io.ReadAll(file)
		assert.Equal(t, []byte{1, 2, 3}, content)

		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	form := &apiclient.Form{
		Fields: map[string][]string{
			"name":         {"Espresso Blend"},
			"category_ids": {"c-1", "c-2"},
		},
		Files: []apiclient.FormFile{
			{Field: "image", Name: "beans.png", Content: []byte{1, 2, 3}},
		},
	}
	err := apiclient.New(srv.URL).Post("/product", form, nil)
	require.NoError(t, err)
}

func TestClient_NonOKBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "title already exists"})
	}))
	defer srv.Close()

	err := apiclient.New(srv.URL).Post("/categories/create", map[string]string{"title": "x"}, nil)
	require.Error(t, err)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "title already exists", apiErr.Message)
}

func TestClient_MalformedErrorBodyKeepsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "<html>gateway exploded</html>")
	}))
	defer srv.Close()

	err := apiclient.New(srv.URL).Get("/orders", nil)
	require.Error(t, err)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	client := apiclient.New(srv.URL, apiclient.WithTokenSource(func() string { return "tok-123" }))
	require.NoError(t, client.Get("/orders", nil))
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	client := apiclient.New(srv.URL, apiclient.WithTokenSource(func() string { return "" }))
	require.NoError(t, client.Get("/orders", nil))
	assert.False(t, hasAuth)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, apiclient.IsNotFound(&apiclient.APIError{StatusCode: http.StatusNotFound}))
	assert.False(t, apiclient.IsNotFound(&apiclient.APIError{StatusCode: http.StatusBadRequest}))
	assert.False(t, apiclient.IsNotFound(io.EOF))
}
