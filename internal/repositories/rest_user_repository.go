package repositories

import (
	"fmt"

	"kopiadmin/internal/models"
	"kopiadmin/pkg/apiclient"
)

// RESTUserRepository accesses users through the remote API. User list
// failures propagate; there is no demo fallback for users.
type RESTUserRepository struct {
	api *apiclient.Client
}

// NewRESTUserRepository creates a user repository.
func NewRESTUserRepository(api *apiclient.Client) *RESTUserRepository {
	return &RESTUserRepository{api: api}
}

// GetAll lists all users.
func (r *RESTUserRepository) GetAll() ([]models.User, error) {
	var resp models.UsersResponse
	if err := r.api.Get("/user/all", &resp); err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	return resp.Users, nil
}

// Register creates a new user account.
func (r *RESTUserRepository) Register(payload UserPayload) (*models.User, error) {
	var resp models.UserResponse
	if err := r.api.Post("/user/register", payload, &resp); err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}
	return &resp.User, nil
}

// AdminLogin checks credentials against the admin login endpoint. The
// transport-level result says nothing about admin rights; callers must still
// check the returned user's IsAdmin flag.
func (r *RESTUserRepository) AdminLogin(email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	body := map[string]string{"email": email, "password": password}
	if err := r.api.Post("/user/adminLogin", body, &resp); err != nil {
		return nil, fmt.Errorf("admin login: %w", err)
	}
	return &resp, nil
}
