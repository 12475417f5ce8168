package repositories

import "kopiadmin/internal/models"

// UserPayload is the assembled create payload for a user.
type UserPayload struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password,omitempty"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	IsAdmin     bool   `json:"is_admin"`
}

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll() ([]models.User, error)
	Register(payload UserPayload) (*models.User, error)
	AdminLogin(email, password string) (*models.LoginResponse, error)
}
