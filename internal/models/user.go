package models

// User represents a dashboard or store user. Only administrators may log in
// to the dashboard; the IsAdmin flag is checked client-side after a
// successful credential check.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	IsAdmin     bool   `json:"is_admin"`
}

// EntityID returns the user identifier.
func (u User) EntityID() string { return u.ID }
