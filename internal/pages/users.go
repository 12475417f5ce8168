package pages

import (
	"fmt"

	"kopiadmin/internal/forms"
	"kopiadmin/internal/models"
	"kopiadmin/internal/repositories"
)

// UsersPage is the view-model controller of the users table. New users go
// through an explicit optimistic reconciliation step: a pending placeholder
// keyed by a correlation id is staged before the server call and swapped for
// the authoritative entity on acknowledgment, or dropped on failure.
type UsersPage struct {
	*Controller[models.User]
	repo repositories.UserRepository

	dialogOpen bool
	dialogErr  string
}

// NewUsersPage creates the page in the Idle state.
func NewUsersPage(repo repositories.UserRepository) *UsersPage {
	return &UsersPage{
		Controller: NewController[models.User](repo.GetAll),
		repo:       repo,
	}
}

// Search derives the view matching the query over username and email.
func (p *UsersPage) Search(query string) []models.User {
	if query == "" {
		return p.Items()
	}
	return p.Filter(func(u models.User) bool {
		return containsFold(u.Username, query) || containsFold(u.Email, query)
	})
}

// OpenAdd opens the dialog with an empty form.
func (p *UsersPage) OpenAdd() *forms.UserForm {
	p.dialogOpen = true
	p.dialogErr = ""
	return &forms.UserForm{}
}

// Save submits the dialog form. A pending placeholder appears in the
// collection while the server call is in flight and is swapped for the
// server's user (with its authoritative identifier) on success, or removed
// on failure. A placeholder identifier never survives in the collection.
func (p *UsersPage) Save(form *forms.UserForm) error {
	err := form.Submit(func(payload repositories.UserPayload) error {
		corrID := p.StagePending(func(tempID string) models.User {
			return models.User{
				ID:          tempID,
				Username:    payload.Username,
				Email:       payload.Email,
				Address:     payload.Address,
				PhoneNumber: payload.PhoneNumber,
				IsAdmin:     payload.IsAdmin,
			}
		})
		created, rerr := p.repo.Register(payload)
		if rerr != nil {
			p.DropPending(corrID)
			return rerr
		}
		p.ResolvePending(corrID, *created)
		return nil
	})
	if err != nil {
		p.dialogErr = err.Error()
		return err
	}
	p.CloseDialog()
	return nil
}

// CloseDialog discards the dialog state without saving.
func (p *UsersPage) CloseDialog() {
	p.dialogOpen = false
	p.dialogErr = ""
}

// DialogOpen reports whether the add dialog is open.
func (p *UsersPage) DialogOpen() bool { return p.dialogOpen }

// DialogError returns the message shown after a failed save, or "".
func (p *UsersPage) DialogError() string { return p.dialogErr }

// Get returns the user with the given id.
func (p *UsersPage) GetUser(id string) (*models.User, error) {
	u, ok := p.Get(id)
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, repositories.ErrNotFound)
	}
	return &u, nil
}
