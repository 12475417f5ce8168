package pages

import (
	"fmt"

	"kopiadmin/internal/forms"
	"kopiadmin/internal/models"
	"kopiadmin/internal/repositories"
)

// CategoriesPage is the view-model controller of the categories table.
type CategoriesPage struct {
	*Controller[models.Category]
	repo repositories.CategoryRepository

	dialogOpen      bool
	selected        *models.Category
	dialogErr       string
	deleteCandidate *models.Category
}

// NewCategoriesPage creates the page in the Idle state.
func NewCategoriesPage(repo repositories.CategoryRepository) *CategoriesPage {
	return &CategoriesPage{
		Controller: NewController[models.Category](repo.GetAll),
		repo:       repo,
	}
}

// Search derives the view matching the query, case-insensitively, over the
// category title.
func (p *CategoriesPage) Search(query string) []models.Category {
	if query == "" {
		return p.Items()
	}
	return p.Filter(func(c models.Category) bool {
		return containsFold(c.Title, query)
	})
}

// OpenAdd opens the dialog with an empty form.
func (p *CategoriesPage) OpenAdd() *forms.CategoryForm {
	p.dialogOpen = true
	p.selected = nil
	p.dialogErr = ""
	return &forms.CategoryForm{}
}

// OpenEdit opens the dialog pre-filled from the selected category.
func (p *CategoriesPage) OpenEdit(id string) (*forms.CategoryForm, error) {
	category, ok := p.Get(id)
	if !ok {
		return nil, fmt.Errorf("category %s: %w", id, repositories.ErrNotFound)
	}
	p.dialogOpen = true
	p.selected = &category
	p.dialogErr = ""
	return &forms.CategoryForm{Title: category.Title}, nil
}

// Save submits the dialog form. On success the collection is reconciled with
// the server entity and the dialog closes; on failure the collection is
// untouched and the dialog stays open showing the error.
func (p *CategoriesPage) Save(form *forms.CategoryForm) error {
	var err error
	if p.selected != nil {
		id := p.selected.ID
		err = form.Submit(func(title string) error {
			updated, uerr := p.repo.Update(id, title)
			if uerr != nil {
				return uerr
			}
			p.Replace(*updated)
			return nil
		})
	} else {
		err = form.Submit(func(title string) error {
			created, cerr := p.repo.Create(title)
			if cerr != nil {
				return cerr
			}
			p.Append(*created)
			return nil
		})
	}
	if err != nil {
		p.dialogErr = err.Error()
		return err
	}
	p.CloseDialog()
	return nil
}

// CloseDialog discards the dialog state without saving.
func (p *CategoriesPage) CloseDialog() {
	p.dialogOpen = false
	p.selected = nil
	p.dialogErr = ""
}

// DialogOpen reports whether the add/edit dialog is open.
func (p *CategoriesPage) DialogOpen() bool { return p.dialogOpen }

// DialogError returns the message shown inside the dialog after a failed
// save, or "".
func (p *CategoriesPage) DialogError() string { return p.dialogErr }

// RequestDelete enters the pending-confirmation sub-state for the category.
func (p *CategoriesPage) RequestDelete(id string) error {
	category, ok := p.Get(id)
	if !ok {
		return fmt.Errorf("category %s: %w", id, repositories.ErrNotFound)
	}
	p.deleteCandidate = &category
	return nil
}

// DeleteCandidate returns the category awaiting confirmation, or nil.
func (p *CategoriesPage) DeleteCandidate() *models.Category { return p.deleteCandidate }

// ConfirmDelete performs the delete. On success the entry leaves the
// collection; on failure the collection is unchanged.
func (p *CategoriesPage) ConfirmDelete() error {
	if p.deleteCandidate == nil {
		return fmt.Errorf("no delete pending")
	}
	id := p.deleteCandidate.ID
	if err := p.repo.Delete(id); err != nil {
		p.deleteCandidate = nil
		return err
	}
	p.Remove(id)
	p.deleteCandidate = nil
	return nil
}

// CancelDelete discards the candidate with no mutation.
func (p *CategoriesPage) CancelDelete() { p.deleteCandidate = nil }
