package pages

import (
	"fmt"

	"kopiadmin/internal/forms"
	"kopiadmin/internal/models"
	"kopiadmin/internal/repositories"
)

// TagsPage is the view-model controller of the tags table. It mirrors the
// categories page.
type TagsPage struct {
	*Controller[models.Tag]
	repo repositories.TagRepository

	dialogOpen      bool
	selected        *models.Tag
	dialogErr       string
	deleteCandidate *models.Tag
}

// NewTagsPage creates the page in the Idle state.
func NewTagsPage(repo repositories.TagRepository) *TagsPage {
	return &TagsPage{
		Controller: NewController[models.Tag](repo.GetAll),
		repo:       repo,
	}
}

// Search derives the view matching the query over the tag name.
func (p *TagsPage) Search(query string) []models.Tag {
	if query == "" {
		return p.Items()
	}
	return p.Filter(func(t models.Tag) bool {
		return containsFold(t.Name, query)
	})
}

// OpenAdd opens the dialog with an empty form.
func (p *TagsPage) OpenAdd() *forms.TagForm {
	p.dialogOpen = true
	p.selected = nil
	p.dialogErr = ""
	return &forms.TagForm{}
}

// OpenEdit opens the dialog pre-filled from the selected tag.
func (p *TagsPage) OpenEdit(id string) (*forms.TagForm, error) {
	tag, ok := p.Get(id)
	if !ok {
		return nil, fmt.Errorf("tag %s: %w", id, repositories.ErrNotFound)
	}
	p.dialogOpen = true
	p.selected = &tag
	p.dialogErr = ""
	return &forms.TagForm{Name: tag.Name}, nil
}

// Save submits the dialog form, reconciling the collection on success.
func (p *TagsPage) Save(form *forms.TagForm) error {
	var err error
	if p.selected != nil {
		id := p.selected.ID
		err = form.Submit(func(name string) error {
			updated, uerr := p.repo.Update(id, name)
			if uerr != nil {
				return uerr
			}
			p.Replace(*updated)
			return nil
		})
	} else {
		err = form.Submit(func(name string) error {
			created, cerr := p.repo.Create(name)
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
func (p *TagsPage) CloseDialog() {
	p.dialogOpen = false
	p.selected = nil
	p.dialogErr = ""
}

// DialogOpen reports whether the add/edit dialog is open.
func (p *TagsPage) DialogOpen() bool { return p.dialogOpen }

// DialogError returns the message shown after a failed save, or "".
func (p *TagsPage) DialogError() string { return p.dialogErr }

// RequestDelete enters the pending-confirmation sub-state for the tag.
func (p *TagsPage) RequestDelete(id string) error {
	tag, ok := p.Get(id)
	if !ok {
		return fmt.Errorf("tag %s: %w", id, repositories.ErrNotFound)
	}
	p.deleteCandidate = &tag
	return nil
}

// DeleteCandidate returns the tag awaiting confirmation, or nil.
func (p *TagsPage) DeleteCandidate() *models.Tag { return p.deleteCandidate }

// ConfirmDelete performs the delete and removes the entry on success.
func (p *TagsPage) ConfirmDelete() error {
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
func (p *TagsPage) CancelDelete() { p.deleteCandidate = nil }
