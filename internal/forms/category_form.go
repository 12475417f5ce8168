package forms

import "strings"

// CategoryForm is the add/edit dialog form for a category.
type CategoryForm struct {
	Title string

	submitting bool
}

// Validate checks that the title is non-empty after trimming.
func (f *CategoryForm) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return &FieldError{Field: "title", Message: "Category name is required"}
	}
	return nil
}

// Submit validates the form and, on success, hands the trimmed title to the
// save callback. The form's submitting flag is set for the duration of the
// callback.
func (f *CategoryForm) Submit(save func(title string) error) error {
	if err := f.Validate(); err != nil {
		return err
	}
	f.submitting = true
	defer func() { f.submitting = false }()
	return save(strings.TrimSpace(f.Title))
}

// Submitting reports whether a save callback is in flight.
func (f *CategoryForm) Submitting() bool { return f.submitting }

// TagForm is the add/edit dialog form for a tag.
type TagForm struct {
	Name string

	submitting bool
}

// Validate checks that the name is non-empty after trimming.
func (f *TagForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &FieldError{Field: "name", Message: "Tag name is required"}
	}
	return nil
}

// Submit validates the form and hands the trimmed name to the save callback.
func (f *TagForm) Submit(save func(name string) error) error {
	if err := f.Validate(); err != nil {
		return err
	}
	f.submitting = true
	defer func() { f.submitting = false }()
	return save(strings.TrimSpace(f.Name))
}

// Submitting reports whether a save callback is in flight.
func (f *TagForm) Submitting() bool { return f.submitting }
