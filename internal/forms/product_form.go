package forms

import (
	"strconv"
	"strings"

	"kopiadmin/internal/repositories"
)

// MaxImageSize is the upload limit for product images.
const MaxImageSize = 5 * 1024 * 1024

// ProductForm is the add/edit dialog form for a product. Cost and Quantity
// hold the raw text input and are parsed during validation. Description is
// optional.
type ProductForm struct {
	Name        string
	Cost        string
	Quantity    string
	Description string
	CategoryIDs []string
	TagIDs      []string
	Image       *repositories.ImageFile

	submitting bool
}

// Validate applies the product rules without assembling a payload.
func (f *ProductForm) Validate() error {
	_, err := f.payload()
	return err
}

// AttachImage validates an image file before it becomes part of the form.
// The file must have an image MIME type and be at most 5 MB.
func (f *ProductForm) AttachImage(img repositories.ImageFile) error {
	if err := checkImage(&img); err != nil {
		return err
	}
	f.Image = &img
	return nil
}

func checkImage(img *repositories.ImageFile) error {
	if !strings.HasPrefix(img.MIME, "image/") {
		return &FieldError{Field: "image", Message: "Please select an image file"}
	}
	if len(img.Data) > MaxImageSize {
		return &FieldError{Field: "image", Message: "Image size should be less than 5MB"}
	}
	return nil
}

func (f *ProductForm) payload() (repositories.ProductPayload, error) {
	var p repositories.ProductPayload

	name := strings.TrimSpace(f.Name)
	if name == "" {
		return p, &FieldError{Field: "name", Message: "Product name is required"}
	}

	cost, err := strconv.ParseFloat(strings.TrimSpace(f.Cost), 64)
	if err != nil || cost <= 0 {
		return p, &FieldError{Field: "cost", Message: "Price must be a positive number"}
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(f.Quantity))
	if err != nil || quantity < 0 {
		return p, &FieldError{Field: "quantity", Message: "Quantity must be a non-negative integer"}
	}

	if len(f.CategoryIDs) == 0 {
		return p, &FieldError{Field: "category_ids", Message: "At least one category is required"}
	}

	if f.Image != nil {
		if err := checkImage(f.Image); err != nil {
			return p, err
		}
	}

	p = repositories.ProductPayload{
		Name:        name,
		Cost:        cost,
		Quantity:    quantity,
		Description: strings.TrimSpace(f.Description),
		CategoryIDs: f.CategoryIDs,
		TagIDs:      f.TagIDs,
		Image:       f.Image,
	}
	return p, nil
}

// Submit validates the form, assembles the payload, and hands it to the save
// callback. No network call happens on validation failure.
func (f *ProductForm) Submit(save func(repositories.ProductPayload) error) error {
	payload, err := f.payload()
	if err != nil {
		return err
	}
	f.submitting = true
	defer func() { f.submitting = false }()
	return save(payload)
}

// Submitting reports whether a save callback is in flight.
func (f *ProductForm) Submitting() bool { return f.submitting }
