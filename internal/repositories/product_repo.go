package repositories

import (
	"net/url"
	"strconv"

	"kopiadmin/internal/models"
	"kopiadmin/pkg/apiclient"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(filters *ProductFilters) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(payload ProductPayload) (*models.Product, error)
	Update(id string, payload ProductPayload) (*models.Product, error)
	Delete(id string) error
	PriceRange() (min, max float64, err error)
}

// ProductFilters are the optional query filters of the product list
// endpoint. A nil *ProductFilters means no filtering.
type ProductFilters struct {
	Category string
	Tag      string
	MinPrice float64
	MaxPrice float64
	Search   string
}

func (f *ProductFilters) query() string {
	if f == nil {
		return ""
	}
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Tag != "" {
		q.Set("tag", f.Tag)
	}
	if f.MinPrice > 0 {
		q.Set("min_price", strconv.FormatFloat(f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ImageFile is an image accompanying a product submission.
type ImageFile struct {
	Name string
	MIME string
	Data []byte
}

// ProductPayload is the assembled create/update payload for a product. The
// repository picks the wire encoding: JSON when Image is nil, multipart
// form-data otherwise.
type ProductPayload struct {
	Name        string
	Cost        float64
	Quantity    int
	Description string
	CategoryIDs []string
	TagIDs      []string
	Image       *ImageFile
}

func (p ProductPayload) encode() interface{} {
	if p.Image == nil {
		body := map[string]interface{}{
			"name":         p.Name,
			"cost":         p.Cost,
			"quantity":     p.Quantity,
			"category_ids": p.CategoryIDs,
		}
		if p.Description != "" {
			body["description"] = p.Description
		}
		if len(p.TagIDs) > 0 {
			body["tag_ids"] = p.TagIDs
		}
		return body
	}

	form := &apiclient.Form{
		Fields: map[string][]string{
			"name":         {p.Name},
			"cost":         {strconv.FormatFloat(p.Cost, 'f', -1, 64)},
			"quantity":     {strconv.Itoa(p.Quantity)},
			"category_ids": p.CategoryIDs,
		},
		Files: []apiclient.FormFile{
			{Field: "image", Name: p.Image.Name, Content: p.Image.Data},
		},
	}
	if p.Description != "" {
		form.Fields["description"] = []string{p.Description}
	}
	if len(p.TagIDs) > 0 {
		form.Fields["tag_ids"] = p.TagIDs
	}
	return form
}
