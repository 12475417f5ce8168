package repositories

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"kopiadmin/internal/models"
	"kopiadmin/pkg/apiclient"
)

// RESTCategoryRepository accesses categories through the remote API, with
// the same optional list-fallback policy as products.
type RESTCategoryRepository struct {
	api      *apiclient.Client
	fallback []models.Category
}

// NewRESTCategoryRepository creates a category repository. Pass nil as
// fallback to make list failures propagate.
func NewRESTCategoryRepository(api *apiclient.Client, fallback []models.Category) *RESTCategoryRepository {
	return &RESTCategoryRepository{api: api, fallback: fallback}
}

// GetAll lists all categories.
func (r *RESTCategoryRepository) GetAll() ([]models.Category, error) {
	var resp models.CategoriesResponse
	if err := r.api.Get("/categories", &resp); err != nil {
		if r.fallback != nil {
			log.WithError(err).Warn("category list fetch failed, serving fallback data")
			return append([]models.Category(nil), r.fallback...), nil
		}
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	return resp.Categories, nil
}

// Create creates a category with the given title.
func (r *RESTCategoryRepository) Create(title string) (*models.Category, error) {
	var resp models.CategoryResponse
	body := map[string]string{"title": title}
	if err := r.api.Post("/categories/create", body, &resp); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &resp.Category, nil
}

// Update renames an existing category.
func (r *RESTCategoryRepository) Update(id, title string) (*models.Category, error) {
	var resp models.CategoryResponse
	body := map[string]string{"title": title}
	if err := r.api.Patch("/categories/edit/"+id, body, &resp); err != nil {
		return nil, fmt.Errorf("update category %s: %w", id, err)
	}
	return &resp.Category, nil
}

// Delete removes a category.
func (r *RESTCategoryRepository) Delete(id string) error {
	if err := r.api.Delete("/categories/delete/"+id, nil); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}
