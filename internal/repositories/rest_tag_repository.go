package repositories

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"kopiadmin/internal/models"
	"kopiadmin/pkg/apiclient"
)

// RESTTagRepository accesses tags through the remote API.
type RESTTagRepository struct {
	api      *apiclient.Client
	fallback []models.Tag
}

// NewRESTTagRepository creates a tag repository. Pass nil as fallback to
// make list failures propagate.
func NewRESTTagRepository(api *apiclient.Client, fallback []models.Tag) *RESTTagRepository {
	return &RESTTagRepository{api: api, fallback: fallback}
}

// GetAll lists all tags.
func (r *RESTTagRepository) GetAll() ([]models.Tag, error) {
	var resp models.TagsResponse
	if err := r.api.Get("/tags", &resp); err != nil {
		if r.fallback != nil {
			log.WithError(err).Warn("tag list fetch failed, serving fallback data")
			return append([]models.Tag(nil), r.fallback...), nil
		}
		return nil, fmt.Errorf("fetch tags: %w", err)
	}
	return resp.Tags, nil
}

// Create creates a tag with the given name.
func (r *RESTTagRepository) Create(name string) (*models.Tag, error) {
	var resp models.TagResponse
	body := map[string]string{"name": name}
	if err := r.api.Post("/tags/create", body, &resp); err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return &resp.Tag, nil
}

// Update renames an existing tag.
func (r *RESTTagRepository) Update(id, name string) (*models.Tag, error) {
	var resp models.TagResponse
	body := map[string]string{"name": name}
	if err := r.api.Patch("/tags/edit/"+id, body, &resp); err != nil {
		return nil, fmt.Errorf("update tag %s: %w", id, err)
	}
	return &resp.Tag, nil
}

// Delete removes a tag.
func (r *RESTTagRepository) Delete(id string) error {
	if err := r.api.Delete("/tags/delete/"+id, nil); err != nil {
		return fmt.Errorf("delete tag %s: %w", id, err)
	}
	return nil
}
