package repositories

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"kopiadmin/internal/models"
	"kopiadmin/pkg/apiclient"
)

// RESTProductRepository accesses products through the remote API.
//
// A non-nil fallback slice enables the degrade-to-demo-data policy: when the
// list fetch fails, the fallback collection is served instead of the error,
// with a log-level warning only. Mutations always propagate their errors.
type RESTProductRepository struct {
	api      *apiclient.Client
	fallback []models.Product
}

// NewRESTProductRepository creates a product repository. Pass nil as
// fallback to make list failures propagate.
func NewRESTProductRepository(api *apiclient.Client, fallback []models.Product) *RESTProductRepository {
	return &RESTProductRepository{api: api, fallback: fallback}
}

// GetAll lists products with optional query filters.
func (r *RESTProductRepository) GetAll(filters *ProductFilters) ([]models.Product, error) {
	var resp models.ProductsResponse
	if err := r.api.Get("/product/all"+filters.query(), &resp); err != nil {
		if r.fallback != nil {
			log.WithError(err).Warn("product list fetch failed, serving fallback data")
			// Copy so a page reconciling its collection cannot reach back
			// into the repository's dataset.
			return append([]models.Product(nil), r.fallback...), nil
		}
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return resp.Products, nil
}

// GetByID fetches a single product. Returns ErrNotFound for a missing id.
func (r *RESTProductRepository) GetByID(id string) (*models.Product, error) {
	var resp models.ProductResponse
	if err := r.api.Get("/product/"+id, &resp); err != nil {
		if apiclient.IsNotFound(err) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("fetch product %s: %w", id, err)
	}
	return &resp.Product, nil
}

// Create creates a product. The payload is sent as multipart form-data when
// it carries an image, JSON otherwise.
func (r *RESTProductRepository) Create(payload ProductPayload) (*models.Product, error) {
	var resp models.ProductResponse
	if err := r.api.Post("/product", payload.encode(), &resp); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &resp.Product, nil
}

// Update updates an existing product.
func (r *RESTProductRepository) Update(id string, payload ProductPayload) (*models.Product, error) {
	var resp models.ProductResponse
	if err := r.api.Patch("/product/edit/"+id, payload.encode(), &resp); err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	return &resp.Product, nil
}

// Delete removes a product.
func (r *RESTProductRepository) Delete(id string) error {
	if err := r.api.Delete("/product/delete/"+id, nil); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

// PriceRange fetches the catalog's min and max product price.
func (r *RESTProductRepository) PriceRange() (float64, float64, error) {
	var resp models.PriceRangeResponse
	if err := r.api.Get("/product/price", &resp); err != nil {
		return 0, 0, fmt.Errorf("fetch price range: %w", err)
	}
	return resp.MinPrice, resp.MaxPrice, nil
}
