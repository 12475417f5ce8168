package pages

import (
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"kopiadmin/internal/forms"
	"kopiadmin/internal/models"
	"kopiadmin/internal/repositories"
)

// ProductsPage is the view-model controller of the products table.
type ProductsPage struct {
	*Controller[models.Product]
	repo    repositories.ProductRepository
	catRepo repositories.CategoryRepository
	tagRepo repositories.TagRepository

	dialogOpen      bool
	selected        *models.Product
	dialogErr       string
	deleteCandidate *models.Product
}

// NewProductsPage creates the page in the Idle state. The category and tag
// repositories feed the product form's reference data.
func NewProductsPage(repo repositories.ProductRepository, catRepo repositories.CategoryRepository, tagRepo repositories.TagRepository) *ProductsPage {
	return &ProductsPage{
		Controller: NewController[models.Product](func() ([]models.Product, error) {
			return repo.GetAll(nil)
		}),
		repo:    repo,
		catRepo: catRepo,
		tagRepo: tagRepo,
	}
}

// Search derives the view matching the query over name and description.
func (p *ProductsPage) Search(query string) []models.Product {
	if query == "" {
		return p.Items()
	}
	return p.Filter(func(pr models.Product) bool {
		return containsFold(pr.Name, query) || containsFold(pr.Description, query)
	})
}

// FilterByCategory derives the view of products carrying the category.
func (p *ProductsPage) FilterByCategory(categoryID string) []models.Product {
	return p.Filter(func(pr models.Product) bool {
		for _, c := range pr.Categories {
			if c.ID == categoryID {
				return true
			}
		}
		return false
	})
}

// LoadFormData fetches the categories and tags the product form needs. The
// two fetches run concurrently and the result is all-or-nothing: if either
// fails without its own fallback, the combined load fails.
func (p *ProductsPage) LoadFormData() ([]models.Category, []models.Tag, error) {
	var (
		categories []models.Category
		tags       []models.Tag
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		cs, err := p.catRepo.GetAll()
		categories = cs
		return err
	})
	g.Go(func() error {
		ts, err := p.tagRepo.GetAll()
		tags = ts
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("load product form data: %w", err)
	}
	return categories, tags, nil
}

// PriceRange returns the catalog's min and max price.
func (p *ProductsPage) PriceRange() (float64, float64, error) {
	return p.repo.PriceRange()
}

// OpenAdd opens the dialog with an empty form.
func (p *ProductsPage) OpenAdd() *forms.ProductForm {
	p.dialogOpen = true
	p.selected = nil
	p.dialogErr = ""
	return &forms.ProductForm{}
}

// OpenEdit opens the dialog pre-filled from the selected product.
func (p *ProductsPage) OpenEdit(id string) (*forms.ProductForm, error) {
	product, ok := p.Get(id)
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, repositories.ErrNotFound)
	}
	p.dialogOpen = true
	p.selected = &product
	p.dialogErr = ""

	form := &forms.ProductForm{
		Name:        product.Name,
		Cost:        strconv.FormatFloat(product.Cost, 'f', -1, 64),
		Quantity:    strconv.Itoa(product.Quantity),
		Description: product.Description,
	}
	for _, c := range product.Categories {
		form.CategoryIDs = append(form.CategoryIDs, c.ID)
	}
	for _, t := range product.Tags {
		form.TagIDs = append(form.TagIDs, t.ID)
	}
	return form, nil
}

// Save submits the dialog form. The repository picks JSON or multipart
// encoding from the assembled payload; on success the collection is
// reconciled with the server entity and the dialog closes.
func (p *ProductsPage) Save(form *forms.ProductForm) error {
	var err error
	if p.selected != nil {
		id := p.selected.ID
		err = form.Submit(func(payload repositories.ProductPayload) error {
			updated, uerr := p.repo.Update(id, payload)
			if uerr != nil {
				return uerr
			}
			p.Replace(*updated)
			return nil
		})
	} else {
		err = form.Submit(func(payload repositories.ProductPayload) error {
			created, cerr := p.repo.Create(payload)
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
func (p *ProductsPage) CloseDialog() {
	p.dialogOpen = false
	p.selected = nil
	p.dialogErr = ""
}

// DialogOpen reports whether the add/edit dialog is open.
func (p *ProductsPage) DialogOpen() bool { return p.dialogOpen }

// DialogError returns the message shown after a failed save, or "".
func (p *ProductsPage) DialogError() string { return p.dialogErr }

// RequestDelete enters the pending-confirmation sub-state for the product.
func (p *ProductsPage) RequestDelete(id string) error {
	product, ok := p.Get(id)
	if !ok {
		return fmt.Errorf("product %s: %w", id, repositories.ErrNotFound)
	}
	p.deleteCandidate = &product
	return nil
}

// DeleteCandidate returns the product awaiting confirmation, or nil.
func (p *ProductsPage) DeleteCandidate() *models.Product { return p.deleteCandidate }

// ConfirmDelete performs the delete and removes the entry on success.
func (p *ProductsPage) ConfirmDelete() error {
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
func (p *ProductsPage) CancelDelete() { p.deleteCandidate = nil }
