package repositories

import "kopiadmin/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	Create(title string) (*models.Category, error)
	Update(id, title string) (*models.Category, error)
	Delete(id string) error
}

// TagRepository defines the interface for tag data access. Tags share the
// categories' endpoint shape.
type TagRepository interface {
	GetAll() ([]models.Tag, error)
	Create(name string) (*models.Tag, error)
	Update(id, name string) (*models.Tag, error)
	Delete(id string) error
}
