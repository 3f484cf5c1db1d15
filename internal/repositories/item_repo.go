package repositories

import "bursa/internal/models"

// ItemRepository defines the interface for item data access.
type ItemRepository interface {
	Create(item *models.Item) error
	GetAll(offset, limit int) ([]models.Item, error)
}
