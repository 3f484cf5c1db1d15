package repositories

import "bursa/internal/models"

// FavoriteRepository defines the interface for the user<->stock favorites
// association.
type FavoriteRepository interface {
	Create(favorite *models.Favorite) error
	Get(userID, stockID uint) (*models.Favorite, error)
	Delete(userID, stockID uint) error
	ListStocks(userID uint) ([]models.Stock, error)
}
