package repositories

import (
	"errors"
	"fmt"

	"bursa/internal/models"

	"gorm.io/gorm"
)

// GORMFavoriteRepository is a GORM implementation of FavoriteRepository.
type GORMFavoriteRepository struct {
	db *gorm.DB
}

// NewGORMFavoriteRepository creates a new instance of GORMFavoriteRepository.
func NewGORMFavoriteRepository(db *gorm.DB) *GORMFavoriteRepository {
	return &GORMFavoriteRepository{
		db: db,
	}
}

// Create inserts a new favorite association. The composite unique index on
// (user_id, stock_id) rejects a duplicate pair that slipped past the
// membership check.
func (r *GORMFavoriteRepository) Create(favorite *models.Favorite) error {
	if err := r.db.Create(favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("favorite for user %d and stock %d: %w", favorite.UserID, favorite.StockID, ErrDuplicateFavorite)
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

// Get retrieves the association for a (user, stock) pair.
func (r *GORMFavoriteRepository) Get(userID, stockID uint) (*models.Favorite, error) {
	var favorite models.Favorite
	if err := r.db.First(&favorite, "user_id = ? AND stock_id = ?", userID, stockID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("favorite for user %d and stock %d: %w", userID, stockID, ErrFavoriteNotFound)
		}
		return nil, fmt.Errorf("failed to get favorite for user %d and stock %d: %w", userID, stockID, err)
	}
	return &favorite, nil
}

// Delete removes the association for a (user, stock) pair.
func (r *GORMFavoriteRepository) Delete(userID, stockID uint) error {
	res := r.db.Delete(&models.Favorite{}, "user_id = ? AND stock_id = ?", userID, stockID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("favorite for user %d and stock %d: %w", userID, stockID, ErrFavoriteNotFound)
	}
	return nil
}

// ListStocks retrieves all stocks favorited by a user, in insertion order
// of the association rows.
func (r *GORMFavoriteRepository) ListStocks(userID uint) ([]models.Stock, error) {
	var stocks []models.Stock
	err := r.db.
		Joins("JOIN favorites ON favorites.stock_id = stocks.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.id").
		Find(&stocks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite stocks for user %d: %w", userID, err)
	}
	return stocks, nil
}
