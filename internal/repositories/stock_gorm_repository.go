package repositories

import (
	"errors"
	"fmt"

	"bursa/internal/models"

	"gorm.io/gorm"
)

// GORMStockRepository is a GORM implementation of StockRepository.
type GORMStockRepository struct {
	db *gorm.DB
}

// NewGORMStockRepository creates a new instance of GORMStockRepository.
func NewGORMStockRepository(db *gorm.DB) *GORMStockRepository {
	return &GORMStockRepository{
		db: db,
	}
}

// Create creates a new stock in the database. A unique-index violation on
// the symbol identifier is reported as ErrDuplicateStock.
func (r *GORMStockRepository) Create(stock *models.Stock) error {
	if err := r.db.Create(stock).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("stock with symbol %s: %w", stock.SymbolID, ErrDuplicateStock)
		}
		return fmt.Errorf("failed to create stock: %w", err)
	}
	return nil
}

// GetBySymbolID retrieves a single stock by its symbol identifier.
func (r *GORMStockRepository) GetBySymbolID(symbolID string) (*models.Stock, error) {
	var stock models.Stock
	if err := r.db.First(&stock, "symbol_id = ?", symbolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("stock with symbol %s: %w", symbolID, ErrStockNotFound)
		}
		return nil, fmt.Errorf("failed to get stock by symbol %s: %w", symbolID, err)
	}
	return &stock, nil
}

// GetAll retrieves a page of stocks from the database.
func (r *GORMStockRepository) GetAll(offset, limit int) ([]models.Stock, error) {
	var stocks []models.Stock
	if err := r.db.Offset(offset).Limit(limit).Find(&stocks).Error; err != nil {
		return nil, fmt.Errorf("failed to get all stocks: %w", err)
	}
	return stocks, nil
}
