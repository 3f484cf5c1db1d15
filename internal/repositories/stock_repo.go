package repositories

import "bursa/internal/models"

// StockRepository defines the interface for stock data access.
// Stocks are insert-only; there are no update or delete operations.
type StockRepository interface {
	Create(stock *models.Stock) error
	GetBySymbolID(symbolID string) (*models.Stock, error)
	GetAll(offset, limit int) ([]models.Stock, error)
}
