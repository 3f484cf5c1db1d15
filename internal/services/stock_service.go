package services

import (
	"errors"
	"fmt"

	"bursa/internal/models"
	"bursa/internal/repositories"
)

// ErrSymbolRegistered is returned when inserting a stock whose symbol
// identifier already exists.
var ErrSymbolRegistered = errors.New("symbol already registered")

// StockService handles business logic related to stocks.
type StockService struct {
	repo repositories.StockRepository
}

// NewStockService creates a new StockService.
func NewStockService(repo repositories.StockRepository) *StockService {
	return &StockService{
		repo: repo,
	}
}

// CreateStock inserts a new stock after checking symbol uniqueness. Stocks
// are immutable after creation; there is no update or delete path.
func (s *StockService) CreateStock(stock *models.Stock) error {
	if existing, err := s.repo.GetBySymbolID(stock.SymbolID); err == nil && existing != nil {
		return ErrSymbolRegistered
	}

	if err := s.repo.Create(stock); err != nil {
		if errors.Is(err, repositories.ErrDuplicateStock) {
			return ErrSymbolRegistered
		}
		return fmt.Errorf("failed to create stock: %w", err)
	}
	return nil
}

// GetAllStocks retrieves a page of stocks.
func (s *StockService) GetAllStocks(offset, limit int) ([]models.Stock, error) {
	return s.repo.GetAll(offset, limit)
}

// GetStockBySymbolID retrieves a single stock by its symbol identifier.
func (s *StockService) GetStockBySymbolID(symbolID string) (*models.Stock, error) {
	return s.repo.GetBySymbolID(symbolID)
}
