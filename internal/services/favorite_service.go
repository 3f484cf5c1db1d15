package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"bursa/internal/models"
	"bursa/internal/repositories"
	"bursa/pkg/rabbitmq"
)

var (
	// ErrStockDoesNotExist is returned when the symbol cannot be resolved.
	ErrStockDoesNotExist = errors.New("stock does not exist")
	// ErrNotInFavorites is returned when removing a stock the user never
	// favorited. Removal is not a no-op on a non-member pair.
	ErrNotInFavorites = errors.New("not in favorites")
)

// FavoriteService handles business logic for the user<->stock favorites
// relation.
type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	stockRepo    repositories.StockRepository
	mqClient     *rabbitmq.Client // May be nil; events are best-effort
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, stockRepo repositories.StockRepository, mqClient *rabbitmq.Client) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		stockRepo:    stockRepo,
		mqClient:     mqClient,
	}
}

// AddFavorite marks a stock as favorite for the user. Adding a stock that
// is already a favorite succeeds without creating a second association.
func (s *FavoriteService) AddFavorite(userID uint, symbolID string) (*models.Favorite, error) {
	stock, err := s.stockRepo.GetBySymbolID(symbolID)
	if err != nil {
		if errors.Is(err, repositories.ErrStockNotFound) {
			return nil, ErrStockDoesNotExist
		}
		return nil, fmt.Errorf("failed to resolve stock %s: %w", symbolID, err)
	}

	// Already a favorite: succeed without a second row.
	if existing, err := s.favoriteRepo.Get(userID, stock.ID); err == nil {
		return existing, nil
	}

	favorite := &models.Favorite{
		UserID:    userID,
		StockID:   stock.ID,
		CreatedAt: time.Now(),
	}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		if errors.Is(err, repositories.ErrDuplicateFavorite) {
			// Lost a race against a concurrent add of the same pair; the
			// unique index kept the relation consistent, so report success.
			return s.favoriteRepo.Get(userID, stock.ID)
		}
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	s.publishEvent(rabbitmq.EventFavoriteAdded, userID, symbolID)

	return favorite, nil
}

// RemoveFavorite removes a stock from the user's favorites. It fails when
// the symbol does not exist or the stock is not currently a favorite.
func (s *FavoriteService) RemoveFavorite(userID uint, symbolID string) error {
	stock, err := s.stockRepo.GetBySymbolID(symbolID)
	if err != nil {
		if errors.Is(err, repositories.ErrStockNotFound) {
			return ErrStockDoesNotExist
		}
		return fmt.Errorf("failed to resolve stock %s: %w", symbolID, err)
	}

	if err := s.favoriteRepo.Delete(userID, stock.ID); err != nil {
		if errors.Is(err, repositories.ErrFavoriteNotFound) {
			return ErrNotInFavorites
		}
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	s.publishEvent(rabbitmq.EventFavoriteRemoved, userID, symbolID)

	return nil
}

// ListFavorites returns all stocks favorited by the user.
func (s *FavoriteService) ListFavorites(userID uint) ([]models.Stock, error) {
	return s.favoriteRepo.ListStocks(userID)
}

// publishEvent emits an activity event. Publishing failures are logged and
// swallowed so a broker outage never fails the user's request.
func (s *FavoriteService) publishEvent(eventType string, userID uint, symbolID string) {
	if s.mqClient == nil {
		return
	}

	payload := map[string]interface{}{
		"userID":   userID,
		"symbolId": symbolID,
	}
	if err := s.mqClient.PublishEvent(eventType, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event for user %d: %v", eventType, userID, err)
	}
}
