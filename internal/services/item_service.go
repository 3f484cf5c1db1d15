package services

import (
	"fmt"

	"bursa/internal/models"
	"bursa/internal/repositories"
)

// ItemService handles business logic related to items.
type ItemService struct {
	repo repositories.ItemRepository
}

// NewItemService creates a new ItemService.
func NewItemService(repo repositories.ItemRepository) *ItemService {
	return &ItemService{
		repo: repo,
	}
}

// CreateItem creates a new item owned by the given user.
func (s *ItemService) CreateItem(ownerID uint, item *models.Item) error {
	item.OwnerID = ownerID
	if err := s.repo.Create(item); err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// GetAllItems retrieves a page of items.
func (s *ItemService) GetAllItems(offset, limit int) ([]models.Item, error) {
	return s.repo.GetAll(offset, limit)
}
