package services

import (
	"bursa/internal/models"
	"bursa/internal/repositories"
)

// UserService handles business logic related to users.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetUserByID retrieves a single user by their numeric ID.
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

// GetAllUsers retrieves a page of users.
func (s *UserService) GetAllUsers(offset, limit int) ([]models.User, error) {
	return s.repo.GetAll(offset, limit)
}
