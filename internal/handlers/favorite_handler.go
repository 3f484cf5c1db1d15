package handlers

import (
	"errors"
	"log"

	"bursa/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FavoriteHandler handles HTTP requests for the authenticated user's
// favorite stocks. All routes require a valid bearer token; the user comes
// from the Fiber context populated by the auth middleware.
type FavoriteHandler struct {
	service *services.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(service *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
	}
}

// RegisterRoutes registers the favorite routes with the Fiber app.
func (h *FavoriteHandler) RegisterRoutes(router fiber.Router) {
	favoriteRoutes := router.Group("/favorites")
	favoriteRoutes.Get("/", h.HandleListFavorites)
	favoriteRoutes.Post("/:symbolId", h.HandleAddFavorite)
	favoriteRoutes.Delete("/:symbolId", h.HandleRemoveFavorite)
}

// HandleAddFavorite marks a stock as favorite for the authenticated user.
func (h *FavoriteHandler) HandleAddFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	symbolID := c.Params("symbolId")

	if _, err := h.service.AddFavorite(userID, symbolID); err != nil {
		if errors.Is(err, services.ErrStockDoesNotExist) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": services.ErrStockDoesNotExist.Error(),
			})
		}
		log.Printf("Error adding favorite %s for user %d: %v", symbolID, userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not add favorite",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// HandleRemoveFavorite removes a stock from the authenticated user's
// favorites.
func (h *FavoriteHandler) HandleRemoveFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	symbolID := c.Params("symbolId")

	if err := h.service.RemoveFavorite(userID, symbolID); err != nil {
		if errors.Is(err, services.ErrStockDoesNotExist) || errors.Is(err, services.ErrNotInFavorites) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		log.Printf("Error removing favorite %s for user %d: %v", symbolID, userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not remove favorite",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// HandleListFavorites returns the stocks favorited by the authenticated
// user.
func (h *FavoriteHandler) HandleListFavorites(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	stocks, err := h.service.ListFavorites(userID)
	if err != nil {
		log.Printf("Error listing favorites for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve favorites",
		})
	}

	return c.JSON(stocks)
}
