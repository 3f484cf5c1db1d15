package handlers

import (
	"fmt"
	"log"

	"bursa/internal/models"
	"bursa/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ItemHandler handles HTTP requests for items.
type ItemHandler struct {
	service  *services.ItemService
	validate *validator.Validate
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *services.ItemService) *ItemHandler {
	return &ItemHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public item routes with the Fiber app.
func (h *ItemHandler) RegisterRoutes(router fiber.Router) {
	itemRoutes := router.Group("/items")
	itemRoutes.Get("/", h.HandleGetItems)
}

// RegisterProtectedRoutes registers the item routes requiring
// authentication. A created item is owned by the authenticated user.
func (h *ItemHandler) RegisterProtectedRoutes(router fiber.Router) {
	itemRoutes := router.Group("/items")
	itemRoutes.Post("/", h.HandleCreateItem)
}

// HandleGetItems retrieves a page of items.
func (h *ItemHandler) HandleGetItems(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	items, err := h.service.GetAllItems(skip, limit)
	if err != nil {
		log.Printf("Error getting all items: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve items",
		})
	}
	return c.JSON(items)
}

// HandleCreateItem creates a new item owned by the authenticated user.
func (h *ItemHandler) HandleCreateItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var item models.Item
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	// Validate the item struct
	if err := h.validate.Struct(item); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.service.CreateItem(userID, &item); err != nil {
		log.Printf("Error creating item for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}
