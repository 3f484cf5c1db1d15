package handlers

import (
	"errors"
	"fmt"
	"log"

	"bursa/internal/models"
	"bursa/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// StockHandler handles HTTP requests for stocks.
type StockHandler struct {
	service  *services.StockService
	validate *validator.Validate
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(service *services.StockService) *StockHandler {
	return &StockHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public stock routes with the Fiber app.
func (h *StockHandler) RegisterRoutes(router fiber.Router) {
	stockRoutes := router.Group("/stocks")
	stockRoutes.Get("/", h.HandleGetStocks)
}

// RegisterProtectedRoutes registers the stock routes requiring
// authentication. Stock creation is an admin-style insert.
func (h *StockHandler) RegisterProtectedRoutes(router fiber.Router) {
	stockRoutes := router.Group("/stocks")
	stockRoutes.Post("/", h.HandleCreateStock)
}

// HandleGetStocks retrieves a page of stocks.
func (h *StockHandler) HandleGetStocks(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	stocks, err := h.service.GetAllStocks(skip, limit)
	if err != nil {
		log.Printf("Error getting all stocks: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve stocks",
		})
	}
	return c.JSON(stocks)
}

// HandleCreateStock inserts a new stock.
func (h *StockHandler) HandleCreateStock(c *fiber.Ctx) error {
	var stock models.Stock
	if err := c.BodyParser(&stock); err != nil {
		log.Printf("Error parsing stock request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	// Validate the stock struct
	if err := h.validate.Struct(stock); err != nil {
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

	if err := h.service.CreateStock(&stock); err != nil {
		log.Printf("Error creating stock %s: %v", stock.SymbolID, err)
		if errors.Is(err, services.ErrSymbolRegistered) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Stock creation failed",
				"error":   services.ErrSymbolRegistered.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create stock",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(stock)
}
