package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"covershop/internal/models"
	"covershop/internal/services"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
// Listing is public (the storefront filter sidebar uses it); create and
// delete are admin-only.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, admin fiber.Handler) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleListCategories)
	categoryRoutes.Post("/", admin, h.HandleCreateCategory)
	categoryRoutes.Delete("/:id", admin, h.HandleDeleteCategory)
}

// HandleListCategories retrieves all categories.
func (h *CategoryHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.Context())
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve categories",
			"error":   err.Error(),
		})
	}
	return c.JSON(categories)
}

// HandleCreateCategory creates a new category; a duplicate name is a 400.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var create models.CategoryCreate
	if err := c.BodyParser(&create); err != nil {
		log.Printf("Error parsing category body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(create); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	category, err := h.service.CreateCategory(c.Context(), create)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateName) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Category '%s' already exists", create.Name),
			})
		}
		log.Printf("Error creating category: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create category",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleDeleteCategory deletes a category by ID. Covers referencing it keep
// their dangling ids.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")

	if err := h.service.DeleteCategory(c.Context(), categoryID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Category with ID %s not found", categoryID),
			})
		}
		log.Printf("Error deleting category %s: %v", categoryID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete category",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
