package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"covershop/internal/models"
	"covershop/internal/services"
)

// CoverHandler handles HTTP requests for covers.
type CoverHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewCoverHandler creates a new CoverHandler.
func NewCoverHandler(service *services.CatalogService) *CoverHandler {
	return &CoverHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cover routes with the Fiber app. Mutating
// routes sit behind the admin credential gate.
func (h *CoverHandler) RegisterRoutes(router fiber.Router, admin fiber.Handler) {
	coverRoutes := router.Group("/covers")
	coverRoutes.Get("/", h.HandleListCovers)
	coverRoutes.Post("/", admin, h.HandleCreateCover)
	coverRoutes.Put("/:id", admin, h.HandleUpdateCover)
	coverRoutes.Delete("/:id", admin, h.HandleDeleteCover)
}

// HandleListCovers retrieves covers matching the optional query filters,
// newest first.
func (h *CoverHandler) HandleListCovers(c *fiber.Ctx) error {
	filter := models.CoverFilter{
		Model:       c.Query("model"),
		CoverTypes:  queryList(c, "coverType"),
		Colors:      queryList(c, "color"),
		Gender:      c.Query("gender"),
		CategoryIDs: queryList(c, "category_ids"),
		AdminMode:   c.QueryBool("admin_mode", false),
	}

	var err error
	if filter.MinPrice, err = queryFloat(c, "minPrice"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "minPrice must be a number",
		})
	}
	if filter.MaxPrice, err = queryFloat(c, "maxPrice"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "maxPrice must be a number",
		})
	}

	covers, err := h.service.ListCovers(c.Context(), filter)
	if err != nil {
		log.Printf("Error listing covers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve covers",
			"error":   err.Error(),
		})
	}
	return c.JSON(covers)
}

// HandleCreateCover creates a new cover from a multipart form. The image is
// uploaded to the asset host first; tags and category_ids arrive as
// JSON-encoded string lists.
func (h *CoverHandler) HandleCreateCover(c *fiber.Ctx) error {
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "price must be a number",
		})
	}
	stock, err := strconv.Atoi(c.FormValue("stock"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "stock must be an integer",
		})
	}

	tags, err := parseStringList(c.FormValue("tags", "[]"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid format for tags",
			"error":   err.Error(),
		})
	}
	categoryIDs, err := parseStringList(c.FormValue("category_ids", "[]"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid format for category_ids",
			"error":   err.Error(),
		})
	}

	isAvailable := true
	if v := c.FormValue("is_available"); v != "" {
		isAvailable, err = strconv.ParseBool(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "is_available must be a boolean",
			})
		}
	}

	create := models.CoverCreate{
		ModelName:        c.FormValue("modelName"),
		CoverType:        c.FormValue("coverType"),
		Color:            c.FormValue("color"),
		Price:            price,
		Stock:            stock,
		GenderPreference: c.FormValue("genderPreference"),
		Tags:             tags,
		CategoryIDs:      categoryIDs,
		IsAvailable:      isAvailable,
	}
	if err := h.validate.Struct(create); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "image file is required",
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded image: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not read image file",
		})
	}
	defer file.Close()

	cover, err := h.service.CreateCover(c.Context(), create, file)
	if err != nil {
		log.Printf("Error creating cover: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create cover",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(cover)
}

// HandleUpdateCover applies a partial update to one cover.
func (h *CoverHandler) HandleUpdateCover(c *fiber.Ctx) error {
	coverID := c.Params("id")

	var update models.CoverUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing cover update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	cover, err := h.service.UpdateCover(c.Context(), coverID, update)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyUpdate):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "No fields provided for update",
			})
		case errors.Is(err, models.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Cover with ID %s not found", coverID),
			})
		default:
			log.Printf("Error updating cover %s: %v", coverID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not update cover",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(cover)
}

// HandleDeleteCover deletes one cover by ID.
func (h *CoverHandler) HandleDeleteCover(c *fiber.Ctx) error {
	coverID := c.Params("id")

	if err := h.service.DeleteCover(c.Context(), coverID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Cover with ID %s not found", coverID),
			})
		}
		log.Printf("Error deleting cover %s: %v", coverID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete cover",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// queryList collects every occurrence of a repeated query parameter.
func queryList(c *fiber.Ctx, key string) []string {
	raw := c.Context().QueryArgs().PeekMulti(key)
	if len(raw) == 0 {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s := string(v); s != "" {
			values = append(values, s)
		}
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

// queryFloat parses an optional float query parameter; absence yields nil.
func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseStringList decodes a JSON-encoded list of strings from a form field.
func parseStringList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("expected a JSON list of strings: %w", err)
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

// validationMessages flattens validator errors into a field->message map.
func validationMessages(err error) map[string]string {
	messages := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return messages
}
