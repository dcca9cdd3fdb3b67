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

// NotificationHandler handles HTTP requests for pre-order notifications.
type NotificationHandler struct {
	service  *services.NotificationService
	validate *validator.Validate
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the notification routes. Creation is public so a
// storefront visitor can register interest; listing and status updates are
// admin-only.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router, admin fiber.Handler) {
	notifyRoutes := router.Group("/notify")
	notifyRoutes.Post("/", h.HandleCreateNotification)
	notifyRoutes.Get("/", admin, h.HandleListNotifications)
	notifyRoutes.Put("/:id", admin, h.HandleUpdateNotificationStatus)
}

// HandleCreateNotification records a pre-order interest request.
func (h *NotificationHandler) HandleCreateNotification(c *fiber.Ctx) error {
	var create models.NotificationCreate
	if err := c.BodyParser(&create); err != nil {
		log.Printf("Error parsing notification body: %v", err)
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

	notification, err := h.service.CreateNotification(c.Context(), create)
	if err != nil {
		log.Printf("Error creating notification: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create notification request",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(notification)
}

// HandleListNotifications retrieves all notification requests, newest first.
func (h *NotificationHandler) HandleListNotifications(c *fiber.Ctx) error {
	notifications, err := h.service.ListNotifications(c.Context())
	if err != nil {
		log.Printf("Error listing notifications: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve notifications",
			"error":   err.Error(),
		})
	}
	return c.JSON(notifications)
}

// HandleUpdateNotificationStatus transitions one notification to a new status.
func (h *NotificationHandler) HandleUpdateNotificationStatus(c *fiber.Ctx) error {
	notificationID := c.Params("id")

	var update models.NotificationStatusUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing status update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}

	notification, err := h.service.UpdateNotificationStatus(c.Context(), notificationID, update.Status)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyUpdate), errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "A valid status is required",
				"error":   err.Error(),
			})
		case errors.Is(err, models.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Notification with ID %s not found", notificationID),
			})
		default:
			log.Printf("Error updating notification %s: %v", notificationID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not update notification status",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(notification)
}
