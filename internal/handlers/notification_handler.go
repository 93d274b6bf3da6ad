package handlers

import (
	"strconv"

	"github.com/campuskit/lostfound-backend/internal/dto"
	"github.com/campuskit/lostfound-backend/internal/models"
	"github.com/campuskit/lostfound-backend/internal/principal"
	"github.com/campuskit/lostfound-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List returns the caller's notifications: students see broadcasts plus
// notifications directed at them, staff see broadcasts.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var notifications []models.Notification
	if p.Role == models.RoleStaff {
		notifications, err = h.notificationService.ListBroadcast(limit)
	} else {
		notifications, err = h.notificationService.ListForStudent(p.ID, limit)
	}
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"notifications": notifications})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid notification ID",
		})
	}

	if err := h.notificationService.MarkRead(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notification marked read"})
}
