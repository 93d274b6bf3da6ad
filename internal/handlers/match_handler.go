package handlers

import (
	"github.com/campuskit/lostfound-backend/internal/dto"
	"github.com/campuskit/lostfound-backend/internal/principal"
	"github.com/campuskit/lostfound-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// Suggestions runs the auto-suggestion scan over unresolved lost items and
// unclaimed found items.
func (h *MatchHandler) Suggestions(c *fiber.Ctx) error {
	suggestions, err := h.matchService.Suggest()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"suggestions": suggestions})
}

// Confirm records a staff-confirmed pairing.
func (h *MatchHandler) Confirm(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ConfirmMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.LostItemID == uuid.Nil || req.FoundItemID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "lost_item_id and found_item_id are required",
		})
	}

	match, err := h.matchService.Confirm(req.LostItemID, req.FoundItemID, p.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(match)
}

func (h *MatchHandler) List(c *fiber.Ctx) error {
	matches, err := h.matchService.ListMatches()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"matches": matches})
}
