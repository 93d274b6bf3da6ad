package handlers

import (
	"github.com/campuskit/lostfound-backend/internal/dto"
	"github.com/campuskit/lostfound-backend/internal/imaging"
	"github.com/campuskit/lostfound-backend/internal/principal"
	"github.com/campuskit/lostfound-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ItemHandler struct {
	itemService *services.ItemService
}

func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

func (h *ItemHandler) ReportLost(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ReportItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	photo, err := formPhoto(c, "photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	item, err := h.itemService.ReportLost(p.ID, &req, photo)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *ItemHandler) ReportFound(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ReportItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	photo, err := formPhoto(c, "photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	item, err := h.itemService.ReportFound(p.ID, &req, photo)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// MyLostItems returns the calling student's own reports plus a total count.
func (h *ItemHandler) MyLostItems(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	items, err := h.itemService.ListLostByOwner(p.ID)
	if err != nil {
		return serviceError(c, err)
	}
	count, err := h.itemService.CountLostByOwner(p.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"items": items, "total": count})
}

func (h *ItemHandler) AvailableFound(c *fiber.Ctx) error {
	items, err := h.itemService.ListAvailableFound()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"items": items})
}

func (h *ItemHandler) LostPhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid item ID",
		})
	}

	data, err := h.itemService.LostPhoto(id)
	if err != nil {
		return serviceError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(data)
}

func (h *ItemHandler) FoundPhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid item ID",
		})
	}

	data, err := h.itemService.FoundPhoto(id)
	if err != nil {
		return serviceError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(data)
}

// formPhoto processes an optional multipart photo upload. A missing file is
// not an error; a present but invalid one is.
func formPhoto(c *fiber.Ctx, field string) ([]byte, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return imaging.Process(f)
}
