package handlers

import (
	"github.com/campuskit/lostfound-backend/internal/dto"
	"github.com/campuskit/lostfound-backend/internal/models"
	"github.com/campuskit/lostfound-backend/internal/principal"
	"github.com/campuskit/lostfound-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ClaimHandler struct {
	claimService *services.ClaimService
}

func NewClaimHandler(claimService *services.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimService: claimService}
}

// Submit files an ownership claim against a match. Proof is optional text
// plus an optional file upload.
func (h *ClaimHandler) Submit(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SubmitClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.MatchID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "match_id is required",
		})
	}

	proof, err := formPhoto(c, "proof_file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	claim, err := h.claimService.Submit(req.MatchID, p.ID, req.ProofText, proof)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(claim)
}

// ListForReview returns the staff review table, optionally filtered by
// ?status=Pending|Approved|Rejected.
func (h *ClaimHandler) ListForReview(c *fiber.Ctx) error {
	status := models.ClaimStatus(c.Query("status", ""))
	claims, err := h.claimService.ListForReview(status)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"claims": claims})
}

func (h *ClaimHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, services.DecisionApprove)
}

func (h *ClaimHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, services.DecisionReject)
}

func (h *ClaimHandler) decide(c *fiber.Ctx, decision services.Decision) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	claimID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid claim ID",
		})
	}

	claim, err := h.claimService.Decide(claimID, decision, p.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(claim)
}

// Proof serves the stored proof file for a claim.
func (h *ClaimHandler) Proof(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid claim ID",
		})
	}

	data, err := h.claimService.ProofFile(id)
	if err != nil {
		return serviceError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(data)
}
