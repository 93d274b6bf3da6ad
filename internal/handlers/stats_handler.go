package handlers

import (
	"github.com/campuskit/lostfound-backend/internal/dto"
	"github.com/campuskit/lostfound-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StatsHandler serves the staff dashboard counters.
type StatsHandler struct {
	db *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	var stats dto.StatsResponse

	counts := []struct {
		model  interface{}
		status string
		dest   *int64
	}{
		{&models.Claim{}, string(models.ClaimPending), &stats.PendingClaims},
		{&models.LostItem{}, string(models.LostUnresolved), &stats.UnresolvedLost},
		{&models.FoundItem{}, string(models.FoundUnclaimed), &stats.UnclaimedFound},
		{&models.Match{}, string(models.MatchPending), &stats.PendingMatches},
	}
	for _, q := range counts {
		query := h.db.Model(q.model)
		if _, ok := q.model.(*models.Claim); ok {
			query = query.Where("approval_status = ?", q.status)
		} else {
			query = query.Where("status = ?", q.status)
		}
		if err := query.Count(q.dest).Error; err != nil {
			return serviceError(c, err)
		}
	}

	return c.JSON(stats)
}
