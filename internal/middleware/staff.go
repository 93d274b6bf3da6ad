package middleware

import (
	"github.com/campuskit/lostfound-backend/internal/dto"
	"github.com/campuskit/lostfound-backend/internal/models"
	"github.com/campuskit/lostfound-backend/internal/principal"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StaffRequired guards the reconciliation endpoints. The role claim is
// checked first; the stored role is re-checked so a demoted account cannot
// ride out its token lifetime.
func StaffRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal.FromCtx(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if p.Role == models.RoleStaff {
			var user models.User
			if err := db.First(&user, "id = ?", p.ID).Error; err == nil && user.IsStaff() {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Staff access required",
		})
	}
}
