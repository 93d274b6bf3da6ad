package routes

import (
	"time"

	"github.com/campuskit/lostfound-backend/internal/config"
	"github.com/campuskit/lostfound-backend/internal/handlers"
	"github.com/campuskit/lostfound-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	itemHandler *handlers.ItemHandler,
	matchHandler *handlers.MatchHandler,
	claimHandler *handlers.ClaimHandler,
	notificationHandler *handlers.NotificationHandler,
	statsHandler *handlers.StatsHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter 10 req/min limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Authenticated student/staff surface
	protected := api.Group("", middleware.JWTProtected(cfg))
	protected.Post("/items/lost", itemHandler.ReportLost)
	protected.Post("/items/found", itemHandler.ReportFound)
	protected.Get("/items/lost/my", itemHandler.MyLostItems)
	protected.Get("/items/found/available", itemHandler.AvailableFound)
	protected.Get("/items/lost/:id/photo", itemHandler.LostPhoto)
	protected.Get("/items/found/:id/photo", itemHandler.FoundPhoto)

	protected.Post("/claims", claimHandler.Submit)
	protected.Get("/claims/:id/proof", claimHandler.Proof)

	protected.Get("/notifications", notificationHandler.List)
	protected.Post("/notifications/:id/read", notificationHandler.MarkRead)

	// Staff reconciliation surface
	staff := api.Group("/staff", middleware.JWTProtected(cfg), middleware.StaffRequired(db))
	staff.Get("/suggestions", matchHandler.Suggestions)
	staff.Post("/matches", matchHandler.Confirm)
	staff.Get("/matches", matchHandler.List)
	staff.Get("/claims", claimHandler.ListForReview)
	staff.Post("/claims/:id/approve", claimHandler.Approve)
	staff.Post("/claims/:id/reject", claimHandler.Reject)
	staff.Get("/stats", statsHandler.Overview)
}
