package routes

import (
	"time"

	"github.com/ecoride/support-backend/internal/config"
	"github.com/ecoride/support-backend/internal/handlers"
	"github.com/ecoride/support-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	faqHandler *handlers.FAQHandler,
	conversationHandler *handlers.ConversationHandler,
	orderHandler *handlers.OrderHandler,
	scooterHandler *handlers.ScooterHandler,
	uploadHandler *handlers.UploadHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Attachments are publicly readable once uploaded
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit so OTP requests can't be sprayed
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/otp/request", authHandler.RequestOTP)
	auth.Post("/otp/verify", authHandler.VerifyOTP)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Customer surface (JWT required)
	protected := api.Group("", middleware.JWTProtected(cfg))
	protected.Get("/profile", profileHandler.Get)
	protected.Put("/profile", profileHandler.Update)

	protected.Get("/faqs", faqHandler.ListActive)
	protected.Get("/scooters", scooterHandler.ListAvailable)

	protected.Get("/conversations", conversationHandler.List)
	protected.Post("/conversations", conversationHandler.Create)
	protected.Get("/conversations/:id/messages", conversationHandler.GetMessages)
	protected.Post("/conversations/:id/messages", conversationHandler.SendMessage)
	protected.Post("/conversations/:id/resolve", conversationHandler.Resolve)

	protected.Get("/orders", orderHandler.List)
	protected.Post("/orders", orderHandler.Create)

	protected.Post("/uploads", uploadHandler.Upload)

	// Admin surface (JWT + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/faqs", faqHandler.ListAll)
	admin.Post("/faqs", faqHandler.Create)
	admin.Put("/faqs/:id", faqHandler.Update)
	admin.Delete("/faqs/:id", faqHandler.Delete)

	admin.Get("/conversations", conversationHandler.AdminList)
	admin.Get("/conversations/:id/messages", conversationHandler.AdminGetMessages)
	admin.Post("/conversations/:id/messages", conversationHandler.AdminSendMessage)
	admin.Post("/conversations/:id/resolve", conversationHandler.AdminResolve)

	admin.Get("/orders", orderHandler.AdminList)
	admin.Put("/orders/:id/status", orderHandler.AdminUpdateStatus)
	admin.Put("/orders/:id/amount", orderHandler.AdminUpdateAmount)

	admin.Get("/scooters", scooterHandler.AdminList)
	admin.Post("/scooters", scooterHandler.AdminCreate)
	admin.Put("/scooters/:id", scooterHandler.AdminUpdate)
}
