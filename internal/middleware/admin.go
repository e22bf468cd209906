package middleware

import (
	"strings"

	"github.com/ecoride/support-backend/internal/config"
	"github.com/ecoride/support-backend/internal/dto"
	"github.com/ecoride/support-backend/internal/identity"
	"github.com/ecoride/support-backend/internal/models"
	"github.com/ecoride/support-backend/internal/phone"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminRequired checks, in order:
// 1. X-Admin-Token header against the configured token
// 2. the mobile number claim against the configured admin number list
// 3. the profile Role field in the database
func AdminRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	adminNumbers := parseCSV(cfg.AdminMobileNumbers)
	for i, n := range adminNumbers {
		adminNumbers[i] = phone.Normalize(n)
	}

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" {
			if c.Get("X-Admin-Token") == cfg.AdminToken {
				return c.Next()
			}
		}

		if mobile := identity.GetMobileNumber(c); mobile != "" {
			if contains(adminNumbers, phone.Normalize(mobile)) {
				return c.Next()
			}
		}

		userID, err := identity.GetUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		var profile models.Profile
		if err := db.First(&profile, "user_id = ?", userID).Error; err == nil {
			if profile.Role == models.RoleAdmin {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
