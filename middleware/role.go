package middleware

import (
	"shikhon/database"
	"shikhon/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole returns a middleware that checks the authenticated user's role
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get user ID from context (set by JWT middleware)
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: User ID not found",
				"data":    nil,
			})
		}

		var user models.User
		err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error

		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"status":  false,
					"message": "User not found!",
					"data":    nil,
				})
			}
			// Other DB error
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  false,
				"message": "Server error while checking role!",
				"data":    nil,
			})
		}

		if user.Role != requiredRole {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "You do not have permission to access this resource!",
				"data":    nil,
			})
		}

		return c.Next()
	}
}
