package authRoutes

import (
	controllers "shikhon/controllers/auth"
	validators "shikhon/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up authentication routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.Signup(), controllers.Signup)
	authGroup.Post("/login", validators.Login(), controllers.Login)
	authGroup.Post("/forgot-password", validators.ForgotPassword(), controllers.ForgotPassword)
	authGroup.Post("/reset-password", validators.ResetPassword(), controllers.ResetPassword)
}
