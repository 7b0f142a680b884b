package paymentRoutes

import (
	controllers "shikhon/controllers/payment"
	"shikhon/middleware"
	validators "shikhon/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up payment routes
func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payment")

	paymentGroup.Post("/initiate", middleware.JWTMiddleware, validators.InitiatePayment(), controllers.InitiatePayment)
	paymentGroup.Get("/history", middleware.JWTMiddleware, controllers.GetPaymentHistory)

	// Gateway webhook; authenticated by the gateway, not a user session
	paymentGroup.Post("/callback", validators.Callback(), controllers.BkashCallback)
}
