package workshopRoutes

import (
	controllers "shikhon/controllers/workshop"
	"shikhon/middleware"
	validators "shikhon/validators/workshop"

	"github.com/gofiber/fiber/v2"
)

// SetupWorkshopRoutes sets up public workshop routes
func SetupWorkshopRoutes(app *fiber.App) {
	workshopGroup := app.Group("/workshop")

	// Listing and details are public
	workshopGroup.Get("/list", validators.WorkshopList(), controllers.GetAllWorkshops)
	workshopGroup.Get("/:id", validators.WorkshopID(), controllers.GetWorkshopDetails)
	workshopGroup.Get("/:id/pricing", validators.WorkshopID(), controllers.GetWorkshopPricing)

	// The enrollment gate works for anonymous and authenticated visitors
	workshopGroup.Get("/:id/enroll", middleware.OptionalJWTMiddleware, validators.WorkshopID(), controllers.EnrollmentGate)

	// Free enrollment requires a verified session
	workshopGroup.Post("/:id/enroll-free", middleware.JWTMiddleware, validators.WorkshopID(), controllers.EnrollFree)
}
