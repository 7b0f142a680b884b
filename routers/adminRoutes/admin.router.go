package adminRoutes

import (
	ambassadorControllers "shikhon/controllers/ambassador"
	jobControllers "shikhon/controllers/job"
	paymentControllers "shikhon/controllers/payment"
	workshopControllers "shikhon/controllers/workshop"
	"shikhon/middleware"
	jobValidators "shikhon/validators/job"
	paymentValidators "shikhon/validators/payment"
	workshopValidators "shikhon/validators/workshop"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin panel routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	// Workshop management
	adminGroup.Get("/workshops", workshopControllers.GetAllWorkshopsAdmin)
	adminGroup.Post("/workshops", workshopValidators.AdminWorkshop(), workshopControllers.CreateWorkshop)
	adminGroup.Put("/workshops/:id", workshopValidators.WorkshopID(), workshopValidators.AdminWorkshop(), workshopControllers.UpdateWorkshop)
	adminGroup.Delete("/workshops/:id", workshopValidators.WorkshopID(), workshopControllers.DeleteWorkshop)

	// Payment oversight and manual correction
	adminGroup.Get("/payments", paymentValidators.PaymentList(), paymentControllers.GetAllPayments)
	adminGroup.Put("/payments/:id", paymentValidators.PaymentID(), paymentValidators.PaymentCorrection(), paymentControllers.CorrectPaymentStatus)

	// Applications
	adminGroup.Get("/jobs/:id/applications", jobValidators.JobID(), jobControllers.GetJobApplications)
	adminGroup.Get("/ambassadors", ambassadorControllers.List)
}
