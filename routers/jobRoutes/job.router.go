package jobRoutes

import (
	ambassadorControllers "shikhon/controllers/ambassador"
	controllers "shikhon/controllers/job"
	ambassadorValidators "shikhon/validators/ambassador"
	validators "shikhon/validators/job"

	"github.com/gofiber/fiber/v2"
)

// SetupJobRoutes sets up job and ambassador routes
func SetupJobRoutes(app *fiber.App) {
	jobGroup := app.Group("/job")

	jobGroup.Get("/list", controllers.GetAllJobs)
	jobGroup.Get("/:id", validators.JobID(), controllers.GetJobDetails)
	jobGroup.Post("/:id/apply", validators.JobID(), validators.Application(), controllers.ApplyForJob)

	ambassadorGroup := app.Group("/ambassador")
	ambassadorGroup.Post("/apply", ambassadorValidators.Ambassador(), ambassadorControllers.Apply)
}
