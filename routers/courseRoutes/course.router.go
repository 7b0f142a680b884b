package courseRoutes

import (
	controllers "shikhon/controllers/course"
	"shikhon/middleware"
	validators "shikhon/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up public course and dashboard routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	courseGroup.Get("/list", controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)

	// User dashboard
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, validators.EnrollmentList(), controllers.GetUserEnrollments)
}
