package courseController

import (
	"shikhon/database"
	"shikhon/middleware"
	"shikhon/models"
	"shikhon/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists published courses
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.
		Where("status = ? AND is_deleted = ?", "published", false).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns one published course with its quote
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ? AND status = ?", courseID, false, "published").
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":  course,
		"pricing": utils.ResolveCoursePrice(&course),
	})
}

// GetUserEnrollments returns the authenticated user's enrollments,
// latest first. The newest row is the "latest enrollment" shown on the
// dashboard.
func GetUserEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEnrollmentList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	db := database.Database.Db.Model(&models.Enrollment{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Workshop").Preload("Course")

	if !ok {
		var enrollments []models.Enrollment
		if err := db.Order("created_at desc").Find(&enrollments).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
			"enrollments": enrollments,
			"pagination": fiber.Map{
				"total": int64(len(enrollments)),
				"page":  1,
				"limit": len(enrollments),
			},
		})
	}

	page := *reqData.Page
	limit := *reqData.Limit
	offset := (page - 1) * limit

	var total int64
	db.Count(&total)

	var enrollments []models.Enrollment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
