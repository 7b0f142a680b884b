package ambassadorController

import (
	"errors"
	"log"
	"shikhon/database"
	"shikhon/middleware"
	"shikhon/models"
	"shikhon/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Apply records a campus-ambassador application and sends the
// confirmation email.
func Apply(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAmbassador").(*models.AmbassadorApplication)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Create(reqData).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "An application with this email already exists!", nil)
		}
		log.Printf("Error saving ambassador application: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit application!", nil)
	}

	utils.SendAmbassadorEmail(reqData.Email, reqData.Name)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted successfully!", fiber.Map{
		"applicationId": reqData.ID,
	})
}

// List returns ambassador applications (admin only)
func List(c *fiber.Ctx) error {
	var applications []models.AmbassadorApplication
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", applications)
}
