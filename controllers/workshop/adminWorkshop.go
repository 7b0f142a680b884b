package workshopController

import (
	"shikhon/database"
	"shikhon/middleware"
	"shikhon/models"

	"github.com/gofiber/fiber/v2"
)

// CreateWorkshop creates a workshop (admin only)
func CreateWorkshop(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedWorkshop").(*models.Workshop)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing models.Workshop
	if err := db.Where("slug = ? AND is_deleted = false", reqData.Slug).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A workshop with this slug already exists!", nil)
	}

	if err := db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create workshop!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Workshop created successfully!", reqData)
}

// UpdateWorkshop updates a workshop (admin only)
func UpdateWorkshop(c *fiber.Ctx) error {
	workshopID := c.Locals("workshopID").(int)
	reqData, ok := c.Locals("validatedWorkshop").(*models.Workshop)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var workshop models.Workshop
	if err := db.Where("id = ? AND is_deleted = false", workshopID).First(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
	}

	workshop.Title = reqData.Title
	workshop.Slug = reqData.Slug
	workshop.Description = reqData.Description
	workshop.Category = reqData.Category
	workshop.PriceRegular = reqData.PriceRegular
	workshop.PriceOffer = reqData.PriceOffer
	workshop.PriceEarlybirds = reqData.PriceEarlybirds
	workshop.EarlybirdsCount = reqData.EarlybirdsCount
	workshop.Capacity = reqData.Capacity
	workshop.StartTime = reqData.StartTime
	workshop.EndTime = reqData.EndTime
	workshop.Status = reqData.Status

	if err := db.Save(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update workshop!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshop updated successfully!", workshop)
}

// DeleteWorkshop soft-deletes a workshop (admin only)
func DeleteWorkshop(c *fiber.Ctx) error {
	workshopID := c.Locals("workshopID").(int)

	db := database.Database.Db

	var workshop models.Workshop
	if err := db.Where("id = ? AND is_deleted = false", workshopID).First(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
	}

	if err := db.Model(&workshop).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete workshop!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshop deleted successfully!", nil)
}

// GetAllWorkshopsAdmin lists every workshop regardless of status (admin only)
func GetAllWorkshopsAdmin(c *fiber.Ctx) error {
	var workshops []models.Workshop
	if err := database.Database.Db.
		Where("is_deleted = false").
		Order("created_at desc").
		Find(&workshops).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch workshops!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshops fetched successfully!", workshops)
}
