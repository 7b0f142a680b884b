package workshopController

import (
	"log"
	"shikhon/database"
	"shikhon/middleware"
	"shikhon/models"
	"shikhon/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAllWorkshops lists published workshops, newest first
func GetAllWorkshops(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedWorkshopList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	db := database.Database.Db.Model(&models.Workshop{}).
		Where("status = ? AND is_deleted = ?", models.WorkshopStatusPublished, false)

	if !ok {
		var workshops []models.Workshop
		if err := db.Order("start_time asc").Find(&workshops).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch workshops!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshops fetched successfully!", fiber.Map{
			"workshops": workshops,
			"pagination": fiber.Map{
				"total": int64(len(workshops)),
				"page":  1,
				"limit": len(workshops),
			},
		})
	}

	page := *reqData.Page
	limit := *reqData.Limit
	offset := (page - 1) * limit

	var total int64
	db.Count(&total)

	var workshops []models.Workshop
	if err := db.Offset(offset).Limit(limit).Order("start_time asc").Find(&workshops).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch workshops!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshops fetched successfully!", fiber.Map{
		"workshops": workshops,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetWorkshopDetails returns one published workshop with its live quote
func GetWorkshopDetails(c *fiber.Ctx) error {
	workshopID := c.Locals("workshopID").(int)

	var workshop models.Workshop
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ? AND status = ?", workshopID, false, models.WorkshopStatusPublished).
		First(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshop fetched successfully!", fiber.Map{
		"workshop": workshop,
		"pricing":  resolveQuote(&workshop),
	})
}

// GetWorkshopPricing exposes the pricing resolver on its own route
func GetWorkshopPricing(c *fiber.Ctx) error {
	workshopID := c.Locals("workshopID").(int)

	var workshop models.Workshop
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ? AND status = ?", workshopID, false, models.WorkshopStatusPublished).
		First(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pricing resolved successfully!", resolveQuote(&workshop))
}

// resolveQuote counts confirmed enrollments and resolves the quote.
// A count failure degrades to the regular price instead of blocking.
func resolveQuote(workshop *models.Workshop) utils.PriceQuote {
	var confirmed int64
	err := database.Database.Db.Model(&models.Enrollment{}).
		Where("workshop_id = ? AND is_deleted = ?", workshop.ID, false).
		Count(&confirmed).Error
	if err != nil {
		log.Printf("Error counting enrollments for workshop %d, falling back to regular price: %v", workshop.ID, err)
		return utils.RegularOnlyQuote(workshop)
	}

	return utils.ResolveWorkshopPrice(workshop, int(confirmed))
}

// EnrollmentGate decides what an enrolling visitor sees next: the auth
// form (with the signup mode the workshop's category demands), the free
// enrollment path, or the payment step with the resolved quote.
func EnrollmentGate(c *fiber.Ctx) error {
	workshopID := c.Locals("workshopID").(int)

	var workshop models.Workshop
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ? AND status = ?", workshopID, false, models.WorkshopStatusPublished).
		First(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
	}

	userID, authenticated := c.Locals("userId").(uint)
	if !authenticated {
		signupMode := "standard"
		if workshop.Category == models.WorkshopCategoryAcademic {
			signupMode = "academic"
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Authentication required before enrollment.", fiber.Map{
			"step":       "auth",
			"signupMode": signupMode,
		})
	}

	// Already enrolled users go straight to their dashboard
	var existing models.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND workshop_id = ? AND is_deleted = ?", userID, workshopID, false).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Already enrolled in this workshop.", fiber.Map{
			"step":       "enrolled",
			"enrollment": existing,
		})
	}

	quote := resolveQuote(&workshop)
	if quote.IsFree() {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshop is free, enroll directly.", fiber.Map{
			"step":    "free",
			"pricing": quote,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Proceed to payment.", fiber.Map{
		"step":    "payment",
		"pricing": quote,
	})
}

// EnrollFree enrolls an authenticated user into a free workshop without
// touching the payment gateway.
func EnrollFree(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	workshopID := c.Locals("workshopID").(int)

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var workshop models.Workshop
	if err := db.Where("id = ? AND is_deleted = ? AND status = ?", workshopID, false, models.WorkshopStatusPublished).
		First(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
	}

	quote := resolveQuote(&workshop)
	if !quote.IsFree() {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This workshop requires payment!", nil)
	}

	var existing models.Enrollment
	if err := db.Where("user_id = ? AND workshop_id = ? AND is_deleted = ?", userID, workshopID, false).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this workshop!", nil)
	}

	wID := uint(workshopID)
	enrollment := models.Enrollment{
		UserID:     userID,
		WorkshopID: &wID,
	}

	tx := db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in workshop!", nil)
	}
	tx.Commit()

	utils.SendFreeEnrollmentEmail(user.Email, user.Name, workshop.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in workshop successfully!", enrollment)
}
