package paymentController

import (
	"shikhon/database"
	"shikhon/middleware"
	"shikhon/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllPayments lists payments for the admin panel, newest first
func GetAllPayments(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPaymentList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	db := database.Database.Db.Model(&models.Payment{}).Where("is_deleted = ?", false)

	if !ok {
		var payments []models.Payment
		if err := db.Order("created_at desc").Find(&payments).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", payments)
	}

	page := *reqData.Page
	limit := *reqData.Limit
	offset := (page - 1) * limit

	var total int64
	db.Count(&total)

	var payments []models.Payment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", fiber.Map{
		"payments": payments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// CorrectPaymentStatus lets an administrator fix a payment's status
// after the gateway callback has run (manual correction path).
func CorrectPaymentStatus(c *fiber.Ctx) error {
	paymentID := c.Locals("paymentID").(int)
	reqData, ok := c.Locals("validatedPaymentCorrection").(*struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var payment models.Payment
	if err := db.Where("id = ? AND is_deleted = ?", paymentID, false).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}

	// Pending payments belong to the gateway callback, not the admin
	if payment.Status == models.PaymentStatusPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Payment is still pending gateway confirmation!", nil)
	}

	payment.Status = models.PaymentStatus(reqData.Status)
	if err := db.Save(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment status updated!", payment)
}
