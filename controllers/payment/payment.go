package paymentController

import (
	"encoding/json"
	"log"
	"shikhon/config"
	"shikhon/database"
	"shikhon/middleware"
	"shikhon/models"
	"shikhon/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InitiateRequest is the validated payment-initiation payload. The
// amount is never taken from the client; the server re-resolves it.
type InitiateRequest struct {
	Purpose    string `json:"purpose"` // workshop, course
	WorkshopID *uint  `json:"workshopId"`
	CourseID   *uint  `json:"courseId"`
}

// InitiatePayment creates a pending payment row and requests a bKash
// checkout session. On success the client is handed the redirect URL.
func InitiatePayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedInitiate").(*InitiateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	payment := models.Payment{
		UserID:    userID,
		InvoiceID: uuid.NewString(),
	}

	// Resolve the price server-side; the quote is the only amount source
	var quote utils.PriceQuote
	switch reqData.Purpose {
	case "workshop":
		var workshop models.Workshop
		if err := db.Where("id = ? AND is_deleted = ? AND status = ?",
			*reqData.WorkshopID, false, models.WorkshopStatusPublished).First(&workshop).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
		}

		var confirmed int64
		if err := db.Model(&models.Enrollment{}).
			Where("workshop_id = ? AND is_deleted = ?", workshop.ID, false).
			Count(&confirmed).Error; err != nil {
			log.Printf("Error counting enrollments for workshop %d: %v", workshop.ID, err)
			quote = utils.RegularOnlyQuote(&workshop)
		} else {
			quote = utils.ResolveWorkshopPrice(&workshop, int(confirmed))
		}

		payment.Purpose = models.PaymentPurposeWorkshop
		payment.WorkshopID = reqData.WorkshopID

	case "course":
		var course models.Course
		if err := db.Where("id = ? AND is_deleted = ? AND status = ?",
			*reqData.CourseID, false, "published").First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		quote = utils.ResolveCoursePrice(&course)

		payment.Purpose = models.PaymentPurposeCourse
		payment.CourseID = reqData.CourseID

	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment purpose!", nil)
	}

	if quote.IsFree() {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This item is free and requires no payment!", nil)
	}
	payment.Amount = quote.CurrentPrice

	if err := db.Create(&payment).Error; err != nil {
		log.Printf("Error creating payment record: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to initiate payment!", nil)
	}

	client := utils.NewBkashClient(config.AppConfig.BkashGatewayURL)
	session, err := client.CreatePayment(utils.CreatePaymentRequest{
		UserID:     userID,
		WorkshopID: payment.WorkshopID,
		CourseID:   payment.CourseID,
		Amount:     payment.Amount,
		Email:      user.Email,
		Name:       user.Name,
		Phone:      user.Phone,
	})
	if err != nil {
		// Failed initiation closes the payment; the user may re-initiate
		if dbErr := db.Model(&payment).Update("status", models.PaymentStatusFailed).Error; dbErr != nil {
			log.Printf("Error marking payment %s failed: %v", payment.InvoiceID, dbErr)
		}
		log.Printf("[BKASH] Payment initiation failed for invoice %s: %v", payment.InvoiceID, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment session created!", fiber.Map{
		"invoiceId":   payment.InvoiceID,
		"amount":      payment.Amount,
		"currency":    payment.Currency,
		"redirectUrl": session.RedirectURL,
	})
}

// CallbackRequest is the gateway's confirmation payload
type CallbackRequest struct {
	InvoiceID        string `json:"invoice_id"`
	GatewayPaymentID string `json:"payment_id"`
	Status           string `json:"status"` // success, failure
	Payload          any    `json:"payload"`
}

// BkashCallback applies the gateway's verdict. Idempotent under
// duplicate callbacks: the gateway payment id and the enrollment unique
// index both guard against re-application.
func BkashCallback(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCallback").(*CallbackRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Duplicate callback for an already-applied gateway payment id
	var applied models.Payment
	if err := db.Where("gateway_payment_id = ? AND status <> ?", reqData.GatewayPaymentID, models.PaymentStatusPending).
		First(&applied).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Callback already processed.", fiber.Map{
			"invoiceId": applied.InvoiceID,
			"status":    applied.Status,
		})
	}

	var payment models.Payment
	if err := db.Where("invoice_id = ? AND is_deleted = ?", reqData.InvoiceID, false).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}
	if payment.Status != models.PaymentStatusPending {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Callback already processed.", fiber.Map{
			"invoiceId": payment.InvoiceID,
			"status":    payment.Status,
		})
	}

	rawPayload, err := json.Marshal(reqData.Payload)
	if err != nil {
		rawPayload = []byte("{}")
	}

	payment.GatewayPaymentID = &reqData.GatewayPaymentID
	payment.GatewayResponse = datatypes.JSON(rawPayload)
	payment.IsVerified = true

	if reqData.Status != "success" {
		payment.Status = models.PaymentStatusFailed
		if err := db.Save(&payment).Error; err != nil {
			log.Printf("Error saving failed payment %s: %v", payment.InvoiceID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment marked failed.", fiber.Map{
			"invoiceId": payment.InvoiceID,
			"status":    payment.Status,
		})
	}

	payment.Status = models.PaymentStatusSuccessful

	// Payment transition and enrollment creation commit together; the
	// email goes out only after both.
	tx := db.Begin()
	if err := tx.Save(&payment).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving payment %s: %v", payment.InvoiceID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	enrollment := models.Enrollment{
		UserID:     payment.UserID,
		WorkshopID: payment.WorkshopID,
		CourseID:   payment.CourseID,
	}

	var existing models.Enrollment
	query := tx.Where("user_id = ? AND is_deleted = ?", payment.UserID, false)
	if payment.WorkshopID != nil {
		query = query.Where("workshop_id = ?", *payment.WorkshopID)
	} else if payment.CourseID != nil {
		query = query.Where("course_id = ?", *payment.CourseID)
	}
	if err := query.First(&existing).Error; err != nil {
		if err := tx.Create(&enrollment).Error; err != nil {
			tx.Rollback()
			log.Printf("Error creating enrollment for payment %s: %v", payment.InvoiceID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record enrollment!", nil)
		}
	}
	if err := tx.Commit().Error; err != nil {
		log.Printf("Error committing payment %s: %v", payment.InvoiceID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	dispatchConfirmationEmail(&payment)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment confirmed!", fiber.Map{
		"invoiceId": payment.InvoiceID,
		"status":    payment.Status,
	})
}

func dispatchConfirmationEmail(payment *models.Payment) {
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", payment.UserID).First(&user).Error; err != nil {
		log.Printf("Error fetching user %d for confirmation email: %v", payment.UserID, err)
		return
	}

	switch payment.Purpose {
	case models.PaymentPurposeWorkshop:
		var workshop models.Workshop
		if err := db.Where("id = ?", *payment.WorkshopID).First(&workshop).Error; err != nil {
			log.Printf("Error fetching workshop for confirmation email: %v", err)
			return
		}
		utils.SendWorkshopConfirmationEmail(user.Email, user.Name, workshop.Title, payment.Amount)
	case models.PaymentPurposeCourse:
		var course models.Course
		if err := db.Where("id = ?", *payment.CourseID).First(&course).Error; err != nil {
			log.Printf("Error fetching course for confirmation email: %v", err)
			return
		}
		utils.SendCourseConfirmationEmail(user.Email, user.Name, course.Title, payment.Amount)
	}
}

// GetPaymentHistory returns the authenticated user's payments
func GetPaymentHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var payments []models.Payment
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", payments)
}
