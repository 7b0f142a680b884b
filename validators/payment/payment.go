package paymentValidator

import (
	paymentController "shikhon/controllers/payment"
	"shikhon/middleware"
	"shikhon/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// InitiatePayment validates the payment-initiation payload: a known
// purpose with exactly one matching id. Any client-sent amount is
// dropped here; the controller resolves the real one.
func InitiatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(paymentController.InitiateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch reqData.Purpose {
		case "workshop":
			if reqData.WorkshopID == nil || *reqData.WorkshopID == 0 {
				errors["workshopId"] = "Workshop ID is required!"
			}
			if reqData.CourseID != nil {
				errors["courseId"] = "Course ID must not be set for a workshop payment!"
			}
		case "course":
			if reqData.CourseID == nil || *reqData.CourseID == 0 {
				errors["courseId"] = "Course ID is required!"
			}
			if reqData.WorkshopID != nil {
				errors["workshopId"] = "Workshop ID must not be set for a course payment!"
			}
		default:
			errors["purpose"] = "Purpose must be workshop or course!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInitiate", reqData)
		return c.Next()
	}
}

// Callback validates the gateway confirmation payload
func Callback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(paymentController.CallbackRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.InvoiceID) == "" {
			errors["invoice_id"] = "Invoice ID is required!"
		}
		if strings.TrimSpace(reqData.GatewayPaymentID) == "" {
			errors["payment_id"] = "Payment ID is required!"
		}
		if reqData.Status != "success" && reqData.Status != "failure" {
			errors["status"] = "Status must be success or failure!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCallback", reqData)
		return c.Next()
	}
}

// PaymentID validates the :id route parameter
func PaymentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		paymentIDStr := strings.TrimSpace(c.Params("id"))
		if paymentIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment ID is required!", nil)
		}

		paymentID, err := strconv.Atoi(paymentIDStr)
		if err != nil || paymentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Payment ID!", nil)
		}

		c.Locals("paymentID", paymentID)
		return c.Next()
	}
}

// PaymentList validates admin list pagination
func PaymentList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Page == nil && reqData.Limit == nil {
			return c.Next()
		}

		errors := make(map[string]string)

		if reqData.Page == nil || *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit == nil || *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPaymentList", reqData)
		return c.Next()
	}
}

// PaymentCorrection validates the admin status-correction payload
func PaymentCorrection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
			Reason string `json:"reason"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch models.PaymentStatus(reqData.Status) {
		case models.PaymentStatusSuccessful, models.PaymentStatusFailed, models.PaymentStatusRefunded:
		default:
			errors["status"] = "Status must be successful, failed or refunded!"
		}
		if strings.TrimSpace(reqData.Reason) == "" {
			errors["reason"] = "A correction reason is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPaymentCorrection", reqData)
		return c.Next()
	}
}
