package workshopValidator

import (
	"shikhon/middleware"
	"shikhon/models"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// WorkshopID validates the :id route parameter
func WorkshopID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		workshopIDStr := strings.TrimSpace(c.Params("id"))
		if workshopIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Workshop ID is required!", nil)
		}

		workshopID, err := strconv.Atoi(workshopIDStr)
		if err != nil || workshopID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Workshop ID!", nil)
		}

		c.Locals("workshopID", workshopID)
		return c.Next()
	}
}

// WorkshopList validates list pagination
func WorkshopList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		// Pagination is optional; when absent the controller returns everything
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

		c.Locals("validatedWorkshopList", reqData)
		return c.Next()
	}
}

// AdminWorkshop validates the admin create/update payload and enforces
// the pricing invariants (offer never above regular, earlybird tier
// fully configured or absent).
func AdminWorkshop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title           string  `json:"title"`
			Slug            string  `json:"slug"`
			Description     string  `json:"description"`
			Category        string  `json:"category"`
			PriceRegular    float64 `json:"priceRegular"`
			PriceOffer      float64 `json:"priceOffer"`
			PriceEarlybirds float64 `json:"priceEarlybirds"`
			EarlybirdsCount int     `json:"earlybirdsCount"`
			Capacity        int     `json:"capacity"`
			StartTime       string  `json:"startTime"`
			EndTime         string  `json:"endTime"`
			Status          string  `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if strings.TrimSpace(reqData.Slug) == "" {
			errors["slug"] = "Slug is required!"
		}

		category := models.WorkshopCategory(reqData.Category)
		if category != models.WorkshopCategoryAcademic && category != models.WorkshopCategoryOther {
			errors["category"] = "Category must be academic or other!"
		}

		if reqData.PriceRegular < 0 {
			errors["priceRegular"] = "Regular price cannot be negative!"
		}
		if reqData.PriceOffer < 0 {
			errors["priceOffer"] = "Offer price cannot be negative!"
		}
		if reqData.PriceOffer > 0 && reqData.PriceOffer > reqData.PriceRegular {
			errors["priceOffer"] = "Offer price cannot exceed the regular price!"
		}
		if (reqData.PriceEarlybirds > 0) != (reqData.EarlybirdsCount > 0) {
			errors["earlybirds"] = "Earlybird price and count must be configured together!"
		}

		status := models.WorkshopStatus(reqData.Status)
		switch status {
		case models.WorkshopStatusDraft, models.WorkshopStatusPublished,
			models.WorkshopStatusCompleted, models.WorkshopStatusCancelled:
		default:
			errors["status"] = "Invalid workshop status!"
		}

		startTime, err := time.Parse(time.RFC3339, reqData.StartTime)
		if err != nil {
			errors["startTime"] = "Start time must be RFC3339!"
		}
		endTime, err := time.Parse(time.RFC3339, reqData.EndTime)
		if err != nil {
			errors["endTime"] = "End time must be RFC3339!"
		}
		if errors["startTime"] == "" && errors["endTime"] == "" && !endTime.After(startTime) {
			errors["endTime"] = "End time must be after start time!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		workshop := &models.Workshop{
			Title:           reqData.Title,
			Slug:            reqData.Slug,
			Description:     reqData.Description,
			Category:        category,
			PriceRegular:    reqData.PriceRegular,
			PriceOffer:      reqData.PriceOffer,
			PriceEarlybirds: reqData.PriceEarlybirds,
			EarlybirdsCount: reqData.EarlybirdsCount,
			Capacity:        reqData.Capacity,
			StartTime:       startTime,
			EndTime:         endTime,
			Status:          status,
		}

		c.Locals("validatedWorkshop", workshop)
		return c.Next()
	}
}
