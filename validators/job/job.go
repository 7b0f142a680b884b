package jobValidator

import (
	"shikhon/middleware"
	"shikhon/models"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// JobID validates the :id route parameter
func JobID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		jobIDStr := strings.TrimSpace(c.Params("id"))
		if jobIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Job ID is required!", nil)
		}

		jobID, err := strconv.Atoi(jobIDStr)
		if err != nil || jobID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Job ID!", nil)
		}

		c.Locals("jobID", jobID)
		return c.Next()
	}
}

type applicationRequest struct {
	Name      string `form:"name" json:"name" validate:"required,min=3"`
	Email     string `form:"email" json:"email" validate:"required,email"`
	Phone     string `form:"phone" json:"phone" validate:"omitempty,min=10,max=15"`
	CoverNote string `form:"coverNote" json:"coverNote" validate:"omitempty,max=2000"`
}

// Application validates the job-application form (multipart, the resume
// file itself is read by the controller).
func Application() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(applicationRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field()[:1])+fieldErr.Field()[1:]] = "Invalid value for " + fieldErr.Field() + "!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		application := &models.Application{
			Name:      reqData.Name,
			Email:     reqData.Email,
			Phone:     reqData.Phone,
			CoverNote: reqData.CoverNote,
		}

		c.Locals("validatedApplication", application)
		return c.Next()
	}
}
