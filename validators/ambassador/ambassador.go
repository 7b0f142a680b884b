package ambassadorValidator

import (
	"shikhon/middleware"
	"shikhon/models"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type ambassadorRequest struct {
	Name        string `json:"name" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,min=10,max=15"`
	Institution string `json:"institution" validate:"required,min=2"`
	Motivation  string `json:"motivation" validate:"omitempty,max=2000"`
}

// Ambassador validates the campus-ambassador application payload
func Ambassador() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ambassadorRequest)
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

		application := &models.AmbassadorApplication{
			Name:        reqData.Name,
			Email:       reqData.Email,
			Phone:       reqData.Phone,
			Institution: reqData.Institution,
			Motivation:  reqData.Motivation,
		}

		c.Locals("validatedAmbassador", application)
		return c.Next()
	}
}
