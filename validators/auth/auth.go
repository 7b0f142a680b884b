package authValidator

import (
	"regexp"
	authController "shikhon/controllers/auth"
	"shikhon/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// Helper to validate Bangladeshi mobile number format (local or +880 form)
func isValidPhone(phone string) bool {
	re := regexp.MustCompile(`^(\+?880)?0?1[3-9]\d{8}$`)
	return re.MatchString(strings.NewReplacer(" ", "", "-", "").Replace(phone))
}

// Signup validator middleware. The password/confirm comparison runs
// before anything else; a mismatch never reaches the database.
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(authController.SignupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Passwords must match byte-for-byte
		if reqData.Password != reqData.ConfirmPassword {
			errors["confirmPassword"] = "Passwords do not match!"
		}

		// Validate Password
		if len(strings.TrimSpace(reqData.Password)) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		// Validate Name
		if len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		// Validate Email
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		// Validate Phone
		if reqData.Phone == "" || !isValidPhone(reqData.Phone) {
			errors["phone"] = "Invalid phone number!"
		}

		// Mode defaults to standard; academic mode needs the full profile
		if reqData.Mode == "" {
			reqData.Mode = "standard"
		}
		switch reqData.Mode {
		case "standard":
		case "academic":
			if strings.TrimSpace(reqData.University) == "" {
				errors["university"] = "University is required!"
			}
			if strings.TrimSpace(reqData.Department) == "" {
				errors["department"] = "Department is required!"
			}
			if strings.TrimSpace(reqData.AcademicYear) == "" {
				errors["academicYear"] = "Academic year is required!"
			}
			if strings.TrimSpace(reqData.AcademicSession) == "" {
				errors["academicSession"] = "Academic session is required!"
			}
		default:
			errors["mode"] = "Mode must be standard or academic!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Phone    string `json:"phone"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Email == "" && reqData.Phone == "" {
			errors["credentials"] = "Either email or phone number is required!"
		} else {
			if reqData.Email != "" && !isValidEmail(reqData.Email) {
				errors["email"] = "Invalid email!"
			}
			if reqData.Phone != "" && !isValidPhone(reqData.Phone) {
				errors["phone"] = "Invalid phone number!"
			}
		}

		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// ForgotPassword validator middleware
func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			return middleware.ValidationErrorResponse(c, map[string]string{"email": "Invalid email!"})
		}

		c.Locals("validatedForgotPassword", reqData)
		return c.Next()
	}
}

// ResetPassword validator middleware
func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Token           string `json:"token"`
			Password        string `json:"password"`
			ConfirmPassword string `json:"confirmPassword"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Token) == "" {
			errors["token"] = "Reset token is required!"
		}
		if reqData.Password != reqData.ConfirmPassword {
			errors["confirmPassword"] = "Passwords do not match!"
		}
		if len(strings.TrimSpace(reqData.Password)) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResetPassword", reqData)
		return c.Next()
	}
}
