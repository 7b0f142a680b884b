package authController

import (
	"log"
	"shikhon/config"
	"shikhon/database"
	"shikhon/middleware"
	"shikhon/models"
	"shikhon/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SignupRequest is the validated signup payload. Academic mode carries
// the extra profile fields required by academic-category workshops.
type SignupRequest struct {
	Mode            string `json:"mode"` // standard, academic
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`

	University      string `json:"university"`
	Department      string `json:"department"`
	AcademicYear    string `json:"academicYear"`
	AcademicSession string `json:"academicSession"`
}

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	phone := utils.NormalizePhone(reqData.Phone)

	// A half-finished signup may have left a user row behind. When the
	// password matches, merge the academic fields instead of losing them
	// and sign the user in.
	var existing models.User
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&existing).Error; err == nil {
		if bcrypt.CompareHashAndPassword([]byte(existing.Password), []byte(reqData.Password)) != nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}

		mergeAcademicFields(&existing, reqData)
		if phone != "" && existing.Phone == "" {
			existing.Phone = phone
		}
		if err := db.Save(&existing).Error; err != nil {
			log.Printf("Error merging user profile: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
		}

		return issueSession(c, &existing, fiber.StatusOK, "Signed in to existing account.")
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Phone:    phone,
		Password: string(hashedPassword),
	}
	if reqData.Mode == "academic" {
		newUser.University = reqData.University
		newUser.Department = reqData.Department
		newUser.AcademicYear = reqData.AcademicYear
		newUser.AcademicSession = reqData.AcademicSession
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	return issueSession(c, &newUser, fiber.StatusCreated, "User registered successfully.")
}

func mergeAcademicFields(user *models.User, reqData *SignupRequest) {
	if reqData.Mode != "academic" {
		return
	}
	if user.University == "" {
		user.University = reqData.University
	}
	if user.Department == "" {
		user.Department = reqData.Department
	}
	if user.AcademicYear == "" {
		user.AcademicYear = reqData.AcademicYear
	}
	if user.AcademicSession == "" {
		user.AcademicSession = reqData.AcademicSession
	}
}

// issueSession signs a JWT for the user. The payment step only opens
// behind a verified token, never optimistically.
func issueSession(c *fiber.Ctx, user *models.User, statusCode int, message string) error {
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email, user.Phone)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}

	return middleware.JsonResponse(c, statusCode, true, message, fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  user.Role,
		},
	})
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	var result *gorm.DB

	// Retrieve user by email or phone
	if reqData.Email != "" {
		result = database.Database.Db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user)
	} else {
		result = database.Database.Db.Where("phone = ? AND is_deleted = ?", utils.NormalizePhone(reqData.Phone), false).First(&user)
	}

	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	now := time.Now()
	user.LastLogin = &now
	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error updating last login: %v", err)
	}

	return issueSession(c, &user, fiber.StatusOK, "Logged in successfully.")
}

func ForgotPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedForgotPassword").(*struct {
		Email string `json:"email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&user).Error; err != nil {
		// Do not reveal whether the email exists
		return middleware.JsonResponse(c, fiber.StatusOK, true, "If the email is registered, a reset link has been sent.", nil)
	}

	reset := models.PasswordReset{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	if err := db.Create(&reset).Error; err != nil {
		log.Printf("Error creating password reset: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	resetLink := config.AppConfig.SiteURL + "/reset-password?token=" + reset.Token
	utils.SendPasswordResetEmail(user.Email, user.Name, resetLink)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "If the email is registered, a reset link has been sent.", nil)
}

func ResetPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetPassword").(*struct {
		Token           string `json:"token"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var reset models.PasswordReset
	if err := db.Where("token = ? AND used = false", reqData.Token).First(&reset).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or expired reset token!", nil)
	}
	if reset.ExpiresAt.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or expired reset token!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	tx := db.Begin()
	if err := tx.Model(&models.User{}).Where("id = ?", reset.UserID).Update("password", string(hashedPassword)).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
	}
	if err := tx.Model(&reset).Update("used", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successfully.", nil)
}
