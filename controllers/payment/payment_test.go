package paymentController_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	paymentController "shikhon/controllers/payment"
	"shikhon/database"
	"shikhon/models"
	paymentValidator "shikhon/validators/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupCallbackApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Workshop{},
		&models.Course{},
		&models.Enrollment{},
		&models.Payment{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/payment/callback", paymentValidator.Callback(), paymentController.BkashCallback)
	return app, db
}

func seedPendingWorkshopPayment(t *testing.T, db *gorm.DB, invoice string) models.Payment {
	t.Helper()

	user := models.User{Name: "Test User", Email: invoice + "@example.com", Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)

	workshop := models.Workshop{
		Title:        "Intro to Robotics",
		Slug:         "intro-to-robotics-" + invoice,
		Category:     models.WorkshopCategoryOther,
		PriceRegular: 200,
		Status:       models.WorkshopStatusPublished,
		StartTime:    time.Now().Add(24 * time.Hour),
		EndTime:      time.Now().Add(30 * time.Hour),
	}
	require.NoError(t, db.Create(&workshop).Error)

	payment := models.Payment{
		UserID:     user.ID,
		Purpose:    models.PaymentPurposeWorkshop,
		WorkshopID: &workshop.ID,
		InvoiceID:  invoice,
		Amount:     200,
	}
	require.NoError(t, db.Create(&payment).Error)
	return payment
}

func postCallback(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", "/payment/callback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func countEnrollments(t *testing.T, db *gorm.DB, payment models.Payment) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("user_id = ? AND workshop_id = ?", payment.UserID, *payment.WorkshopID).
		Count(&count).Error)
	return count
}

func TestCallbackConfirmsPaymentAndEnrolls(t *testing.T) {
	app, db := setupCallbackApp(t)
	payment := seedPendingWorkshopPayment(t, db, "inv-cb-1")

	status, body := postCallback(t, app,
		`{"invoice_id": "inv-cb-1", "payment_id": "TRX9001", "status": "success", "payload": {"trxID": "TRX9001"}}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Payment confirmed!", body["message"])

	var saved models.Payment
	require.NoError(t, db.First(&saved, payment.ID).Error)
	assert.Equal(t, models.PaymentStatusSuccessful, saved.Status)
	assert.True(t, saved.IsVerified)
	require.NotNil(t, saved.GatewayPaymentID)
	assert.Equal(t, "TRX9001", *saved.GatewayPaymentID)

	assert.Equal(t, int64(1), countEnrollments(t, db, payment))
}

func TestCallbackReplayIsIdempotent(t *testing.T) {
	app, db := setupCallbackApp(t)
	payment := seedPendingWorkshopPayment(t, db, "inv-cb-2")

	callback := `{"invoice_id": "inv-cb-2", "payment_id": "TRX9002", "status": "success", "payload": {}}`

	status, _ := postCallback(t, app, callback)
	require.Equal(t, fiber.StatusOK, status)

	// The gateway retries; the verdict must not apply twice
	status, body := postCallback(t, app, callback)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Callback already processed.", body["message"])

	assert.Equal(t, int64(1), countEnrollments(t, db, payment))
}

func TestCallbackFailureDoesNotEnroll(t *testing.T) {
	app, db := setupCallbackApp(t)
	payment := seedPendingWorkshopPayment(t, db, "inv-cb-3")

	status, body := postCallback(t, app,
		`{"invoice_id": "inv-cb-3", "payment_id": "TRX9003", "status": "failure", "payload": {}}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Payment marked failed.", body["message"])

	var saved models.Payment
	require.NoError(t, db.First(&saved, payment.ID).Error)
	assert.Equal(t, models.PaymentStatusFailed, saved.Status)

	assert.Equal(t, int64(0), countEnrollments(t, db, payment))
}

func TestCallbackUnknownInvoice(t *testing.T) {
	app, _ := setupCallbackApp(t)

	status, _ := postCallback(t, app,
		`{"invoice_id": "inv-missing", "payment_id": "TRX9004", "status": "success", "payload": {}}`)

	assert.Equal(t, fiber.StatusNotFound, status)
}
