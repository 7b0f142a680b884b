package paymentValidator

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initiateApp(nextCalled *bool) *fiber.App {
	app := fiber.New()
	app.Post("/initiate", InitiatePayment(), func(c *fiber.Ctx) error {
		*nextCalled = true
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
	})
	return app
}

func postInitiate(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", "/initiate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestInitiateRequiresMatchingID(t *testing.T) {
	nextCalled := false
	app := initiateApp(&nextCalled)

	status, body := postInitiate(t, app, `{"purpose": "workshop"}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.False(t, nextCalled)

	errors := body["data"].(map[string]interface{})
	assert.Contains(t, errors, "workshopId")
}

func TestInitiateRejectsBothIDs(t *testing.T) {
	nextCalled := false
	app := initiateApp(&nextCalled)

	status, body := postInitiate(t, app, `{"purpose": "workshop", "workshopId": 4, "courseId": 2}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.False(t, nextCalled)

	errors := body["data"].(map[string]interface{})
	assert.Contains(t, errors, "courseId")
}

func TestInitiateRejectsUnknownPurpose(t *testing.T) {
	nextCalled := false
	app := initiateApp(&nextCalled)

	status, body := postInitiate(t, app, `{"purpose": "book", "workshopId": 4}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.False(t, nextCalled)

	errors := body["data"].(map[string]interface{})
	assert.Contains(t, errors, "purpose")
}

func TestInitiateValidWorkshopPayload(t *testing.T) {
	nextCalled := false
	app := initiateApp(&nextCalled)

	status, _ := postInitiate(t, app, `{"purpose": "workshop", "workshopId": 4}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, nextCalled)
}

func TestCallbackValidation(t *testing.T) {
	nextCalled := false
	app := fiber.New()
	app.Post("/callback", Callback(), func(c *fiber.Ctx) error {
		nextCalled = true
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/callback", strings.NewReader(`{"invoice_id": "inv-1", "status": "success"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, nextCalled)
}
