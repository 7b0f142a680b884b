package authValidator

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

func signupApp(nextCalled *bool) *fiber.App {
	app := fiber.New()
	app.Post("/signup", Signup(), func(c *fiber.Ctx) error {
		*nextCalled = true
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
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

func TestSignupPasswordMismatchNeverReachesHandler(t *testing.T) {
	nextCalled := false
	app := signupApp(&nextCalled)

	status, body := postJSON(t, app, "/signup", `{
		"name": "Test User",
		"email": "test@example.com",
		"phone": "01712345678",
		"password": "password123",
		"confirmPassword": "password124"
	}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.False(t, nextCalled)

	errors := body["data"].(map[string]interface{})
	assert.Contains(t, errors, "confirmPassword")
}

func TestSignupStandardModePasses(t *testing.T) {
	nextCalled := false
	app := signupApp(&nextCalled)

	status, _ := postJSON(t, app, "/signup", `{
		"name": "Test User",
		"email": "test@example.com",
		"phone": "01712345678",
		"password": "password123",
		"confirmPassword": "password123"
	}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, nextCalled)
}

func TestSignupAcademicModeRequiresProfileFields(t *testing.T) {
	nextCalled := false
	app := signupApp(&nextCalled)

	status, body := postJSON(t, app, "/signup", `{
		"mode": "academic",
		"name": "Test User",
		"email": "test@example.com",
		"phone": "01712345678",
		"password": "password123",
		"confirmPassword": "password123"
	}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.False(t, nextCalled)

	errors := body["data"].(map[string]interface{})
	assert.Contains(t, errors, "university")
	assert.Contains(t, errors, "department")
	assert.Contains(t, errors, "academicYear")
	assert.Contains(t, errors, "academicSession")
}

func TestSignupAcademicModeComplete(t *testing.T) {
	nextCalled := false
	app := signupApp(&nextCalled)

	status, _ := postJSON(t, app, "/signup", `{
		"mode": "academic",
		"name": "Test User",
		"email": "test@example.com",
		"phone": "01712345678",
		"password": "password123",
		"confirmPassword": "password123",
		"university": "University of Dhaka",
		"department": "CSE",
		"academicYear": "3rd",
		"academicSession": "2024-25"
	}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, nextCalled)
}

func TestSignupInvalidPhoneRejected(t *testing.T) {
	nextCalled := false
	app := signupApp(&nextCalled)

	status, body := postJSON(t, app, "/signup", `{
		"name": "Test User",
		"email": "test@example.com",
		"phone": "12345",
		"password": "password123",
		"confirmPassword": "password123"
	}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.False(t, nextCalled)

	errors := body["data"].(map[string]interface{})
	assert.Contains(t, errors, "phone")
}

func TestLoginRequiresEmailOrPhone(t *testing.T) {
	nextCalled := false
	app := fiber.New()
	app.Post("/login", Login(), func(c *fiber.Ctx) error {
		nextCalled = true
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
	})

	status, body := postJSON(t, app, "/login", `{"password": "password123"}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.False(t, nextCalled)

	errors := body["data"].(map[string]interface{})
	assert.Contains(t, errors, "credentials")
}
