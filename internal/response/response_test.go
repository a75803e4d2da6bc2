package response_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pierrechami/movies/internal/apperror"
	"github.com/Pierrechami/movies/internal/response"
)

func perform(t *testing.T, handler fiber.Handler) (int, map[string]any) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	return resp.StatusCode, body
}

func TestSuccess(t *testing.T) {
	status, body := perform(t, func(c *fiber.Ctx) error {
		return response.Success(c, fiber.StatusCreated, "user created", fiber.Map{"email": "a@x.com"})
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, float64(201), body["status"])
	assert.Equal(t, "user created", body["message"])
	assert.NotNil(t, body["data"])
	assert.NotContains(t, body, "error")
	assert.NotContains(t, body, "token")
}

func TestSuccessToken(t *testing.T) {
	status, body := perform(t, func(c *fiber.Ctx) error {
		return response.SuccessToken(c, fiber.StatusOK, "login successful", "jwt-value", fiber.Map{"name": "A"})
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "jwt-value", body["token"])
	assert.NotNil(t, body["data"])
}

func TestFromErrorDomainFailure(t *testing.T) {
	status, body := perform(t, func(c *fiber.Ctx) error {
		return response.FromError(c, apperror.Forbidden("invalid or expired session"))
	})

	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "invalid or expired session", body["message"])
	assert.NotContains(t, body, "data")
}

func TestFromErrorUnexpected(t *testing.T) {
	status, body := perform(t, func(c *fiber.Ctx) error {
		return response.FromError(c, errors.New("connection reset"))
	})

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", body["message"])
	assert.Equal(t, "connection reset", body["error"])
}
