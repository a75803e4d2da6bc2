// Package response shapes every JSON body the API returns.
package response

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pierrechami/movies/internal/apperror"
)

// Envelope mirrors the body on the wire: status always, message on most
// responses, token only on login/refresh, data on success, error on failure.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

func Success(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Envelope{Status: status, Message: message, Data: data})
}

func SuccessToken(c *fiber.Ctx, status int, message, token string, data any) error {
	return c.Status(status).JSON(Envelope{Status: status, Message: message, Token: token, Data: data})
}

func Fail(c *fiber.Ctx, status int, message string, detail any) error {
	return c.Status(status).JSON(Envelope{Status: status, Message: message, Error: detail})
}

// FromError is the single boundary translation from a domain failure to the
// HTTP envelope.
func FromError(c *fiber.Ctx, err error) error {
	appErr := apperror.From(err)
	return Fail(c, appErr.Status, appErr.Message, appErr.Detail)
}
