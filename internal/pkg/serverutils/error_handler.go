package serverutils

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors that escaped a handler into a response.
// JSON for /api routes, plain text for pages.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var fiberErr *fiber.Error
		var validationErr *ValidationError
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		case errors.As(err, &validationErr):
			code = fiber.StatusBadRequest
			message = validationErr.Error()
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(code).JSON(ErrorResponse(code, message))
		}
		return c.Status(code).SendString(message)
	}
}
