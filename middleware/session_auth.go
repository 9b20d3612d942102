package middleware

import (
	"github.com/1rvyn/log-a-line/session"
	"github.com/gofiber/fiber/v2"
)

// StatusReporter exposes the editing session state.
type StatusReporter interface {
	Status() session.Status
}

// SourceRequired ensures a source has been selected before text routes run.
func SourceRequired(s StatusReporter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if s.Status().State != session.StateSourceSelected {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "No source selected",
			})
		}
		return c.Next()
	}
}
