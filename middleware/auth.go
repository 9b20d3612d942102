package middleware

import (
	"log"
	"net"

	"github.com/gofiber/fiber/v2"
)

// LocalOnly rejects requests that do not come from the loopback interface.
// Drafts are scoped to the machine they were written on.
func LocalOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := net.ParseIP(c.IP())
		if ip == nil || !ip.IsLoopback() {
			log.Printf("Rejected non-local request from %s", c.IP())
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Local access only",
			})
		}
		return c.Next()
	}
}
