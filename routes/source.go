package routes

import (
	"errors"
	"strings"

	"github.com/1rvyn/log-a-line/session"
	"github.com/gofiber/fiber/v2"
)

type SelectSourceRequest struct {
	Name string `json:"name" form:"name"`
}

// SelectSource makes the named audio file the active source. Its stored
// draft loads in the background.
func (h *Handler) SelectSource(c *fiber.Ctx) error {
	var req SelectSourceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := h.Session.SelectSource(req.Name); err != nil {
		if errors.Is(err, session.ErrEmptySourceName) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Source name is required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to select source"})
	}

	// The editor page posts a plain form and expects to land back on it.
	if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEApplicationForm) {
		h.awaitLoad()
		return c.Redirect("/")
	}
	return c.Status(fiber.StatusAccepted).JSON(h.Session.Status())
}
