package routes

import (
	"github.com/gofiber/fiber/v2"
)

type SetTextRequest struct {
	Text string `json:"text"`
}

func (h *Handler) GetText(c *fiber.Ctx) error {
	h.awaitLoad()
	return c.JSON(h.Session.Status())
}

func (h *Handler) SetText(c *fiber.Ctx) error {
	var req SetTextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	h.Session.SetText(req.Text)

	return c.Status(fiber.StatusAccepted).JSON(h.Session.Status())
}

func (h *Handler) FormatText(c *fiber.Ctx) error {
	h.Session.FormatText()
	return c.JSON(h.Session.Status())
}
