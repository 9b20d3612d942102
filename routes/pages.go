package routes

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) EditorPage(c *fiber.Ctx) error {
	h.awaitLoad()
	st := h.Session.Status()
	return c.Render("editor", fiber.Map{
		"Title":  "Log a Line",
		"Source": st.Source,
		"Text":   st.Text,
	})
}

func (h *Handler) TranscriptPage(c *fiber.Ctx) error {
	t := h.transcript()
	return c.Render("transcript", fiber.Map{
		"Title":    "Transcript",
		"Source":   t.Source,
		"Segments": t.Segments,
		"Errors":   t.Errors,
	})
}
