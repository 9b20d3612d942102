package routes

import (
	"context"
	"log"
	"time"

	"github.com/1rvyn/log-a-line/middleware"
	"github.com/1rvyn/log-a-line/session"
	"github.com/gofiber/fiber/v2"
)

// Handler serves the editor and rendering collaborators over one session.
type Handler struct {
	Session *session.Controller
	// LoadTimeout bounds how long a view waits for a draft to load.
	LoadTimeout time.Duration
}

// awaitLoad waits for the selected source's draft before its text is shown.
// On timeout the view still renders, with whatever text is current.
func (h *Handler) awaitLoad() {
	timeout := h.LoadTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := h.Session.AwaitLoad(ctx); err != nil {
		log.Printf("Draft still loading after %s: %v", timeout, err)
	}
}

// Setup registers every route on app.
func Setup(app *fiber.App, h *Handler) {
	app.Get("/", h.EditorPage)
	app.Get("/transcript", h.TranscriptPage)

	api := app.Group("/api")
	api.Post("/source", h.SelectSource)
	api.Get("/text", h.GetText)

	api.Put("/text", middleware.SourceRequired(h.Session), h.SetText)
	api.Post("/text/format", middleware.SourceRequired(h.Session), h.FormatText)

	api.Get("/transcript", h.GetTranscript)
	api.Get("/transcript/export", h.ExportTranscript)
}
