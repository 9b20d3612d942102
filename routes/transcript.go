package routes

import (
	"errors"

	"github.com/1rvyn/log-a-line/misc"
	"github.com/1rvyn/log-a-line/models"
	"github.com/1rvyn/log-a-line/transcript"
	"github.com/gofiber/fiber/v2"
)

type TranscriptResponse struct {
	Source   string                     `json:"source"`
	Segments []models.TranscriptSegment `json:"segments"`
	Errors   []SegmentError             `json:"errors"`
}

// SegmentError describes one segment that failed to parse. Index, Descriptor
// and Parts are zero for errors that are not tied to an image descriptor.
type SegmentError struct {
	Index      int    `json:"index"`
	Descriptor string `json:"descriptor,omitempty"`
	Parts      int    `json:"parts,omitempty"`
	Message    string `json:"message"`
}

func (h *Handler) transcript() TranscriptResponse {
	segments, err := h.Session.Segments()
	return TranscriptResponse{
		Source:   h.Session.Status().Source,
		Segments: segments,
		Errors:   segmentErrors(err),
	}
}

// segmentErrors unpacks the joined per-segment errors returned by
// transcript.Parse.
func segmentErrors(err error) []SegmentError {
	out := []SegmentError{}
	if err == nil {
		return out
	}
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}
	for _, e := range errs {
		se := SegmentError{Message: e.Error()}
		var ferr *transcript.FormatError
		if errors.As(e, &ferr) {
			se.Index = ferr.Index
			se.Descriptor = ferr.Descriptor
			se.Parts = ferr.Parts
		}
		out = append(out, se)
	}
	return out
}

// GetTranscript parses the current text on demand.
func (h *Handler) GetTranscript(c *fiber.Ctx) error {
	return c.JSON(h.transcript())
}

// ExportTranscript renders the parsed transcript as markdown.
func (h *Handler) ExportTranscript(c *fiber.Ctx) error {
	t := h.transcript()
	c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
	return c.SendString(misc.RenderMarkdown(t.Source, t.Segments))
}
