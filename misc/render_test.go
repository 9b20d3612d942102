package misc

import (
	"strings"
	"testing"

	"github.com/1rvyn/log-a-line/models"
)

func TestRenderMarkdownRichAndBare(t *testing.T) {
	segments := []models.TranscriptSegment{
		{
			Text: "Hello",
			Annotation: &models.Annotation{
				IPA:         "/hə.loʊ/",
				Translation: "Hola",
				ImageURL:    "img.png",
				AltText:     "greeting",
				ImageCredit: "CC0",
				SegmentType: "greeting",
			},
		},
		{Text: "Plain line"},
	}

	out := RenderMarkdown("Interview One.mp3", segments)

	for _, want := range []string{
		"# Transcription for Interview One.mp3\n",
		"- Segments: 2\n",
		"1. **Hello** _(greeting)_\n",
		"   - IPA: /hə.loʊ/\n",
		"   - Translation: Hola\n",
		"   - ![greeting](img.png) Credit: CC0\n",
		"2. Plain line\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMarkdownUntitled(t *testing.T) {
	out := RenderMarkdown("", nil)
	if !strings.HasPrefix(out, "# Transcription for Untitled\n") {
		t.Fatalf("unexpected header:\n%s", out)
	}
	if !strings.Contains(out, "- Segments: 0\n") {
		t.Fatalf("missing segment count:\n%s", out)
	}
}

func TestRenderMarkdownOmitsEmptyRichFields(t *testing.T) {
	segments := []models.TranscriptSegment{
		{Text: "Hi", Annotation: &models.Annotation{}},
	}
	out := RenderMarkdown("a", segments)
	if strings.Contains(out, "IPA:") || strings.Contains(out, "![") || strings.Contains(out, "_(") {
		t.Fatalf("empty fields should be omitted:\n%s", out)
	}
	if !strings.Contains(out, "1. **Hi**\n") {
		t.Fatalf("missing rich header:\n%s", out)
	}
}
