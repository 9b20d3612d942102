package misc

import (
	"fmt"
	"strings"

	"github.com/1rvyn/log-a-line/models"
)

// RenderMarkdown exports parsed segments as a markdown document. Rich
// segments get their phonetic line, translation, image and type; bare
// segments are plain paragraphs.
func RenderMarkdown(source string, segments []models.TranscriptSegment) string {
	var b strings.Builder
	if source != "" {
		fmt.Fprintf(&b, "# Transcription for %s\n\n", source)
	} else {
		b.WriteString("# Transcription for Untitled\n\n")
	}
	fmt.Fprintf(&b, "- Segments: %d\n", len(segments))
	b.WriteString("\n---\n\n")

	for i, seg := range segments {
		if !seg.IsRich() {
			fmt.Fprintf(&b, "%d. %s\n\n", i+1, seg.Text)
			continue
		}
		fmt.Fprintf(&b, "%d. **%s**", i+1, seg.Text)
		if seg.SegmentType != "" {
			fmt.Fprintf(&b, " _(%s)_", seg.SegmentType)
		}
		b.WriteString("\n")
		if seg.IPA != "" {
			fmt.Fprintf(&b, "   - IPA: %s\n", seg.IPA)
		}
		if seg.Translation != "" {
			fmt.Fprintf(&b, "   - Translation: %s\n", seg.Translation)
		}
		if seg.ImageURL != "" {
			fmt.Fprintf(&b, "   - ![%s](%s)", seg.AltText, seg.ImageURL)
			if seg.ImageCredit != "" {
				fmt.Fprintf(&b, " Credit: %s", seg.ImageCredit)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
