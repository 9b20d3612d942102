package transcript

import (
	"errors"
	"fmt"
	"strings"

	"github.com/1rvyn/log-a-line/models"
)

const (
	// FieldDelimiter separates the fields of a rich segment.
	FieldDelimiter = "---"
	// ImageDelimiter separates url, alt text and credit in the image field.
	ImageDelimiter = "|"

	richFieldCount  = 5
	imageFieldCount = 3
)

// FormatError reports a rich segment whose image descriptor does not hold
// exactly three '|'-separated parts.
type FormatError struct {
	Index      int
	Descriptor string
	Parts      int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("segment %d: image descriptor %q has %d parts, want %d",
		e.Index, e.Descriptor, e.Parts, imageFieldCount)
}

// Parse splits canonical text on blank lines and parses every segment in
// order. No segment is dropped: one whose image descriptor is malformed is
// kept as bare text and reported through the returned error, which joins
// one *FormatError per offending segment.
func Parse(text string) ([]models.TranscriptSegment, error) {
	raw := strings.Split(text, SegmentDelimiter)
	segments := make([]models.TranscriptSegment, 0, len(raw))
	var errs []error
	for i, s := range raw {
		seg, err := ParseSegment(s)
		if err != nil {
			var ferr *FormatError
			if errors.As(err, &ferr) {
				ferr.Index = i
			}
			errs = append(errs, err)
		}
		segments = append(segments, seg)
	}
	return segments, errors.Join(errs...)
}

// ParseSegment parses a single segment. Anything other than exactly five
// "---" fields is a bare segment made of the first field only; the rest is
// discarded.
func ParseSegment(s string) (models.TranscriptSegment, error) {
	parts := strings.Split(s, FieldDelimiter)
	text := strings.TrimSpace(parts[0])
	if len(parts) != richFieldCount {
		return models.TranscriptSegment{Text: text}, nil
	}

	image := strings.Split(parts[3], ImageDelimiter)
	if len(image) != imageFieldCount {
		return models.TranscriptSegment{Text: text}, &FormatError{
			Descriptor: strings.TrimSpace(parts[3]),
			Parts:      len(image),
		}
	}

	return models.TranscriptSegment{
		Text: text,
		Annotation: &models.Annotation{
			IPA:         strings.TrimSpace(parts[1]),
			Translation: strings.TrimSpace(parts[2]),
			ImageURL:    strings.TrimSpace(image[0]),
			AltText:     strings.TrimSpace(image[1]),
			ImageCredit: strings.TrimSpace(image[2]),
			SegmentType: strings.TrimSpace(parts[4]),
		},
	}, nil
}
