package models

// SegmentKind tells a bare segment from an annotated one.
type SegmentKind string

const (
	SegmentBare SegmentKind = "bare"
	SegmentRich SegmentKind = "rich"
)

// Annotation holds the fields of a rich segment. They are always set together.
type Annotation struct {
	IPA         string `json:"ipa"`
	Translation string `json:"translation"`
	ImageURL    string `json:"imgUrl"`
	AltText     string `json:"altText"`
	ImageCredit string `json:"imgCredit"`
	SegmentType string `json:"type"`
}

// TranscriptSegment is one unit of transcript content. A nil Annotation
// means the segment is bare.
type TranscriptSegment struct {
	Text string `json:"text"`
	*Annotation
}

// Kind reports whether the segment is bare or rich.
func (s TranscriptSegment) Kind() SegmentKind {
	if s.Annotation == nil {
		return SegmentBare
	}
	return SegmentRich
}

// IsRich is shorthand for Kind() == SegmentRich.
func (s TranscriptSegment) IsRich() bool {
	return s.Annotation != nil
}
