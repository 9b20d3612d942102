package transcript

import "strings"

// SegmentDelimiter separates segments in canonical text.
const SegmentDelimiter = "\n\n"

// Format drops blank lines and joins the rest with a single blank line, the
// canonical form Parse expects. Lines are kept as written. Running it again
// is a no-op.
func Format(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, SegmentDelimiter)
}
