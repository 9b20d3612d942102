package transcript

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/1rvyn/log-a-line/models"
)

func TestParseRichSegment(t *testing.T) {
	segs, err := Parse("Hello---/hə.loʊ/---Hola---img.png|greeting|CC0---greeting")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	got := segs[0]
	if !got.IsRich() || got.Kind() != models.SegmentRich {
		t.Fatalf("expected rich segment, got %+v", got)
	}
	want := models.Annotation{
		IPA:         "/hə.loʊ/",
		Translation: "Hola",
		ImageURL:    "img.png",
		AltText:     "greeting",
		ImageCredit: "CC0",
		SegmentType: "greeting",
	}
	if got.Text != "Hello" || *got.Annotation != want {
		t.Fatalf("unexpected segment: %q %+v", got.Text, *got.Annotation)
	}
}

func TestParseTrimsFields(t *testing.T) {
	segs, err := Parse("  Hi --- /haɪ/ --- Hola --- a.png | hi | me --- greet ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	s := segs[0]
	if s.Text != "Hi" || s.IPA != "/haɪ/" || s.ImageURL != "a.png" || s.AltText != "hi" || s.ImageCredit != "me" || s.SegmentType != "greet" {
		t.Fatalf("fields not trimmed: %+v %+v", s, *s.Annotation)
	}
}

func TestParseNonFivePartSegmentKeepsFirstField(t *testing.T) {
	cases := []string{
		"Hello---world",
		"Hello---a---b",
		"Hello---a---b---c---d---e",
	}
	for _, in := range cases {
		segs, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", in, err)
		}
		if len(segs) != 1 || segs[0].Text != "Hello" || segs[0].IsRich() {
			t.Fatalf("Parse(%q) = %+v, want bare Hello", in, segs)
		}
	}
}

func TestParseSegmentsInOrder(t *testing.T) {
	segs, err := Parse("A\n\nB---x---y---z|a|b---t")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].Text != "A" || segs[0].IsRich() {
		t.Fatalf("unexpected first segment %+v", segs[0])
	}
	if segs[1].Text != "B" || !segs[1].IsRich() || segs[1].SegmentType != "t" {
		t.Fatalf("unexpected second segment %+v", segs[1])
	}
}

func TestParseKeepsWhitespaceSegments(t *testing.T) {
	segs, err := Parse("A\n\n   \n\nB")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(segs) != 3 || segs[1].Text != "" {
		t.Fatalf("expected empty middle segment, got %+v", segs)
	}
}

func TestParseMalformedImageDescriptor(t *testing.T) {
	in := "ok\n\nHi---/haɪ/---Hola---a.png|hi---greet\n\nBye---x---y---a|b|c|d---t"
	segs, err := Parse(in)
	if len(segs) != 3 {
		t.Fatalf("no segment may be dropped, got %d", len(segs))
	}
	if err == nil {
		t.Fatalf("expected format error")
	}
	if segs[1].Text != "Hi" || segs[1].IsRich() {
		t.Fatalf("malformed segment should degrade to bare text, got %+v", segs[1])
	}
	if segs[2].Text != "Bye" || segs[2].IsRich() {
		t.Fatalf("malformed segment should degrade to bare text, got %+v", segs[2])
	}

	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected *FormatError, got %T", err)
	}
	if ferr.Index != 1 || ferr.Parts != 2 || ferr.Descriptor != "a.png|hi" {
		t.Fatalf("unexpected format error %+v", ferr)
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok || len(joined.Unwrap()) != 2 {
		t.Fatalf("expected two joined errors, got %v", err)
	}
}

func TestSegmentJSONUsesFlatFields(t *testing.T) {
	segs, _ := Parse("Hi---/haɪ/---Hola---a.png|hi|me---greet\n\nplain")
	raw, err := json.Marshal(segs)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `[{"text":"Hi","ipa":"/haɪ/","translation":"Hola","imgUrl":"a.png","altText":"hi","imgCredit":"me","type":"greet"},{"text":"plain"}]`
	if string(raw) != want {
		t.Fatalf("unexpected json:\n got %s\nwant %s", raw, want)
	}
}
