package transcript

import "testing"

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My File.wav", "my-file"},
		{"a.b.c.txt", "a"},
		{"Interview One.mp3", "interview-one"},
		{"NoExtension", "noextension"},
		{"two  spaces", "two--spaces"},
		{"already-normal", "already-normal"},
		{".hidden", ""},
	}
	for _, tc := range cases {
		if got := NormalizeKey(tc.in); got != tc.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeKeyIdempotent(t *testing.T) {
	for _, in := range []string{"My File.wav", "a.b.c.txt", "Lecture 3 Part B.ogg", "x"} {
		once := NormalizeKey(in)
		if twice := NormalizeKey(once); twice != once {
			t.Fatalf("NormalizeKey not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestDraftKeyAppendsSourceSuffix(t *testing.T) {
	if got := DraftKey("Interview One.mp3"); got != "interview-one--src" {
		t.Fatalf("unexpected draft key %q", got)
	}
}
