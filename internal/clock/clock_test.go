package clock

import "testing"

func TestNormalizeEquivalentShapes(t *testing.T) {
	cases := []string{
		"10:00",
		"10:00:00",
		"2024-01-01T10:00:00+00:00",
		"2024-01-01T10:00:00Z",
		"2024-01-01 10:00:00",
		"10:00:00-06:00",
	}
	for _, in := range cases {
		if got := Normalize(in); got != "10:00" {
			t.Fatalf("Normalize(%q) = %q, expected 10:00", in, got)
		}
	}
}

func TestNormalizeUnrecognizedTruncates(t *testing.T) {
	if got := Normalize("mediodia"); got != "medio" {
		t.Fatalf("Normalize fallback = %q", got)
	}
	if got := Normalize("9:15"); got != "9:15" {
		t.Fatalf("Normalize short input = %q", got)
	}
	if got := Normalize(""); got != "" {
		t.Fatalf("Normalize empty = %q", got)
	}
}

func TestNormalizeForStorage(t *testing.T) {
	cases := map[string]string{
		"10:00":                     "10:00:00",
		"10:00:00":                  "10:00:00",
		"10:00:5":                   "10:00:05",
		"2024-01-01T10:00:30+00:00": "10:00:30",
		"16:45:00Z":                 "16:45:00",
	}
	for in, want := range cases {
		if got := NormalizeForStorage(in); got != want {
			t.Fatalf("NormalizeForStorage(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := map[string]string{
		"2024-03-15":                "2024-03-15",
		"2024-03-15T10:00:00+00:00": "2024-03-15",
		"2024-03-15 10:00:00":       "2024-03-15",
		"  2024-03-15  ":            "2024-03-15",
	}
	for in, want := range cases {
		if got := NormalizeDate(in); got != want {
			t.Fatalf("NormalizeDate(%q) = %q, expected %q", in, got, want)
		}
	}
}
