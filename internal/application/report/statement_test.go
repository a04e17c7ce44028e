package report

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short stays whole", "50 bags local rice", 40, "50 bags local rice"},
		{"exact length stays whole", strings.Repeat("a", 40), 40, strings.Repeat("a", 40)},
		{"long ascii truncated", strings.Repeat("a", 50), 40, strings.Repeat("a", 37) + "..."},
		{"multi-byte counted as one", strings.Repeat("é", 50), 40, strings.Repeat("é", 37) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateDescription(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncateDescription(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncation produced invalid UTF-8: %q", got)
			}
		})
	}
}

func TestTruncateDescriptionNeverSplitsRunes(t *testing.T) {
	// Each naira sign is three bytes, so a byte-indexed cut at 37 lands
	// inside a character.
	in := strings.Repeat("₦", 39) + " paid"
	got := truncateDescription(in, 40)
	if !utf8.ValidString(got) {
		t.Fatalf("invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 40 {
		t.Errorf("truncated to %d characters, want 40", n)
	}
}
