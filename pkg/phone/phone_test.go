package phone_test

import (
	"strings"
	"testing"

	"github.com/milldesk/milldesk-api/pkg/phone"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"international 13 digits", "2348031234567", true},
		{"international with plus and spaces", "+234 803 123 4567", true},
		{"local 11 digits leading zero", "08031234567", true},
		{"local with dashes", "0803-123-4567", true},
		{"bare 10 digits", "8031234567", true},
		{"13 digits wrong prefix", "1238031234567", false},
		{"11 digits no leading zero", "88031234567", false},
		{"too short", "803123", false},
		{"too long", "080312345678", false},
		{"empty", "", false},
		{"letters only", "call me", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := phone.Validate(tt.raw); got != tt.valid {
				t.Errorf("Validate(%q) = %v, want %v", tt.raw, got, tt.valid)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"international", "2348031234567", "+234 803 123 4567"},
		{"international messy", "+234 (803) 123-4567", "+234 803 123 4567"},
		{"local", "08031234567", "0803 123 4567"},
		{"bare subscriber", "8031234567", "803 123 4567"},
		{"unrecognized returned verbatim", "12345", "12345"},
		{"unrecognized text returned verbatim", "no phone yet", "no phone yet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := phone.Format(tt.raw); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// Formatting must never drop digits: the digit sequence of the output is
// always identical to the digit sequence of the input.
func TestFormatPreservesDigits(t *testing.T) {
	inputs := []string{
		"2348031234567",
		"08031234567",
		"8031234567",
		"+234-803-123-4567",
		"0803 123",
		"garbage 99",
		"",
	}
	for _, raw := range inputs {
		got := phone.Format(raw)
		if phone.Digits(got) != phone.Digits(raw) {
			t.Errorf("Format(%q) = %q changed digit sequence %q -> %q",
				raw, got, phone.Digits(raw), phone.Digits(got))
		}
		if strings.ContainsAny(got, "\n\t") {
			t.Errorf("Format(%q) produced control characters", raw)
		}
	}
}
