package phone

import "strings"

// CountryCode is the Nigerian international calling code.
const CountryCode = "234"

// Digits strips every non-digit character from raw.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate reports whether raw is a recognizable Nigerian phone number.
// Exactly three shapes are accepted: 13 digits starting with "234",
// 11 digits starting with "0", or a bare 10-digit subscriber number.
func Validate(raw string) bool {
	digits := Digits(raw)
	switch len(digits) {
	case 13:
		return strings.HasPrefix(digits, CountryCode)
	case 11:
		return strings.HasPrefix(digits, "0")
	case 10:
		return true
	default:
		return false
	}
}

// Format rewrites raw into a readable 3-3-4 grouping after the prefix.
// If the cleaned digits do not match any recognized shape, the original
// input is returned untouched. Digits are never dropped.
func Format(raw string) string {
	digits := Digits(raw)
	switch {
	case len(digits) == 13 && strings.HasPrefix(digits, CountryCode):
		return "+" + CountryCode + " " + group(digits[3:])
	case len(digits) == 11 && strings.HasPrefix(digits, "0"):
		return "0" + group(digits[1:])
	case len(digits) == 10:
		return group(digits)
	default:
		return raw
	}
}

// group formats a 10-digit subscriber number as "XXX XXX XXXX".
func group(sub string) string {
	return sub[:3] + " " + sub[3:6] + " " + sub[6:]
}
