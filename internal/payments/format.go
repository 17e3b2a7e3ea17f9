package payments

import "strings"

const maxCardDigits = 16

// FormatCardNumber strips non-digits, caps the input at 16 digits and
// groups them in blocks of four joined by single spaces. Applying it to
// its own output changes nothing.
func FormatCardNumber(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) > maxCardDigits {
		digits = digits[:maxCardDigits]
	}
	if digits == "" {
		return ""
	}
	var b strings.Builder
	for i := 0; i < len(digits); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		b.WriteString(digits[i:end])
	}
	return b.String()
}

// FormatExpiry strips non-digits and inserts a slash after the second
// digit once at least two digits are present, yielding MM/YY.
func FormatExpiry(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) < 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
