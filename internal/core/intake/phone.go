package intake

import "strings"

// maxPhoneDigits is the longest accepted WhatsApp number: two area digits
// plus a nine-digit mobile number. Extra input is dropped.
const maxPhoneDigits = 11

// Digits strips every non-digit rune from s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone coerces raw input into the canonical Brazilian display mask.
// The mask grows progressively as digits are typed:
//
//	0-2 digits  -> DD
//	3-6 digits  -> (DD) DDDD
//	7-10 digits -> (DD) DDDD-DDDD
//	11 digits   -> (DD) DDDDD-DDDD
//
// An 11-digit number is always grouped mobile-style (five digits before the
// dash); inputs longer than 11 digits are truncated. The function is pure and
// idempotent over its own output.
func FormatPhone(raw string) string {
	digits := Digits(raw)
	if len(digits) > maxPhoneDigits {
		digits = digits[:maxPhoneDigits]
	}

	switch n := len(digits); {
	case n == 0:
		return ""
	case n <= 2:
		return digits
	case n <= 6:
		return "(" + digits[:2] + ") " + digits[2:]
	case n <= 10:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:]
	default:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	}
}
