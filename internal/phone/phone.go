// Package phone implements validation and normalization for Indian mobile
// numbers, the only region the support portal serves.
package phone

import "strings"

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Valid reports whether number is a plausible Indian mobile number:
// 10 digits, or 12 digits with the 91 country code.
func Valid(number string) bool {
	clean := digitsOnly(number)
	if strings.HasPrefix(clean, "91") && len(clean) == 12 {
		return true
	}
	return len(clean) == 10
}

// Normalize returns the number in canonical +91XXXXXXXXXX form.
// Invalid input is returned unchanged.
func Normalize(number string) string {
	clean := digitsOnly(number)
	if strings.HasPrefix(clean, "91") && len(clean) == 12 {
		return "+" + clean
	}
	if len(clean) == 10 {
		return "+91" + clean
	}
	return number
}

// Format returns a display form: "+91 XXXXX XXXXX".
// Invalid input is returned unchanged.
func Format(number string) string {
	clean := digitsOnly(number)
	if strings.HasPrefix(clean, "91") && len(clean) == 12 {
		return "+91 " + clean[2:7] + " " + clean[7:]
	}
	if len(clean) == 10 {
		return "+91 " + clean[:5] + " " + clean[5:]
	}
	return number
}
