package utils

import "strings"

// CountryCode is prefixed to local phone numbers before they reach the
// payment gateway or the user record.
const CountryCode = "+880"

// NormalizePhone converts a Bangladeshi phone number into +880 form.
// Accepts "01712345678", "1712345678", "8801712345678" and "+880..."
// inputs; spaces and dashes are stripped.
func NormalizePhone(phone string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
	if cleaned == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(cleaned, CountryCode):
		return cleaned
	case strings.HasPrefix(cleaned, "880"):
		return "+" + cleaned
	case strings.HasPrefix(cleaned, "0"):
		return CountryCode + cleaned[1:]
	default:
		return CountryCode + cleaned
	}
}
