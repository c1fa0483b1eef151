package utils

import (
	"regexp"
	"strings"
)

// mobilePattern matches Iranian mobile numbers: 09 followed by nine digits.
var mobilePattern = regexp.MustCompile(`^09\d{9}$`)

// nationalCodePattern matches ten-digit national codes.
var nationalCodePattern = regexp.MustCompile(`^\d{10}$`)

// NormalizeMobile strips separators and a leading +98/98 country prefix,
// returning the canonical 09XXXXXXXXX form.
func NormalizeMobile(mobile string) string {
	stripped := strings.NewReplacer("-", "", " ", "", "+", "").Replace(strings.TrimSpace(mobile))

	if strings.HasPrefix(stripped, "98") && len(stripped) == 12 {
		stripped = "0" + stripped[2:]
	}
	return stripped
}

// ValidateMobile normalizes and validates an Iranian mobile number
func ValidateMobile(mobile string) (string, bool) {
	normalized := NormalizeMobile(mobile)
	return normalized, mobilePattern.MatchString(normalized)
}

// ValidateNationalCode reports whether a national code is well-formed
func ValidateNationalCode(code string) bool {
	return nationalCodePattern.MatchString(strings.TrimSpace(code))
}

// MaskMobile masks a mobile number for logging, keeping the last 4 digits
func MaskMobile(mobile string) string {
	if len(mobile) <= 4 {
		return mobile
	}
	return strings.Repeat("*", len(mobile)-4) + mobile[len(mobile)-4:]
}
