// Package matching centralizes the normalization and scoring primitives used
// when reconciling external identifiers against CRM contacts.
package matching

import (
	"regexp"
	"strings"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// NormalizeEmail normalizes an email address by lowercasing and trimming whitespace.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeHandle normalizes a chat handle by removing a single @ prefix and lowercasing.
func NormalizeHandle(handle string) string {
	handle = strings.TrimSpace(handle)
	handle = strings.TrimPrefix(handle, "@")
	return strings.ToLower(handle)
}

// NormalizePhoneLoose strips formatting but preserves a leading + when present.
// It performs no country-code inference, so short or legacy stored numbers keep
// comparing the way they always have during ranking.
func NormalizePhoneLoose(phone string) string {
	if phone == "" {
		return ""
	}

	var normalized strings.Builder
	hasLeadingPlus := strings.HasPrefix(phone, "+")

	for i, r := range phone {
		if r == '+' && i == 0 && hasLeadingPlus {
			normalized.WriteRune(r)
		} else if r >= '0' && r <= '9' {
			normalized.WriteRune(r)
		}
	}

	return normalized.String()
}

// NormalizePhoneE164 normalizes a phone number to E.164 format.
// Bare 10-digit numbers are assumed to be US numbers and get a +1 prefix;
// 11-digit numbers starting with 1 already carry the US country code.
// Everything else keeps its digits behind a bare +. The heuristic does not
// validate real dialing-plan rules.
func NormalizePhoneE164(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	hasPlus := strings.HasPrefix(phone, "+")
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if digits == "" {
		return ""
	}

	if len(digits) == 10 && !hasPlus {
		return "+1" + digits
	}

	if len(digits) == 11 && digits[0] == '1' {
		return "+" + digits
	}

	return "+" + digits
}
