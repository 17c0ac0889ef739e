package superutils

import (
	"github.com/dmitrymomot/superutils/pkg/idcard"
	"github.com/dmitrymomot/superutils/pkg/sanitizer"
	"github.com/dmitrymomot/superutils/pkg/validator"
)

// ExtractLeadingDigitRun returns the first run of consecutive ASCII digits in s,
// or "" if s has none.
func ExtractLeadingDigitRun(s string) string {
	return sanitizer.LeadingDigits(s)
}

// ExtractLeadingNonDigitRun returns the first run of consecutive non-digit
// characters in s, or "" if s has none.
func ExtractLeadingNonDigitRun(s string) string {
	return sanitizer.LeadingNonDigits(s)
}

// ContainsDigit reports whether s contains an ASCII digit.
func ContainsDigit(s string) bool {
	return sanitizer.ContainsDigit(s)
}

// MaskPhoneNumber keeps the first 3 and last 4 characters and replaces
// everything between them with "****". Input shorter than 7 word characters is
// returned unchanged.
func MaskPhoneNumber(s string) string {
	return sanitizer.MaskPhoneNumber(s)
}

// MaskUsername replaces every character except the last with '*'.
// Empty and single-character names become "*".
func MaskUsername(s string) string {
	return sanitizer.MaskUsername(s)
}

// IsValidEmail reports whether s is an email address with an ASCII local part
// and either a dotted domain or a bracketed IPv4 address.
func IsValidEmail(s string) bool {
	return validator.IsValidEmail(s)
}

// IsValidChinaMobilePhone reports whether s is an 11-digit mainland China
// mobile number.
func IsValidChinaMobilePhone(s string) bool {
	return validator.IsValidChinaMobilePhone(s)
}

// IsValidPassword reports whether s is 6 to 16 ASCII letters and digits.
func IsValidPassword(s string) bool {
	return validator.IsValidPassword(s)
}

// IsValidNationalID reports whether s is a valid 18-character or legacy
// 15-character resident identity number.
func IsValidNationalID(s string) bool {
	return idcard.IsValid(s)
}
