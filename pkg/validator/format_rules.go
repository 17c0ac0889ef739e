package validator

import (
	"regexp"

	"github.com/dmitrymomot/superutils/pkg/sanitizer"
)

var (
	// Local part, then either dotted labels or a bracketed IPv4 prefix, then a
	// 2-4 letter or 1-3 digit final label with an optional closing bracket.
	emailRegex = regexp.MustCompile(`^([a-zA-Z0-9_\-\.]+)@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.)|(([a-zA-Z0-9\-]+\.)+))([a-zA-Z]{2,4}|[0-9]{1,3})(\]?)$`)

	// Mainland China mobile prefixes followed by 8 digits, 11 digits total.
	chinaMobileRegex = regexp.MustCompile(`^(13[0-9]|14[01456879]|15[0-35-9]|16[2567]|17[0-8]|18[0-9]|19[0-35-9])\d{8}$`)

	passwordRegex = regexp.MustCompile(`^[A-Za-z0-9]{6,16}$`)
)

// IsValidEmail reports whether s is an email address made of ASCII letters,
// digits, '_', '-' and '.'.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidChinaMobilePhone reports whether s is an 11-digit mainland China
// mobile number with an allocated carrier prefix. No country code or separators.
func IsValidChinaMobilePhone(s string) bool {
	return chinaMobileRegex.MatchString(s)
}

// IsValidPassword reports whether s is 6-16 ASCII letters and digits.
func IsValidPassword(s string) bool {
	return passwordRegex.MatchString(s)
}

// ValidEmail validates an email address with IsValidEmail.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidEmail(value)
		},
		Error: newError(field, "must be a valid email address", "validation.email"),
	}
}

// ValidChinaMobilePhone validates a mainland China mobile number.
func ValidChinaMobilePhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidChinaMobilePhone(value)
		},
		Error: newError(field, "must be a valid mobile phone number", "validation.china_mobile"),
	}
}

func ValidPassword(field, value string) Rule {
	rule := Rule{
		Check: func() bool {
			return IsValidPassword(value)
		},
		Error: newError(field, "password must be 6-16 characters and contain only letters and numbers", "validation.password"),
	}
	rule.Error.TranslationValues["min_length"] = 6
	rule.Error.TranslationValues["max_length"] = 16
	return rule
}

// ContainsDigit validates that value has at least one ASCII digit.
func ContainsDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return sanitizer.ContainsDigit(value)
		},
		Error: newError(field, "must contain at least one digit", "validation.contains_digit"),
	}
}
