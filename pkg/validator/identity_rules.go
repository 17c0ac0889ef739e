package validator

import "github.com/dmitrymomot/superutils/pkg/idcard"

// IsValidNationalID reports whether s is a valid 15 or 18 character resident
// identity number. See package idcard for the individual checks.
func IsValidNationalID(s string) bool {
	return idcard.IsValid(s)
}

// ValidNationalID validates a resident identity number.
func ValidNationalID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return idcard.IsValid(value)
		},
		Error: newError(field, "must be a valid national ID number", "validation.national_id"),
	}
}
