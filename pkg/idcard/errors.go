package idcard

import "errors"

var (
	// ErrInvalidLength is returned when the number is neither 15 nor 18 characters long.
	ErrInvalidLength = errors.New("idcard: invalid length")

	// ErrInvalidFormat is returned when a position that must hold a digit does not.
	ErrInvalidFormat = errors.New("idcard: invalid format")

	// ErrUnknownRegion is returned when the first two digits are not a known region code.
	ErrUnknownRegion = errors.New("idcard: unknown region code")

	// ErrInvalidYear is returned when the birth year is before 1900 or after the current year.
	ErrInvalidYear = errors.New("idcard: birth year out of range")

	// ErrInvalidMonth is returned when the birth month is outside 1-12.
	ErrInvalidMonth = errors.New("idcard: birth month out of range")

	// ErrInvalidDay is returned when the birth day is outside 1-31.
	ErrInvalidDay = errors.New("idcard: birth day out of range")

	// ErrInvalidDate is returned when the birth date does not exist in the calendar (e.g. Feb 30).
	ErrInvalidDate = errors.New("idcard: invalid birth date")

	// ErrChecksumMismatch is returned when the 18th character does not match the computed check digit.
	ErrChecksumMismatch = errors.New("idcard: checksum mismatch")

	// ErrNotLegacy is returned by Upgrade for input that is not a 15-digit number.
	ErrNotLegacy = errors.New("idcard: not a 15-digit legacy number")
)
