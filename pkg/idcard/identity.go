package idcard

import "time"

// Gender is derived from the parity of the sequence code.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown" // legacy number whose sequence code is 'X'
)

// Identity holds the fields decoded from a valid identity number.
type Identity struct {
	Number     string    // normalised: upper-case 'X', computed check character
	Region     int       // two-digit province-level code
	RegionName string    // name of the region
	Birthdate  time.Time // UTC midnight
	Gender     Gender
	Legacy     bool // 15-digit number issued before 1999
}

// Age returns the number of full years between the birth date and at.
// Returns 0 if at is before the birth date.
func (id Identity) Age(at time.Time) int {
	if id.Birthdate.IsZero() || at.Before(id.Birthdate) {
		return 0
	}

	years := at.Year() - id.Birthdate.Year()
	if at.Month() < id.Birthdate.Month() ||
		(at.Month() == id.Birthdate.Month() && at.Day() < id.Birthdate.Day()) {
		years--
	}
	return years
}
