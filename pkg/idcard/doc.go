// Package idcard validates and decodes resident identity numbers issued under
// GB 11643: the 18-character form with a trailing check character and the
// 15-digit legacy form.
//
// Validation runs a fixed sequence of checks and stops at the first failure:
//
//  1. length is 15 or 18
//  2. the first two digits are a known province-level region code
//  3. the birth year lies in [1900, current year]
//  4. the birth month lies in [1, 12]
//  5. the birth day lies in [1, 31]
//  6. year, month and day form a real calendar date
//  7. 18-character numbers only: the first 17 characters are digits and the
//     last one equals the ISO 7064 MOD 11-2 check character ('0'-'9' or 'X',
//     case-insensitive)
//
// Legacy numbers have no check character. The first 14 positions must be
// digits and the last may also be 'X' (case-insensitive); such numbers report
// GenderUnknown and cannot be upgraded.
//
// # Usage
//
//	if !idcard.IsValid(input) {
//	    // reject
//	}
//
//	id, err := idcard.Parse("11010519491231002X")
//	if errors.Is(err, idcard.ErrChecksumMismatch) {
//	    // typo in the number
//	}
//	fmt.Println(id.RegionName, id.Birthdate.Format(time.DateOnly), id.Gender)
//
// The upper bound of the birth year depends on the wall clock. Tests and
// batch jobs that need reproducible results should build their own Parser:
//
//	p := idcard.New(idcard.WithNow(func() time.Time { return fixed }))
//
// # Error Handling
//
// Parse and Validate return one of the package sentinel errors (possibly
// wrapped), so callers can use errors.Is. IsValid never returns an error and
// never panics on malformed input.
package idcard
