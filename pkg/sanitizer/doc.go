// Package sanitizer provides small, pure helpers for pulling digits out of free
// text and masking personally identifiable information before it is logged or
// rendered.
//
// The functions are grouped conceptually into a few areas:
//
//   - Extraction: LeadingDigits, LeadingNonDigits and ContainsDigit scan a
//     string for the first run of ASCII digits (or non-digits).
//
//   - Masking: MaskPhoneNumber, MaskUsername, MaskNationalID and MaskEmail
//     hide the sensitive middle of a value while keeping enough of it for a
//     user to recognise.
//
//   - Normalisation: FoldWidth converts full-width CJK input ("１３６")
//     into plain ASCII ("136").
//
// Apply and Compose chain any of the helpers into a pipeline:
//
//	clean := sanitizer.Compose(
//	    sanitizer.FoldWidth,
//	    sanitizer.MaskPhoneNumber,
//	)
//
//	safe := clean("１３６９３５３８４５４") // "136****8454"
//
// # Usage
//
//	import "github.com/dmitrymomot/superutils/pkg/sanitizer"
//
//	sanitizer.LeadingDigits("111aaa2b3c4d") // "111"
//	sanitizer.MaskUsername("许阳")           // "*阳"
//
// # Error handling
//
// None of the helpers returns an error: input that does not fit the expected
// shape is returned unchanged (or as a fully masked value for the masking
// helpers that must never leak data).
//
// # Performance
//
// Regular expressions are compiled once at package initialisation. There is no
// mutable global state, so the helpers are safe for concurrent use.
package sanitizer
