package sanitizer

import "strings"

// LeadingDigits returns the first run of consecutive ASCII digits found in s,
// scanning left to right. Returns an empty string when s has no digits.
//
//	LeadingDigits("111aaa2b3c4d") // "111"
//	LeadingDigits("ab12cd34")     // "12"
func LeadingDigits(s string) string {
	return digitRunRegex.FindString(s)
}

// LeadingNonDigits returns the first run of consecutive characters that are not
// ASCII digits. Non-ASCII runes count as non-digits.
//
//	LeadingNonDigits("111aaa2b3c4d") // "aaa"
func LeadingNonDigits(s string) string {
	return nonDigitRunRegex.FindString(s)
}

// ContainsDigit reports whether s contains at least one ASCII digit.
func ContainsDigit(s string) bool {
	return strings.ContainsFunc(s, isASCIIDigit)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
