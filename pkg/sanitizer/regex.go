package sanitizer

import "regexp"

// Pre-compiled regular expressions shared by the helpers.
var (
	// Digit run extraction
	digitRunRegex    = regexp.MustCompile(`\d+`)
	nonDigitRunRegex = regexp.MustCompile(`\D+`)

	// Phone masking: three word chars, anything, four word chars
	phoneMaskRegex = regexp.MustCompile(`(\w{3})\w*(\w{4})`)
)
