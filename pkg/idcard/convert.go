package idcard

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/superutils/pkg/sanitizer"
)

// Normalize prepares user input for validation: surrounding whitespace is
// trimmed, full-width characters are folded to ASCII and letters are upper-cased.
//
//	idcard.Normalize(" １１０１０５１９４９１２３１００２ｘ ") // "11010519491231002X"
func Normalize(number string) string {
	return normalize(number)
}

var normalize = sanitizer.Compose(strings.TrimSpace, sanitizer.FoldWidth, strings.ToUpper)

// Upgrade converts a valid 15-digit legacy number to the 18-character form
// with the default parser.
func Upgrade(number string) (string, error) {
	return defaultParser.Upgrade(number)
}

// Upgrade converts a valid 15-digit legacy number to the 18-character form by
// inserting the century "19" before the birth year and appending the check digit.
// Legacy numbers ending in 'X' have no 18-character equivalent and fail with
// ErrInvalidFormat.
func (p *Parser) Upgrade(number string) (string, error) {
	if len(number) != legacyLength {
		return "", ErrNotLegacy
	}
	if _, err := p.Parse(number); err != nil {
		return "", err
	}
	if !isDigit(number[legacyLength-1]) {
		return "", fmt.Errorf("%w: legacy sequence code", ErrInvalidFormat)
	}

	body := number[:6] + "19" + number[6:]
	check, err := CheckDigit(body)
	if err != nil {
		return "", err
	}
	return body + string(check), nil
}
