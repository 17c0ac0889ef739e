package idcard

// Weighting factors W(i) = 2^(17-i) mod 11 for the 17 body digits.
var weights = [17]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}

// parity maps the weighted sum mod 11 to the check character.
var parity = [11]byte{'1', '0', 'X', '9', '8', '7', '6', '5', '4', '3', '2'}

// CheckDigit computes the 18th character for a 17-digit body.
// The result is one of '0'-'9' or 'X'.
func CheckDigit(body string) (byte, error) {
	if len(body) != 17 {
		return 0, ErrInvalidLength
	}

	sum := 0
	for i := range len(body) {
		c := body[i]
		if !isDigit(c) {
			return 0, ErrInvalidFormat
		}
		sum += int(c-'0') * weights[i]
	}

	return parity[sum%11], nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func toUpperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
