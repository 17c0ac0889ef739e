package sanitizer

import "strings"

// MaskPhoneNumber hides the middle of a phone number, keeping the first three and
// the last four characters: "13693538454" becomes "136****8454".
// Every run of at least seven ASCII word characters is masked. Input without such
// a run is returned unchanged.
func MaskPhoneNumber(phone string) string {
	return phoneMaskRegex.ReplaceAllString(phone, "${1}****${2}")
}

// MaskUsername replaces every rune except the last with '*'.
// Empty and single-rune names collapse to a single "*".
func MaskUsername(name string) string {
	runes := []rune(name)
	if len(runes) <= 1 {
		return "*"
	}

	for i := range len(runes) - 1 {
		runes[i] = '*'
	}
	return string(runes)
}

// MaskNationalID keeps the first and last four runes of an identity number and
// masks the rest: "110105194912310029" becomes "1101**********0029".
// Values of eight runes or fewer are fully masked.
func MaskNationalID(id string) string {
	runes := []rune(strings.TrimSpace(id))
	if len(runes) <= 8 {
		return strings.Repeat("*", len(runes))
	}

	return string(runes[:4]) + strings.Repeat("*", len(runes)-8) + string(runes[len(runes)-4:])
}

// MaskEmail keeps the first rune of the local part and the whole domain.
// Values that are not a single local@domain pair are returned unchanged.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return email
	}

	runes := []rune(local)
	if len(runes) == 1 {
		return "*@" + domain
	}

	return string(runes[0]) + strings.Repeat("*", len(runes)-1) + "@" + domain
}
