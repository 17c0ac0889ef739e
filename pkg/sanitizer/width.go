package sanitizer

import "golang.org/x/text/width"

// FoldWidth converts full-width and ideographic-space forms to their narrow
// equivalents, so "１３６９３５３８４５４" becomes "13693538454".
// Input typed with CJK input methods frequently carries full-width digits.
func FoldWidth(s string) string {
	return width.Narrow.String(s)
}
