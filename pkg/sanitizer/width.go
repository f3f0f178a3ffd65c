package sanitizer

import "golang.org/x/text/width"

// FoldWidth maps full-width and half-width forms to their canonical width,
// so "１２３-４５" becomes "123-45" before delimiter stripping.
func FoldWidth(s string) string {
	if s == "" {
		return s
	}
	return width.Fold.String(s)
}
