package utils

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// ContainsMarkup reports whether the strict policy would change input, i.e.
// input holds something an HTML parser reads as a tag or comment. Plain
// text with a lone "<" or "&" passes.
func ContainsMarkup(input string) bool {
	if input == "" {
		return false
	}
	return html.UnescapeString(strictPolicy.Sanitize(input)) != html.UnescapeString(input)
}
