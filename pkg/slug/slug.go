// Package slug turns post titles into URL path segments.
package slug

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	turkishFold = strings.NewReplacer(
		"ü", "u",
		"ö", "o",
		"ı", "i",
		"ş", "s",
		"ç", "c",
		"ğ", "g",
	)

	multipleSeparators = regexp.MustCompile(`([-_]){2,}`)
	invalidChars       = regexp.MustCompile(`[^a-z0-9\s\-_]`)
)

// Make converts a title into a lowercase ASCII slug.
// Turkish letters are folded, spaces become hyphens, repeated
// separators collapse and anything else outside [a-z0-9-_] is dropped.
func Make(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}

	value = cases.Lower(language.Turkish).String(value)
	value = turkishFold.Replace(value)
	value = strings.ReplaceAll(value, " ", "-")
	value = multipleSeparators.ReplaceAllString(value, "$1")
	value = invalidChars.ReplaceAllString(value, "")

	return strings.Trim(value, "-_")
}
