package domain

import (
	"regexp"
	"strings"
)

var (
	slugSeparatorRe = regexp.MustCompile(`[\s_/]+`)
	slugInvalidRe   = regexp.MustCompile(`[^a-z0-9-]`)
	slugDashesRe    = regexp.MustCompile(`-+`)
)

// NormalizeSlug converts user input into a canonical tag slug:
//   - trims whitespace and lowercases
//   - replaces spaces, underscores and slashes with dashes
//   - drops anything that is not [a-z0-9-]
//   - collapses repeated dashes and trims dashes at both ends
//
// "Cat Care" and "cat_care" both become "cat-care".
func NormalizeSlug(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = slugSeparatorRe.ReplaceAllString(s, "-")
	s = slugInvalidRe.ReplaceAllString(s, "")
	s = slugDashesRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// NormalizeText trims surrounding whitespace. Inner whitespace of titles and
// bodies is user content and is kept as typed.
func NormalizeText(text string) string {
	return strings.TrimSpace(text)
}
