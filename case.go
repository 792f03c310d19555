package gilded

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// snakePattern matches a run of non-uppercase characters followed by an
// uppercase letter that is itself followed by at least one more character.
var snakePattern = regexp.MustCompile(`([^A-Z]+?)([A-Z])(.)`)

// ToCamel converts a snake_case identifier to camelCase.
//
// A string without underscores is returned unchanged. Otherwise the first
// segment is kept as-is and every subsequent segment is capitalized (first
// rune upper-cased, the rest lower-cased) and concatenated without a
// separator. Empty segments from consecutive, leading, or trailing
// underscores contribute nothing to the output.
func ToCamel(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}

	parts := strings.Split(s, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		b.WriteString(capitalize(part))
	}
	return b.String()
}

// ToSnake converts a camelCase identifier to snake_case.
//
// An underscore is inserted before every uppercase letter that is preceded
// by a non-uppercase run and followed by another character, then the whole
// result is lower-cased. This is a heuristic, not a perfect inverse of
// ToCamel: round-tripping is guaranteed only for identifiers made of
// underscore-separated lowercase ASCII words. Acronyms and adjacent
// single-letter humps collapse (e.g. "APIKey" becomes "apikey").
func ToSnake(s string) string {
	return strings.ToLower(snakePattern.ReplaceAllString(s, "${1}_${2}${3}"))
}

// capitalize upper-cases the first rune and lower-cases the remainder.
// An empty string capitalizes to an empty string.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
