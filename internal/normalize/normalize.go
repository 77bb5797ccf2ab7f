// Package normalize folds Lithuanian diacritics and case for search
// comparison. It is used both by the offline index builder and at query
// time, so index and query text always meet on the same form.
package normalize

import (
	"strings"
	"unicode"
)

// diacriticFold maps the Lithuanian diacritical letters to their ASCII
// base. Exactly this set and no other characters are folded.
var diacriticFold = map[rune]rune{
	'ą': 'a',
	'č': 'c',
	'ė': 'e',
	'ę': 'e',
	'į': 'i',
	'š': 's',
	'ų': 'u',
	'ū': 'u',
	'ž': 'z',
}

// Fold lowercases the text and folds Lithuanian diacritics to their base
// letters. Whitespace and punctuation pass through untouched; field
// specific cleanup happens in the index builder. Fold is pure and
// idempotent.
func Fold(text string) string {
	if text == "" {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		r = unicode.ToLower(r)
		if base, ok := diacriticFold[r]; ok {
			r = base
		}
		b.WriteRune(r)
	}
	return b.String()
}
