package mood

import (
	"strings"
	"unicode"
)

const surroundingPunct = `.,;:"'!?`

// NormalizeWord reduces a raw oracle reply to a single display-ready emotion
// word: trim, take the first whitespace-delimited token, strip surrounding
// punctuation, lower-case, then capitalize the first rune.
//
// Edge cases: an empty or whitespace-only input yields ""; a multi-word reply
// keeps only the first word; a token that is pure punctuation yields "".
func NormalizeWord(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	word := strings.Trim(fields[0], surroundingPunct)
	return Capitalize(word)
}

// Capitalize lower-cases a word and upper-cases its first rune, matching the
// display form used for persisted emotions.
func Capitalize(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return ""
	}
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
