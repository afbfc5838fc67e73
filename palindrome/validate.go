package palindrome

import (
	"strings"
	"unicode/utf8"

	"kaibun/kana"
	"kaibun/model"
)

// Validate reports whether window reads as a palindrome of at least minLength
// kana. Symbols and tokens without a reading are ignored for the reading but
// kept in the match text. Windows with a single reading unit, or made only of
// nouns, never match.
func Validate(window []model.Token, minLength int) (model.Match, bool) {
	var (
		units     int
		nounsOnly = true
		raw       strings.Builder
	)
	for _, t := range window {
		if t.POS == model.POSSymbol || !t.HasReading() {
			continue
		}
		units++
		if t.POS != model.POSNoun {
			nounsOnly = false
		}
		raw.WriteString(t.Reading)
	}
	if units <= 1 || nounsOnly {
		return model.Match{}, false
	}
	if utf8.RuneCountInString(raw.String()) < minLength {
		return model.Match{}, false
	}

	reading := kana.Normalize(raw.String())
	if !kana.IsPalindrome(reading) {
		return model.Match{}, false
	}
	return model.Match{Text: joinSurfaces(window), Reading: reading}, true
}

func joinSurfaces(window []model.Token) string {
	var b strings.Builder
	for _, t := range window {
		b.WriteString(t.Surface)
	}
	return b.String()
}
