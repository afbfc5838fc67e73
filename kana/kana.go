// Package kana holds script predicates and reading conversions for Japanese kana.
package kana

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	katakanaFirst = 'ァ' // U+30A1
	katakanaLast  = 'ヺ' // U+30FA
	prolonged     = 'ー' // U+30FC
	hiraganaFirst = 'ぁ' // U+3041
	hiraganaLast  = 'ゖ' // U+3096

	halfwidthFirst = '･' // U+FF65
	halfwidthLast  = 'ﾟ' // U+FF9F

	// distance between a hiragana code point and its katakana counterpart
	hiraganaOffset = 0x60
)

// IsKatakanaRune reports whether r is in ァ-ヺ or is the prolonged sound mark.
func IsKatakanaRune(r rune) bool {
	return (r >= katakanaFirst && r <= katakanaLast) || r == prolonged
}

// IsHiraganaRune reports whether r is in ぁ-ゖ.
func IsHiraganaRune(r rune) bool {
	return r >= hiraganaFirst && r <= hiraganaLast
}

// IsKatakana reports whether s is non-empty and made only of katakana.
func IsKatakana(s string) bool {
	return all(s, IsKatakanaRune)
}

// IsHiragana reports whether s is non-empty and made only of hiragana.
func IsHiragana(s string) bool {
	return all(s, IsHiraganaRune)
}

// IsHalfwidthKatakana reports whether s is non-empty and made only of half-width katakana.
func IsHalfwidthKatakana(s string) bool {
	return all(s, func(r rune) bool {
		return r >= halfwidthFirst && r <= halfwidthLast
	})
}

func all(s string, pred func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

// HiraganaToKatakana shifts every hiragana rune into the katakana block.
func HiraganaToKatakana(s string) string {
	rs := []rune(s)
	for i, r := range rs {
		if IsHiraganaRune(r) {
			rs[i] = r + hiraganaOffset
		}
	}
	return string(rs)
}

// Widen folds half-width katakana into full-width katakana, composing
// separate voicing marks (ｶﾞ -> ガ).
func Widen(s string) string {
	return norm.NFKC.String(s)
}

// Reverse reverses s rune by rune.
func Reverse(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}

// IsPalindrome reports whether s reads the same rune-reversed.
func IsPalindrome(s string) bool {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		if rs[i] != rs[j] {
			return false
		}
	}
	return true
}

// baseForms collapses small, voiced, semi-voiced and historical katakana to
// the plain sound they are written with.
var baseForms = map[rune]rune{
	'ァ': 'ア', 'ィ': 'イ', 'ゥ': 'ウ', 'ェ': 'エ', 'ォ': 'オ',
	'ッ': 'ツ',
	'ャ': 'ヤ', 'ュ': 'ユ', 'ョ': 'ヨ',
	'ヮ': 'ワ', 'ヵ': 'カ', 'ヶ': 'ケ',

	'ガ': 'カ', 'ギ': 'キ', 'グ': 'ク', 'ゲ': 'ケ', 'ゴ': 'コ',
	'ザ': 'サ', 'ジ': 'シ', 'ズ': 'ス', 'ゼ': 'セ', 'ゾ': 'ソ',
	'ダ': 'タ', 'ヂ': 'チ', 'ヅ': 'ツ', 'デ': 'テ', 'ド': 'ト',
	'バ': 'ハ', 'ビ': 'ヒ', 'ブ': 'フ', 'ベ': 'ヘ', 'ボ': 'ホ',
	'パ': 'ハ', 'ピ': 'ヒ', 'プ': 'フ', 'ペ': 'ヘ', 'ポ': 'ホ',

	'ヷ': 'ワ', 'ヸ': 'ヰ', 'ヴ': 'ウ', 'ヹ': 'ヱ', 'ヺ': 'ヲ',
}

var normalizer = runes.Map(func(r rune) rune {
	if b, ok := baseForms[r]; ok {
		return b
	}
	return r
})

// Normalize maps a katakana reading onto its base sounds so that readings
// differing only in contraction or voicing compare equal. Runes outside the
// table pass through. Normalize is idempotent.
func Normalize(reading string) string {
	out, _, err := transform.String(normalizer, reading)
	if err != nil {
		return reading
	}
	return out
}
