package palindrome

import (
	"kaibun/kana"
	"kaibun/model"
)

// InferReadings returns a copy of tokens in which content tokens without a
// reading get one when their surface is pure kana: katakana is taken as is,
// hiragana is shifted into katakana and half-width katakana is widened.
// Other tokens keep an unknown reading. The input slice is not modified.
func InferReadings(tokens []model.Token) []model.Token {
	out := make([]model.Token, len(tokens))
	copy(out, tokens)
	for i := range out {
		if out[i].Boundary || out[i].HasReading() {
			continue
		}
		out[i].Reading = inferReading(out[i].Surface)
	}
	return out
}

func inferReading(surface string) string {
	switch {
	case kana.IsKatakana(surface):
		return surface
	case kana.IsHiragana(surface):
		return kana.HiraganaToKatakana(surface)
	case kana.IsHalfwidthKatakana(surface):
		if wide := kana.Widen(surface); kana.IsKatakana(wide) {
			return wide
		}
	}
	return ""
}
