package model

import "strings"

// Primary parts of speech, in the IPA dictionary vocabulary.
const (
	POSNoun           = "名詞"
	POSVerb           = "動詞"
	POSAdjective      = "形容詞"
	POSAdjectivalNoun = "形容動詞"
	POSParticle       = "助詞"
	POSAuxiliaryVerb  = "助動詞"
	POSSymbol         = "記号"
)

// POS subcategories the scanner cares about.
const (
	DetailBracketOpen  = "括弧開"
	DetailBracketClose = "括弧閉"
	DetailWhitespace   = "空白"
	DetailPeriod       = "句点"
	DetailComma        = "読点"
	DetailSuffix       = "接尾"
)

// Conjugation forms.
const (
	FormBasic      = "基本形"
	FormImperative = "命令" // prefix of every imperative form (命令ｅ, 命令ｒｏ, ...)
)

// Token represents a morpheme produced by the analyzer.
// A Token is either a boundary sentinel or a content token with Surface and POS set.
type Token struct {
	Surface         string `json:"surface"`
	POS             string `json:"pos,omitempty"`
	POSDetail       string `json:"pos_detail,omitempty"`
	ConjugationForm string `json:"conjugation_form,omitempty"`
	Reading         string `json:"reading,omitempty"`
	Boundary        bool   `json:"boundary,omitempty"`

	BaseForm      string `json:"base_form,omitempty"`
	Pronunciation string `json:"pronunciation,omitempty"`
	Start         int    `json:"start"`
	End           int    `json:"end"`
}

// EOS returns a boundary sentinel.
func EOS() Token {
	return Token{Boundary: true}
}

// HasReading reports whether the reading is known.
func (t Token) HasReading() bool {
	return t.Reading != ""
}

// Inflecting reports whether the token belongs to a conjugating word class.
func (t Token) Inflecting() bool {
	switch t.POS {
	case POSVerb, POSAdjective, POSAdjectivalNoun, POSAuxiliaryVerb:
		return true
	}
	return false
}

// Complete reports whether an inflecting token ends a grammatically complete unit,
// i.e. it is in basic or imperative form. Non-inflecting tokens are always complete.
func (t Token) Complete() bool {
	if !t.Inflecting() {
		return true
	}
	return t.ConjugationForm == FormBasic || strings.Contains(t.ConjugationForm, FormImperative)
}

// Match is one detected palindrome.
type Match struct {
	Text    string `json:"text"`
	Reading string `json:"reading"`
	// Start and End are the inclusive token indices the match was built from.
	Start int `json:"start"`
	End   int `json:"end"`
}
