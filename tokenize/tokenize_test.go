package tokenize

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kaibun/model"
	"kaibun/palindrome"
)

func readings(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Reading)
	}
	return b.String()
}

func TestTokenize_IPA(t *testing.T) {
	tk, err := New(IPA, Normal)
	require.NoError(t, err)

	toks, err := tk.Tokenize(context.Background(), "竹やぶ焼けた")
	require.NoError(t, err)
	require.NotEmpty(t, toks)

	last := toks[len(toks)-1]
	assert.True(t, last.Boundary)
	assert.Equal(t, "タケヤブヤケタ", readings(toks))

	for _, tok := range toks[:len(toks)-1] {
		assert.False(t, tok.Boundary)
		assert.NotEmpty(t, tok.Surface)
		assert.NotEmpty(t, tok.POS)
		assert.NotEqual(t, absent, tok.POSDetail)
	}

	final := toks[len(toks)-2]
	assert.Equal(t, "た", final.Surface)
	assert.Equal(t, model.POSAuxiliaryVerb, final.POS)
	assert.Equal(t, model.FormBasic, final.ConjugationForm)
}

func TestTokenize_BoundaryPerLine(t *testing.T) {
	tk, err := New(IPA, Normal)
	require.NoError(t, err)

	text := "竹やぶ焼けた\r\n新聞紙\n"
	toks, err := tk.Tokenize(context.Background(), text)
	require.NoError(t, err)

	var boundaries int
	for _, tok := range toks {
		if tok.Boundary {
			boundaries++
			continue
		}
		assert.Equal(t, tok.Surface, text[tok.Start:tok.End])
	}
	assert.Equal(t, 2, boundaries)
}

func TestTokenize_Punctuation(t *testing.T) {
	tk, err := New(IPA, Normal)
	require.NoError(t, err)

	toks, err := tk.Tokenize(context.Background(), "「はい」、そう。")
	require.NoError(t, err)

	details := map[string]string{}
	for _, tok := range toks {
		if tok.POS == model.POSSymbol {
			details[tok.Surface] = tok.POSDetail
		}
	}
	assert.Equal(t, model.DetailBracketOpen, details["「"])
	assert.Equal(t, model.DetailBracketClose, details["」"])
	assert.Equal(t, model.DetailComma, details["、"])
	assert.Equal(t, model.DetailPeriod, details["。"])
}

func TestTokenize_Empty(t *testing.T) {
	tk, err := New("", "")
	require.NoError(t, err)

	toks, err := tk.Tokenize(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, toks)
}

func TestTokenize_Cancelled(t *testing.T) {
	tk, err := New(IPA, Normal)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tk.Tokenize(ctx, "竹やぶ焼けた")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_Unknown(t *testing.T) {
	_, err := New("jumandic", Normal)
	assert.Error(t, err)

	_, err = New(IPA, "fast")
	assert.Error(t, err)
}

func TestTokenize_UniDic(t *testing.T) {
	tk, err := New(UniDic, Normal)
	require.NoError(t, err)

	toks, err := tk.Tokenize(context.Background(), "竹やぶ焼けた")
	require.NoError(t, err)
	require.NotEmpty(t, toks)
	assert.True(t, toks[len(toks)-1].Boundary)

	for _, tok := range toks[:len(toks)-1] {
		assert.NotEmpty(t, tok.Reading, "surface %q", tok.Surface)
	}
	// surface pronunciation, not the lemma reading ヤケル
	assert.Equal(t, "タケヤブヤケタ", readings(toks))

	final := toks[len(toks)-2]
	assert.Equal(t, model.POSAuxiliaryVerb, final.POS)
	assert.Equal(t, model.FormBasic, final.ConjugationForm)

	got, err := palindrome.Extract(toks, 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "竹やぶ焼けた", got[0].Text)
	assert.Equal(t, "タケヤフヤケタ", got[0].Reading)
}

func TestUniVocabulary(t *testing.T) {
	tests := []struct {
		name     string
		features []string
		pos      string
		detail   string
		form     string
	}{
		{"verb basic", []string{"動詞", "一般", "*", "*", "五段-カ行", "終止形-一般"}, model.POSVerb, "一般", model.FormBasic},
		{"verb imperative", []string{"動詞", "一般", "*", "*", "五段-カ行", "命令形"}, model.POSVerb, "一般", "命令形"},
		{"adjectival noun", []string{"形状詞", "一般", "*", "*", "*", "*"}, model.POSAdjectivalNoun, "一般", ""},
		{"period", []string{"補助記号", "句点", "*", "*", "*", "*"}, model.POSSymbol, model.DetailPeriod, ""},
		{"open bracket", []string{"補助記号", "括弧開", "*", "*", "*", "*"}, model.POSSymbol, model.DetailBracketOpen, ""},
		{"whitespace", []string{"空白", "*", "*", "*", "*", "*"}, model.POSSymbol, model.DetailWhitespace, ""},
		{"noun suffix", []string{"接尾辞", "名詞的", "一般", "*", "*", "*"}, model.POSNoun, model.DetailSuffix, ""},
		{"verb suffix", []string{"接尾辞", "動詞的", "*", "*", "五段-サ行", "連用形-一般"}, model.POSVerb, model.DetailSuffix, "連用形-一般"},
		{"adverb", []string{"副詞", "*", "*", "*", "*", "*"}, "副詞", "", ""},
		{"short row", []string{"名詞"}, model.POSNoun, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, detail, form := uniVocabulary{}.classify(tt.features)
			assert.Equal(t, tt.pos, pos)
			assert.Equal(t, tt.detail, detail)
			assert.Equal(t, tt.form, form)
		})
	}
}

func TestIPAVocabulary(t *testing.T) {
	pos, detail, form := ipaVocabulary{}.classify([]string{"動詞", "自立", "*", "*", "一段", "連用形", "焼ける", "ヤケ", "ヤケ"})
	assert.Equal(t, model.POSVerb, pos)
	assert.Equal(t, "自立", detail)
	assert.Equal(t, "連用形", form)

	pos, detail, form = ipaVocabulary{}.classify([]string{"名詞", "一般", "*", "*", "*", "*", "*"})
	assert.Equal(t, model.POSNoun, pos)
	assert.Equal(t, "一般", detail)
	assert.Equal(t, "", form)
}
