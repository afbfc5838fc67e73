// Package tokenize adapts the kagome morphological analyzer to model.Token.
package tokenize

import (
	"context"
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"kaibun/model"
)

// Token represents a token / morpheme produced by the tokenizer.
type Token = model.Token

// Dictionary names a system dictionary.
type Dictionary string

const (
	IPA    Dictionary = "ipa"
	UniDic Dictionary = "uni"
	absent            = "*"
)

// Mode names a kagome segmentation mode.
type Mode string

const (
	Normal   Mode = "normal"
	Search   Mode = "search"
	Extended Mode = "extended"
)

var modes = map[Mode]tokenizer.TokenizeMode{
	Normal:   tokenizer.Normal,
	Search:   tokenizer.Search,
	Extended: tokenizer.Extended,
}

// Tokenizer splits text into tokens, one boundary sentinel after every line.
type Tokenizer struct {
	kg    *tokenizer.Tokenizer
	mode  tokenizer.TokenizeMode
	vocab vocabulary
}

// New creates a Tokenizer for the given dictionary and mode. Empty values
// select the IPA dictionary in normal mode.
func New(d Dictionary, m Mode) (*Tokenizer, error) {
	if d == "" {
		d = IPA
	}
	if m == "" {
		m = Normal
	}
	mode, ok := modes[m]
	if !ok {
		return nil, fmt.Errorf("unknown tokenize mode %q", m)
	}

	var (
		sys   *dict.Dict
		vocab vocabulary
	)
	switch d {
	case IPA:
		sys, vocab = ipa.Dict(), ipaVocabulary{}
	case UniDic:
		sys, vocab = uni.Dict(), uniVocabulary{}
	default:
		return nil, fmt.Errorf("unknown dictionary %q", d)
	}

	kg, err := tokenizer.New(sys, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("init kagome tokenizer: %w", err)
	}
	return &Tokenizer{kg: kg, mode: mode, vocab: vocab}, nil
}

// Tokenize analyzes text line by line. Each line is followed by a boundary
// sentinel, so no palindrome window spans a line break.
func (t *Tokenizer) Tokenize(ctx context.Context, text string) ([]Token, error) {
	if text == "" {
		return nil, nil
	}
	var (
		out    []Token
		offset int
	)
	for _, line := range strings.SplitAfter(text, "\n") {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if line == "" {
			continue
		}
		body := strings.TrimRight(line, "\r\n")
		out = append(out, t.convert(t.kg.Analyze(body, t.mode), offset)...)
		out = append(out, model.EOS())
		offset += len(line)
	}
	return out, nil
}

func (t *Tokenizer) convert(ktoks []tokenizer.Token, offset int) []Token {
	out := make([]Token, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY {
			continue
		}
		pos, detail, form := t.vocab.classify(kt.Features())
		pron, _ := kt.Pronunciation()
		base, _ := kt.BaseForm()
		out = append(out, Token{
			Surface:         kt.Surface,
			POS:             pos,
			POSDetail:       detail,
			ConjugationForm: form,
			Reading:         t.vocab.reading(kt),
			BaseForm:        present(base),
			Pronunciation:   present(pron),
			Start:           offset + kt.Position,
			End:             offset + kt.Position + len(kt.Surface),
		})
	}
	return out
}

func present(s string) string {
	if s == absent {
		return ""
	}
	return s
}

func featureAt(features []string, i int) string {
	if i < len(features) {
		return present(features[i])
	}
	return ""
}
