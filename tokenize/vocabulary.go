package tokenize

import (
	"strings"

	"github.com/ikawaha/kagome/v2/tokenizer"

	"kaibun/model"
)

// vocabulary maps a dictionary's feature row onto the IPA part-of-speech,
// subcategory and conjugation-form labels used by model.Token, and picks the
// katakana reading of the surface.
type vocabulary interface {
	classify(features []string) (pos, detail, form string)
	reading(kt tokenizer.Token) string
}

// ipaVocabulary reads IPA rows: pos, pos1, pos2, pos3, cType, cForm, base, reading, pron.
type ipaVocabulary struct{}

func (ipaVocabulary) classify(features []string) (string, string, string) {
	return featureAt(features, 0), featureAt(features, 1), featureAt(features, 5)
}

func (ipaVocabulary) reading(kt tokenizer.Token) string {
	r, _ := kt.Reading()
	return present(r)
}

// uniVocabulary reads UniDic rows: pos1..pos4, cType, cForm, lForm, lemma, orth, pron, ...
type uniVocabulary struct{}

// uniPron is the pronunciation of the surface as written. lForm (6) is the
// lemma's reading (ヤケル for 焼け) and the dictionary declares no reading index.
const uniPron = 9

func (uniVocabulary) reading(kt tokenizer.Token) string {
	return featureAt(kt.Features(), uniPron)
}

var uniPOS = map[string]string{
	"名詞":   model.POSNoun,
	"代名詞":  model.POSNoun,
	"動詞":   model.POSVerb,
	"形容詞":  model.POSAdjective,
	"形状詞":  model.POSAdjectivalNoun,
	"助詞":   model.POSParticle,
	"助動詞":  model.POSAuxiliaryVerb,
	"記号":   model.POSSymbol,
	"補助記号": model.POSSymbol,
	"空白":   model.POSSymbol,
}

var uniSuffixPOS = map[string]string{
	"名詞的":  model.POSNoun,
	"動詞的":  model.POSVerb,
	"形容詞的": model.POSAdjective,
	"形状詞的": model.POSAdjectivalNoun,
}

func (uniVocabulary) classify(features []string) (string, string, string) {
	pos1, pos2 := featureAt(features, 0), featureAt(features, 1)
	form := featureAt(features, 5)
	if strings.HasPrefix(form, "終止形") {
		form = model.FormBasic
	}

	switch pos1 {
	case "接尾辞":
		pos, ok := uniSuffixPOS[pos2]
		if !ok {
			pos = model.POSNoun
		}
		return pos, model.DetailSuffix, form
	case "空白":
		return model.POSSymbol, model.DetailWhitespace, form
	}
	if pos, ok := uniPOS[pos1]; ok {
		return pos, pos2, form
	}
	// 副詞, 連体詞, 接続詞, 感動詞, 接頭辞 share their names with IPA
	return pos1, pos2, form
}
