package analyze

import (
	"context"

	"kaibun/ingest"
	"kaibun/model"
	"kaibun/palindrome"
)

// Analysis represents the result of scanning one document for palindromes.
type Analysis struct {
	DocumentID  string        `json:"document_id"`
	Name        string        `json:"name,omitempty"`
	TokenCount  int           `json:"token_count"`
	Sentences   []Sentence    `json:"sentences"`
	Palindromes []model.Match `json:"palindromes"`
}

// Sentence is a token range closed by a boundary sentinel or a 句点.
type Sentence struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Analyzer runs palindrome extraction over tokenized documents.
type Analyzer struct {
	extractor *palindrome.Extractor
	minLength int
}

// New creates an Analyzer reporting palindromes of at least minLength kana.
func New(extractor *palindrome.Extractor, minLength int) *Analyzer {
	if extractor == nil {
		extractor = palindrome.NewExtractor()
	}
	return &Analyzer{extractor: extractor, minLength: minLength}
}

// Analyze extracts the palindromes of doc from its tokens.
func (a *Analyzer) Analyze(ctx context.Context, doc ingest.Document, tokens []model.Token) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}

	matches, err := a.extractor.Extract(tokens, a.minLength)
	if err != nil {
		return Analysis{}, err
	}
	if matches == nil {
		matches = []model.Match{}
	}

	return Analysis{
		DocumentID:  doc.ID,
		Name:        doc.Name,
		TokenCount:  len(tokens),
		Sentences:   splitSentences(tokens),
		Palindromes: matches,
	}, nil
}

// splitSentences splits at boundaries and at 句点. Sentence ranges are
// half-open and never empty.
func splitSentences(tokens []model.Token) []Sentence {
	sentences := []Sentence{}
	start := 0
	for i, t := range tokens {
		switch {
		case t.Boundary:
			if i > start {
				sentences = append(sentences, Sentence{Start: start, End: i})
			}
			start = i + 1
		case t.POSDetail == model.DetailPeriod:
			sentences = append(sentences, Sentence{Start: start, End: i + 1})
			start = i + 1
		}
	}
	if start < len(tokens) {
		sentences = append(sentences, Sentence{Start: start, End: len(tokens)})
	}
	return sentences
}
