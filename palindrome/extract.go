// Package palindrome finds palindromic passages (回文) in analyzed Japanese
// text by comparing the normalized phonetic reading of word windows.
package palindrome

import (
	"fmt"
	"io"
	"log/slog"

	"kaibun/model"
)

// Extractor scans token sequences for palindromes.
type Extractor struct {
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for debug traces.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewExtractor creates an Extractor. Without options it logs nothing.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs the default Extractor.
func Extract(tokens []model.Token, minLength int) ([]model.Match, error) {
	return NewExtractor().Extract(tokens, minLength)
}

// Extract returns the palindromes found in tokens, in document order. Each
// admissible start yields at most its longest match, and the scan resumes
// after the matched window, so matches never overlap. minLength is the
// minimum number of kana in the reading before normalization.
func (e *Extractor) Extract(tokens []model.Token, minLength int) ([]model.Match, error) {
	if minLength <= 0 {
		return nil, fmt.Errorf("%w: minimum length must be positive, got %d", ErrInvalidArgument, minLength)
	}
	if err := checkTokens(tokens); err != nil {
		return nil, err
	}

	tokens = InferReadings(tokens)

	var matches []model.Match
	for i := 0; i < len(tokens); {
		if !startable(tokens[i]) {
			i++
			continue
		}
		m, ok := scanFrom(tokens, i, minLength)
		if !ok {
			i++
			continue
		}
		e.logger.Debug("palindrome found", "text", m.Text, "reading", m.Reading, "start", m.Start, "end", m.End)
		matches = append(matches, m)
		i = m.End + 1
	}
	e.logger.Debug("scan finished", "tokens", len(tokens), "matches", len(matches))
	return matches, nil
}

func checkTokens(tokens []model.Token) error {
	for i, t := range tokens {
		if t.Boundary {
			continue
		}
		if t.Surface == "" {
			return &TokenError{Index: i, Message: "missing surface"}
		}
		if t.POS == "" {
			return &TokenError{Index: i, Message: "missing part of speech"}
		}
	}
	return nil
}

// startable reports whether a window may begin at t. Particles, auxiliaries,
// symbols and suffixes cannot open a sentence.
func startable(t model.Token) bool {
	if t.Boundary || !t.HasReading() {
		return false
	}
	switch t.POS {
	case model.POSParticle, model.POSAuxiliaryVerb, model.POSSymbol:
		return false
	}
	return t.POSDetail != model.DetailSuffix
}

// breaks reports whether t ends the window before being added to it.
func breaks(t model.Token) bool {
	if t.Boundary || !t.HasReading() {
		return true
	}
	switch t.POSDetail {
	case model.DetailBracketOpen, model.DetailBracketClose, model.DetailWhitespace:
		return true
	}
	return false
}

// scanFrom grows a window from start and returns the longest palindrome that
// ends on a grammatically complete token.
func scanFrom(tokens []model.Token, start, minLength int) (model.Match, bool) {
	var (
		best  model.Match
		found bool
	)
	for j := start; j < len(tokens); j++ {
		t := tokens[j]
		if breaks(t) {
			break
		}
		// mid-inflection or a trailing comma is not a complete phrase
		if !t.Complete() || t.POSDetail == model.DetailComma {
			continue
		}
		if m, ok := Validate(tokens[start:j+1], minLength); ok {
			m.Start, m.End = start, j
			best, found = m, true
		}
		if t.POSDetail == model.DetailPeriod {
			break
		}
	}
	return best, found
}
