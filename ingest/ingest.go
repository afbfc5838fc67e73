package ingest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyDocument is returned for input that is blank after trimming.
var ErrEmptyDocument = errors.New("empty document")

// Document represents an ingested Japanese text and metadata.
type Document struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDocument trims the input, validates it and assigns it a fresh id.
func NewDocument(name, text string) (Document, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Document{}, ErrEmptyDocument
	}
	return Document{
		ID:        uuid.NewString(),
		Name:      name,
		Text:      trimmed,
		CreatedAt: time.Now().UTC(),
	}, nil
}
