package palindrome

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidToken is returned when a content token lacks its surface or part of speech.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidArgument is returned for a non-positive minimum length.
	ErrInvalidArgument = errors.New("invalid argument")
)

// TokenError reports which token broke the content-token invariant.
type TokenError struct {
	Index   int
	Message string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%s at index %d: %s", ErrInvalidToken, e.Index, e.Message)
}

func (e *TokenError) Unwrap() error {
	return ErrInvalidToken
}
