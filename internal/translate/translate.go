// Package translate defines the backends that look up English meanings for
// Chinese words.
package translate

import (
	"context"
	"errors"
)

//go:generate mockgen -source=translate.go -destination=../mocks/translate/mock_translator.go -package=mock_translate

// Translator looks up the English meaning of a single word.
type Translator interface {
	Translate(ctx context.Context, word string) (string, error)
	Name() string
}

// ErrNotFound is returned when a backend has no entry for a word.
var ErrNotFound = errors.New("no translation found")
