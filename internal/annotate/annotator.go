// Package annotate turns candidate words into annotated vocabulary entries
// with a pinyin reading and an English meaning.
package annotate

import (
	"context"
	"log/slog"
	"time"

	"github.com/at-ishikawa/shengci/internal/translate"
)

// UnknownMeaning is the meaning of a word whose translation lookup failed.
const UnknownMeaning = "unknown"

// Entry is one annotated vocabulary word.
type Entry struct {
	Word    string
	Pinyin  string
	Meaning string
}

type Annotator struct {
	translator translate.Translator
	throttle   time.Duration
}

// NewAnnotator returns an Annotator that looks up meanings with translator,
// waiting throttle between consecutive lookups. A zero throttle disables the
// wait.
func NewAnnotator(translator translate.Translator, throttle time.Duration) *Annotator {
	return &Annotator{
		translator: translator,
		throttle:   throttle,
	}
}

// Annotate builds an entry for every word, keeping the input order. A failed
// lookup turns into an UnknownMeaning entry and never stops the remaining
// words. Annotate returns the entries built so far when ctx is canceled.
func (annotator *Annotator) Annotate(ctx context.Context, words []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(words))
	for i, word := range words {
		if i > 0 && annotator.throttle > 0 {
			select {
			case <-ctx.Done():
				return entries, ctx.Err()
			case <-time.After(annotator.throttle):
			}
		}

		meaning, err := annotator.translator.Translate(ctx, word)
		if err != nil {
			if ctx.Err() != nil {
				return entries, ctx.Err()
			}
			slog.Default().Warn("failed to translate a word",
				"word", word,
				"backend", annotator.translator.Name(),
				"error", err,
			)
			meaning = UnknownMeaning
		}
		entries = append(entries, Entry{
			Word:    word,
			Pinyin:  Transcribe(word),
			Meaning: meaning,
		})
	}
	return entries, nil
}
