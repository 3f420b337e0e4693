package extract

import (
	"strings"
	"unicode"
)

// SplitWords splits raw section text into candidate words. The text is split
// on commas (ASCII and fullwidth), semicolons, and whitespace; surrounding
// punctuation is trimmed from each token, empty tokens are discarded, and
// duplicates are dropped while preserving first occurrence order.
func SplitWords(text string) []string {
	fields := strings.FieldsFunc(text, isDelimiter)

	words := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		word := strings.TrimFunc(field, isEdgePunctuation)
		if word == "" {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	return words
}

// HanOnly keeps the words containing at least one Han character. Textbook word
// lists carry stray numbering and romanization that are not worth looking up.
func HanOnly(words []string) []string {
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if containsHan(word) {
			kept = append(kept, word)
		}
	}
	return kept
}

func isDelimiter(r rune) bool {
	switch r {
	case ',', '，', '、', ';', '；':
		return true
	}
	return unicode.IsSpace(r)
}

func isEdgePunctuation(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func containsHan(word string) bool {
	for _, r := range word {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}
