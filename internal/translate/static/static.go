// Package static translates words with a built-in dictionary and an optional
// YAML overlay file. It needs no credential and no network.
package static

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/shengci/internal/translate"
)

// builtinEntries covers the vocabulary of the first few textbook lessons.
var builtinEntries = map[string]string{
	"生词":  "new word",
	"学习":  "study",
	"中文":  "Chinese",
	"汉字":  "Chinese character",
	"读写":  "read and write",
	"说话":  "speak",
	"你好":  "hello",
	"谢谢":  "thank you",
	"再见":  "goodbye",
	"对不起": "sorry",
	"没关系": "it's okay",
	"请":   "please",
	"老师":  "teacher",
	"学生":  "student",
	"朋友":  "friend",
	"家人":  "family",
	"工作":  "work",
	"生活":  "life",
	"时间":  "time",
	"地方":  "place",
}

type Dictionary struct {
	entries map[string]string
}

var _ translate.Translator = (*Dictionary)(nil)

// New returns a Dictionary with the built-in entries only.
func New() *Dictionary {
	return &Dictionary{
		entries: builtinEntries,
	}
}

// NewFromFile returns a Dictionary extended with a YAML overlay file mapping
// words to meanings. Overlay entries take precedence over built-in ones.
func NewFromFile(path string) (*Dictionary, error) {
	overlay, err := readYamlFile[map[string]string](path)
	if err != nil {
		return nil, fmt.Errorf("readYamlFile(%s) > %w", path, err)
	}

	entries := make(map[string]string, len(builtinEntries)+len(overlay))
	for word, meaning := range builtinEntries {
		entries[word] = meaning
	}
	for word, meaning := range overlay {
		entries[word] = meaning
	}
	return &Dictionary{
		entries: entries,
	}, nil
}

func (d *Dictionary) Translate(_ context.Context, word string) (string, error) {
	meaning, ok := d.entries[word]
	if !ok {
		return "", fmt.Errorf("%w: %s", translate.ErrNotFound, word)
	}
	return meaning, nil
}

func (d *Dictionary) Name() string {
	return "static dictionary"
}

func readYamlFile[T any](path string) (T, error) {
	var result T

	file, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("os.Open(%s)> %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&result); err != nil {
		return result, fmt.Errorf("yaml.NewDecoder().Decode()> %w", err)
	}
	return result, nil
}
