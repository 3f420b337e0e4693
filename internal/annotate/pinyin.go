package annotate

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// Transcribe returns the tone-marked pinyin reading of word, one syllable per
// Han character, joined with spaces. Runes without a reading (latin letters,
// digits) are kept verbatim.
func Transcribe(word string) string {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone
	args.Fallback = func(r rune, _ pinyin.Args) []string {
		return []string{string(r)}
	}

	syllables := pinyin.Pinyin(word, args)
	parts := make([]string, 0, len(syllables))
	for _, syllable := range syllables {
		if len(syllable) == 0 {
			continue
		}
		parts = append(parts, syllable[0])
	}
	return strings.Join(parts, " ")
}
