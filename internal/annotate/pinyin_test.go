package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscribe(t *testing.T) {
	tests := []struct {
		name string
		word string
		want string
	}{
		{
			name: "two characters",
			word: "中文",
			want: "zhōng wén",
		},
		{
			name: "single character",
			word: "请",
			want: "qǐng",
		},
		{
			name: "third tone",
			word: "你好",
			want: "nǐ hǎo",
		},
		{
			name: "latin letters are kept verbatim",
			word: "HSK",
			want: "H S K",
		},
		{
			name: "mixed script",
			word: "A股",
			want: "A gǔ",
		},
		{
			name: "empty word",
			word: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transcribe(tt.word))
		})
	}
}
