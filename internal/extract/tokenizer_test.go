package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "comma separated with a duplicate",
			text: "学习, 中文, 中文",
			want: []string{"学习", "中文"},
		},
		{
			name: "mixed space and comma delimiters",
			text: "学习 中文,汉字",
			want: []string{"学习", "中文", "汉字"},
		},
		{
			name: "fullwidth and enumeration commas",
			text: "你好，谢谢、再见",
			want: []string{"你好", "谢谢", "再见"},
		},
		{
			name: "newlines between paragraph lines",
			text: "老师, 学生\n朋友",
			want: []string{"老师", "学生", "朋友"},
		},
		{
			name: "surrounding punctuation is trimmed",
			text: "（中文）, 汉字。 “你好”",
			want: []string{"中文", "汉字", "你好"},
		},
		{
			name: "duplicate appears after trimming",
			text: "中文, （中文）",
			want: []string{"中文"},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
		{
			name: "delimiters and punctuation only",
			text: ", ，、 。。",
			want: []string{},
		},
		{
			name: "latin words survive splitting",
			text: "HSK, 中文",
			want: []string{"HSK", "中文"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitWords(tt.text))
		})
	}
}

func TestHanOnly(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  []string
	}{
		{
			name:  "drops words without Han characters",
			words: []string{"HSK", "中文", "abc", "汉字"},
			want:  []string{"中文", "汉字"},
		},
		{
			name:  "keeps mixed script words",
			words: []string{"中文abc", "123"},
			want:  []string{"中文abc"},
		},
		{
			name:  "empty input",
			words: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HanOnly(tt.words))
		})
	}
}
