package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/shengci/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadParagraphs(t *testing.T) {
	tests := []struct {
		name       string
		paragraphs []string
	}{
		{
			name:       "paragraphs in document order",
			paragraphs: []string{"第一课", "生词", "你好, 谢谢", "再见"},
		},
		{
			name:       "empty paragraphs are kept",
			paragraphs: []string{"生词", "你好", "", "课文"},
		},
		{
			name:       "single paragraph",
			paragraphs: []string{"生词"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "lesson.docx")
			testutil.WriteDocx(t, path, tt.paragraphs...)

			got, err := ReadParagraphs(path)
			require.NoError(t, err)
			assert.Equal(t, tt.paragraphs, got)
		})
	}
}

func TestReadParagraphs_SplitRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lesson.docx")
	testutil.WriteDocxWithBody(t, path,
		`<w:p><w:r><w:t>学</w:t></w:r><w:r><w:t>习</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>a</w:t><w:tab/><w:t>b</w:t><w:br/><w:t>c</w:t></w:r></w:p>`)

	got, err := ReadParagraphs(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"学习", "a\tb\nc"}, got)
}

func TestReadParagraphs_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string) string
		wantErr string
	}{
		{
			name: "legacy doc format",
			setup: func(t *testing.T, dir string) string {
				return filepath.Join(dir, "lesson.doc")
			},
			wantErr: "legacy .doc format is not supported",
		},
		{
			name: "unsupported extension",
			setup: func(t *testing.T, dir string) string {
				return filepath.Join(dir, "lesson.txt")
			},
			wantErr: "unsupported file format",
		},
		{
			name: "missing file",
			setup: func(t *testing.T, dir string) string {
				return filepath.Join(dir, "missing.docx")
			},
			wantErr: "docx.ReadDocxFile",
		},
		{
			name: "not a zip container",
			setup: func(t *testing.T, dir string) string {
				path := filepath.Join(dir, "corrupt.docx")
				require.NoError(t, os.WriteFile(path, []byte("not a docx"), 0644))
				return path
			},
			wantErr: "docx.ReadDocxFile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setup(t, t.TempDir())

			_, err := ReadParagraphs(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadParagraphs_LegacyFormatSentinel(t *testing.T) {
	_, err := ReadParagraphs("lesson.doc")
	assert.ErrorIs(t, err, ErrLegacyFormat)
}
