package static

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/shengci/internal/testutil"
	"github.com/at-ishikawa/shengci/internal/translate"
)

func TestDictionary_Translate(t *testing.T) {
	tests := []struct {
		name string
		word string

		want      string
		wantError error
	}{
		{
			name: "built-in word",
			word: "你好",
			want: "hello",
		},
		{
			name: "another built-in word",
			word: "老师",
			want: "teacher",
		},
		{
			name:      "unknown word",
			word:      "电脑",
			wantError: translate.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dictionary := New()
			got, err := dictionary.Translate(context.Background(), tt.word)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFromFile(t *testing.T) {
	t.Run("overlay extends and overrides built-in entries", func(t *testing.T) {
		path := testutil.WriteDictionary(t, t.TempDir(), map[string]string{
			"电脑": "computer",
			"你好": "hi there",
		})

		dictionary, err := NewFromFile(path)
		require.NoError(t, err)

		ctx := context.Background()
		got, err := dictionary.Translate(ctx, "电脑")
		require.NoError(t, err)
		assert.Equal(t, "computer", got)

		got, err = dictionary.Translate(ctx, "你好")
		require.NoError(t, err)
		assert.Equal(t, "hi there", got)

		got, err = dictionary.Translate(ctx, "谢谢")
		require.NoError(t, err)
		assert.Equal(t, "thank you", got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFromFile(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "os.Open")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dictionary.yml")
		require.NoError(t, os.WriteFile(path, []byte("{invalid"), 0644))

		_, err := NewFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "yaml.NewDecoder")
	})
}

func TestDictionary_Name(t *testing.T) {
	assert.Equal(t, "static dictionary", New().Name())
}
