package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/shengci/internal/config"
	"github.com/at-ishikawa/shengci/internal/testutil"
	"github.com/at-ishikawa/shengci/internal/translate"
)

func TestNewTranslator(t *testing.T) {
	tests := []struct {
		name       string
		cfg        *config.Config
		backend    translate.Backend
		credential string
		wantName   string
		wantErr    string
	}{
		{
			name:       "google with a command line credential",
			cfg:        &config.Config{},
			backend:    translate.BackendGoogle,
			credential: "flag-key",
			wantName:   "Google Translate",
		},
		{
			name: "google with a configured credential",
			cfg: &config.Config{
				Backends: config.BackendsConfig{
					Google: config.GoogleConfig{APIKey: "config-key"},
				},
			},
			backend:  translate.BackendGoogle,
			wantName: "Google Translate",
		},
		{
			name:    "google without a credential",
			cfg:     &config.Config{},
			backend: translate.BackendGoogle,
			wantErr: "google backend requires an API key",
		},
		{
			name: "baidu with configured app credentials",
			cfg: &config.Config{
				Backends: config.BackendsConfig{
					Baidu: config.BaiduConfig{AppID: "app", AppSecret: "secret"},
				},
			},
			backend:  translate.BackendBaidu,
			wantName: "Baidu Translate",
		},
		{
			name:    "baidu without a credential",
			cfg:     &config.Config{},
			backend: translate.BackendBaidu,
			wantErr: "baidu backend requires a credential",
		},
		{
			name:       "openai with an api key",
			cfg:        &config.Config{},
			backend:    translate.BackendOpenAI,
			credential: "sk-key",
			wantName:   "OpenAI",
		},
		{
			name:     "static dictionary",
			cfg:      &config.Config{},
			backend:  translate.BackendStatic,
			wantName: "static dictionary",
		},
		{
			name:    "unknown backend",
			cfg:     &config.Config{},
			backend: translate.Backend("bing"),
			wantErr: "unknown backend: bing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTranslator(tt.cfg)(tt.backend, tt.credential)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	configPath := testutil.WriteConfig(t, t.TempDir(), "extract:\n  backend: google\n")
	originalConfigFile := configFile
	configFile = configPath
	defer func() {
		configFile = originalConfigFile
	}()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "google", cfg.Extract.Backend)
	assert.Equal(t, "生词", cfg.Extract.Marker)
}

func TestNewTranslator_StaticDictionaryFile(t *testing.T) {
	dictionaryPath := testutil.WriteDictionary(t, t.TempDir(), map[string]string{
		"麻烦": "trouble",
	})
	cfg := &config.Config{
		Backends: config.BackendsConfig{
			Static: config.StaticConfig{DictionaryFile: dictionaryPath},
		},
	}

	translator, err := newTranslator(cfg)(translate.BackendStatic, "")
	require.NoError(t, err)

	meaning, err := translator.Translate(context.Background(), "麻烦")
	require.NoError(t, err)
	assert.Equal(t, "trouble", meaning)
}
