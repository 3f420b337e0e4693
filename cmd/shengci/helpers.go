package main

import (
	"fmt"

	"github.com/at-ishikawa/shengci/internal/cli"
	"github.com/at-ishikawa/shengci/internal/config"
	"github.com/at-ishikawa/shengci/internal/translate"
	"github.com/at-ishikawa/shengci/internal/translate/baidu"
	"github.com/at-ishikawa/shengci/internal/translate/google"
	"github.com/at-ishikawa/shengci/internal/translate/openai"
	"github.com/at-ishikawa/shengci/internal/translate/static"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newTranslator builds translation clients for a backend. A credential given
// on the command line wins over the configured one.
func newTranslator(cfg *config.Config) cli.NewTranslatorFunc {
	return func(backend translate.Backend, credential string) (translate.Translator, error) {
		switch backend {
		case translate.BackendGoogle:
			apiKey := credential
			if apiKey == "" {
				apiKey = cfg.Backends.Google.APIKey
			}
			return google.NewClient(apiKey)
		case translate.BackendBaidu:
			if credential == "" && cfg.Backends.Baidu.AppID != "" {
				credential = cfg.Backends.Baidu.AppID + ":" + cfg.Backends.Baidu.AppSecret
			}
			return baidu.NewClient(credential)
		case translate.BackendOpenAI:
			apiKey := credential
			if apiKey == "" {
				apiKey = cfg.Backends.OpenAI.APIKey
			}
			return openai.NewClient(apiKey, cfg.Backends.OpenAI.Model)
		case translate.BackendStatic:
			if cfg.Backends.Static.DictionaryFile != "" {
				return static.NewFromFile(cfg.Backends.Static.DictionaryFile)
			}
			return static.New(), nil
		}
		return nil, fmt.Errorf("unknown backend: %s", backend)
	}
}
