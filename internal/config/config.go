package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/shengci/internal/extract"
	"github.com/at-ishikawa/shengci/internal/translate"
)

type Config struct {
	Extract  ExtractConfig  `mapstructure:"extract"`
	Backends BackendsConfig `mapstructure:"backends"`
}

type ExtractConfig struct {
	Marker               string `mapstructure:"marker" validate:"required"`
	Backend              string `mapstructure:"backend" validate:"oneof=google baidu static openai"`
	ThrottleMilliseconds int    `mapstructure:"throttle_milliseconds"`
}

type BackendsConfig struct {
	Google GoogleConfig `mapstructure:"google"`
	Baidu  BaiduConfig  `mapstructure:"baidu"`
	OpenAI OpenAIConfig `mapstructure:"openai"`
	Static StaticConfig `mapstructure:"static"`
}

type GoogleConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type BaiduConfig struct {
	AppID     string `mapstructure:"app_id"`
	AppSecret string `mapstructure:"app_secret"`
}

type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type StaticConfig struct {
	DictionaryFile string `mapstructure:"dictionary_file" validate:"omitempty,file"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/shengci")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("extract.marker", extract.DefaultMarker)
	v.SetDefault("extract.backend", string(translate.BackendStatic))
	v.SetDefault("extract.throttle_milliseconds", 500)
	v.SetDefault("backends.openai.model", "gpt-4o-mini")

	// Bind backend credentials to environment variables
	if err := v.BindEnv("backends.google.api_key", "GOOGLE_TRANSLATE_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GOOGLE_TRANSLATE_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("backends.baidu.app_id", "BAIDU_APP_ID"); err != nil {
		return nil, fmt.Errorf("failed to bind BAIDU_APP_ID environment variable: %w", err)
	}
	if err := v.BindEnv("backends.baidu.app_secret", "BAIDU_APP_SECRET"); err != nil {
		return nil, fmt.Errorf("failed to bind BAIDU_APP_SECRET environment variable: %w", err)
	}
	if err := v.BindEnv("backends.openai.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("backends.openai.model", "OPENAI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_MODEL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
