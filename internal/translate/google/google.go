// Package google translates words with the Google Cloud Translation API.
package google

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"github.com/at-ishikawa/shengci/internal/translate"
)

const defaultBaseURL = "https://translation.googleapis.com"

type Client struct {
	httpClient *resty.Client
	apiKey     string
}

var _ translate.Translator = (*Client)(nil)

// NewClient returns a Client for the v2 translation endpoint. The credential
// is an API key and is passed through as the key query parameter.
func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google backend requires an API key")
	}

	client := resty.New()
	client.SetBaseURL(defaultBaseURL)
	return &Client{
		httpClient: client,
		apiKey:     apiKey,
	}, nil
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

func (client *Client) Translate(ctx context.Context, word string) (string, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":      word,
			"source": "zh",
			"target": "en",
			"key":    client.apiKey,
		}).
		SetResult(&translateResponse{}).
		Get("/language/translate/v2")
	if err != nil {
		return "", fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*translateResponse)
	if responseBody == nil || len(responseBody.Data.Translations) == 0 {
		return "", fmt.Errorf("%w: empty translation response for %s", translate.ErrNotFound, word)
	}
	return responseBody.Data.Translations[0].TranslatedText, nil
}

func (client *Client) Name() string {
	return "Google Translate"
}
