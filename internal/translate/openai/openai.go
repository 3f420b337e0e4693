// Package openai translates words with an OpenAI chat model.
package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/at-ishikawa/shengci/internal/translate"
)

type Client struct {
	client *openai.Client
	model  string
}

var _ translate.Translator = (*Client)(nil)

// NewClient returns a Client backed by the chat completion API. The model
// defaults to gpt-4o-mini when empty.
func NewClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai backend requires an API key")
	}
	if model == "" {
		model = openai.GPT4oMini
	}

	return &Client{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (client *Client) Translate(ctx context.Context, word string) (string, error) {
	response, err := client.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: client.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Translate the Chinese word '%s' to English. Respond with only the English translation, nothing else.", word),
			},
		},
		MaxTokens:   50,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("client.CreateChatCompletion > %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("%w: empty chat completion choices for %s", translate.ErrNotFound, word)
	}

	meaning := strings.TrimSpace(response.Choices[0].Message.Content)
	if meaning == "" {
		return "", fmt.Errorf("%w: empty chat completion content for %s", translate.ErrNotFound, word)
	}
	return meaning, nil
}

func (client *Client) Name() string {
	return "OpenAI"
}
