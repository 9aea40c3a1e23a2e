package oracle

import (
	"context"

	"github.com/pkg/errors"
	go_openai "github.com/sashabaranov/go-openai"
)

// OpenAI invokes a chat-completions endpoint. A base URL override makes
// OpenAI-compatible local servers (e.g. Ollama) usable as the oracle.
type OpenAI struct {
	client *go_openai.Client
	model  string
}

func NewOpenAI(apiKey, baseURL, model string) *OpenAI {
	config := go_openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAI{client: go_openai.NewClientWithConfig(config), model: model}
}

func (o *OpenAI) Invoke(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, go_openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []go_openai.ChatCompletionMessage{
			{Role: go_openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "chat completion request")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
