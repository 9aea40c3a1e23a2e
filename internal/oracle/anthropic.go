package oracle

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/pkg/errors"
)

const DefaultAnthropicModel = string(anthropic.ModelClaude3_7SonnetLatest)

const defaultMaxTokens = 1024

// Anthropic invokes the Messages API with the prompt as a single user
// message and concatenates the reply's text blocks.
type Anthropic struct {
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// NewAnthropic returns an oracle backed by the Anthropic SDK. The API key
// comes from the environment (SDK default). An empty model selects the
// default.
func NewAnthropic(model string) *Anthropic {
	c := anthropic.NewClient()
	if model == "" {
		model = DefaultAnthropicModel
	}
	return &Anthropic{client: &c, model: anthropic.Model(model), maxTokens: defaultMaxTokens}
}

func (o *Anthropic) Invoke(ctx context.Context, prompt string) (string, error) {
	msg, err := o.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     o.model,
		MaxTokens: o.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "anthropic message request")
	}
	var b strings.Builder
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok && tb.Text != "" {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(tb.Text)
		}
	}
	return b.String(), nil
}
