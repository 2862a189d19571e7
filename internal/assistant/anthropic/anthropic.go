package anthropic

import (
	"context"
	"fmt"

	anthropicsdk "github.com/liushuangls/go-anthropic/v2"

	"github.com/jshotsmedia/studio/internal/assistant"
)

// maxReplyTokens caps a single assistant reply; the prompt asks the model to
// stay concise, so 512 leaves plenty of headroom.
const maxReplyTokens = 512

type AnthropicResponder struct {
	client *anthropicsdk.Client
	model  string
}

func NewAnthropicResponder(apiKey, model string, opts ...anthropicsdk.ClientOption) *AnthropicResponder {
	return &AnthropicResponder{
		client: anthropicsdk.NewClient(apiKey, opts...),
		model:  model,
	}
}

func (a *AnthropicResponder) Reply(ctx context.Context, history []assistant.Turn, userText string) (string, error) {
	resp, err := a.client.CreateMessages(ctx, anthropicsdk.MessagesRequest{
		Model:     anthropicsdk.Model(a.model),
		System:    assistant.SystemPrompt,
		MaxTokens: maxReplyTokens,
		Messages:  buildMessages(history, userText),
	})
	if err != nil {
		return "", fmt.Errorf("failed to call anthropic: %w", err)
	}

	return resp.GetFirstContentText(), nil
}

// buildMessages converts session turns plus the new user message into the
// Messages API shape.
func buildMessages(history []assistant.Turn, userText string) []anthropicsdk.Message {
	messages := make([]anthropicsdk.Message, 0, len(history)+1)
	for _, turn := range history {
		switch turn.Role {
		case assistant.RoleAssistant:
			messages = append(messages, anthropicsdk.NewAssistantTextMessage(turn.Text))
		default:
			messages = append(messages, anthropicsdk.NewUserTextMessage(turn.Text))
		}
	}
	return append(messages, anthropicsdk.NewUserTextMessage(userText))
}
