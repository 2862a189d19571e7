package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jshotsmedia/studio/internal/domain"
)

// transcriptRepository is the subset of store.ChatStore that ChatService
// requires.
type transcriptRepository interface {
	List(ctx context.Context) ([]*domain.ChatMessage, error)
	Append(ctx context.Context, role domain.ChatRole, text string) (*domain.ChatMessage, error)
}

// replier is the chat bridge surface ChatService depends on. Send never
// fails; failures arrive as fallback reply text.
type replier interface {
	Send(ctx context.Context, text string) string
}

// ChatService keeps the customer-facing transcript and relays each message
// through the chat bridge. The transcript is append-only and unbounded; it is
// not sent to the bridge, which holds its own session context.
type ChatService struct {
	transcript transcriptRepository
	bridge     replier
}

func NewChatService(transcript transcriptRepository, bridge replier) *ChatService {
	return &ChatService{transcript: transcript, bridge: bridge}
}

func (s *ChatService) Transcript(ctx context.Context) ([]*domain.ChatMessage, error) {
	return s.transcript.List(ctx)
}

// Send appends the user's message, obtains a reply from the bridge, and
// appends that as the assistant entry. The returned message is the assistant
// entry. Bridge failures still produce an assistant entry (the fallback
// text), so the transcript always pairs a user turn with a visible reply.
func (s *ChatService) Send(ctx context.Context, text string) (*domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("message text is required")
	}

	if _, err := s.transcript.Append(ctx, domain.RoleUser, text); err != nil {
		return nil, fmt.Errorf("failed to record message: %w", err)
	}

	reply := s.bridge.Send(ctx, text)

	msg, err := s.transcript.Append(ctx, domain.RoleAssistant, reply)
	if err != nil {
		return nil, fmt.Errorf("failed to record reply: %w", err)
	}
	return msg, nil
}
