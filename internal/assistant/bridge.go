package assistant

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// The two user-facing fallback strings. Send never surfaces an error to the
// caller; it degrades to one of these.
const (
	// FallbackNoReply is returned when the backend produced no text.
	FallbackNoReply = "I'm having trouble connecting to the studio right now. Please try again."
	// FallbackUnavailable is returned when the request itself failed.
	FallbackUnavailable = "I apologize, but I'm currently unable to process your request. Please check your internet connection."
)

// Bridge holds one lazily-created conversation session and translates a plain
// text message into a plain text reply. Transport and service errors are
// logged and converted to fixed fallback strings, never returned.
type Bridge struct {
	responder Responder
	logger    *slog.Logger

	mu        sync.Mutex
	history   []Turn
	sessionID int64
}

func NewBridge(responder Responder, logger *slog.Logger) *Bridge {
	return &Bridge{responder: responder, logger: logger}
}

// Send delivers text to the current session and returns the reply. A failed
// call leaves the session history untouched, so the failed turn is not
// replayed on the next send.
func (b *Bridge) Send(ctx context.Context, text string) string {
	b.mu.Lock()
	if b.sessionID == 0 || b.history == nil {
		b.sessionID++
		b.history = []Turn{}
	}
	history := make([]Turn, len(b.history))
	copy(history, b.history)
	session := b.sessionID
	b.mu.Unlock()

	reply, err := b.responder.Reply(ctx, history, text)
	if err != nil {
		b.logger.Error("assistant request failed", "session", session, "error", err)
		return FallbackUnavailable
	}
	if strings.TrimSpace(reply) == "" {
		b.logger.Warn("assistant returned no reply", "session", session)
		return FallbackNoReply
	}

	b.mu.Lock()
	// Only extend the history if the session was not reset mid-flight.
	if b.history != nil && b.sessionID == session {
		b.history = append(b.history, Turn{Role: RoleUser, Text: text}, Turn{Role: RoleAssistant, Text: reply})
	}
	b.mu.Unlock()

	return reply
}

// Reset discards the session; the next Send starts a fresh context.
func (b *Bridge) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.history = nil
}

// SessionID identifies the current session, or 0 if none has started yet.
// It increments each time a session is created after a reset.
func (b *Bridge) SessionID() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.history == nil {
		return 0
	}
	return b.sessionID
}
