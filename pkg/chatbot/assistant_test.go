package chatbot

import (
	"context"
	"testing"

	"anichat-be/internal/constant"
	"anichat-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubProvider struct {
	reply    string
	err      error
	received []llm.Message
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	s.received = history
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestReplyNotConfigured(t *testing.T) {
	a := NewAssistant(nil, false, 10, 0, nopLogger{})

	got := a.Reply(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	assert.Equal(t, constant.ChatReplyNotConfigured, got)
}

func TestReplySuccess(t *testing.T) {
	provider := &stubProvider{reply: "Naruto is a shounen classic."}
	a := NewAssistant(provider, true, 10, 0, nopLogger{})

	got := a.Reply(context.Background(), []llm.Message{{Role: "user", Content: "tell me about naruto"}})
	assert.Equal(t, "Naruto is a shounen classic.", got)
}

func TestReplyErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "auth failure", err: &llm.StatusError{Code: 401}, want: constant.ChatReplyAuthError},
		{name: "rate limited", err: &llm.StatusError{Code: 429}, want: constant.ChatReplyRateLimited},
		{name: "bad request", err: &llm.StatusError{Code: 400}, want: constant.ChatReplyBadRequest},
		{name: "server error", err: &llm.StatusError{Code: 503}, want: constant.ChatReplyUnavailable},
		{name: "timeout", err: context.DeadlineExceeded, want: constant.ChatReplyTimeout},
		{name: "empty completion", err: llm.ErrEmptyCompletion, want: constant.ChatReplyEmptyResponse},
		{name: "transport failure", err: assert.AnError, want: constant.ChatReplyNetworkError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAssistant(&stubProvider{err: tt.err}, true, 10, 0, nopLogger{})
			got := a.Reply(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReplyHistoryWindow(t *testing.T) {
	provider := &stubProvider{reply: "ok"}
	a := NewAssistant(provider, true, 3, 0, nopLogger{})

	history := make([]llm.Message, 0, 8)
	for i := 0; i < 8; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		history = append(history, llm.Message{Role: role, Content: "turn"})
	}

	a.Reply(context.Background(), history)

	// System prompt first, then only the trailing window of turns.
	assert.Len(t, provider.received, 4)
	assert.Equal(t, constant.ChatMessageRoleSystem, provider.received[0].Role)
	assert.Equal(t, constant.ChatSystemPromptV1, provider.received[0].Content)
}
