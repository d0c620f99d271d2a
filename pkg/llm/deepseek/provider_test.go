package deepseek

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anichat-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

func TestChatRequestShape(t *testing.T) {
	var captured chatRequest
	var authHeader string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&captured)
		w.Write([]byte(`{"choices":[{"message":{"content":"yo"}}]}`))
	}))
	defer srv.Close()

	p := NewDeepSeekProvider("sk-test", srv.URL, "deepseek-chat")
	got, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}},
		llm.WithTemperature(0.3),
		llm.WithTopP(0.9),
		llm.WithFrequencyPenalty(0.1),
	)

	assert.NoError(t, err)
	assert.Equal(t, "yo", got)
	assert.Equal(t, "Bearer sk-test", authHeader)
	assert.Equal(t, "deepseek-chat", captured.Model)
	assert.False(t, captured.Stream)
	assert.False(t, captured.RelatedQuestions)
	assert.Equal(t, 0.3, captured.Temperature)
	assert.Equal(t, 0.9, captured.TopP)
	assert.Equal(t, 0.0, captured.PresencePenalty)
	assert.Equal(t, 0.1, captured.FrequencyPenalty)
}

func TestChatStatusError(t *testing.T) {
	tests := []struct {
		name string
		code int
	}{
		{name: "unauthorized", code: 401},
		{name: "rate limited", code: 429},
		{name: "bad request", code: 400},
		{name: "server error", code: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				w.Write([]byte(`{"error":{"message":"nope"}}`))
			}))
			defer srv.Close()

			p := NewDeepSeekProvider("sk-test", srv.URL, "deepseek-chat")
			_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})

			var statusErr *llm.StatusError
			assert.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.code, statusErr.Code)
		})
	}
}

func TestChatEmptyCompletion(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no choices", body: `{"choices":[]}`},
		{name: "blank content", body: `{"choices":[{"message":{"content":""}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := NewDeepSeekProvider("sk-test", srv.URL, "deepseek-chat")
			_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
			assert.ErrorIs(t, err, llm.ErrEmptyCompletion)
		})
	}
}

func TestChatContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server can detect the client closing the
		// connection and cancel r.Context(); otherwise srv.Close hangs.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	p := NewDeepSeekProvider("sk-test", srv.URL, "deepseek-chat")
	_, err := p.Chat(ctx, []llm.Message{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
