package chatbot

import (
	"context"
	"errors"
	"time"

	"anichat-be/internal/constant"
	"anichat-be/internal/pkg/logger"
	"anichat-be/pkg/llm"
)

// Generation parameters for the discussion persona. Kept low-temperature so
// factual questions about series stay grounded.
const (
	replyTemperature      = 0.3
	replyTopP             = 0.9
	replyPresencePenalty  = 0
	replyFrequencyPenalty = 0.1
)

// Assistant turns a conversation history into exactly one assistant reply.
// Every failure mode of the upstream call collapses into a fixed
// user-displayable string; Reply never returns an error and never retries.
type Assistant struct {
	provider   llm.LLMProvider
	configured bool
	window     int
	timeout    time.Duration
	log        logger.ILogger
}

func NewAssistant(provider llm.LLMProvider, configured bool, window int, timeout time.Duration, log logger.ILogger) *Assistant {
	if window <= 0 {
		window = constant.ChatHistoryWindowDefault
	}
	if timeout <= 0 {
		timeout = 28 * time.Second
	}
	return &Assistant{
		provider:   provider,
		configured: configured,
		window:     window,
		timeout:    timeout,
		log:        log,
	}
}

// Reply calls the upstream model with the persona prompt plus the trailing
// window of history. The returned string is always safe to store and display.
func (a *Assistant) Reply(ctx context.Context, history []llm.Message) string {
	if !a.configured {
		return constant.ChatReplyNotConfigured
	}

	messages := a.buildMessages(history)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	reply, err := a.provider.Chat(ctx, messages,
		llm.WithTemperature(replyTemperature),
		llm.WithTopP(replyTopP),
		llm.WithPresencePenalty(replyPresencePenalty),
		llm.WithFrequencyPenalty(replyFrequencyPenalty),
	)
	if err != nil {
		return a.mapError(err)
	}
	return reply
}

// buildMessages prepends the persona system prompt to the most recent window
// of conversation turns.
func (a *Assistant) buildMessages(history []llm.Message) []llm.Message {
	if len(history) > a.window {
		history = history[len(history)-a.window:]
	}
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: constant.ChatSystemPromptV1,
	})
	messages = append(messages, history...)
	return messages
}

func (a *Assistant) mapError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		a.log.Warn("chatbot", "Upstream call timed out", map[string]interface{}{"timeout": a.timeout.String()})
		return constant.ChatReplyTimeout
	}

	var statusErr *llm.StatusError
	if errors.As(err, &statusErr) {
		a.log.Warn("chatbot", "Upstream returned error status", map[string]interface{}{"status": statusErr.Code})
		switch statusErr.Code {
		case 401:
			return constant.ChatReplyAuthError
		case 429:
			return constant.ChatReplyRateLimited
		case 400:
			return constant.ChatReplyBadRequest
		default:
			return constant.ChatReplyUnavailable
		}
	}

	if errors.Is(err, llm.ErrEmptyCompletion) {
		a.log.Warn("chatbot", "Upstream returned empty completion", nil)
		return constant.ChatReplyEmptyResponse
	}

	a.log.Error("chatbot", "Upstream call failed", map[string]interface{}{"error": err.Error()})
	return constant.ChatReplyNetworkError
}
