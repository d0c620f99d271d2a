package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageRole is the closed set of author roles a stored message may carry.
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// Valid reports whether the role is one of the two storable values.
func (r MessageRole) Valid() bool {
	return r == MessageRoleUser || r == MessageRoleAssistant
}

type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Role          MessageRole
	Content       string
	CreatedAt     time.Time
}
