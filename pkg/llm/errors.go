package llm

import (
	"errors"
	"fmt"
)

// ErrEmptyCompletion signals a structurally valid 2xx response that carried
// no completion text.
var ErrEmptyCompletion = errors.New("empty completion from provider")

// StatusError reports a non-2xx reply from the upstream API. Callers can pick
// user-facing behavior per status code.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.Code, e.Body)
}
