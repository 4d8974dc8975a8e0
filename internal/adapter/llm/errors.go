package llm

import (
	"errors"
	"fmt"
)

// ErrEmptyConversation is returned when a request carries no messages.
var ErrEmptyConversation = errors.New("completion request has no messages")

// maxBodyInError bounds the response body kept on errors.
const maxBodyInError = 2000

// TransportError is a network or connection level failure reaching the endpoint,
// including deadline expiry and cancellation of the call context.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("completion transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteServiceError is a non-2xx response from the endpoint.
type RemoteServiceError struct {
	StatusCode int
	Body       string
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("LLM API error [%d]: %s", e.StatusCode, e.Body)
}

// MalformedResponseError is a 2xx response without choices[0].message.content.
type MalformedResponseError struct {
	Reason string
	Body   string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed completion response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed completion response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func abbreviate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
