package llm

import (
	"context"
	"fmt"

	"github.com/geallenboy/ai-n8n/enricher/internal/domain"
)

// MockClient is an offline Completer that answers from the task payload.
type MockClient struct{}

// NewMockClient creates a new mock completion client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements Completer interface.
var _ Completer = (*MockClient)(nil)

// Complete returns a deterministic mock completion.
func (m *MockClient) Complete(ctx context.Context, req *domain.CompletionRequest) (string, error) {
	if req == nil || len(req.Messages) == 0 {
		return "", ErrEmptyConversation
	}
	if err := ctx.Err(); err != nil {
		return "", &TransportError{Err: err}
	}

	var lastUserMessage string
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == domain.RoleUser {
			lastUserMessage = req.Messages[i].Content
			break
		}
	}

	tag := req.Tag
	if tag == "" {
		tag = "completion"
	}
	if lastUserMessage == "" {
		return fmt.Sprintf("[MOCK] %s", tag), nil
	}
	return fmt.Sprintf("[MOCK] %s: %s", tag, truncate(lastUserMessage, 100)), nil
}

// truncate truncates a string to at most maxLen runes.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
