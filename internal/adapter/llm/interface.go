// Package llm provides the client for the remote chat-completion endpoint.
package llm

import (
	"context"

	"github.com/geallenboy/ai-n8n/enricher/internal/domain"
)

// Completer executes one request/response cycle against a completion endpoint.
type Completer interface {
	// Complete returns the content of the first choice exactly as produced.
	Complete(ctx context.Context, req *domain.CompletionRequest) (string, error)
}

// Ensure Client implements Completer interface.
var _ Completer = (*Client)(nil)
