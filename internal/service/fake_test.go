package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/geallenboy/ai-n8n/enricher/internal/adapter/llm"
	"github.com/geallenboy/ai-n8n/enricher/internal/config"
	"github.com/geallenboy/ai-n8n/enricher/internal/domain"
)

// fakeCompleter answers by request tag. Tags listed in blockTags wait for the call
// context to end, simulating a stalled endpoint.
type fakeCompleter struct {
	mu        sync.Mutex
	replies   map[string]string
	failures  map[string]error
	blockTags map[string]bool
	requests  []domain.CompletionRequest

	inFlight    int
	maxInFlight int
}

func newFakeCompleter() *fakeCompleter {
	return &fakeCompleter{
		replies:   map[string]string{},
		failures:  map[string]error{},
		blockTags: map[string]bool{},
	}
}

func (f *fakeCompleter) Complete(ctx context.Context, req *domain.CompletionRequest) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, *req)
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	reply, hasReply := f.replies[req.Tag]
	failure := f.failures[req.Tag]
	block := f.blockTags[req.Tag]
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if block {
		<-ctx.Done()
		return "", &llm.TransportError{Err: ctx.Err()}
	}
	if failure != nil {
		return "", failure
	}
	if hasReply {
		return reply, nil
	}
	return "generated " + req.Tag, nil
}

func (f *fakeCompleter) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// request returns the most recent request with tag.
func (f *fakeCompleter) request(tag string) (domain.CompletionRequest, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.requests) - 1; i >= 0; i-- {
		if f.requests[i].Tag == tag {
			return f.requests[i], true
		}
	}
	return domain.CompletionRequest{}, false
}

func testConfig() *config.Config {
	return &config.Config{
		LLMAPIKey:      "secret",
		LLMModel:       "default-model",
		CallTimeoutMs:  2000,
		MaxConcurrency: 4,
	}
}

func newTestService(t *testing.T) (*Service, *fakeCompleter) {
	t.Helper()
	fake := newFakeCompleter()
	return New(fake, testConfig()), fake
}

func userContent(req domain.CompletionRequest) string {
	var parts []string
	for _, m := range req.Messages {
		if m.Role == domain.RoleUser {
			parts = append(parts, m.Content)
		}
	}
	return strings.Join(parts, "\n")
}
