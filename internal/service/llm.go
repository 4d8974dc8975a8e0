package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/geallenboy/ai-n8n/enricher/internal/adapter/llm"
	"github.com/geallenboy/ai-n8n/enricher/internal/config"
	"github.com/geallenboy/ai-n8n/enricher/internal/domain"
)

// resolveModel returns the caller override or the configured default model.
func (s *Service) resolveModel(override string) (string, error) {
	if !s.config.MockMode() && strings.TrimSpace(s.config.LLMAPIKey) == "" {
		return "", config.ErrMissingAPIKey
	}
	if m := strings.TrimSpace(override); m != "" {
		return m, nil
	}
	if m := strings.TrimSpace(s.config.LLMModel); m != "" {
		return m, nil
	}
	return "", config.ErrMissingModel
}

// complete runs one completion call bound by the per-call timeout.
func (s *Service) complete(ctx context.Context, req *domain.CompletionRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &llm.TransportError{Err: err}
	}

	requestID := "llm_" + uuid.New().String()[:8]
	startTime := time.Now()

	if s.config.Debug() {
		log.Printf("llm call %s tag=%s model=%s started", requestID, req.Tag, req.Model)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.config.CallTimeout())
	defer cancel()

	out, err := s.completer.Complete(callCtx, req)
	latencyMs := time.Since(startTime).Milliseconds()
	if err != nil {
		log.Printf("WARN: llm call %s tag=%s model=%s failed after %dms: %v", requestID, req.Tag, req.Model, latencyMs, err)
		return "", err
	}

	if s.config.Debug() {
		log.Printf("llm call %s tag=%s model=%s done in %dms (%d chars)", requestID, req.Tag, req.Model, latencyMs, len(out))
	}
	return out, nil
}
