package llm

import (
	"log"

	"github.com/geallenboy/ai-n8n/enricher/internal/config"
)

// NewCompleter creates the Completer selected by the configuration.
// ENRICH_MODE=MOCK returns a MockClient; otherwise a real Client.
func NewCompleter(cfg *config.Config) Completer {
	if cfg.MockMode() {
		log.Println("ENRICH_MODE=MOCK detected, using mock completion client")
		return NewMockClient()
	}

	return NewClient(Options{
		BaseURL:  cfg.LLMBaseURL,
		APIKey:   cfg.LLMAPIKey,
		Model:    cfg.LLMModel,
		Referer:  cfg.LLMReferer,
		AppTitle: cfg.LLMAppTitle,
		Timeout:  cfg.CallTimeout(),
	})
}
