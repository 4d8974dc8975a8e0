// Package service implements the translation and content analysis operations.
package service

import (
	"errors"

	"github.com/geallenboy/ai-n8n/enricher/internal/adapter/llm"
	"github.com/geallenboy/ai-n8n/enricher/internal/config"
)

var (
	// ErrInvalidLanguage is returned for missing or identical source and target languages.
	ErrInvalidLanguage = errors.New("invalid language pair")

	errEmptyCompletion = errors.New("completion returned no text")
)

type Service struct {
	completer llm.Completer
	config    *config.Config
}

func New(completer llm.Completer, cfg *config.Config) *Service {
	return &Service{
		completer: completer,
		config:    cfg,
	}
}

// IsConfigError reports whether err is a configuration error detected before any call.
func IsConfigError(err error) bool {
	return errors.Is(err, config.ErrMissingAPIKey) || errors.Is(err, config.ErrMissingModel)
}

func (s *Service) concurrency() int {
	if s.config.MaxConcurrency <= 0 {
		return 1
	}
	return s.config.MaxConcurrency
}
