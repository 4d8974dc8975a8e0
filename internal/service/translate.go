package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/geallenboy/ai-n8n/enricher/internal/domain"
	"github.com/geallenboy/ai-n8n/enricher/internal/prompt"
)

type fieldOutcome struct {
	text string
	err  error
}

// TranslateFields translates every non-blank field independently. A field whose call
// fails keeps its source text and is listed in Fallbacks; blank fields are listed in
// Skipped and cost no call. Only invalid input and configuration errors are returned.
func (s *Service) TranslateFields(ctx context.Context, req domain.FieldTranslationRequest) (*domain.FieldTranslationResult, error) {
	source := domain.ParseLanguage(string(req.SourceLang))
	target := domain.ParseLanguage(string(req.TargetLang))
	if source == "" || target == "" {
		return nil, fmt.Errorf("%w: source_lang and target_lang are required", ErrInvalidLanguage)
	}
	if source == target {
		return nil, fmt.Errorf("%w: source_lang and target_lang must be different", ErrInvalidLanguage)
	}

	result := &domain.FieldTranslationResult{
		Fields:    make(map[string]string, len(req.Fields)),
		Fallbacks: []string{},
		Skipped:   []string{},
	}

	pending := make([]string, 0, len(req.Fields))
	for key, value := range req.Fields {
		if strings.TrimSpace(value) == "" {
			result.Skipped = append(result.Skipped, key)
			continue
		}
		pending = append(pending, key)
	}
	sort.Strings(pending)
	sort.Strings(result.Skipped)

	if len(pending) == 0 {
		return result, nil
	}

	model, err := s.resolveModel(req.Model)
	if err != nil {
		return nil, fmt.Errorf("translate fields: %w", err)
	}

	outcomes := make([]fieldOutcome, len(pending))
	g := new(errgroup.Group)
	g.SetLimit(s.concurrency())
	for i, key := range pending {
		i, key := i, key
		g.Go(func() error {
			out, err := s.complete(ctx, &domain.CompletionRequest{
				Model:    model,
				Messages: prompt.Translation(req.Fields[key], source, target),
				Tag:      "translate:" + key,
			})
			if err == nil && strings.TrimSpace(out) == "" {
				err = errEmptyCompletion
			}
			outcomes[i] = fieldOutcome{text: strings.TrimSpace(out), err: err}
			return nil
		})
	}
	_ = g.Wait()

	for i, key := range pending {
		o := outcomes[i]
		if o.err != nil {
			result.Fields[key] = req.Fields[key]
			result.Fallbacks = append(result.Fallbacks, key)
			result.Failures = append(result.Failures, domain.Failure{Name: key, Reason: o.err.Error()})
			continue
		}
		result.Fields[key] = o.text
	}

	if result.HasFallbacks() {
		log.Printf("WARN: translation %s->%s kept source text for fields %v", source, target, result.Fallbacks)
	}
	return result, nil
}
