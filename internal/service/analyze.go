package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/geallenboy/ai-n8n/enricher/internal/domain"
	"github.com/geallenboy/ai-n8n/enricher/internal/prompt"
)

// bundleLanguages are the primary and translated languages of a ContentBundle.
var bundleLanguages = []domain.Language{domain.LanguageZh, domain.LanguageEn}

type slotTask struct {
	slot  domain.Slot
	build func() ([]domain.Message, error)
}

// AnalyzeContent runs the six independent summary, interpretation and tutorial calls
// and assembles the bilingual bundle. A failed call leaves its slot empty and lists
// it in Unavailable; it never fails the other slots. Only configuration errors are
// returned.
func (s *Service) AnalyzeContent(ctx context.Context, doc domain.WorkflowDocument) (*domain.ContentBundle, error) {
	model, err := s.resolveModel(doc.Model)
	if err != nil {
		return nil, fmt.Errorf("analyze content: %w", err)
	}

	tasks := s.slotTasks(doc)
	outcomes := make([]fieldOutcome, len(tasks))

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency())
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			msgs, err := task.build()
			if err != nil {
				outcomes[i] = fieldOutcome{err: err}
				return nil
			}
			out, err := s.complete(ctx, &domain.CompletionRequest{
				Model:    model,
				Messages: msgs,
				Tag:      string(task.slot),
			})
			if err == nil && strings.TrimSpace(out) == "" {
				err = errEmptyCompletion
			}
			outcomes[i] = fieldOutcome{text: strings.TrimSpace(out), err: err}
			return nil
		})
	}
	_ = g.Wait()

	bundle := &domain.ContentBundle{Unavailable: []domain.Slot{}}
	for i, task := range tasks {
		o := outcomes[i]
		if o.err != nil {
			bundle.Unavailable = append(bundle.Unavailable, task.slot)
			bundle.Failures = append(bundle.Failures, domain.Failure{Name: string(task.slot), Reason: o.err.Error()})
			continue
		}
		bundle.Set(task.slot, o.text)
	}

	if !bundle.Complete() {
		log.Printf("WARN: content analysis produced %d/%d slots, unavailable %v",
			len(tasks)-len(bundle.Unavailable), len(tasks), bundle.Unavailable)
	}
	return bundle, nil
}

// slotTasks returns one task per slot in domain.AllSlots order. Interpretation and
// tutorial read the structured definition; the summary reads the narrative when
// present and the definition otherwise.
func (s *Service) slotTasks(doc domain.WorkflowDocument) []slotTask {
	summarySource := func() (string, error) {
		if strings.TrimSpace(doc.Narrative) != "" {
			return doc.Narrative, nil
		}
		return prompt.SerializeDefinition(doc.Definition)
	}

	tasks := make([]slotTask, 0, 3*len(bundleLanguages))
	for _, lang := range bundleLanguages {
		lang := lang
		tasks = append(tasks, slotTask{
			slot: domain.SlotFor(domain.NarrativeSummary, lang),
			build: func() ([]domain.Message, error) {
				content, err := summarySource()
				if err != nil {
					return nil, err
				}
				return prompt.Summary(content, lang), nil
			},
		})
	}
	for _, lang := range bundleLanguages {
		lang := lang
		tasks = append(tasks, slotTask{
			slot: domain.SlotFor(domain.NarrativeInterpretation, lang),
			build: func() ([]domain.Message, error) {
				return prompt.Interpretation(doc.Definition, doc.Narrative, lang)
			},
		})
	}
	for _, lang := range bundleLanguages {
		lang := lang
		tasks = append(tasks, slotTask{
			slot: domain.SlotFor(domain.NarrativeTutorial, lang),
			build: func() ([]domain.Message, error) {
				return prompt.Tutorial(doc.Definition, doc.Narrative, lang)
			},
		})
	}
	return tasks
}
