package domain

// WorkflowDocument is the input of the content analysis pipeline.
type WorkflowDocument struct {
	// Narrative is optional free text describing the workflow.
	Narrative string `json:"narrative"`
	// Definition is the structured workflow definition, passed through as-is.
	Definition any `json:"workflow"`
	// Model optionally overrides the configured default model.
	Model string `json:"model,omitempty"`
}

// NarrativeKind is one of the three generated narrative types.
type NarrativeKind string

const (
	NarrativeSummary        NarrativeKind = "summary"
	NarrativeInterpretation NarrativeKind = "interpretation"
	NarrativeTutorial       NarrativeKind = "tutorial"
)

// Slot names one of the six outputs of the pipeline.
type Slot string

const (
	SlotSummaryZh        Slot = "summaryZh"
	SlotSummaryEn        Slot = "summaryEn"
	SlotInterpretationZh Slot = "interpretationZh"
	SlotInterpretationEn Slot = "interpretationEn"
	SlotTutorialZh       Slot = "tutorialZh"
	SlotTutorialEn       Slot = "tutorialEn"
)

// SlotFor returns the slot produced by a narrative kind in a language.
func SlotFor(kind NarrativeKind, lang Language) Slot {
	return Slot(string(kind) + lang.Suffix())
}

// AllSlots lists the six slots in reporting order.
var AllSlots = []Slot{
	SlotSummaryZh,
	SlotSummaryEn,
	SlotInterpretationZh,
	SlotInterpretationEn,
	SlotTutorialZh,
	SlotTutorialEn,
}

// ContentBundle is the bilingual output of the pipeline. The untranslated fields
// are Chinese; the *Translated fields are English. An empty field is unavailable.
type ContentBundle struct {
	Summary                  string `json:"summary"`
	SummaryTranslated        string `json:"summary_translated"`
	Interpretation           string `json:"interpretation"`
	InterpretationTranslated string `json:"interpretation_translated"`
	Tutorial                 string `json:"tutorial"`
	TutorialTranslated       string `json:"tutorial_translated"`

	// Unavailable lists the slots whose call failed, in AllSlots order.
	Unavailable []Slot    `json:"unavailable"`
	Failures    []Failure `json:"failures,omitempty"`
}

// Set stores text into the field backing slot.
func (b *ContentBundle) Set(slot Slot, text string) {
	switch slot {
	case SlotSummaryZh:
		b.Summary = text
	case SlotSummaryEn:
		b.SummaryTranslated = text
	case SlotInterpretationZh:
		b.Interpretation = text
	case SlotInterpretationEn:
		b.InterpretationTranslated = text
	case SlotTutorialZh:
		b.Tutorial = text
	case SlotTutorialEn:
		b.TutorialTranslated = text
	}
}

// Get returns the text stored for slot.
func (b *ContentBundle) Get(slot Slot) string {
	switch slot {
	case SlotSummaryZh:
		return b.Summary
	case SlotSummaryEn:
		return b.SummaryTranslated
	case SlotInterpretationZh:
		return b.Interpretation
	case SlotInterpretationEn:
		return b.InterpretationTranslated
	case SlotTutorialZh:
		return b.Tutorial
	case SlotTutorialEn:
		return b.TutorialTranslated
	}
	return ""
}

// Complete reports whether every slot was produced.
func (b *ContentBundle) Complete() bool {
	return len(b.Unavailable) == 0
}
