package domain

// FieldTranslationRequest asks for every non-blank field to be translated
// from SourceLang to TargetLang.
type FieldTranslationRequest struct {
	Fields     map[string]string `json:"fields"`
	SourceLang Language          `json:"source_lang"`
	TargetLang Language          `json:"target_lang"`
	// Model optionally overrides the configured default model.
	Model string `json:"model,omitempty"`
}

// FieldTranslationResult holds one value per non-blank input field. A field whose
// translation failed carries its original source text and is listed in Fallbacks.
type FieldTranslationResult struct {
	Fields map[string]string `json:"fields"`
	// Fallbacks lists fields whose source text was retained, sorted.
	Fallbacks []string `json:"fallbacks"`
	// Skipped lists blank input fields that were not sent for translation, sorted.
	Skipped []string `json:"skipped"`
	// Failures carries the reason behind each fallback, for diagnostics.
	Failures []Failure `json:"failures,omitempty"`
}

// HasFallbacks reports whether at least one field kept its source text.
func (r *FieldTranslationResult) HasFallbacks() bool {
	return len(r.Fallbacks) > 0
}

// Failure records an absorbed per-field or per-slot failure.
type Failure struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}
