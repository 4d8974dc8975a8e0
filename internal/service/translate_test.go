package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geallenboy/ai-n8n/enricher/internal/adapter/llm"
	"github.com/geallenboy/ai-n8n/enricher/internal/config"
	"github.com/geallenboy/ai-n8n/enricher/internal/domain"
)

func zhToEn(fields map[string]string) domain.FieldTranslationRequest {
	return domain.FieldTranslationRequest{Fields: fields, SourceLang: domain.LanguageZh, TargetLang: domain.LanguageEn}
}

func TestTranslateFieldsSingleField(t *testing.T) {
	svc, fake := newTestService(t)
	fake.replies["translate:title"] = "Hello World"

	res, err := svc.TranslateFields(context.Background(), zhToEn(map[string]string{"title": "你好世界"}))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"title": "Hello World"}, res.Fields)
	assert.Empty(t, res.Fallbacks)
	assert.False(t, res.HasFallbacks())

	req, ok := fake.request("translate:title")
	require.True(t, ok)
	assert.Equal(t, "default-model", req.Model)
	assert.Contains(t, userContent(req), "你好世界")
	assert.Contains(t, req.Messages[0].Content, "from Simplified Chinese to English")
}

func TestTranslateFieldsSkipsBlankFields(t *testing.T) {
	svc, fake := newTestService(t)
	fake.replies["translate:title"] = "Hello World"

	res, err := svc.TranslateFields(context.Background(), zhToEn(map[string]string{"title": "你好世界", "excerpt": ""}))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"title": "Hello World"}, res.Fields)
	assert.NotContains(t, res.Fields, "excerpt")
	assert.Equal(t, []string{"excerpt"}, res.Skipped)
	assert.Equal(t, 1, fake.calls())
}

func TestTranslateFieldsAllBlankMakesNoCalls(t *testing.T) {
	svc, fake := newTestService(t)

	res, err := svc.TranslateFields(context.Background(), zhToEn(map[string]string{"a": "", "b": "   ", "c": "\n\t"}))
	require.NoError(t, err)

	assert.Empty(t, res.Fields)
	assert.Equal(t, []string{"a", "b", "c"}, res.Skipped)
	assert.Zero(t, fake.calls())
}

func TestTranslateFieldsFallbackOnFailure(t *testing.T) {
	svc, fake := newTestService(t)
	fake.failures["translate:title"] = &llm.RemoteServiceError{StatusCode: http.StatusInternalServerError, Body: "boom"}
	fake.replies["translate:body"] = "Body text"

	res, err := svc.TranslateFields(context.Background(), zhToEn(map[string]string{"title": "你好世界", "body": "正文"}))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"title": "你好世界", "body": "Body text"}, res.Fields)
	assert.Equal(t, []string{"title"}, res.Fallbacks)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "title", res.Failures[0].Name)
	assert.Contains(t, res.Failures[0].Reason, "[500]")
}

func TestTranslateFieldsFallbackOnEmptyCompletion(t *testing.T) {
	svc, fake := newTestService(t)
	fake.replies["translate:title"] = "  \n"

	res, err := svc.TranslateFields(context.Background(), zhToEn(map[string]string{"title": "你好世界"}))
	require.NoError(t, err)

	assert.Equal(t, "你好世界", res.Fields["title"])
	assert.Equal(t, []string{"title"}, res.Fallbacks)
}

func TestTranslateFieldsTrimsCompletion(t *testing.T) {
	svc, fake := newTestService(t)
	fake.replies["translate:title"] = "\nHello World\n"

	res, err := svc.TranslateFields(context.Background(), zhToEn(map[string]string{"title": "你好世界"}))
	require.NoError(t, err)
	assert.Equal(t, "Hello World", res.Fields["title"])
}

func TestTranslateFieldsKeySetMatchesNonBlankInput(t *testing.T) {
	svc, fake := newTestService(t)
	fake.failures["translate:f2"] = &llm.MalformedResponseError{Reason: "no choices returned"}
	fake.failures["translate:f4"] = &llm.TransportError{Err: fmt.Errorf("connection reset")}

	input := map[string]string{"f1": "一", "f2": "二", "f3": " ", "f4": "四", "f5": "五", "f6": ""}
	res, err := svc.TranslateFields(context.Background(), zhToEn(input))
	require.NoError(t, err)

	keys := make([]string, 0, len(res.Fields))
	for k := range res.Fields {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"f1", "f2", "f4", "f5"}, keys)
	assert.Equal(t, []string{"f2", "f4"}, res.Fallbacks)
	assert.Equal(t, "二", res.Fields["f2"])
	assert.Equal(t, "四", res.Fields["f4"])
	assert.Equal(t, "generated translate:f1", res.Fields["f1"])
}

func TestTranslateFieldsRoundTrip(t *testing.T) {
	svc, fake := newTestService(t)
	fake.replies["translate:title"] = "Hello World"

	first, err := svc.TranslateFields(context.Background(), zhToEn(map[string]string{"title": "你好世界"}))
	require.NoError(t, err)

	fake.replies["translate:title"] = "你好，世界"
	second, err := svc.TranslateFields(context.Background(), domain.FieldTranslationRequest{
		Fields:     first.Fields,
		SourceLang: domain.LanguageEn,
		TargetLang: domain.LanguageZh,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"title": "你好，世界"}, second.Fields)

	req, ok := fake.request("translate:title")
	require.True(t, ok)
	assert.Contains(t, userContent(req), "Hello World")
	assert.Contains(t, req.Messages[0].Content, "from English to Simplified Chinese")
}

func TestTranslateFieldsModelOverride(t *testing.T) {
	svc, fake := newTestService(t)

	req := zhToEn(map[string]string{"title": "你好世界"})
	req.Model = "anthropic/claude-3.5-sonnet"
	_, err := svc.TranslateFields(context.Background(), req)
	require.NoError(t, err)

	got, ok := fake.request("translate:title")
	require.True(t, ok)
	assert.Equal(t, "anthropic/claude-3.5-sonnet", got.Model)
}

func TestTranslateFieldsInvalidLanguages(t *testing.T) {
	svc, fake := newTestService(t)
	fields := map[string]string{"title": "你好世界"}

	tests := []struct {
		name   string
		source domain.Language
		target domain.Language
	}{
		{name: "missing source", source: "", target: domain.LanguageEn},
		{name: "missing target", source: domain.LanguageZh, target: " "},
		{name: "same language", source: "ZH", target: domain.LanguageZh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.TranslateFields(context.Background(), domain.FieldTranslationRequest{Fields: fields, SourceLang: tt.source, TargetLang: tt.target})
			assert.ErrorIs(t, err, ErrInvalidLanguage)
		})
	}
	assert.Zero(t, fake.calls())
}

func TestTranslateFieldsConfigErrors(t *testing.T) {
	fields := map[string]string{"title": "你好世界"}

	t.Run("missing model", func(t *testing.T) {
		cfg := testConfig()
		cfg.LLMModel = ""
		fake := newFakeCompleter()

		_, err := New(fake, cfg).TranslateFields(context.Background(), zhToEn(fields))
		assert.ErrorIs(t, err, config.ErrMissingModel)
		assert.True(t, IsConfigError(err))
		assert.Zero(t, fake.calls())
	})

	t.Run("missing credential", func(t *testing.T) {
		cfg := testConfig()
		cfg.LLMAPIKey = ""
		fake := newFakeCompleter()

		_, err := New(fake, cfg).TranslateFields(context.Background(), zhToEn(fields))
		assert.ErrorIs(t, err, config.ErrMissingAPIKey)
		assert.Zero(t, fake.calls())
	})

	t.Run("mock mode needs no credential", func(t *testing.T) {
		cfg := testConfig()
		cfg.LLMAPIKey = ""
		cfg.Mode = config.ModeMock

		_, err := New(newFakeCompleter(), cfg).TranslateFields(context.Background(), zhToEn(fields))
		assert.NoError(t, err)
	})
}

func TestTranslateFieldsPerCallTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.CallTimeoutMs = 50
	fake := newFakeCompleter()
	fake.blockTags["translate:slow"] = true
	svc := New(fake, cfg)

	start := time.Now()
	res, err := svc.TranslateFields(context.Background(), zhToEn(map[string]string{"slow": "慢", "fast": "快"}))
	require.NoError(t, err)

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, "慢", res.Fields["slow"])
	assert.Equal(t, "generated translate:fast", res.Fields["fast"])
	assert.Equal(t, []string{"slow"}, res.Fallbacks)
}

func TestTranslateFieldsCancelledContextFallsBack(t *testing.T) {
	svc, fake := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := svc.TranslateFields(ctx, zhToEn(map[string]string{"title": "你好世界", "body": "正文"}))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"title": "你好世界", "body": "正文"}, res.Fields)
	assert.Equal(t, []string{"body", "title"}, res.Fallbacks)
	assert.Zero(t, fake.calls())
}

func TestTranslateFieldsBoundsConcurrency(t *testing.T) {
	cfg := testConfig()
	cfg.MaxConcurrency = 2
	fake := newFakeCompleter()
	svc := New(fake, cfg)

	fields := map[string]string{}
	for i := 0; i < 10; i++ {
		fields[fmt.Sprintf("f%d", i)] = "文本"
	}
	res, err := svc.TranslateFields(context.Background(), zhToEn(fields))
	require.NoError(t, err)

	assert.Len(t, res.Fields, 10)
	assert.Equal(t, 10, fake.calls())
	assert.LessOrEqual(t, fake.maxInFlight, 2)
}

func TestTranslateFieldsRemoteEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":{"message":"overloaded"}}`)
	}))
	defer server.Close()

	cfg := testConfig()
	client := llm.NewClient(llm.Options{BaseURL: server.URL, APIKey: cfg.LLMAPIKey, Model: cfg.LLMModel, Timeout: time.Second})
	svc := New(client, cfg)

	res, err := svc.TranslateFields(context.Background(), zhToEn(map[string]string{"title": "你好世界"}))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"title": "你好世界"}, res.Fields)
	assert.Equal(t, []string{"title"}, res.Fallbacks)
}
