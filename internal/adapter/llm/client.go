package llm

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/geallenboy/ai-n8n/enricher/internal/config"
	"github.com/geallenboy/ai-n8n/enricher/internal/domain"
)

const (
	// Temperature is applied to every call; the workload is uniform across call sites.
	Temperature = 0.7
	// MaxTokens is the completion ceiling applied to every call.
	MaxTokens = 4000
)

// Options configures a Client. It is read once at construction.
type Options struct {
	BaseURL  string
	APIKey   string
	Model    string
	Referer  string
	AppTitle string
	// Timeout bounds the whole HTTP exchange; zero leaves it to the call context.
	Timeout time.Duration
}

// Client is a stateless chat-completion client safe for concurrent use.
type Client struct {
	endpoint string
	model    string
	http     *resty.Client
}

// NewClient creates a new completion client.
func NewClient(opts Options) *Client {
	c := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	if opts.APIKey != "" {
		c.SetAuthToken(opts.APIKey)
	}
	if opts.Referer != "" {
		c.SetHeader("HTTP-Referer", opts.Referer)
	}
	if opts.AppTitle != "" {
		c.SetHeader("X-Title", opts.AppTitle)
	}
	return &Client{
		endpoint: strings.TrimSuffix(opts.BaseURL, "/") + "/chat/completions",
		model:    opts.Model,
		http:     c,
	}
}

// ChatCompletionRequest is the wire body sent to the endpoint.
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// ChatMessage is a wire message.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionResponse is the subset of the response body the client reads.
// Pointers distinguish a missing field from an empty one.
type ChatCompletionResponse struct {
	Choices []Choice `json:"choices"`
}

// Choice is a completion choice.
type Choice struct {
	Message *ChoiceMessage `json:"message"`
}

// ChoiceMessage is the message of a choice.
type ChoiceMessage struct {
	Content *string `json:"content"`
}

// Model returns the default model identifier.
func (c *Client) Model() string {
	return c.model
}

// Complete sends the conversation and returns the first choice's content untouched.
// An empty string is a legal result.
func (c *Client) Complete(ctx context.Context, req *domain.CompletionRequest) (string, error) {
	if req == nil || len(req.Messages) == 0 {
		return "", ErrEmptyConversation
	}
	model := req.Model
	if model == "" {
		model = c.model
	}
	if model == "" {
		return "", config.ErrMissingModel
	}

	body := ChatCompletionRequest{
		Model:       model,
		Messages:    make([]ChatMessage, 0, len(req.Messages)),
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	}
	for _, m := range req.Messages {
		body.Messages = append(body.Messages, ChatMessage{Role: string(m.Role), Content: m.Content})
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(c.endpoint)
	if err != nil {
		return "", &TransportError{Err: err}
	}

	raw := resp.Body()
	if !resp.IsSuccess() {
		return "", &RemoteServiceError{StatusCode: resp.StatusCode(), Body: abbreviate(string(raw), maxBodyInError)}
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", &MalformedResponseError{Reason: "invalid JSON", Body: abbreviate(string(raw), maxBodyInError), Err: err}
	}
	if len(result.Choices) == 0 {
		return "", &MalformedResponseError{Reason: "no choices returned", Body: abbreviate(string(raw), maxBodyInError)}
	}
	msg := result.Choices[0].Message
	if msg == nil {
		return "", &MalformedResponseError{Reason: "first choice has no message", Body: abbreviate(string(raw), maxBodyInError)}
	}
	if msg.Content == nil {
		return "", &MalformedResponseError{Reason: "first choice message has no content", Body: abbreviate(string(raw), maxBodyInError)}
	}
	return *msg.Content, nil
}
