// Package domain defines the request-scoped value types of the enrichment pipeline.
package domain

// Role is the author of a message in a completion conversation.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is a single role-tagged entry of a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SystemMessage returns a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage returns a user-role message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// CompletionRequest is one conversation sent to the completion endpoint.
type CompletionRequest struct {
	// Model overrides the client's default model when non-empty.
	Model    string
	Messages []Message
	// Tag identifies the prompt in logs, e.g. "translate:title" or "tutorialZh".
	Tag string
}
