package utils

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a conversation sent to the completion endpoint.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CompletionRequest struct {
	Model     string
	System    string
	Messages  []ChatMessage
	MaxTokens int
}

// CompletionClient returns the text of the first choice of a chat completion.
// Transport and API failures wrap ErrUpstream; a reply without choices or text is ErrEmptyCompletion.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type CompletionConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
	Referer  string
	Title    string
}

// NewCompletionClient Factory function to create either OpenAI or Gemini client based on config
func NewCompletionClient(cfg CompletionConfig) (CompletionClient, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai", "openrouter", "":
		return NewOpenAICompletionClient(cfg), nil
	case "gemini":
		client, err := NewGeminiCompletionClient(cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s. Use 'openai' or 'gemini'", cfg.Provider)
	}
}
