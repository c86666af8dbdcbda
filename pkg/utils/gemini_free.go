package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiCompletionClient implements CompletionClient using Google's Gemini models
type GeminiCompletionClient struct {
	client *genai.Client
	cfg    CompletionConfig
}

// NewGeminiCompletionClient creates a new Gemini client
func NewGeminiCompletionClient(cfg CompletionConfig) (*GeminiCompletionClient, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{client: client, cfg: cfg}, nil
}

func (c *GeminiCompletionClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if len(req.Messages) == 0 {
		return "", fmt.Errorf("%w: no messages to send", ErrUpstream)
	}

	modelName := req.Model
	if modelName == "" {
		modelName = "gemini-1.5-flash" // Free tier model
	}
	model := c.client.GenerativeModel(modelName)
	if req.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	// Gemini has no system role inside the history and wants the last user turn sent separately.
	session := model.StartChat()
	last := req.Messages[len(req.Messages)-1]
	for _, m := range req.Messages[:len(req.Messages)-1] {
		session.History = append(session.History, &genai.Content{
			Role:  geminiRole(m.Role),
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", ErrUpstream, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}

	content := strings.TrimSpace(out.String())
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}

func geminiRole(role string) string {
	switch strings.ToLower(role) {
	case RoleAssistant, "bot", "model":
		return "model"
	default:
		return "user"
	}
}

// Close closes the Gemini client
func (c *GeminiCompletionClient) Close() error {
	return c.client.Close()
}
