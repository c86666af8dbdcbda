package services

import (
	"context"
	"errors"
	"strings"

	"lingua/internal/config"
	"lingua/pkg/logger"
	"lingua/pkg/utils"
)

// ChatInput is one chat call. Messages, when present, replace Message;
// DocumentText is sent as a final user turn.
type ChatInput struct {
	Messages     []utils.ChatMessage
	Message      string
	DocumentText string
}

type ChatServiceInterface interface {
	Chat(ctx context.Context, in ChatInput) (string, error)
	VoiceReply(ctx context.Context, message string) (string, error)
}

type ChatService struct {
	completion utils.CompletionClient
	prompts    PromptServiceInterface
	model      string
	log        *logger.Logger
}

func NewChatService(
	completion utils.CompletionClient,
	prompts PromptServiceInterface,
	cfg *config.Config,
	log *logger.Logger,
) ChatServiceInterface {
	return &ChatService{
		completion: completion,
		prompts:    prompts,
		model:      cfg.AI.ChatModel,
		log:        log.With("service", "ChatService"),
	}
}

// BuildChatMessages assembles the conversation sent to the model.
func BuildChatMessages(in ChatInput) ([]utils.ChatMessage, error) {
	messages := make([]utils.ChatMessage, 0, len(in.Messages)+2)
	for _, m := range in.Messages {
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		messages = append(messages, m)
	}
	if len(messages) == 0 && strings.TrimSpace(in.Message) != "" {
		messages = append(messages, utils.ChatMessage{Role: utils.RoleUser, Content: in.Message})
	}
	if strings.TrimSpace(in.DocumentText) != "" {
		messages = append(messages, utils.ChatMessage{Role: utils.RoleUser, Content: in.DocumentText})
	}

	if len(messages) == 0 {
		return nil, utils.ErrNoChatInput
	}
	return messages, nil
}

// Chat returns the tutor's reply as an HTML fragment.
func (s *ChatService) Chat(ctx context.Context, in ChatInput) (string, error) {
	messages, err := BuildChatMessages(in)
	if err != nil {
		return "", err
	}

	reply, err := s.completion.Complete(ctx, utils.CompletionRequest{
		Model:    s.model,
		System:   s.prompts.ChatSystemPrompt(),
		Messages: messages,
	})
	switch {
	case errors.Is(err, utils.ErrEmptyCompletion):
		reply = utils.NoAIResponse
	case err != nil:
		s.log.Error("chat completion failed", "turns", len(messages), "error", err)
		return "", err
	}

	return utils.FormatChatHTML(reply), nil
}

func (s *ChatService) VoiceReply(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", utils.ErrNoVoiceInput
	}

	reply, err := s.completion.Complete(ctx, utils.CompletionRequest{
		Model:    s.model,
		System:   s.prompts.VoiceSystemPrompt(),
		Messages: []utils.ChatMessage{{Role: utils.RoleUser, Content: message}},
	})
	if errors.Is(err, utils.ErrEmptyCompletion) {
		return "No reply.", nil
	}
	if err != nil {
		s.log.Error("voice completion failed", "error", err)
		return "", err
	}
	return reply, nil
}
