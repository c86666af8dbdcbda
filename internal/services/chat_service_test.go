package services

import (
	"context"
	"errors"
	"testing"

	"lingua/pkg/logger"
	"lingua/pkg/utils"
)

func TestBuildChatMessages(t *testing.T) {
	history := []utils.ChatMessage{
		{Role: utils.RoleUser, Content: "How do I say cat?"},
		{Role: utils.RoleAssistant, Content: "Gato."},
		{Role: utils.RoleUser, Content: "   "},
	}

	tests := []struct {
		name    string
		in      ChatInput
		want    []string
		wantErr error
	}{
		{"message only", ChatInput{Message: "Hola"}, []string{"Hola"}, nil},
		{"history wins over message", ChatInput{Messages: history, Message: "ignored"}, []string{"How do I say cat?", "Gato."}, nil},
		{"document appended", ChatInput{Message: "Translate this", DocumentText: "Bonjour"}, []string{"Translate this", "Bonjour"}, nil},
		{"document only", ChatInput{DocumentText: "Bonjour"}, []string{"Bonjour"}, nil},
		{"nothing", ChatInput{Message: " "}, nil, utils.ErrNoChatInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildChatMessages(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("BuildChatMessages() error = %v, want %v", err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d messages, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i].Content != tt.want[i] {
					t.Errorf("message %d = %q, want %q", i, got[i].Content, tt.want[i])
				}
			}
		})
	}
}

func TestChat(t *testing.T) {
	completion := &fakeCompletion{reply: "### Cats\n- gato\n- minino"}
	svc := NewChatService(completion, NewPromptService(), testConfig(), logger.NewNop())

	reply, err := svc.Chat(context.Background(), ChatInput{Message: "cat?"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if reply != "<h3>Cats</h3><ul><li>gato</li><li>minino</li></ul>" {
		t.Errorf("Chat() = %q", reply)
	}
	if req := completion.last(); req.Model != "chat-model" || req.System == "" {
		t.Errorf("completion request = %+v", req)
	}
}

func TestChatEmptyCompletion(t *testing.T) {
	svc := NewChatService(&fakeCompletion{err: utils.ErrEmptyCompletion}, NewPromptService(), testConfig(), logger.NewNop())

	reply, err := svc.Chat(context.Background(), ChatInput{Message: "hi"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if reply != "<p>No response from AI.</p>" {
		t.Errorf("Chat() = %q", reply)
	}
}

func TestVoiceReply(t *testing.T) {
	tests := []struct {
		name    string
		message string
		reply   string
		compErr error
		want    string
		wantErr error
	}{
		{"reply", "what time is it", "It is noon.", nil, "It is noon.", nil},
		{"empty completion", "hello", "", utils.ErrEmptyCompletion, "No reply.", nil},
		{"no input", "  ", "", nil, "", utils.ErrNoVoiceInput},
		{"upstream", "hello", "", utils.ErrUpstream, "", utils.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewChatService(&fakeCompletion{reply: tt.reply, err: tt.compErr}, NewPromptService(), testConfig(), logger.NewNop())
			got, err := svc.VoiceReply(context.Background(), tt.message)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("VoiceReply() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("VoiceReply() = %q, want %q", got, tt.want)
			}
		})
	}
}
