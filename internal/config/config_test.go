package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("AI_MODEL", "")
	t.Setenv("PORT", "")
	t.Setenv("TRANSLATION_CONCURRENCY", "")
	t.Setenv("AI_BASE_URL", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.Port)
	}
	if cfg.AI.Provider != "openai" {
		t.Errorf("AI.Provider = %q, want openai", cfg.AI.Provider)
	}
	if cfg.AI.Model != "openai/gpt-3.5-turbo" {
		t.Errorf("AI.Model = %q", cfg.AI.Model)
	}
	if cfg.Translation.Concurrency != 5 {
		t.Errorf("Translation.Concurrency = %d, want 5", cfg.Translation.Concurrency)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AI_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("AI_MODEL", "")
	t.Setenv("AI_TIMEOUT", "15s")
	t.Setenv("CACHE_MAX_ENTRIES", "not-a-number")

	cfg := Load()

	if cfg.AI.Provider != "gemini" {
		t.Errorf("AI.Provider = %q, want gemini", cfg.AI.Provider)
	}
	if cfg.AI.APIKey != "g-key" {
		t.Errorf("AI.APIKey = %q, want g-key", cfg.AI.APIKey)
	}
	if cfg.AI.Model != "gemini-1.5-flash" {
		t.Errorf("AI.Model = %q, want gemini-1.5-flash", cfg.AI.Model)
	}
	if cfg.AI.Timeout != 15*time.Second {
		t.Errorf("AI.Timeout = %v, want 15s", cfg.AI.Timeout)
	}
	if cfg.Cache.MaxEntries != 10000 {
		t.Errorf("Cache.MaxEntries = %d, want default 10000", cfg.Cache.MaxEntries)
	}
}

func TestLoadAIBaseURLFollowsKey(t *testing.T) {
	tests := []struct {
		name      string
		provider  string
		routerKey string
		openAIKey string
		wantKey   string
		wantURL   string
		wantModel string
	}{
		{"openrouter key", "openai", "or-key", "", "or-key", "https://openrouter.ai/api/v1", "openai/gpt-3.5-turbo"},
		{"openai key only", "openai", "", "sk-key", "sk-key", "https://api.openai.com/v1", "gpt-3.5-turbo"},
		{"both keys prefer openrouter", "openai", "or-key", "sk-key", "or-key", "https://openrouter.ai/api/v1", "openai/gpt-3.5-turbo"},
		{"explicit openrouter provider", "openrouter", "", "sk-key", "sk-key", "https://openrouter.ai/api/v1", "openai/gpt-3.5-turbo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AI_PROVIDER", tt.provider)
			t.Setenv("AI_BASE_URL", "")
			t.Setenv("AI_MODEL", "")
			t.Setenv("OPENROUTER_API_KEY", tt.routerKey)
			t.Setenv("OPENAI_API_KEY", tt.openAIKey)

			cfg := Load()
			if cfg.AI.APIKey != tt.wantKey || cfg.AI.BaseURL != tt.wantURL || cfg.AI.Model != tt.wantModel {
				t.Errorf("AI = key %q url %q model %q, want %q %q %q",
					cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, tt.wantKey, tt.wantURL, tt.wantModel)
			}
		})
	}
}
