package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lingua/internal/config"
	"lingua/pkg/logger"
	mem "lingua/pkg/memcache"
	"lingua/pkg/utils"
)

// Translator translates a single English word into the target language.
type Translator interface {
	Translate(ctx context.Context, word, targetLanguage string) (string, error)
}

// MyMemoryTranslator calls the MyMemory GET /get endpoint.
type MyMemoryTranslator struct {
	baseURL string
	client  *http.Client
}

func NewMyMemoryTranslator(cfg *config.Config) *MyMemoryTranslator {
	return &MyMemoryTranslator{
		baseURL: cfg.Translation.URL,
		client:  &http.Client{Timeout: cfg.Translation.Timeout},
	}
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus json.Number `json:"responseStatus"`
}

func (t *MyMemoryTranslator) Translate(ctx context.Context, word, targetLanguage string) (string, error) {
	q := url.Values{}
	q.Set("q", word)
	q.Set("langpair", "en|"+targetLanguage)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: translate %q: %v", utils.ErrUpstream, word, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: translate %q: status %d", utils.ErrUpstream, word, resp.StatusCode)
	}

	var body myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: translate %q: %v", utils.ErrUpstream, word, err)
	}
	// quota and bad language pairs come back as HTTP 200 with the warning as the translation
	if status := body.ResponseStatus.String(); status != "" && status != "200" {
		return "", fmt.Errorf("%w: translate %q: responseStatus %s: %s",
			utils.ErrUpstream, word, status, body.ResponseData.TranslatedText)
	}
	text := strings.TrimSpace(body.ResponseData.TranslatedText)
	if text == "" {
		return "", fmt.Errorf("%w: empty translation for %q", utils.ErrUpstream, word)
	}
	return text, nil
}

// CachingTranslator serves repeated words from the cache store.
type CachingTranslator struct {
	next  Translator
	store mem.Store
	ttl   time.Duration
	log   *logger.Logger
}

func NewCachingTranslator(next Translator, store mem.Store, ttl time.Duration, log *logger.Logger) *CachingTranslator {
	return &CachingTranslator{next: next, store: store, ttl: ttl, log: log}
}

func translationKey(word, targetLanguage string) string {
	return "translation:" + strings.ToLower(targetLanguage) + ":" + strings.ToLower(word)
}

func (t *CachingTranslator) Translate(ctx context.Context, word, targetLanguage string) (string, error) {
	key := translationKey(word, targetLanguage)

	cached, ok, err := t.store.Get(ctx, key)
	if err != nil {
		t.log.Warn("translation cache read failed", "key", key, "error", err)
	} else if ok {
		return cached, nil
	}

	text, err := t.next.Translate(ctx, word, targetLanguage)
	if err != nil {
		return "", err
	}

	if err := t.store.Set(ctx, key, text, t.ttl); err != nil {
		t.log.Warn("translation cache write failed", "key", key, "error", err)
	}
	return text, nil
}
