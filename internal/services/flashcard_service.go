package services

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"lingua/internal/config"
	"lingua/internal/models/response_models"
	"lingua/pkg/logger"
	"lingua/pkg/utils"
)

const flashcardBatchSize = 15

var wordBank = []string{
	"apple", "banana", "car", "dog", "elephant", "flower", "guitar", "house", "ice", "jacket",
	"kite", "lemon", "monkey", "notebook", "orange", "pear", "quilt", "rocket", "sun", "tree",
	"umbrella", "vase", "window", "xylophone", "yacht", "zebra", "ball", "book", "chair", "desk",
	"ear", "fish", "goat", "hat", "ink", "juice", "key", "lamp", "milk", "nest", "owl", "pen",
	"queen", "rain", "star", "toy", "van", "water", "x-ray", "yarn", "zip", "bottle", "cloud",
	"drum", "egg", "fan", "glove", "hill", "island", "jam", "kangaroo", "leaf", "mountain",
	"net", "ocean", "pencil", "question", "ring", "shoe", "table", "uniform", "violin", "whistle",
	"axe", "yogurt", "zoo", "bubble", "cake", "doll", "engine", "flag", "game", "hammer",
	"idea", "jungle", "kettle", "ladder", "mirror", "nail", "oven", "pillow", "quiet", "rope",
	"sock", "television", "unicorn", "village", "wheel",
}

type FlashcardServiceInterface interface {
	GetFlashcards(ctx context.Context, language string) ([]response_models.Flashcard, error)
}

type FlashcardService struct {
	translator  Translator
	concurrency int
	wordTimeout time.Duration
	log         *logger.Logger
}

func NewFlashcardService(translator Translator, cfg *config.Config, log *logger.Logger) FlashcardServiceInterface {
	concurrency := cfg.Translation.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}
	return &FlashcardService{
		translator:  translator,
		concurrency: concurrency,
		wordTimeout: cfg.Translation.Timeout,
		log:         log.With("service", "FlashcardService"),
	}
}

// GetFlashcards picks distinct random words and translates them. A word whose
// translation fails or times out is returned untranslated.
func (s *FlashcardService) GetFlashcards(ctx context.Context, language string) ([]response_models.Flashcard, error) {
	language = strings.TrimSpace(language)
	if language == "" {
		return nil, utils.ErrLanguageRequired
	}

	words := pickWords(wordBank, flashcardBatchSize)
	cards := make([]response_models.Flashcard, len(words))

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)
	for i, word := range words {
		g.Go(func() error {
			cards[i] = response_models.Flashcard{EnglishWord: word, TranslatedWord: s.translate(ctx, word, language)}
			return nil
		})
	}
	_ = g.Wait()

	return cards, nil
}

func (s *FlashcardService) translate(ctx context.Context, word, language string) string {
	if s.wordTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.wordTimeout)
		defer cancel()
	}

	text, err := s.translator.Translate(ctx, word, language)
	if err != nil {
		s.log.Warn("translation failed, using original word", "word", word, "language", language, "error", err)
		return word
	}
	return text
}

// pickWords returns n distinct entries of bank in random order.
func pickWords(bank []string, n int) []string {
	if n > len(bank) {
		n = len(bank)
	}
	out := make([]string, n)
	for i, j := range rand.Perm(len(bank))[:n] {
		out[i] = bank[j]
	}
	return out
}
