package composer

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/heartmarshall/essaygen/internal/config"
	"github.com/heartmarshall/essaygen/internal/domain"
)

type wordFetcher interface {
	FetchRelated(ctx context.Context, term string, pos domain.PartOfSpeech) ([]string, error)
}

// Service composes sentences and paragraphs from topic-related words.
type Service struct {
	log   *slog.Logger
	words wordFetcher
	rng   *rand.Rand

	minSentences int
	maxSentences int
	parallel     bool
}

// Option configures a Service.
type Option func(*Service)

// WithRand sets the random source used for word selection and sentence
// counts. Tests pass a fixed-seed source to assert slot structure
// deterministically.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// NewService creates a composition service. The sentence count per
// paragraph is drawn from [cfg.MinSentences, cfg.MaxSentences]; parallel
// fans the four per-sentence category queries out concurrently.
func NewService(logger *slog.Logger, words wordFetcher, cfg config.GeneratorConfig, parallel bool, opts ...Option) *Service {
	s := &Service{
		log:          logger.With("service", "composer"),
		words:        words,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		minSentences: cfg.MinSentences,
		maxSentences: cfg.MaxSentences,
		parallel:     parallel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
