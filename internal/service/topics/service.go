package topics

import (
	"context"
	"log/slog"
)

type triggerFetcher interface {
	FetchTriggers(ctx context.Context, term string) ([]string, error)
}

// Service resolves cleaned seed words into generation topics by probing
// the word-association service for trigger associations.
type Service struct {
	log       *slog.Logger
	words     triggerFetcher
	maxTopics int
	parallel  bool
}

// NewService creates a topic resolution service. maxTopics caps the
// resolved set; parallel fans the per-seed lookups out concurrently.
func NewService(logger *slog.Logger, words triggerFetcher, maxTopics int, parallel bool) *Service {
	return &Service{
		log:       logger.With("service", "topics"),
		words:     words,
		maxTopics: maxTopics,
		parallel:  parallel,
	}
}
