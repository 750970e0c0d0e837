package composer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/essaygen/internal/domain"
)

// GenerateParagraphs produces exactly n paragraphs, cycling through
// topics round-robin. Each paragraph holds a random number of sentences
// within the configured bounds, joined with single spaces.
// An empty topic set fails with ErrNoTopics; n must be positive.
func (s *Service) GenerateParagraphs(ctx context.Context, topics []string, n int) ([]string, error) {
	if n <= 0 {
		return nil, domain.NewValidationError("paragraphs", "must be positive")
	}
	if len(topics) == 0 {
		return nil, domain.ErrNoTopics
	}

	paragraphs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		topic := topics[i%len(topics)]
		count := s.sentenceCount()

		sentences := make([]string, 0, count)
		for j := 0; j < count; j++ {
			sentences = append(sentences, s.BuildSentence(ctx, topic))
		}
		paragraphs = append(paragraphs, strings.Join(sentences, " "))

		s.log.DebugContext(ctx, "paragraph generated",
			slog.Int("index", i+1),
			slog.String("topic", topic),
			slog.Int("sentences", count),
		)
	}

	s.log.InfoContext(ctx, "paragraphs generated",
		slog.Int("paragraphs", n),
		slog.Int("topics", len(topics)),
	)

	return paragraphs, nil
}

// sentenceCount draws a sentence count in [minSentences, maxSentences].
func (s *Service) sentenceCount() int {
	span := s.maxSentences - s.minSentences
	if span <= 0 {
		return s.minSentences
	}
	return s.minSentences + s.rng.Intn(span+1)
}
