package topics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/essaygen/internal/domain"
)

// Resolve turns seed words into topics. A seed becomes a topic when the
// word service returns at least one trigger association for it; there is
// no scoring beyond that. The result keeps first-seen order with
// duplicates removed, capped at maxTopics, and may be empty if every
// seed came back dry.
func (s *Service) Resolve(ctx context.Context, seeds []string) ([]string, error) {
	if len(seeds) == 0 {
		return nil, nil
	}

	lists, err := s.fetchTriggerLists(ctx, seeds)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(seeds))
	topics := make([]string, 0, len(seeds))
	for i, seed := range seeds {
		if len(lists[i]) == 0 {
			continue
		}
		if _, ok := seen[seed]; ok {
			continue
		}
		seen[seed] = struct{}{}
		topics = append(topics, seed)
		if len(topics) == s.maxTopics {
			break
		}
	}

	s.log.InfoContext(ctx, "topics resolved",
		slog.Int("seeds", len(seeds)),
		slog.Int("topics", len(topics)),
	)

	return topics, nil
}

// fetchTriggerLists collects trigger associations per seed, sequentially
// or fanned out when parallel mode is on. Slots are indexed by seed
// position so aggregation order stays deterministic either way.
func (s *Service) fetchTriggerLists(ctx context.Context, seeds []string) ([][]string, error) {
	lists := make([][]string, len(seeds))

	if !s.parallel {
		for i, seed := range seeds {
			words, err := s.fetchTriggers(ctx, seed)
			if err != nil {
				return nil, err
			}
			lists[i] = words
		}
		return lists, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, seed := range seeds {
		g.Go(func() error {
			words, err := s.fetchTriggers(gctx, seed)
			if err != nil {
				return err
			}
			lists[i] = words
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lists, nil
}

// fetchTriggers wraps one provider call. An unavailable service degrades
// to "no associations" for that seed; anything else propagates.
func (s *Service) fetchTriggers(ctx context.Context, seed string) ([]string, error) {
	words, err := s.words.FetchTriggers(ctx, seed)
	if err != nil {
		if errors.Is(err, domain.ErrServiceUnavailable) {
			s.log.WarnContext(ctx, "trigger lookup failed, seed skipped",
				slog.String("seed", seed),
				slog.String("error", err.Error()),
			)
			return nil, nil
		}
		return nil, fmt.Errorf("fetch triggers for %q: %w", seed, err)
	}
	return words, nil
}
