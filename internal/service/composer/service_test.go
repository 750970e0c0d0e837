package composer

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"
	"unicode"

	"github.com/heartmarshall/essaygen/internal/config"
	"github.com/heartmarshall/essaygen/internal/domain"
)

// ---------------------------------------------------------------------------
// Manual mocks (func fields)
// ---------------------------------------------------------------------------

type mockWordFetcher struct {
	FetchRelatedFunc func(ctx context.Context, term string, pos domain.PartOfSpeech) ([]string, error)
}

func (m *mockWordFetcher) FetchRelated(ctx context.Context, term string, pos domain.PartOfSpeech) ([]string, error) {
	return m.FetchRelatedFunc(ctx, term, pos)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var fixtureLists = map[domain.PartOfSpeech][]string{
	domain.PartOfSpeechNoun:      {"wave", "shore", "tide", "reef"},
	domain.PartOfSpeechVerb:      {"crashes", "rolls", "glides"},
	domain.PartOfSpeechAdjective: {"vast", "salty", "calm"},
	domain.PartOfSpeechAdverb:    {"gently", "endlessly"},
}

func fixtureFetcher() *mockWordFetcher {
	return &mockWordFetcher{
		FetchRelatedFunc: func(_ context.Context, _ string, pos domain.PartOfSpeech) ([]string, error) {
			return fixtureLists[pos], nil
		},
	}
}

func emptyFetcher() *mockWordFetcher {
	return &mockWordFetcher{
		FetchRelatedFunc: func(_ context.Context, _ string, _ domain.PartOfSpeech) ([]string, error) {
			return nil, nil
		},
	}
}

func newTestService(words wordFetcher, minSentences, maxSentences int, parallel bool) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.GeneratorConfig{MinSentences: minSentences, MaxSentences: maxSentences}
	return NewService(logger, words, cfg, parallel, WithRand(rand.New(rand.NewSource(1))))
}

// assertWellFormed checks the structural sentence contract: non-empty,
// capitalized, single terminal period, single spaces, no placeholder junk.
func assertWellFormed(t *testing.T, sentence string) {
	t.Helper()

	if sentence == "" {
		t.Fatal("sentence is empty")
	}
	runes := []rune(sentence)
	if !unicode.IsUpper(runes[0]) {
		t.Errorf("sentence not capitalized: %q", sentence)
	}
	if !strings.HasSuffix(sentence, ".") {
		t.Errorf("sentence missing terminal period: %q", sentence)
	}
	if strings.Count(sentence, ".") != 1 {
		t.Errorf("sentence must contain exactly one period: %q", sentence)
	}
	if strings.Contains(sentence, "  ") {
		t.Errorf("sentence contains double spaces: %q", sentence)
	}
	for _, junk := range []string{"None", "<", ">", "%!", "[]"} {
		if strings.Contains(sentence, junk) {
			t.Errorf("sentence contains placeholder junk %q: %q", junk, sentence)
		}
	}
}

func contains(list []string, word string) bool {
	for _, w := range list {
		if w == word {
			return true
		}
	}
	return false
}
