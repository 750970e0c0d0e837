package composer

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/essaygen/internal/domain"
)

// sentenceCategories lists the grammatical categories queried per
// sentence, in template order.
var sentenceCategories = [...]domain.PartOfSpeech{
	domain.PartOfSpeechNoun,
	domain.PartOfSpeechVerb,
	domain.PartOfSpeechAdjective,
	domain.PartOfSpeechAdverb,
}

// selection holds the words drawn for one sentence.
type selection struct {
	nouns      []string
	verbs      []string
	adjectives []string
	adverbs    []string
}

// BuildSentence composes one sentence about topic. It queries the word
// service for nouns, verbs, adjectives, and adverbs, draws a bounded
// random selection from each list without replacement, and fills the
// fixed template
//
//	The <adj1> <noun1> <verb> the <adj2> <noun2> <adverb>.
//
// Missing words shrink the template instead of failing: when no noun
// came back at all, the topic itself stands in as the subject, so the
// floor output is "The <topic>." The call never fails.
func (s *Service) BuildSentence(ctx context.Context, topic string) string {
	lists := s.fetchCategoryLists(ctx, topic)

	sel := selection{
		nouns:      pickWords(s.rng, lists[0], 2),
		verbs:      pickWords(s.rng, lists[1], 1),
		adjectives: pickWords(s.rng, lists[2], 2),
		adverbs:    pickWords(s.rng, lists[3], 1),
	}

	return renderSentence(topic, sel)
}

// fetchCategoryLists collects the word list for every sentence category,
// sequentially or fanned out when parallel mode is on. Slots are indexed
// by category position; the random source is only consulted after the
// fan-out joins.
func (s *Service) fetchCategoryLists(ctx context.Context, topic string) [4][]string {
	var lists [4][]string

	if !s.parallel {
		for i, pos := range sentenceCategories {
			lists[i] = s.fetchWords(ctx, topic, pos)
		}
		return lists
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, pos := range sentenceCategories {
		g.Go(func() error {
			lists[i] = s.fetchWords(gctx, topic, pos)
			return nil
		})
	}
	// Fetch failures degrade inside fetchWords, so the group never errors.
	_ = g.Wait()

	return lists
}

// fetchWords returns topic-related words of one grammatical category.
// Any failure degrades to an empty list: sentence building never fails,
// sentences only get shorter.
func (s *Service) fetchWords(ctx context.Context, topic string, pos domain.PartOfSpeech) []string {
	words, err := s.words.FetchRelated(ctx, topic, pos)
	if err != nil {
		if errors.Is(err, domain.ErrServiceUnavailable) {
			s.log.WarnContext(ctx, "word lookup failed, category left empty",
				slog.String("topic", topic),
				slog.String("part_of_speech", pos.String()),
				slog.String("error", err.Error()),
			)
		} else {
			s.log.ErrorContext(ctx, "unexpected word lookup error, category left empty",
				slog.String("topic", topic),
				slog.String("part_of_speech", pos.String()),
				slog.String("error", err.Error()),
			)
		}
		return nil
	}
	return words
}

// pickWords draws up to n distinct entries from words. Fewer than n
// available means all of them are drawn.
func pickWords(rng *rand.Rand, words []string, n int) []string {
	if n > len(words) {
		n = len(words)
	}
	if n == 0 {
		return nil
	}
	picked := make([]string, n)
	for i, idx := range rng.Perm(len(words))[:n] {
		picked[i] = words[idx]
	}
	return picked
}

// renderSentence fills the two-clause template, dropping slots that have
// no word: the adverb and the object clause require a verb, the second
// adjective requires a second noun, and the subject falls back to the
// topic itself.
func renderSentence(topic string, sel selection) string {
	subject := topic
	if len(sel.nouns) > 0 {
		subject = sel.nouns[0]
	}

	words := []string{"the"}
	if len(sel.adjectives) > 0 {
		words = append(words, sel.adjectives[0])
	}
	words = append(words, subject)

	if len(sel.verbs) > 0 {
		words = append(words, sel.verbs[0])

		if len(sel.nouns) > 1 {
			words = append(words, "the")
			if len(sel.adjectives) > 1 {
				words = append(words, sel.adjectives[1])
			}
			words = append(words, sel.nouns[1])
		}
		if len(sel.adverbs) > 0 {
			words = append(words, sel.adverbs[0])
		}
	}

	return capitalize(strings.Join(words, " ")) + "."
}

// capitalize upper-cases the first rune.
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
