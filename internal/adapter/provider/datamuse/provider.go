package datamuse

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/heartmarshall/essaygen/internal/config"
	"github.com/heartmarshall/essaygen/internal/domain"
)

// Provider fetches word associations from the Datamuse API.
type Provider struct {
	baseURL    string
	maxWords   int
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from the given configuration.
// Tests point cfg.BaseURL at an httptest server.
func NewProvider(cfg config.DatamuseConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		maxWords:   cfg.MaxWords,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "datamuse"),
	}
}

// FetchRelated fetches words related in meaning to term, optionally
// constrained to a grammatical category (empty pos means no constraint).
// Word order follows the service's relevance ranking; no re-sorting.
func (p *Provider) FetchRelated(ctx context.Context, term string, pos domain.PartOfSpeech) ([]string, error) {
	if term == "" {
		return nil, domain.NewValidationError("term", "required")
	}
	if pos != "" && !pos.IsValid() {
		return nil, domain.NewValidationError("part_of_speech", fmt.Sprintf("unknown value %q", string(pos)))
	}

	params := url.Values{}
	params.Set("ml", term)
	if pos != "" {
		params.Set("sp", "*"+pos.Code())
	}
	return p.fetch(ctx, params)
}

// FetchTriggers fetches words statistically associated with term
// (the service's "triggered by" relation). The Resolver uses it to
// decide whether a seed word carries enough signal to become a topic.
func (p *Provider) FetchTriggers(ctx context.Context, term string) ([]string, error) {
	if term == "" {
		return nil, domain.NewValidationError("term", "required")
	}

	params := url.Values{}
	params.Set("rel_trg", term)
	return p.fetch(ctx, params)
}

// fetch performs one GET against /words with the given query parameters.
// Each call is independent: no retries, no caching. Transport, status,
// and decoding failures wrap domain.ErrServiceUnavailable so callers can
// degrade to an empty word list.
func (p *Provider) fetch(ctx context.Context, params url.Values) ([]string, error) {
	params.Set("max", strconv.Itoa(p.maxWords))
	query := params.Encode()
	reqURL := p.baseURL + "/words?" + query

	p.log.DebugContext(ctx, "datamuse request", slog.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("datamuse: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "datamuse request failed", slog.String("query", query), slog.String("error", err.Error()))
		return nil, fmt.Errorf("datamuse: request failed: %v: %w", err, domain.ErrServiceUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("datamuse: unexpected status %d: %w", resp.StatusCode, domain.ErrServiceUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("datamuse: read body: %v: %w", err, domain.ErrServiceUnavailable)
	}

	var entries []apiWord
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("datamuse: decode json: %v: %w", err, domain.ErrServiceUnavailable)
	}

	words := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Word == "" {
			continue
		}
		words = append(words, e.Word)
	}

	p.log.DebugContext(ctx, "datamuse response",
		slog.String("query", query),
		slog.Int("status", resp.StatusCode),
		slog.Int("words", len(words)),
	)

	return words, nil
}
