package datamuse

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/heartmarshall/essaygen/internal/config"
	"github.com/heartmarshall/essaygen/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(baseURL string) config.DatamuseConfig {
	return config.DatamuseConfig{
		BaseURL:  baseURL,
		Timeout:  5 * time.Second,
		MaxWords: 10,
	}
}

func TestProvider_FetchRelated_Success(t *testing.T) {
	t.Parallel()

	body := `[
		{"word": "sea", "score": 4017},
		{"word": "waves", "score": 3122},
		{"word": "", "score": 10},
		{"word": "tide", "score": 2893}
	]`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/words" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("ml"); got != "ocean" {
			t.Errorf("ml = %q, want %q", got, "ocean")
		}
		if got := q.Get("sp"); got != "*n" {
			t.Errorf("sp = %q, want %q", got, "*n")
		}
		if got := q.Get("max"); got != "10" {
			t.Errorf("max = %q, want %q", got, "10")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	p := NewProvider(testConfig(srv.URL), newTestLogger())
	words, err := p.FetchRelated(context.Background(), "ocean", domain.PartOfSpeechNoun)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"sea", "waves", "tide"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("words = %v, want %v (order preserved, empty entries skipped)", words, want)
	}
}

func TestProvider_FetchRelated_NoConstraint(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.URL.Query()["sp"]; ok {
			t.Error("sp param must be absent when no part of speech is given")
		}
		w.Write([]byte(`[{"word": "sea", "score": 1}]`))
	}))
	defer srv.Close()

	p := NewProvider(testConfig(srv.URL), newTestLogger())
	words, err := p.FetchRelated(context.Background(), "ocean", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 1 || words[0] != "sea" {
		t.Errorf("words = %v, want [sea]", words)
	}
}

func TestProvider_FetchRelated_ConstraintCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pos  domain.PartOfSpeech
		want string
	}{
		{domain.PartOfSpeechNoun, "*n"},
		{domain.PartOfSpeechVerb, "*v"},
		{domain.PartOfSpeechAdjective, "*adj"},
		{domain.PartOfSpeechAdverb, "*adv"},
	}
	for _, tt := range tests {
		t.Run(string(tt.pos), func(t *testing.T) {
			t.Parallel()

			var gotSP atomic.Value
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotSP.Store(r.URL.Query().Get("sp"))
				w.Write([]byte(`[]`))
			}))
			defer srv.Close()

			p := NewProvider(testConfig(srv.URL), newTestLogger())
			if _, err := p.FetchRelated(context.Background(), "ocean", tt.pos); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := gotSP.Load(); got != tt.want {
				t.Errorf("sp = %v, want %q", got, tt.want)
			}
		})
	}
}

func TestProvider_FetchTriggers_Query(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("rel_trg"); got != "ocean" {
			t.Errorf("rel_trg = %q, want %q", got, "ocean")
		}
		if _, ok := q["ml"]; ok {
			t.Error("ml param must be absent on trigger queries")
		}
		w.Write([]byte(`[{"word": "pacific", "score": 700}, {"word": "atlantic", "score": 600}]`))
	}))
	defer srv.Close()

	p := NewProvider(testConfig(srv.URL), newTestLogger())
	words, err := p.FetchTriggers(context.Background(), "ocean")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"pacific", "atlantic"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("words = %v, want %v", words, want)
	}
}

func TestProvider_EmptyResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	p := NewProvider(testConfig(srv.URL), newTestLogger())
	words, err := p.FetchRelated(context.Background(), "xylophone", domain.PartOfSpeechNoun)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("words = %v, want empty", words)
	}
}

func TestProvider_ServiceUnavailable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "rate limited status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"word": "not an array"`))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			p := NewProvider(testConfig(srv.URL), newTestLogger())
			_, err := p.FetchRelated(context.Background(), "ocean", domain.PartOfSpeechNoun)
			if !errors.Is(err, domain.ErrServiceUnavailable) {
				t.Errorf("err = %v, want ErrServiceUnavailable", err)
			}
		})
	}
}

func TestProvider_NetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	p := NewProvider(testConfig(srv.URL), newTestLogger())
	_, err := p.FetchTriggers(context.Background(), "ocean")
	if !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Errorf("err = %v, want ErrServiceUnavailable", err)
	}
}

func TestProvider_NoRetry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewProvider(testConfig(srv.URL), newTestLogger())
	_, err := p.FetchRelated(context.Background(), "ocean", domain.PartOfSpeechNoun)
	if !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Fatalf("err = %v, want ErrServiceUnavailable", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server called %d times, want exactly 1 (calls are independent)", got)
	}
}

func TestProvider_InvalidArguments(t *testing.T) {
	t.Parallel()

	p := NewProvider(testConfig("http://127.0.0.1:0"), newTestLogger())

	if _, err := p.FetchRelated(context.Background(), "", domain.PartOfSpeechNoun); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty term: err = %v, want ErrValidation", err)
	}
	if _, err := p.FetchRelated(context.Background(), "ocean", domain.PartOfSpeech("PRONOUN")); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("bad pos: err = %v, want ErrValidation", err)
	}
	if _, err := p.FetchTriggers(context.Background(), ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty trigger term: err = %v, want ErrValidation", err)
	}
}

func TestProvider_ContextCancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewProvider(testConfig(srv.URL), newTestLogger())
	if _, err := p.FetchRelated(ctx, "ocean", domain.PartOfSpeechNoun); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
