package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/essaygen/internal/adapter/provider/datamuse"
	"github.com/heartmarshall/essaygen/internal/config"
	"github.com/heartmarshall/essaygen/internal/domain"
	"github.com/heartmarshall/essaygen/internal/service/composer"
	"github.com/heartmarshall/essaygen/internal/service/topics"
	"github.com/heartmarshall/essaygen/internal/ui/report"
)

// Options carries CLI-level overrides into Run. Zero values fall back to
// configuration defaults; nil streams default to the process streams.
type Options struct {
	ConfigPath string
	Topic      string // non-empty skips the interactive prompt
	Paragraphs int    // overrides generator.paragraphs when > 0
	LogLevel   string // overrides log.level when non-empty

	In     io.Reader
	Out    io.Writer
	LogOut io.Writer
}

// Run is the application entry point: it loads configuration, builds the
// logger and the component pipeline, reads one topic sentence, and
// prints the generated report. The flow is linear: clean the input,
// resolve topics, generate paragraphs, render.
//
// Run returns an error only for startup failures (bad configuration).
// Word-service outages degrade inside the pipeline; unusable input and
// unresolvable topics end the run cleanly with a message.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.Paragraphs > 0 {
		cfg.Generator.Paragraphs = opts.Paragraphs
	}

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logOut := opts.LogOut
	if logOut == nil {
		logOut = os.Stderr
	}

	logger := NewLogger(logOut, cfg.Log).With(slog.String("run_id", uuid.NewString()))

	logger.InfoContext(ctx, "starting essaygen",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	provider := datamuse.NewProvider(cfg.Datamuse, logger)
	resolver := topics.NewService(logger, provider, cfg.Generator.MaxTopics, cfg.Datamuse.ParallelFetch)
	generator := composer.NewService(logger, provider, cfg.Generator, cfg.Datamuse.ParallelFetch)
	renderer := report.NewRenderer(out, cfg.Generator.WrapWidth)

	renderer.Banner()

	input, err := readTopic(in, renderer, opts.Topic)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			logger.WarnContext(ctx, "no usable input, exiting")
			return nil
		}
		return err
	}

	seeds := domain.CleanInput(input, domain.DefaultStopwords())
	logger.InfoContext(ctx, "input cleaned",
		slog.String("input", input),
		slog.Int("seed_words", len(seeds)),
	)

	resolved, err := resolver.Resolve(ctx, seeds)
	if err != nil {
		return fmt.Errorf("resolve topics: %w", err)
	}

	paragraphs, err := generator.GenerateParagraphs(ctx, resolved, cfg.Generator.Paragraphs)
	if err != nil {
		if errors.Is(err, domain.ErrNoTopics) {
			logger.WarnContext(ctx, "no topics resolved from input", slog.String("input", input))
			renderer.NoTopics()
			return nil
		}
		return fmt.Errorf("generate paragraphs: %w", err)
	}

	logger.InfoContext(ctx, "run complete",
		slog.Int("topics", len(resolved)),
		slog.Int("paragraphs", len(paragraphs)),
	)
	renderer.Report(resolved, paragraphs)

	return nil
}

// readTopic returns the preset topic when given, otherwise prompts until
// a non-blank line arrives. Blank lines re-prompt; EOF before any usable
// input is ErrInvalidInput.
func readTopic(in io.Reader, renderer *report.Renderer, preset string) (string, error) {
	if strings.TrimSpace(preset) != "" {
		return preset, nil
	}

	scanner := bufio.NewScanner(in)
	for {
		renderer.Prompt()
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("read input: %w", err)
			}
			return "", domain.ErrInvalidInput
		}
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			return line, nil
		}
	}
}
