package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("term", "required")

	if got := err.Error(); got != "validation: term — required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrServiceUnavailable, ErrNoTopics, ErrInvalidInput, ErrValidation,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}

func TestSentinelErrors_SurviveWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("datamuse: fetch words: %w", ErrServiceUnavailable)
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Fatal("wrapped error lost ErrServiceUnavailable")
	}
}
