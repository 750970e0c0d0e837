package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Datamuse.BaseURL == "" {
		return fmt.Errorf("datamuse.base_url must not be empty")
	}
	if c.Datamuse.Timeout <= 0 {
		return fmt.Errorf("datamuse.timeout must be > 0 (got %v)", c.Datamuse.Timeout)
	}
	if c.Datamuse.MaxWords <= 0 {
		return fmt.Errorf("datamuse.max_words must be > 0 (got %d)", c.Datamuse.MaxWords)
	}

	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	return nil
}

func (g *GeneratorConfig) validate() error {
	if g.Paragraphs <= 0 {
		return fmt.Errorf("paragraphs must be > 0 (got %d)", g.Paragraphs)
	}
	if g.MinSentences <= 0 {
		return fmt.Errorf("min_sentences must be > 0 (got %d)", g.MinSentences)
	}
	if g.MaxSentences < g.MinSentences {
		return fmt.Errorf("max_sentences must be >= min_sentences (got %d < %d)", g.MaxSentences, g.MinSentences)
	}
	if g.MaxTopics <= 0 {
		return fmt.Errorf("max_topics must be > 0 (got %d)", g.MaxTopics)
	}
	if g.WrapWidth <= 0 {
		return fmt.Errorf("wrap_width must be > 0 (got %d)", g.WrapWidth)
	}
	return nil
}
