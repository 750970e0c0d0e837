package config

import "time"

// Config is the root application configuration.
type Config struct {
	Datamuse  DatamuseConfig  `yaml:"datamuse"`
	Generator GeneratorConfig `yaml:"generator"`
	Log       LogConfig       `yaml:"log"`
}

// DatamuseConfig holds word-association service settings.
type DatamuseConfig struct {
	BaseURL       string        `yaml:"base_url"       env:"DATAMUSE_BASE_URL"       env-default:"https://api.datamuse.com"`
	Timeout       time.Duration `yaml:"timeout"        env:"DATAMUSE_TIMEOUT"        env-default:"10s"`
	MaxWords      int           `yaml:"max_words"      env:"DATAMUSE_MAX_WORDS"      env-default:"50"`
	ParallelFetch bool          `yaml:"parallel_fetch" env:"DATAMUSE_PARALLEL_FETCH" env-default:"false"`
}

// GeneratorConfig holds paragraph generation settings.
type GeneratorConfig struct {
	Paragraphs   int `yaml:"paragraphs"    env:"GENERATOR_PARAGRAPHS"    env-default:"5"`
	MinSentences int `yaml:"min_sentences" env:"GENERATOR_MIN_SENTENCES" env-default:"2"`
	MaxSentences int `yaml:"max_sentences" env:"GENERATOR_MAX_SENTENCES" env-default:"4"`
	MaxTopics    int `yaml:"max_topics"    env:"GENERATOR_MAX_TOPICS"    env-default:"8"`
	WrapWidth    int `yaml:"wrap_width"    env:"GENERATOR_WRAP_WIDTH"    env-default:"80"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
