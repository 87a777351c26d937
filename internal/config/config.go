// Package config provides configuration loading and validation for the
// extraction pipeline. Values come from an optional YAML file, RESUMEPARSE_*
// environment variables, and defaults, in that order of priority.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds every tunable the pipeline reads at startup.
type Config struct {
	// Database
	DatabaseURL string `mapstructure:"database_url" validate:"required"`

	// OpenAI
	OpenAIAPIKey string  `mapstructure:"openai_api_key" validate:"required"`
	Model        string  `mapstructure:"model" validate:"required"`
	MaxTokens    int     `mapstructure:"max_tokens" validate:"gt=0"`
	Temperature  float32 `mapstructure:"temperature" validate:"gte=0,lte=2"`

	// Batch orchestration
	BatchSize        int           `mapstructure:"batch_size" validate:"min=1,max=100"`
	Workers          int           `mapstructure:"workers" validate:"min=1,max=32"`
	CompletionWindow string        `mapstructure:"completion_window" validate:"required"`
	PollInterval     time.Duration `mapstructure:"poll_interval" validate:"gt=0"`
	RequestsPerMin   int           `mapstructure:"requests_per_min" validate:"min=1"`

	// Work selection
	ClaimWindow time.Duration `mapstructure:"claim_window" validate:"gt=0"`

	// Continuous mode
	Interval time.Duration `mapstructure:"interval" validate:"gt=0"`

	// Taxonomy
	TaxonomyPath  string `mapstructure:"taxonomy_path" validate:"required"`
	MaxCategories int    `mapstructure:"max_categories" validate:"min=1,max=10"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("model", "gpt-4o-mini-2024-07-18")
	v.SetDefault("max_tokens", 16000)
	v.SetDefault("temperature", 0)
	v.SetDefault("batch_size", 25)
	v.SetDefault("workers", 4)
	v.SetDefault("completion_window", "24h")
	v.SetDefault("poll_interval", 30*time.Second)
	v.SetDefault("requests_per_min", 60)
	v.SetDefault("claim_window", 72*time.Hour)
	v.SetDefault("interval", 5*time.Minute)
	v.SetDefault("taxonomy_path", "skills_taxonomy.csv")
	v.SetDefault("max_categories", 3)
}

// Load reads configuration from the given YAML file (optional; pass "" to
// skip), then from RESUMEPARSE_* environment variables, then applies
// defaults. The result is validated before any work is claimed so a bad
// deployment fails at startup rather than mid-batch.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("RESUMEPARSE")
	v.AutomaticEnv()

	// Credentials are commonly exported under their conventional names;
	// accept those alongside the prefixed forms.
	_ = v.BindEnv("database_url", "RESUMEPARSE_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("openai_api_key", "RESUMEPARSE_OPENAI_API_KEY", "OPENAI_API_KEY")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
