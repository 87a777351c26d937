package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RESUMEPARSE_DATABASE_URL", "postgres://localhost:5432/resumes")
	t.Setenv("RESUMEPARSE_OPENAI_API_KEY", "sk-test")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini-2024-07-18", cfg.Model)
	assert.Equal(t, 25, cfg.BatchSize)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "24h", cfg.CompletionWindow)
	assert.Equal(t, 72*time.Hour, cfg.ClaimWindow)
	assert.Equal(t, 5*time.Minute, cfg.Interval)
	assert.Equal(t, 3, cfg.MaxCategories)
	assert.Equal(t, 16000, cfg.MaxTokens)
}

func TestLoadMissingCredentials(t *testing.T) {
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("OPENAI_API_KEY")
	os.Unsetenv("RESUMEPARSE_DATABASE_URL")
	os.Unsetenv("RESUMEPARSE_OPENAI_API_KEY")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadConventionalEnvNames(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db.example.com/resumes")
	t.Setenv("OPENAI_API_KEY", "sk-conventional")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://db.example.com/resumes", cfg.DatabaseURL)
	assert.Equal(t, "sk-conventional", cfg.OpenAIAPIKey)
}

func TestLoadYAMLFile(t *testing.T) {
	t.Setenv("RESUMEPARSE_DATABASE_URL", "postgres://localhost/resumes")
	t.Setenv("RESUMEPARSE_OPENAI_API_KEY", "sk-test")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "batch_size: 50\nworkers: 8\nmodel: gpt-4o\npoll_interval: 10s\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("RESUMEPARSE_DATABASE_URL", "postgres://localhost/resumes")
	t.Setenv("RESUMEPARSE_OPENAI_API_KEY", "sk-test")
	t.Setenv("RESUMEPARSE_BATCH_SIZE", "10")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("batch_size: 50\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.BatchSize)
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	t.Setenv("RESUMEPARSE_DATABASE_URL", "postgres://localhost/resumes")
	t.Setenv("RESUMEPARSE_OPENAI_API_KEY", "sk-test")
	t.Setenv("RESUMEPARSE_BATCH_SIZE", "500")

	_, err := Load("")
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("RESUMEPARSE_DATABASE_URL", "postgres://localhost/resumes")
	t.Setenv("RESUMEPARSE_OPENAI_API_KEY", "sk-test")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
