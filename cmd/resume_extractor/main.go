// Package main provides the command-line entry point for the resume
// extraction pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "resume_extractor",
	Short: "AI-powered resume attribute extraction pipeline",
	Long: "resume_extractor claims unprocessed resumes from the candidate database, " +
		"submits them to the OpenAI batch API with taxonomy-guided prompts, and " +
		"writes the parsed, normalized attributes back to the database.",
}

var (
	configPath string
	logger     *zap.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file (optional)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
