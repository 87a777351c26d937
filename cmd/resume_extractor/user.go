package main

import (
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/config"
)

var userCommand = &cobra.Command{
	Use:   "user <id>",
	Short: "Process a single candidate record synchronously",
	Long: `Fetches one candidate's resume by id and extracts it through a regular
chat completion instead of the batch API. Useful for reprocessing a record
or debugging extraction for a specific resume.`,
	Args: cobra.ExactArgs(1),
	RunE: processUserCmd,
}

func init() {
	rootCmd.AddCommand(userCommand)
}

func processUserCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid record id %q: %w", args[0], err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session, cleanup, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := session.ProcessUser(ctx, id); err != nil {
		return err
	}
	fmt.Printf("Record %d processed successfully\n", id)
	return nil
}
