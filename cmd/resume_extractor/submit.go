package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/config"
)

var submitCommand = &cobra.Command{
	Use:   "submit",
	Short: "Submit one batch without waiting for it",
	Long: `Claims a batch of resumes and submits it to the batch API, then exits
immediately. The printed batch id can be processed later with 'check'.`,
	RunE: submitBatchCmd,
}

func init() {
	submitCommand.Flags().IntVar(&runBatchSize, "batch-size", 0, "Number of resumes to claim per batch (default from config)")
	rootCmd.AddCommand(submitCommand)
}

func submitBatchCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("batch-size") {
		cfg.BatchSize = runBatchSize
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session, cleanup, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	job, err := session.SubmitBatch(ctx)
	if err != nil {
		return err
	}
	if job == nil {
		fmt.Println("No claimable records")
		return nil
	}
	fmt.Printf("Submitted batch %s with %d records\n", job.ExternalID, len(job.MemberIDs))
	return nil
}
