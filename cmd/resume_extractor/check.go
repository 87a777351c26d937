package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/config"
)

var checkCommand = &cobra.Command{
	Use:   "check <batch-id>",
	Short: "Check a submitted batch and process it if finished",
	Long: `Looks up a batch job by its provider id. If the job has reached a terminal
state its output is downloaded and every result is parsed and persisted;
otherwise the current status is reported and nothing changes.`,
	Args: cobra.ExactArgs(1),
	RunE: checkBatchCmd,
}

func init() {
	rootCmd.AddCommand(checkCommand)
}

func checkBatchCmd(cmd *cobra.Command, args []string) error {
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

	summary, done, err := session.CheckJob(ctx, args[0])
	if err != nil {
		return err
	}
	if !done {
		fmt.Printf("Batch %s is not finished yet\n", args[0])
		return nil
	}
	fmt.Printf("Processed %d records: %d succeeded, %d failed\n",
		summary.Total, summary.Succeeded, summary.Failed)
	if len(summary.FailedIDs) > 0 {
		fmt.Printf("Failed record ids: %v\n", summary.FailedIDs)
	}
	if len(summary.Unresolved) > 0 {
		fmt.Printf("Unresolved custom ids: %v\n", summary.Unresolved)
	}
	return nil
}
