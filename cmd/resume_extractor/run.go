package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/config"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Claim a batch of resumes, submit it, and process the results",
	Long: `Runs the batch pipeline end-to-end: select claimable records, mark them
claimed, submit one batch job, poll until it finishes, and persist every
parsed result. With --continuous the cycle repeats until interrupted.`,
	RunE: runBatchCmd,
}

var (
	runContinuous   bool
	runInterval     time.Duration
	runBatchSize    int
	runWorkers      int
	runPollInterval time.Duration
)

func init() {
	runCommand.Flags().BoolVar(&runContinuous, "continuous", false, "Run continuously, processing new batches as they become available")
	runCommand.Flags().DurationVar(&runInterval, "interval", 0, "Interval between batch runs in continuous mode (default from config)")
	runCommand.Flags().IntVar(&runBatchSize, "batch-size", 0, "Number of resumes to claim per batch (default from config)")
	runCommand.Flags().IntVar(&runWorkers, "workers", 0, "Number of concurrent prompt-preparation workers (default from config)")
	runCommand.Flags().DurationVar(&runPollInterval, "poll-interval", 0, "Interval between batch status checks (default from config)")

	rootCmd.AddCommand(runCommand)
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("interval") {
		cfg.Interval = runInterval
	}
	if cmd.Flags().Changed("batch-size") {
		cfg.BatchSize = runBatchSize
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = runWorkers
	}
	if cmd.Flags().Changed("poll-interval") {
		cfg.PollInterval = runPollInterval
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session, cleanup, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if runContinuous {
		return session.RunContinuous(ctx)
	}

	summary, err := session.Run(ctx)
	if err != nil {
		return err
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
