// cmd/batch.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mreyes87/feedscout/internal/batch"
	"github.com/mreyes87/feedscout/internal/config"
	"github.com/mreyes87/feedscout/internal/feed"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Discover feeds for every blog in a CSV file",
	Long: `Reads blog URLs from a CSV file (blog_url column, optional blog_title),
discovers a feed for each concurrently, and writes one result row per
input row to the output CSV.`,
	RunE: runBatch,
}

var (
	batchInput       string
	batchOutput      string
	batchConcurrency int
)

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "Input CSV file")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Output CSV file")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 0, "Concurrent lookups (0 = use config)")
	batchCmd.MarkFlagRequired("input")
	batchCmd.MarkFlagRequired("output")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	workers := cfg.Fetch.Concurrency
	if batchConcurrency > 0 {
		workers = batchConcurrency
	}

	// Let Ctrl+C stop the batch; every entry still gets a result row.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		sig := <-sigChan
		fmt.Printf("\nReceived signal %v, stopping...\n", sig)
		cancel()
	}()

	runner := batch.NewRunner(newFinder(cfg), workers, time.Duration(cfg.Fetch.EntryTimeoutSeconds)*time.Second)
	runner.OnResult = func(done, total int, res feed.Result) {
		switch res.Status {
		case feed.StatusFound:
			fmt.Printf("[%d/%d] %s → %s (%s)\n", done, total, res.BlogURL, res.FeedURL, res.FeedType)
		case feed.StatusNotFound:
			fmt.Printf("[%d/%d] %s → no feed\n", done, total, res.BlogURL)
		default:
			fmt.Printf("[%d/%d] %s → error: %s\n", done, total, res.BlogURL, res.ErrorMessage)
		}
	}

	fmt.Printf("Processing %s with %d workers...\n", batchInput, workers)

	summary, err := runner.ProcessFile(ctx, batchInput, batchOutput)
	if err != nil {
		return err
	}

	fmt.Printf("\nDone: %d found, %d without feed, %d errors", summary.Found, summary.NotFound, summary.Errors)
	if summary.SkippedRows > 0 {
		fmt.Printf(" (%d malformed rows skipped)", summary.SkippedRows)
	}
	fmt.Printf("\nResults written to %s\n", batchOutput)

	return nil
}
