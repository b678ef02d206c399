package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/headerhawk/headerhawk/internal/checker"
)

var (
	saveCSV    bool
	outputPath string
)

func runScan(cmd *cobra.Command, args []string) error {
	cfg := loadScanConfig()
	out := cmd.OutOrStdout()

	printBanner(out)

	urls := args
	if len(urls) == 0 {
		urls = promptURLs(cmd.InOrStdin(), out, cfg.MaxURLs)
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs provided")
	}
	if len(urls) > cfg.MaxURLs {
		return fmt.Errorf("maximum %d URLs allowed, you provided %d", cfg.MaxURLs, len(urls))
	}

	fmt.Fprintln(out, colorInfo("Analyzing security headers..."))
	fmt.Fprintln(out, colorInfo(fmt.Sprintf("Rate limiting: %s between requests", cfg.Delay)))
	fmt.Fprintln(out)

	events := newConsoleEmitter(out)
	fetcher := checker.NewFetcher(cfg.Timeout, events)
	processor := checker.NewProcessor(fetcher, events, cfg.Delay)

	log := scanLogger()
	log.Infow("scan started", "urls", len(urls), "timeout", cfg.Timeout, "delay", cfg.Delay)
	start := time.Now()
	results := processor.ProcessAll(context.Background(), urls)
	log.Infow("scan finished",
		"records", len(results),
		"warnings", events.Warnings(),
		"errors", events.Errors(),
		"duration", time.Since(start),
	)

	fmt.Fprintln(out)
	renderTable(out, results)

	if saveCSV || outputPath != "" {
		path := outputPath
		if path == "" {
			path = fmt.Sprintf("headerhawk_results_%s.csv", time.Now().Format("20060102_150405"))
		}
		if err := exportCSV(path, results); err != nil {
			return fmt.Errorf("save results: %w", err)
		}
		log.Infow("results exported", "path", path)
		fmt.Fprintln(out, colorSuccess(fmt.Sprintf("Results saved to %s", path)))
	}

	return nil
}

// scanLogger falls back to a no-op logger when the command is driven
// outside the cobra lifecycle (tests call runScan directly).
func scanLogger() *zap.SugaredLogger {
	if logger != nil {
		return logger
	}
	return zap.NewNop().Sugar()
}
