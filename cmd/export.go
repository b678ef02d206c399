package cmd

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/headerhawk/headerhawk/internal/checker"
)

// exportCSV writes results to path with a header row first. Field
// order is URL followed by the tracked headers in report order.
func exportCSV(path string, results []checker.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file failed: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := append([]string{"URL"}, checker.TrackedHeaders...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header failed: %w", err)
	}

	for _, rec := range results {
		row := make([]string, 0, len(header))
		row = append(row, rec.URL)
		for _, name := range checker.TrackedHeaders {
			row = append(row, rec.Headers[name])
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row failed: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
