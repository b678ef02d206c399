package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/headerhawk/headerhawk/internal/checker"
)

// renderTable writes one row per record: a URL column plus one column
// per tracked header, column names upper-cased.
func renderTable(w io.Writer, results []checker.Record) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	cols := []string{"URL"}
	for _, name := range checker.TrackedHeaders {
		cols = append(cols, strings.ToUpper(name))
	}
	fmt.Fprintln(tw, strings.Join(cols, "\t"))

	for _, rec := range results {
		row := []string{rec.URL}
		for _, name := range checker.TrackedHeaders {
			row = append(row, rec.Headers[name])
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to flush results table: %v\n", err)
	}
}
