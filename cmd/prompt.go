package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptURLs collects URLs interactively, one per line, until a blank
// line or EOF. The bound is advisory here; the caller rejects oversized
// batches so the error message is the same for args and prompt input.
func promptURLs(in io.Reader, out io.Writer, max int) []string {
	fmt.Fprintln(out, colorWarn(fmt.Sprintf("No URLs provided. Enter URLs (one per line, max %d).", max)))
	fmt.Fprintln(out, colorWarn("Press Enter on an empty line when done:"))

	reader := bufio.NewReader(in)
	urls := make([]string, 0, max)
	for {
		line, err := reader.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			break
		}
		urls = append(urls, trimmed)
		if err != nil {
			break
		}
	}
	return urls
}
