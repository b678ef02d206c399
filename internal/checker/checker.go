package checker

import "time"

const (
	// MaxURLs bounds a single batch. The input-collection layer enforces
	// it; the processor assumes the bound was applied upstream.
	MaxURLs = 20
	// MaxHeaderLength caps reported header values; longer values are cut
	// and suffixed with an ellipsis.
	MaxHeaderLength = 80
	// DefaultTimeout bounds each HTTP attempt.
	DefaultTimeout = 10 * time.Second
	// RateLimitDelay is the fixed pause between consecutive requests.
	RateLimitDelay = 2 * time.Second
	// UserAgent identifies the tool to target servers.
	UserAgent = "HeaderHawk/1.0 (Security Header Analyzer; https://github.com/headerhawk/headerhawk)"

	// Missing marks a tracked header absent from a response.
	Missing = "Missing"
)

// TrackedHeaders is the ordered set of security headers the tool
// reports, by canonical lower-case name. Extraction, table rendering
// and CSV export all iterate this slice, so adding a header is a data
// change, not a control-flow change.
var TrackedHeaders = []string{
	"content-security-policy",
	"x-frame-options",
	"strict-transport-security",
	"referrer-policy",
}

// RequestHeaders is the fixed request-header set sent with every fetch.
var RequestHeaders = map[string]string{
	"User-Agent":      UserAgent,
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.5",
	"Accept-Encoding": "gzip, deflate",
	"DNT":             "1",
}

// Snapshot maps lower-cased response header names to their raw values.
type Snapshot map[string]string

// Record is the per-URL report row: the normalized URL plus exactly one
// entry per tracked header holding the (possibly truncated) value,
// Missing, or an error string for degraded fetches. Records are built
// once by the processor and never mutated afterwards.
type Record struct {
	URL     string
	Headers map[string]string
}

// Truncate caps a header value at MaxHeaderLength bytes, marking the
// cut with "...". Re-truncating a truncated value is a no-op.
func Truncate(value string) string {
	if len(value) > MaxHeaderLength {
		return value[:MaxHeaderLength] + "..."
	}
	return value
}

// BuildRecord extracts the tracked subset of a snapshot into a Record.
func BuildRecord(url string, snap Snapshot) Record {
	rec := Record{
		URL:     url,
		Headers: make(map[string]string, len(TrackedHeaders)),
	}
	for _, name := range TrackedHeaders {
		value, ok := snap[name]
		if !ok {
			rec.Headers[name] = Missing
			continue
		}
		rec.Headers[name] = Truncate(value)
	}
	return rec
}
