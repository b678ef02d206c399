package checker

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

// FetchState is the terminal state of a fetch attempt sequence.
type FetchState int

const (
	// FetchTrusted means the first attempt succeeded with certificate
	// verification enabled.
	FetchTrusted FetchState = iota
	// FetchInsecure means the first attempt hit a certificate-trust
	// failure and the unverified retry succeeded. Callers must surface
	// this so the result is not mistaken for a fully verified fetch.
	FetchInsecure
	// FetchDegraded means no response could be obtained; the snapshot
	// holds a uniform error string per tracked header.
	FetchDegraded
)

// FetchResult couples a header snapshot with the state that produced
// it. Err is set only for FetchDegraded.
type FetchResult struct {
	Headers Snapshot
	State   FetchState
	Err     error
}

// Fetcher retrieves response headers for normalized URLs. All failure
// modes fold into the returned FetchResult; Fetch never errors, so a
// batch can never be aborted by a single target.
type Fetcher struct {
	Timeout time.Duration
	Events  Emitter
}

// NewFetcher returns a Fetcher with the given per-attempt timeout.
func NewFetcher(timeout time.Duration, events Emitter) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if events == nil {
		events = NopEmitter{}
	}
	return &Fetcher{Timeout: timeout, Events: events}
}

// Fetch issues a GET against url with the fixed request-header set,
// following redirects. A certificate-trust failure triggers exactly one
// retry with verification disabled (sites with self-signed or broken
// chains stay inspectable); any other failure, including the retry's
// own, degrades to an error snapshot.
func (f *Fetcher) Fetch(ctx context.Context, url string) FetchResult {
	headers, err := f.attempt(ctx, url, false)
	if err == nil {
		return FetchResult{Headers: headers, State: FetchTrusted}
	}
	if !isTrustError(err) {
		return FetchResult{Headers: DegradedSnapshot(err), State: FetchDegraded, Err: err}
	}

	f.Events.Warnf("Warning: SSL verification failed for %s", url)
	headers, err = f.attempt(ctx, url, true)
	if err != nil {
		return FetchResult{Headers: DegradedSnapshot(err), State: FetchDegraded, Err: err}
	}
	return FetchResult{Headers: headers, State: FetchInsecure}
}

func (f *Fetcher) attempt(ctx context.Context, url string, skipVerify bool) (Snapshot, error) {
	client := &http.Client{
		Timeout: f.Timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: skipVerify},
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for name, value := range RequestHeaders {
		req.Header.Set(name, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	// Only headers matter; drain the body so the connection is reusable.
	_, _ = io.Copy(io.Discard, resp.Body)

	return lowerHeaders(resp.Header), nil
}

func lowerHeaders(h http.Header) Snapshot {
	snap := make(Snapshot, len(h))
	for name, values := range h {
		snap[strings.ToLower(name)] = strings.Join(values, ", ")
	}
	return snap
}

// DegradedSnapshot maps every tracked header to the same error string,
// the uniform shape for fetches that produced no response at all.
func DegradedSnapshot(err error) Snapshot {
	snap := make(Snapshot, len(TrackedHeaders))
	msg := "Error: " + err.Error()
	for _, name := range TrackedHeaders {
		snap[name] = msg
	}
	return snap
}

// isTrustError reports whether err stems from certificate-chain
// verification, the one failure class that warrants the unverified
// retry.
func isTrustError(err error) bool {
	var verification *tls.CertificateVerificationError
	if errors.As(err, &verification) {
		return true
	}
	var unknownAuthority x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthority) {
		return true
	}
	var hostname x509.HostnameError
	if errors.As(err, &hostname) {
		return true
	}
	var invalid x509.CertificateInvalidError
	return errors.As(err, &invalid)
}
