package checker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type countingPacer struct {
	pauses int
}

func (p *countingPacer) Pause(context.Context) error {
	p.pauses++
	return nil
}

func newTestProcessor(events Emitter, pacer Pacer) *Processor {
	proc := NewProcessor(NewFetcher(2*time.Second, events), events, RateLimitDelay)
	proc.Pacer = pacer
	return proc
}

func headerServer(t *testing.T, headers map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for name, value := range headers {
			w.Header().Set(name, value)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestProcessAllOrderPreserving(t *testing.T) {
	srv := headerServer(t, nil)
	urls := []string{srv.URL + "/a", srv.URL + "/b", srv.URL + "/c"}

	proc := newTestProcessor(NopEmitter{}, &countingPacer{})
	results := proc.ProcessAll(context.Background(), urls)

	if len(results) != 3 {
		t.Fatalf("got %d records, want 3", len(results))
	}
	for i, rec := range results {
		if rec.URL != urls[i] {
			t.Errorf("record %d URL = %q, want %q", i, rec.URL, urls[i])
		}
	}
}

func TestProcessAllSkipsInvalidURLs(t *testing.T) {
	srv := headerServer(t, nil)
	urls := []string{srv.URL + "/first", "not a url", srv.URL + "/third"}

	events := &recordingEmitter{}
	proc := newTestProcessor(events, &countingPacer{})
	results := proc.ProcessAll(context.Background(), urls)

	if len(results) != 2 {
		t.Fatalf("got %d records, want 2 (invalid URL skipped)", len(results))
	}
	if results[0].URL != urls[0] || results[1].URL != urls[2] {
		t.Errorf("surviving records out of order: %q, %q", results[0].URL, results[1].URL)
	}
	if len(events.errors) != 1 || !strings.Contains(events.errors[0], "not a url") {
		t.Errorf("expected one error event naming the input, got %v", events.errors)
	}
}

func TestProcessAllDegradedFetchStillProducesRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := srv.URL
	srv.Close()

	proc := newTestProcessor(NopEmitter{}, &countingPacer{})
	results := proc.ProcessAll(context.Background(), []string{deadURL})

	if len(results) != 1 {
		t.Fatalf("got %d records, want 1", len(results))
	}
	if results[0].URL != deadURL {
		t.Errorf("URL field must hold the normalized URL, got %q", results[0].URL)
	}
	for _, name := range TrackedHeaders {
		if !strings.HasPrefix(results[0].Headers[name], "Error: ") {
			t.Errorf("%s = %q, want error string", name, results[0].Headers[name])
		}
	}
}

func TestProcessAllPacing(t *testing.T) {
	srv := headerServer(t, nil)

	cases := []struct {
		name   string
		urls   []string
		pauses int
	}{
		{"single URL never paces", []string{srv.URL}, 0},
		{"N URLs pace N-1 times", []string{srv.URL + "/1", srv.URL + "/2", srv.URL + "/3"}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pacer := &countingPacer{}
			proc := newTestProcessor(NopEmitter{}, pacer)
			proc.ProcessAll(context.Background(), tc.urls)
			if pacer.pauses != tc.pauses {
				t.Errorf("pauses = %d, want %d", pacer.pauses, tc.pauses)
			}
		})
	}
}

func TestProcessAllProgressEvents(t *testing.T) {
	srv := headerServer(t, nil)
	urls := []string{srv.URL + "/x", srv.URL + "/y"}

	events := &recordingEmitter{}
	proc := newTestProcessor(events, &countingPacer{})
	proc.ProcessAll(context.Background(), urls)

	if len(events.progress) != 2 {
		t.Fatalf("got %d progress events, want 2", len(events.progress))
	}
	if !strings.Contains(events.progress[0], "(1/2)") || !strings.Contains(events.progress[1], "(2/2)") {
		t.Errorf("progress events missing i/N counters: %v", events.progress)
	}
}

func TestProcessAllEndToEnd(t *testing.T) {
	srv := headerServer(t, map[string]string{
		"Strict-Transport-Security": "max-age=63072000",
	})

	proc := newTestProcessor(NopEmitter{}, &countingPacer{})
	results := proc.ProcessAll(context.Background(), []string{srv.URL})

	if len(results) != 1 {
		t.Fatalf("got %d records, want 1", len(results))
	}
	rec := results[0]
	want := map[string]string{
		"content-security-policy":   Missing,
		"x-frame-options":           Missing,
		"strict-transport-security": "max-age=63072000",
		"referrer-policy":           Missing,
	}
	for name, value := range want {
		if rec.Headers[name] != value {
			t.Errorf("%s = %q, want %q", name, rec.Headers[name], value)
		}
	}
}

func TestProcessAllTruncatesThroughPipeline(t *testing.T) {
	long := strings.Repeat("c", 120)
	srv := headerServer(t, map[string]string{"Content-Security-Policy": long})

	proc := newTestProcessor(NopEmitter{}, &countingPacer{})
	results := proc.ProcessAll(context.Background(), []string{srv.URL})

	got := results[0].Headers["content-security-policy"]
	want := strings.Repeat("c", MaxHeaderLength) + "..."
	if got != want {
		t.Errorf("truncated value = %q, want %q", got, want)
	}
}
