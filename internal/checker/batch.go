package checker

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer inserts the fixed pause between consecutive requests.
type Pacer interface {
	Pause(ctx context.Context) error
}

// ratePacer spaces pauses at one per delay interval using a token
// bucket, so a request never starts less than delay after the previous
// pause completed.
type ratePacer struct {
	limiter *rate.Limiter
}

func newRatePacer(delay time.Duration) *ratePacer {
	l := rate.NewLimiter(rate.Every(delay), 1)
	// The bucket starts full; burn the token so the first pause waits.
	l.Allow()
	return &ratePacer{limiter: l}
}

func (p *ratePacer) Pause(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// Processor drives the normalize, fetch, extract pipeline over an
// ordered URL batch, strictly one URL at a time.
type Processor struct {
	Fetcher *Fetcher
	Events  Emitter
	Delay   time.Duration
	// Pacer overrides the delay-based pacer when set. Tests use it to
	// count pauses without sleeping.
	Pacer Pacer
}

// NewProcessor returns a Processor pacing requests delay apart.
func NewProcessor(fetcher *Fetcher, events Emitter, delay time.Duration) *Processor {
	if events == nil {
		events = NopEmitter{}
	}
	return &Processor{Fetcher: fetcher, Events: events, Delay: delay}
}

// ProcessAll returns one Record per successfully normalized URL, in
// input order. URLs that fail normalization are skipped with an error
// event and produce no record; fetch failures produce a fully degraded
// record. The pause is applied between URLs only, never before the
// first or after the last. The caller keeps the batch within MaxURLs.
func (p *Processor) ProcessAll(ctx context.Context, rawURLs []string) []Record {
	pacer := p.Pacer
	if pacer == nil {
		pacer = newRatePacer(p.Delay)
	}

	total := len(rawURLs)
	results := make([]Record, 0, total)
	for i, raw := range rawURLs {
		p.Events.Progressf("Processing %s (%d/%d)", raw, i+1, total)

		u, err := Normalize(raw)
		if err != nil {
			p.Events.Errorf("Error processing %s: %v", raw, err)
			continue
		}

		res := p.Fetcher.Fetch(ctx, u)
		results = append(results, BuildRecord(u, res.Headers))

		if i+1 < total {
			p.Events.Warnf("Rate limiting: waiting %s...", p.Delay)
			if err := pacer.Pause(ctx); err != nil {
				break
			}
		}
	}
	return results
}
