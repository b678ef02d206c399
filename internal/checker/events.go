package checker

// Emitter receives user-facing events from the pipeline: progress
// lines, non-fatal warnings (SSL bypass, rate limiting) and per-URL
// errors. The CLI installs a console implementation; tests capture
// events in memory.
type Emitter interface {
	Progressf(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopEmitter discards all events.
type NopEmitter struct{}

func (NopEmitter) Progressf(string, ...any) {}
func (NopEmitter) Warnf(string, ...any)     {}
func (NopEmitter) Errorf(string, ...any)    {}
