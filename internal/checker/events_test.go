package checker

import "fmt"

// recordingEmitter captures events for assertions in this package's
// tests.
type recordingEmitter struct {
	progress []string
	warnings []string
	errors   []string
}

func (r *recordingEmitter) Progressf(format string, args ...any) {
	r.progress = append(r.progress, fmt.Sprintf(format, args...))
}

func (r *recordingEmitter) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *recordingEmitter) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}
