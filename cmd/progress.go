package cmd

import (
	"fmt"
	"io"
	"sync"
)

// consoleEmitter renders pipeline events as colored console lines and
// keeps running counters for the end-of-run log line.
type consoleEmitter struct {
	mu       sync.Mutex
	w        io.Writer
	warnings int
	errors   int
}

func newConsoleEmitter(w io.Writer) *consoleEmitter {
	return &consoleEmitter{w: w}
}

func (c *consoleEmitter) Progressf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, colorInfo(fmt.Sprintf(format, args...)))
}

func (c *consoleEmitter) Warnf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings++
	fmt.Fprintln(c.w, colorWarn(fmt.Sprintf(format, args...)))
}

func (c *consoleEmitter) Errorf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors++
	fmt.Fprintln(c.w, colorError(fmt.Sprintf(format, args...)))
}

func (c *consoleEmitter) Warnings() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.warnings
}

func (c *consoleEmitter) Errors() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors
}
