// Package trace is the toolchain's structural logging: phases emit
// begin/end span events instead of free-form log lines, and sinks decide
// how to persist them. Tracing off means the Nop singleton and zero
// overhead on the hot path.
package trace

import (
	"fmt"
	"os"
)

// Tracer is the contract phases emit events through.
type Tracer interface {
	// Emit records one event. Must be goroutine-safe.
	Emit(ev Event)

	// Flush forces buffered events out.
	Flush() error

	// Close flushes and releases resources.
	Close() error

	// Level returns the configured verbosity.
	Level() Level

	// Enabled reports whether tracing is active at all.
	Enabled() bool
}

// nopTracer discards everything.
type nopTracer struct{}

func (nopTracer) Emit(Event)    {}
func (nopTracer) Flush() error  { return nil }
func (nopTracer) Close() error  { return nil }
func (nopTracer) Level() Level  { return LevelOff }
func (nopTracer) Enabled() bool { return false }

// Nop is the package-level singleton no-op tracer.
var Nop Tracer = nopTracer{}

// Open builds a tracer writing JSONL to path. "-" means stderr; an empty
// path or LevelOff yields Nop.
func Open(path string, level Level) (Tracer, error) {
	if level == LevelOff || path == "" {
		return Nop, nil
	}
	if path == "-" {
		return NewStream(os.Stderr, level), nil
	}
	f, err := os.Create(path) // #nosec G304 -- path comes from the caller
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return NewStream(f, level), nil
}
