package driver

import "time"

// Stage describes what part of the run an event belongs to.
type Stage string

const (
	// StageLoad covers reading and registering source files.
	StageLoad Stage = "load"
	// StageBind covers the per-file pipeline: lex, parse, bind, resolve.
	StageBind Stage = "bind"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusWorking indicates the task is running.
	StatusWorking Status = "working"
	// StatusDone indicates the task finished without errors.
	StatusDone Status = "done"
	// StatusError indicates the task finished with errors in its bag.
	StatusError Status = "error"
)

// Event reports progress for one file, or for the run as a whole when
// File is empty.
type Event struct {
	File      string
	Stage     Stage
	Status    Status
	Errors    int
	Elapsed   time.Duration
	FromCache bool
	// Total is the number of files in the run; set on run-level events.
	Total int
}

// Sink consumes progress events. Implementations must be goroutine-safe:
// parallel file workers emit concurrently.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel, typically feeding a TUI.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) OnEvent(Event) {}

func emit(s Sink, evt Event) {
	if s == nil {
		return
	}
	s.OnEvent(evt)
}
