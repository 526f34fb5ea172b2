package trace

import (
	"encoding/json"
	"io"
	"sync"
)

// Stream writes events immediately to a writer, one JSON object per line.
type Stream struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
}

// NewStream creates a stream tracer over w.
func NewStream(w io.Writer, level Level) *Stream {
	return &Stream{w: w, level: level}
}

type jsonEvent struct {
	Time     string `json:"time"`
	Seq      uint64 `json:"seq"`
	Kind     string `json:"kind"`
	Scope    string `json:"scope"`
	SpanID   uint64 `json:"span_id"`
	ParentID uint64 `json:"parent_id,omitempty"`
	Name     string `json:"name"`
	Detail   string `json:"detail,omitempty"`
}

// Emit writes one event, dropping those below the configured level.
// Write errors are swallowed: tracing never fails a run.
func (t *Stream) Emit(ev Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	data, err := json.Marshal(jsonEvent{
		Time:     ev.Time.Format("2006-01-02T15:04:05.000000Z07:00"),
		Seq:      ev.Seq,
		Kind:     ev.Kind.String(),
		Scope:    ev.Scope.String(),
		SpanID:   ev.SpanID,
		ParentID: ev.ParentID,
		Name:     ev.Name,
		Detail:   ev.Detail,
	})
	if err != nil {
		return
	}
	data = append(data, '\n')

	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = t.w.Write(data)
}

// Flush forwards to the writer when it knows how to flush.
func (t *Stream) Flush() error {
	if flusher, ok := t.w.(interface{ Flush() error }); ok {
		return flusher.Flush()
	}
	return nil
}

// Close flushes and closes the writer if it implements io.Closer.
func (t *Stream) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	if closer, ok := t.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (t *Stream) Level() Level { return t.level }

func (t *Stream) Enabled() bool { return t.level > LevelOff }
