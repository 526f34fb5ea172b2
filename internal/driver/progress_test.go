package driver

import (
	"context"
	"testing"
)

func TestProgressEvents(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.swift": "var a : Int = 1\n",
		"b.swift": "var b : Ghost = 2\n",
	})

	ch := make(chan Event, 64)
	// Jobs: 1 keeps per-file events in input order.
	_, _, err := BindDir(context.Background(), dir, Options{Jobs: 1, Sink: ChannelSink{Ch: ch}})
	if err != nil {
		t.Fatal(err)
	}
	close(ch)

	var events []Event
	for evt := range ch {
		events = append(events, evt)
	}
	if len(events) < 4 {
		t.Fatalf("got %d events, want at least run-start, per-file, run-end:\n%+v", len(events), events)
	}

	start := events[0]
	if start.File != "" || start.Status != StatusWorking || start.Total != 2 {
		t.Errorf("run-start event = %+v", start)
	}

	end := events[len(events)-1]
	if end.File != "" || end.Status != StatusError || end.Errors != 1 || end.Total != 2 {
		t.Errorf("run-end event = %+v", end)
	}

	var perFile []Event
	for _, evt := range events[1 : len(events)-1] {
		if evt.File == "" {
			t.Errorf("unexpected run-level event mid-stream: %+v", evt)
			continue
		}
		perFile = append(perFile, evt)
	}
	// Each file gets a working and a terminal event.
	if len(perFile) != 4 {
		t.Fatalf("got %d per-file events, want 4:\n%+v", len(perFile), perFile)
	}
	if perFile[1].Status != StatusDone {
		t.Errorf("a.swift terminal = %+v, want done", perFile[1])
	}
	if perFile[3].Status != StatusError || perFile[3].Errors != 1 {
		t.Errorf("b.swift terminal = %+v, want one error", perFile[3])
	}
	if perFile[3].Elapsed <= 0 {
		t.Errorf("terminal event should carry elapsed time: %+v", perFile[3])
	}
}

func TestChannelSinkNilChannel(t *testing.T) {
	ChannelSink{}.OnEvent(Event{})
}

func TestNopSink(t *testing.T) {
	NopSink{}.OnEvent(Event{Stage: StageBind})
}

func TestEmitNilSink(t *testing.T) {
	emit(nil, Event{})
}
