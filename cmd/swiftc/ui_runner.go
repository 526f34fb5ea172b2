package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BluPerf/swift/internal/driver"
	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/ui"
)

type bindOutcome struct {
	fileSet *source.FileSet
	results []driver.UnitResult
	err     error
}

// runBindWithUI runs BindFiles behind a Bubble Tea progress view. The bind
// itself happens in a goroutine; the model consumes its progress events and
// quits when the channel closes.
func runBindWithUI(ctx context.Context, title string, files []string, opts driver.Options) (*source.FileSet, []driver.UnitResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan bindOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = driver.ChannelSink{Ch: events}
		fs, results, err := driver.BindFiles(ctx, files, optsCopy)
		outcomeCh <- bindOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewBindModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
