package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"arraylint/internal/driver"
	"arraylint/internal/ui"
)

// dirRunner is driver.LintDir or driver.FixDir.
type dirRunner func(ctx context.Context, root string, opts driver.DirOptions) ([]driver.FileResult, error)

type runOutcome struct {
	results []driver.FileResult
	err     error
}

// runTargets runs every target in turn and concatenates the results.
func runTargets(ctx context.Context, targets []string, opts driver.DirOptions, run dirRunner) ([]driver.FileResult, error) {
	var all []driver.FileResult
	for _, target := range targets {
		res, err := run(ctx, target, opts)
		all = append(all, res...)
		if err != nil {
			return all, err
		}
	}
	return all, nil
}

func runTargetsWithUI(ctx context.Context, out io.Writer, title string, targets []string, opts driver.DirOptions, run dirRunner) ([]driver.FileResult, error) {
	var files []string
	for _, target := range targets {
		list, err := driver.ListFiles(target, opts.Extensions)
		if err != nil {
			return nil, err
		}
		files = append(files, list...)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan runOutcome, 1)
	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := runTargets(ctx, targets, optsCopy, run)
		outcomeCh <- runOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out))
	_, uiErr := program.Run()
	// interrupts the run when the view was quit early; a no-op otherwise
	cancel()
	// keep workers unblocked when the view quit early
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
