package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingWorker struct {
	runs atomic.Int32
	err  error
}

func (w *countingWorker) Name() string { return "counting" }

func (w *countingWorker) Run(ctx context.Context) error {
	w.runs.Add(1)
	return w.err
}

func TestPeriodicWorkerRunsOnTicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := &countingWorker{}
	pw := RunBackground(ctx, w, 20*time.Millisecond)

	time.Sleep(110 * time.Millisecond)
	cancel()
	pw.Stop(time.Second)

	runs := w.runs.Load()
	if runs < 2 {
		t.Errorf("expected at least 2 runs, got %d", runs)
	}
}

func TestPeriodicWorkerNoImmediateRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := &countingWorker{}
	pw := RunBackground(ctx, w, time.Hour)

	// Nothing may run before the first tick
	time.Sleep(50 * time.Millisecond)
	cancel()
	pw.Stop(time.Second)

	if runs := w.runs.Load(); runs != 0 {
		t.Errorf("expected no runs before the first interval, got %d", runs)
	}
}

func TestPeriodicWorkerSurvivesErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := &countingWorker{err: errors.New("cycle failed")}
	pw := RunBackground(ctx, w, 20*time.Millisecond)

	time.Sleep(110 * time.Millisecond)
	cancel()
	pw.Stop(time.Second)

	if runs := w.runs.Load(); runs < 2 {
		t.Errorf("expected the loop to keep running after errors, got %d runs", runs)
	}
}

func TestPeriodicWorkerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	w := &countingWorker{}
	pw := RunBackground(ctx, w, 10*time.Millisecond)

	time.Sleep(35 * time.Millisecond)
	cancel()
	pw.Stop(time.Second)

	after := w.runs.Load()
	time.Sleep(50 * time.Millisecond)

	if got := w.runs.Load(); got != after {
		t.Errorf("worker kept running after cancel: %d then %d", after, got)
	}
}
