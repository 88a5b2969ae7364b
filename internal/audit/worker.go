package audit

import (
	"context"
	"log/slog"
)

// Worker consumes audit events from the publisher and persists them. It runs
// until its context is cancelled, then drains whatever is already buffered.
type Worker struct {
	store  Store
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return ctx.Err()
		case event := <-w.inbox:
			w.append(event)
		}
	}
}

func (w *Worker) drain() {
	for {
		select {
		case event := <-w.inbox:
			w.append(event)
		default:
			return
		}
	}
}

func (w *Worker) append(event Event) {
	if err := w.store.Append(context.Background(), event); err != nil {
		w.logger.Error("audit append failed", "action", event.Action, "error", err)
	}
}
