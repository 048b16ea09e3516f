package service

import "context"

// Service defines the interface for task store operations.
// Commands never touch the backing file directly; everything goes
// through this interface so tests can substitute an in-memory fake.
type Service interface {
	// Add creates a task with the given name and returns it.
	// Names are stored as given, without trimming or validation.
	// Ids are assigned monotonically and never reused.
	Add(ctx context.Context, name string) (Task, error)

	// List returns the current collection in insertion order.
	// An empty slice means no tasks, never an error.
	List(ctx context.Context) ([]Task, error)

	// Find returns the task with the given id, or ErrNotFound.
	Find(ctx context.Context, id int) (Task, error)

	// Complete marks the task completed. Returns ErrNotFound for an
	// unknown id, leaving the collection untouched.
	Complete(ctx context.Context, id int) error

	// Delete removes the task with the given id. Deleting an unknown
	// id is a no-op, not an error.
	Delete(ctx context.Context, id int) error

	// RecordPomodoro increments the task's pomodoro counter by one,
	// persists, and returns the updated task. Returns ErrNotFound for
	// an unknown id.
	RecordPomodoro(ctx context.Context, id int) (Task, error)

	// Statistics computes aggregates over the current collection.
	// No persistence side effects.
	Statistics(ctx context.Context) (Stats, error)

	// ExportReport writes the plain-text task report to the report
	// file, overwriting it, and returns the rendered text.
	ExportReport(ctx context.Context) (string, error)
}
