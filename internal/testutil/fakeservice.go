// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"time"

	"pomo/internal/service"
)

// FakeService is an in-memory implementation of service.Service for
// testing. It mirrors the store's id and not-found semantics without
// touching the filesystem.
type FakeService struct {
	tasks  []service.Task
	nextID int

	// ReportText is what ExportReport returns. No file is written.
	ReportText string

	// Error injection for testing
	AddErr      error
	ListErr     error
	FindErr     error
	CompleteErr error
	DeleteErr   error
	RecordErr   error
	StatsErr    error
	ExportErr   error

	// ExportCalls counts ExportReport invocations.
	ExportCalls int
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// SeedTask inserts a task directly, keeping the next id ahead of it.
func (f *FakeService) SeedTask(t service.Task) {
	f.tasks = append(f.tasks, t)
	if t.ID >= f.nextID {
		f.nextID = t.ID + 1
	}
}

// Tasks returns the current in-memory collection.
func (f *FakeService) Tasks() []service.Task {
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// Add implements service.Service.
func (f *FakeService) Add(ctx context.Context, name string) (service.Task, error) {
	if f.AddErr != nil {
		return service.Task{}, f.AddErr
	}
	t := service.Task{ID: f.nextID, Name: name, CreatedAt: time.Now()}
	f.nextID++
	f.tasks = append(f.tasks, t)
	return t, nil
}

// List implements service.Service.
func (f *FakeService) List(ctx context.Context) ([]service.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.Tasks(), nil
}

// Find implements service.Service.
func (f *FakeService) Find(ctx context.Context, id int) (service.Task, error) {
	if f.FindErr != nil {
		return service.Task{}, f.FindErr
	}
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return service.Task{}, service.ErrNotFound
}

// Complete implements service.Service.
func (f *FakeService) Complete(ctx context.Context, id int) error {
	if f.CompleteErr != nil {
		return f.CompleteErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Completed = true
			return nil
		}
	}
	return service.ErrNotFound
}

// Delete implements service.Service.
func (f *FakeService) Delete(ctx context.Context, id int) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

// RecordPomodoro implements service.Service.
func (f *FakeService) RecordPomodoro(ctx context.Context, id int) (service.Task, error) {
	if f.RecordErr != nil {
		return service.Task{}, f.RecordErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Pomodoros++
			return f.tasks[i], nil
		}
	}
	return service.Task{}, service.ErrNotFound
}

// Statistics implements service.Service.
func (f *FakeService) Statistics(ctx context.Context) (service.Stats, error) {
	if f.StatsErr != nil {
		return service.Stats{}, f.StatsErr
	}
	var st service.Stats
	st.Total = len(f.tasks)
	for _, t := range f.tasks {
		if t.Completed {
			st.Completed++
		} else {
			st.Pending++
		}
		st.TotalPomodoros += t.Pomodoros
	}
	st.TotalMinutes = st.TotalPomodoros * 25
	return st, nil
}

// ExportReport implements service.Service.
func (f *FakeService) ExportReport(ctx context.Context) (string, error) {
	if f.ExportErr != nil {
		return "", f.ExportErr
	}
	f.ExportCalls++
	return f.ReportText, nil
}
