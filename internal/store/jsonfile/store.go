// Package jsonfile implements service.Service backed by a single JSON
// file. The whole collection is the unit of persistence: every mutation
// rewrites the file before returning, so the file never lags the
// in-memory state.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"pomo/internal/service"
)

// DefaultMinutesPerPomodoro is the minutes credited per completed work
// interval when Options leaves it unset.
const DefaultMinutesPerPomodoro = 25

// Options configure a Store beyond its file paths.
type Options struct {
	// MinutesPerPomodoro is the minutes credited per completed work
	// interval in statistics and reports. Zero means the default (25).
	MinutesPerPomodoro int

	// DebugLog receives load-recovery notices. Nil discards them.
	DebugLog io.Writer

	// now overrides the creation timestamp source. Set via SetNow.
	now func() time.Time
}

// Store is a task collection persisted to one JSON file, with a second
// file as the report target. Not safe for concurrent use; the CLI is
// single-threaded and concurrent processes sharing the file race.
type Store struct {
	path       string
	reportPath string
	minutes    int
	debugw     io.Writer
	now        func() time.Time

	tasks  []service.Task
	nextID int
}

var _ service.Service = (*Store)(nil)

// Open loads the task file at path into a new Store. A missing or
// unparseable file yields an empty collection: that is the documented
// lossy-recovery policy, and the discarded cause is written to the
// debug log rather than surfaced.
func Open(path, reportPath string, opts Options) (*Store, error) {
	if path == "" {
		return nil, errors.New("jsonfile: task file path required")
	}
	if reportPath == "" {
		return nil, errors.New("jsonfile: report file path required")
	}

	s := &Store{
		path:       path,
		reportPath: reportPath,
		minutes:    opts.MinutesPerPomodoro,
		debugw:     opts.DebugLog,
		now:        opts.now,
		tasks:      []service.Task{},
		nextID:     1,
	}
	if s.minutes == 0 {
		s.minutes = DefaultMinutesPerPomodoro
	}
	if s.debugw == nil {
		s.debugw = io.Discard
	}
	if s.now == nil {
		s.now = time.Now
	}

	s.load()
	return s, nil
}

// SetNow overrides the creation timestamp source (for testing).
func (o *Options) SetNow(now func() time.Time) {
	o.now = now
}

// load reads the task file. Every failure mode maps to "start empty".
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(s.debugw, "pomo: cannot read %s, starting empty: %v\n", s.path, err)
		}
		return
	}

	var tasks []service.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		fmt.Fprintf(s.debugw, "pomo: cannot parse %s, starting empty: %v\n", s.path, err)
		return
	}

	if tasks != nil {
		s.tasks = tasks
	}
	for _, t := range tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
}

// save rewrites the whole task file. Write failures propagate; there is
// no recovery path for a failed save.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Add implements service.Service. The new id is one past the highest id
// ever assigned this session, so deleted ids are not reclaimed.
func (s *Store) Add(ctx context.Context, name string) (service.Task, error) {
	t := service.Task{
		ID:        s.nextID,
		Name:      name,
		CreatedAt: s.now(),
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	if err := s.save(); err != nil {
		return service.Task{}, err
	}
	return t, nil
}

// List implements service.Service.
func (s *Store) List(ctx context.Context) ([]service.Task, error) {
	out := make([]service.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

// Find implements service.Service.
func (s *Store) Find(ctx context.Context, id int) (service.Task, error) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return service.Task{}, service.ErrNotFound
}

// Complete implements service.Service.
func (s *Store) Complete(ctx context.Context, id int) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = true
			return s.save()
		}
	}
	return service.ErrNotFound
}

// Delete implements service.Service. The file is rewritten even when
// the id is unknown.
func (s *Store) Delete(ctx context.Context, id int) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	return s.save()
}

// RecordPomodoro implements service.Service.
func (s *Store) RecordPomodoro(ctx context.Context, id int) (service.Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Pomodoros++
			if err := s.save(); err != nil {
				return service.Task{}, err
			}
			return s.tasks[i], nil
		}
	}
	return service.Task{}, service.ErrNotFound
}

// Statistics implements service.Service.
func (s *Store) Statistics(ctx context.Context) (service.Stats, error) {
	var st service.Stats
	st.Total = len(s.tasks)
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		} else {
			st.Pending++
		}
		st.TotalPomodoros += t.Pomodoros
	}
	st.TotalMinutes = st.TotalPomodoros * s.minutes
	return st, nil
}

// ExportReport implements service.Service.
func (s *Store) ExportReport(ctx context.Context) (string, error) {
	text := s.renderReport()
	if err := os.WriteFile(s.reportPath, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", s.reportPath, err)
	}
	return text, nil
}
