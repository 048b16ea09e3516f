// Package service defines the store-agnostic interface for task operations.
package service

import "time"

// Task is a trackable unit of work with a pomodoro counter.
type Task struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Pomodoros int       `json:"pomodoros"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats aggregates the current task collection.
type Stats struct {
	Total          int
	Completed      int
	Pending        int
	TotalPomodoros int
	TotalMinutes   int
}
