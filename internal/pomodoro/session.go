// Package pomodoro runs blocking work/break countdowns against a task.
//
// A session is a straight sequence: work countdown, counter increment,
// break countdown, return. There is no pause, resume, or auto-repeat;
// the only way to stop early is cancelling the context (or killing the
// process), which makes no cleanup guarantees.
package pomodoro

import (
	"context"
	"time"

	"pomo/internal/service"
)

// Phase identifies which interval a countdown belongs to.
type Phase int

const (
	Work Phase = iota
	ShortBreak
	LongBreak
)

// String returns the display label for the phase.
func (p Phase) String() string {
	switch p {
	case Work:
		return "Work"
	case ShortBreak:
		return "Short Break"
	case LongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// Tick is one countdown progress event.
type Tick struct {
	Phase     Phase
	Remaining int // whole seconds until the phase ends
}

// Sink receives countdown progress. Calls happen on the session's
// goroutine between sleeps, so implementations must return quickly.
type Sink interface {
	// Tick reports the remaining time, roughly once per second.
	Tick(t Tick)

	// PhaseDone reports that a countdown reached zero.
	PhaseDone(p Phase)
}

// Session sequences one work interval and its break against a task.
type Session struct {
	svc        service.Service
	work       time.Duration
	shortBreak time.Duration
	longBreak  time.Duration

	now   func() time.Time
	sleep func(time.Duration)
}

// New creates a Session with the given interval durations.
func New(svc service.Service, work, shortBreak, longBreak time.Duration) *Session {
	return &Session{
		svc:        svc,
		work:       work,
		shortBreak: shortBreak,
		longBreak:  longBreak,
		now:        time.Now,
		sleep:      time.Sleep,
	}
}

// SetClock overrides the time source and sleep function (for testing).
func (s *Session) SetClock(now func() time.Time, sleep func(time.Duration)) {
	s.now = now
	s.sleep = sleep
}

// Start runs one pomodoro against the task with the given id: the work
// countdown, then the counter increment, then the break countdown. The
// break is long when the incremented counter is a multiple of four
// (the 4th, 8th, ... interval for that task), short otherwise.
//
// Returns service.ErrNotFound without counting down if the id is
// unknown, and ctx.Err() if the context is cancelled mid-countdown.
func (s *Session) Start(ctx context.Context, id int, sink Sink) error {
	task, err := s.svc.Find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.countdown(ctx, Work, s.work, sink); err != nil {
		return err
	}

	updated, err := s.svc.RecordPomodoro(ctx, task.ID)
	if err != nil {
		return err
	}

	phase, d := ShortBreak, s.shortBreak
	if updated.Pomodoros%4 == 0 {
		phase, d = LongBreak, s.longBreak
	}
	return s.countdown(ctx, phase, d, sink)
}

// countdown blocks until d has elapsed against a wall-clock deadline,
// emitting the remaining whole seconds about once per second. Reading
// the clock every iteration self-corrects for scheduling drift; it
// does not compensate for system clock changes.
func (s *Session) countdown(ctx context.Context, phase Phase, d time.Duration, sink Sink) error {
	deadline := s.now().Add(d)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		remaining := deadline.Sub(s.now())
		if remaining <= 0 {
			break
		}
		sink.Tick(Tick{Phase: phase, Remaining: wholeSeconds(remaining)})

		step := time.Second
		if remaining < step {
			step = remaining
		}
		s.sleep(step)
	}
	sink.PhaseDone(phase)
	return nil
}

// wholeSeconds rounds up to the next full second, so the first tick of
// a 25-minute countdown reads 1500 rather than 1499.
func wholeSeconds(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}
