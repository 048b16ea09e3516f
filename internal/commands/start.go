package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"pomo/internal/config"
	"pomo/internal/exitcode"
	"pomo/internal/pomodoro"
	"pomo/internal/service"
)

func init() {
	Register(&StartCmd{})
}

// StartCmd implements the start command: one blocking pomodoro against
// a task, work interval then break.
type StartCmd struct {
	now   func() time.Time
	sleep func(time.Duration)
}

// SetClock overrides the session clock (for testing).
func (c *StartCmd) SetClock(now func() time.Time, sleep func(time.Duration)) {
	c.now = now
	c.sleep = sleep
}

func (c *StartCmd) Name() string      { return "start" }
func (c *StartCmd) Aliases() []string { return nil }
func (c *StartCmd) Synopsis() string  { return "Run a pomodoro against a task" }
func (c *StartCmd) Usage() string     { return "pomo start <id>" }
func (c *StartCmd) NeedsStore() bool  { return true }

func (c *StartCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StartCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, ok := parseTaskID(args, errOut)
	if !ok {
		return exitcode.UserError
	}

	session := pomodoro.New(svc, cfg.WorkDuration(), cfg.ShortBreakDuration(), cfg.LongBreakDuration())
	if c.now != nil && c.sleep != nil {
		session.SetClock(c.now, c.sleep)
	}

	sink := &consoleSink{out: out, quiet: cfg.Quiet}
	if err := session.Start(ctx, id, sink); err != nil {
		if code, handled := notFound(err, id, errOut); handled {
			return code
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			fmt.Fprintln(errOut, "error: interrupted")
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.StoreError
	}
	return exitcode.Success
}

// consoleSink renders countdown progress on one line, rewritten in
// place with carriage returns.
type consoleSink struct {
	out   io.Writer
	quiet bool
}

func (s *consoleSink) Tick(t pomodoro.Tick) {
	if s.quiet {
		return
	}
	fmt.Fprintf(s.out, "\r%s %02d:%02d", t.Phase, t.Remaining/60, t.Remaining%60)
}

func (s *consoleSink) PhaseDone(p pomodoro.Phase) {
	if s.quiet {
		return
	}
	fmt.Fprintf(s.out, "\r%s done      \n", p)
}
