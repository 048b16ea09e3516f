package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"pomo/internal/config"
	"pomo/internal/exitcode"
	"pomo/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "pomo help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  pomo                              List tasks
  pomo add [common flags] <name...>    Create a task (alias: new)
  pomo list [common flags]             List tasks (alias: ls)
  pomo start [common flags] <id>       Run a pomodoro against a task
  pomo done [common flags] <id>        Mark a task completed (alias: complete)
  pomo rm [common flags] <id>          Delete a task (alias: delete)
  pomo stats [common flags]            Print aggregate statistics
  pomo report [common flags]           Export the plain-text task report
  pomo help
  pomo version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
