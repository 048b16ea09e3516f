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
	Register(&ReportCmd{})
}

// ReportCmd implements the report command.
type ReportCmd struct{}

func (c *ReportCmd) Name() string      { return "report" }
func (c *ReportCmd) Aliases() []string { return nil }
func (c *ReportCmd) Synopsis() string  { return "Export the plain-text task report" }
func (c *ReportCmd) Usage() string     { return "pomo report" }
func (c *ReportCmd) NeedsStore() bool  { return true }

func (c *ReportCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ReportCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintln(errOut, "error: report takes no arguments")
		return exitcode.UserError
	}

	if _, err := svc.ExportReport(ctx); err != nil {
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.StoreError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "report written to %s\n", cfg.ReportPath())
	}
	return exitcode.Success
}
