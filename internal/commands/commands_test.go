package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"pomo/internal/commands"
	"pomo/internal/config"
	"pomo/internal/exitcode"
	"pomo/internal/service"
	"pomo/internal/testutil"
)

// runCommand is a helper to run a command with FakeService.
func runCommand(t *testing.T, cmd commands.Command, svc *testutil.FakeService, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("config.New: %v", err)
	}
	cfg.Quiet = quiet

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, svc, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "pomo 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.GoldenString(t, "help", stdout)
}

// Tests for add command

func TestAddCommand(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"Write", "spec"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "added task 1\n" {
		t.Errorf("expected confirmation, got %q", stdout)
	}

	tasks := svc.Tasks()
	if len(tasks) != 1 || tasks[0].Name != "Write spec" {
		t.Errorf("expected task named %q, got %+v", "Write spec", tasks)
	}
}

func TestAddCommandQuiet(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	stdout, _, code := runCommand(t, cmd, svc, []string{"Review"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestAddCommandMissingName(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	_, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task name required\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestAddCommandStoreError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddErr = errors.New("disk full")

	cmd := &commands.AddCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"x"}, false)

	if code != exitcode.StoreError {
		t.Errorf("expected exit code %d, got %d", exitcode.StoreError, code)
	}
	if stderr != "error: store error: disk full\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

// Tests for list command

func TestListCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	svc.SeedTask(service.Task{ID: 1, Name: "Write spec", Pomodoros: 3, CreatedAt: created})
	svc.SeedTask(service.Task{ID: 2, Name: "Review", Completed: true, CreatedAt: created})

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}

	expected := "   1  [ ]  Write spec  (3)\n   2  [x]  Review\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommandEmpty(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.ListCmd{}
	stdout, _, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no tasks found\n" {
		t.Errorf("expected %q, got %q", "no tasks found\n", stdout)
	}
}

func TestListCommandEmptyQuiet(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.ListCmd{}
	stdout, _, code := runCommand(t, cmd, svc, nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

// Tests for done command

func TestDoneCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.SeedTask(service.Task{ID: 1, Name: "Write spec"})

	cmd := &commands.DoneCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "completed task 1\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
	if !svc.Tasks()[0].Completed {
		t.Error("expected task to be completed")
	}
}

func TestDoneCommandNotFound(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.DoneCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"7"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task not found: 7\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestDoneCommandInvalidID(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.DoneCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"abc"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid task id: abc\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestDoneCommandMissingID(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.DoneCmd{}
	_, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task id required\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

// Tests for rm command

func TestRmCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.SeedTask(service.Task{ID: 1, Name: "Write spec"})

	cmd := &commands.RmCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "removed task 1\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
	if len(svc.Tasks()) != 0 {
		t.Errorf("expected empty collection, got %+v", svc.Tasks())
	}
}

func TestRmCommandUnknownIDSucceeds(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.RmCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"9"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d for unknown id, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
}

// Tests for stats command

func TestStatsCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.SeedTask(service.Task{ID: 1, Name: "a", Pomodoros: 2})
	svc.SeedTask(service.Task{ID: 2, Name: "b", Completed: true, Pomodoros: 1})

	cmd := &commands.StatsCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}

	expected := "tasks:      2 (1 completed, 1 pending)\npomodoros:  3\nminutes:    75\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestStatsCommandEmpty(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.StatsCmd{}
	stdout, _, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}

	expected := "tasks:      0 (0 completed, 0 pending)\npomodoros:  0\nminutes:    0\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

// Tests for report command

func TestReportCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ReportText = "[ ] 1. Write spec\n"

	cmd := &commands.ReportCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if svc.ExportCalls != 1 {
		t.Errorf("expected one export call, got %d", svc.ExportCalls)
	}
	if !bytes.Contains([]byte(stdout), []byte("report written to ")) {
		t.Errorf("expected confirmation with report path, got %q", stdout)
	}
}

func TestReportCommandQuiet(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.ReportCmd{}
	stdout, _, code := runCommand(t, cmd, svc, nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
	if svc.ExportCalls != 1 {
		t.Errorf("expected one export call, got %d", svc.ExportCalls)
	}
}

func TestReportCommandStoreError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ExportErr = errors.New("read-only filesystem")

	cmd := &commands.ReportCmd{}
	_, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.StoreError {
		t.Errorf("expected exit code %d, got %d", exitcode.StoreError, code)
	}
	if stderr != "error: store error: read-only filesystem\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}
