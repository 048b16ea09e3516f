// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"pomo/internal/service"
)

// FormatTask formats one task line for the list command.
// Format: "{ID:>4}  {GLYPH}  {NAME}" plus a pomodoro count when nonzero.
func FormatTask(w io.Writer, task service.Task) {
	glyph := "[ ]"
	if task.Completed {
		glyph = "[x]"
	}
	name := normalizeName(task.Name)
	if task.Pomodoros > 0 {
		fmt.Fprintf(w, "%4d  %s  %s  (%d)\n", task.ID, glyph, name, task.Pomodoros)
		return
	}
	fmt.Fprintf(w, "%4d  %s  %s\n", task.ID, glyph, name)
}

// FormatStats formats the aggregate statistics block.
func FormatStats(w io.Writer, st service.Stats) {
	fmt.Fprintf(w, "tasks:      %d (%d completed, %d pending)\n", st.Total, st.Completed, st.Pending)
	fmt.Fprintf(w, "pomodoros:  %d\n", st.TotalPomodoros)
	fmt.Fprintf(w, "minutes:    %d\n", st.TotalMinutes)
}

// normalizeName normalizes a task name for single-line display.
// - Empty or whitespace-only names become "(untitled)"
// - Newlines are replaced with spaces
func normalizeName(name string) string {
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\n", " ")

	if strings.TrimSpace(name) == "" {
		return "(untitled)"
	}
	return name
}
