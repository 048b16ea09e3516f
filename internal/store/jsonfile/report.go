package jsonfile

import (
	"fmt"
	"strings"
)

// renderReport builds the plain-text report: one block per task with a
// status glyph line, the pomodoro count, the minutes spent, and the
// creation timestamp, separated by blank lines.
func (s *Store) renderReport() string {
	var b strings.Builder
	for _, t := range s.tasks {
		glyph := "[ ]"
		if t.Completed {
			glyph = "[x]"
		}
		name := t.Name
		if strings.TrimSpace(name) == "" {
			name = "(untitled)"
		}
		fmt.Fprintf(&b, "%s %d. %s\n", glyph, t.ID, name)
		fmt.Fprintf(&b, "    pomodoros: %d\n", t.Pomodoros)
		fmt.Fprintf(&b, "    minutes:   %d\n", t.Pomodoros*s.minutes)
		fmt.Fprintf(&b, "    created:   %s\n", t.CreatedAt.Format("2006-01-02 15:04"))
		b.WriteString("\n")
	}
	return b.String()
}
