// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, task not found).
	UserError = 1

	// ConfigError indicates a configuration error (bad config dir or settings file).
	ConfigError = 2

	// StoreError indicates a task store I/O error.
	StoreError = 3
)
