package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"value-synth/logging"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Generation failure
	ExitCommandError = 2 // Command error (unknown model, bad flags, database not found)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// table writes rows aligned in columns under upper-cased headers.
func table(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	writeRow := func(cells []string) {
		for i, c := range cells {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, c)
		}
		fmt.Fprintln(tw)
	}

	heading := cases.Upper(language.Und)
	titles := make([]string, len(headers))
	for i, h := range headers {
		titles[i] = heading.String(h)
	}

	writeRow(titles)
	for _, r := range rows {
		writeRow(r)
	}

	return tw.Flush()
}

// newLogger returns a text logger on w when verbose, a no-op one otherwise.
func newLogger(opts *RootOptions, w io.Writer) logging.Logger {
	if !opts.Verbose {
		return logging.NoOpLogger{}
	}

	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		level = logging.LevelDebug
	}

	return logging.NewSlogLogger(level, "text", w)
}
