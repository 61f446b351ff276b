package options

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOption is returned for an enumerated configuration value that is not recognized.
var ErrUnknownOption = errors.New("unknown option value")

// FailureMode decides what happens when a value cannot be synthesized
// (constructor exhaustion, unsupported collection shape).
type FailureMode int

const (
	FailureDegrade FailureMode = iota // zero value + diagnostic warning, generation goes on
	FailureStrict                     // the error is returned to the caller

	// FailureTotal is a constant that represents the total number of modes defined
	FailureTotal = int(iota)
)

var failureModeNames = [...]string{
	FailureDegrade: "degrade",
	FailureStrict:  "strict",
}

func (m FailureMode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("FailureMode(%d)", int(m))
	}

	return failureModeNames[m]
}

func (m FailureMode) IsValid() bool {
	return m >= 0 && int(m) < FailureTotal
}

// ParseFailureMode parses "degrade" or "strict"; the empty string means degrade.
func ParseFailureMode(s string) (FailureMode, error) {
	if s == "" {
		return FailureDegrade, nil
	}

	for m, name := range failureModeNames {
		if strings.EqualFold(name, s) {
			return FailureMode(m), nil
		}
	}

	return FailureDegrade, fmt.Errorf("failure mode %q: %w", s, ErrUnknownOption)
}

// MarshalText implements encoding.TextMarshaler.
func (m FailureMode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("failure mode %d: %w", int(m), ErrUnknownOption)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *FailureMode) UnmarshalText(text []byte) error {
	parsed, err := ParseFailureMode(string(text))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
