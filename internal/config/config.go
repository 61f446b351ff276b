package config

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"value-synth/internal/common"
	"value-synth/options"
	"value-synth/synth"
)

// ErrInvalidConfig is returned for values that parse but cannot be applied.
var ErrInvalidConfig = errors.New("invalid config")

// File is the on-disk representation of engine settings.
type File struct {
	Version     string     `yaml:"version"`
	Seed        *uint64    `yaml:"seed,omitempty"`
	FailureMode string     `yaml:"failure_mode,omitempty"`
	Collection  Interval   `yaml:"collection,omitempty"`
	Strings     StringSpec `yaml:"strings,omitempty"`
	Alphabet    string     `yaml:"alphabet,omitempty"`
	MaxDepth    int        `yaml:"max_depth,omitempty"`
	CycleGuard  *bool      `yaml:"cycle_guard,omitempty"`
}

// Interval is a half-open [Min, Max) range.
type Interval struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// StringSpec bounds generated string lengths.
type StringSpec struct {
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File and validates it.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	if err := Validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Collection == (Interval{}) {
		f.Collection = Interval{Min: synth.DefaultCollectionMin, Max: synth.DefaultCollectionMax}
	}

	if f.Strings == (StringSpec{}) {
		f.Strings = StringSpec{MinLength: 8, MaxLength: 24}
	}

	if f.CycleGuard == nil {
		enabled := true
		f.CycleGuard = &enabled
	}

	f.Alphabet = norm.NFC.String(f.Alphabet)
}

// Validate checks every value that the engine options would reject.
func Validate(f *File) error {
	var errs []error

	if _, err := options.ParseFailureMode(f.FailureMode); err != nil {
		errs = append(errs, fmt.Errorf("failure_mode: %w", err))
	}

	if f.Collection.Min < 0 || f.Collection.Max <= f.Collection.Min {
		errs = append(errs, fmt.Errorf("collection: [%d, %d): %w",
			f.Collection.Min, f.Collection.Max, ErrInvalidConfig))
	}

	if f.Strings.MinLength < 0 || f.Strings.MaxLength <= f.Strings.MinLength {
		errs = append(errs, fmt.Errorf("strings: [%d, %d): %w",
			f.Strings.MinLength, f.Strings.MaxLength, ErrInvalidConfig))
	}

	if f.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max_depth: %d: %w", f.MaxDepth, ErrInvalidConfig))
	}

	if common.IsEmpty(errs) {
		return nil
	}

	return errors.Join(errs...)
}

// Options translates the file into engine options.
func (f *File) Options() ([]synth.Option, error) {
	mode, err := options.ParseFailureMode(f.FailureMode)
	if err != nil {
		return nil, err
	}

	opts := []synth.Option{
		synth.WithFailureMode(mode),
		synth.WithCollectionRange(f.Collection.Min, f.Collection.Max),
		synth.WithStringLength(f.Strings.MinLength, f.Strings.MaxLength),
		synth.WithMaxDepth(f.MaxDepth),
	}

	if f.Seed != nil {
		opts = append(opts, synth.WithSeed(*f.Seed))
	}

	if f.Alphabet != "" {
		opts = append(opts, synth.WithAlphabet(f.Alphabet))
	}

	if f.CycleGuard != nil {
		opts = append(opts, synth.WithCycleGuard(*f.CycleGuard))
	}

	return opts, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
