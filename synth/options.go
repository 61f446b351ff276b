package synth

import (
	"fmt"
	"reflect"
	"time"

	"value-synth/logging"
	"value-synth/options"
	"value-synth/primitive"
)

// Default collection cardinality interval, [min, max).
const (
	DefaultCollectionMin = 5
	DefaultCollectionMax = 50
)

// Option configures an Engine.
type Option func(*config) error

type config struct {
	seed         uint64
	seeded       bool
	ranges       primitive.Ranges
	collMin      int
	collMax      int
	mode         options.FailureMode
	logger       logging.Logger
	maxDepth     int
	cycleGuard   bool
	skipEmbedded bool
	populate     func(reflect.Type) bool
	registry     *Registry
}

func defaultConfig() config {
	return config{
		ranges:     primitive.DefaultRanges(),
		collMin:    DefaultCollectionMin,
		collMax:    DefaultCollectionMax,
		mode:       options.FailureDegrade,
		logger:     logging.NoOpLogger{},
		cycleGuard: true,
		populate:   DefaultPopulatePredicate,
	}
}

// WithSeed makes the engine deterministic. Without it the seed is random.
func WithSeed(seed uint64) Option {
	return func(c *config) error {
		c.seed, c.seeded = seed, true
		return nil
	}
}

// WithCollectionRange sets the slice and map cardinality interval [lo, hi).
func WithCollectionRange(lo, hi int) Option {
	return func(c *config) error {
		if lo < 0 || hi <= lo {
			return fmt.Errorf("collection range [%d, %d): %w", lo, hi, ErrInvalidRange)
		}
		c.collMin, c.collMax = lo, hi
		return nil
	}
}

// WithStringLength sets the generated string length interval [lo, hi).
func WithStringLength(lo, hi int) Option {
	return func(c *config) error {
		if lo < 0 || hi <= lo {
			return fmt.Errorf("string length [%d, %d): %w", lo, hi, ErrInvalidRange)
		}
		c.ranges.StringMinLen, c.ranges.StringMaxLen = lo, hi
		return nil
	}
}

// WithIntRange sets the signed integer and float interval [lo, hi). Draws are
// still clamped to each type's own range.
func WithIntRange(lo, hi int64) Option {
	return func(c *config) error {
		if hi <= lo {
			return fmt.Errorf("int range [%d, %d): %w", lo, hi, ErrInvalidRange)
		}
		c.ranges.IntMin, c.ranges.IntMax = lo, hi
		c.ranges.FloatMin, c.ranges.FloatMax = float64(lo), float64(hi)
		return nil
	}
}

// WithTimeRange sets the instant interval [lo, hi).
func WithTimeRange(lo, hi time.Time) Option {
	return func(c *config) error {
		if !hi.After(lo) {
			return fmt.Errorf("time range [%s, %s): %w", lo, hi, ErrInvalidRange)
		}
		c.ranges.TimeMin, c.ranges.TimeMax = lo, hi
		return nil
	}
}

// WithAlphabet sets the runes characters and strings are drawn from.
func WithAlphabet(alphabet string) Option {
	return func(c *config) error {
		if alphabet == "" {
			return fmt.Errorf("alphabet: %w", ErrNilArgument)
		}
		c.ranges.Alphabet = []rune(alphabet)
		return nil
	}
}

// WithFailureMode selects how construction failures surface.
func WithFailureMode(mode options.FailureMode) Option {
	return func(c *config) error {
		if !mode.IsValid() {
			return fmt.Errorf("failure mode %d: %w", mode, options.ErrUnknownOption)
		}
		c.mode = mode
		return nil
	}
}

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(c *config) error {
		if l == nil {
			return fmt.Errorf("logger: %w", ErrNilArgument)
		}
		c.logger = l
		return nil
	}
}

// WithMaxDepth limits member population to limit levels. Zero means no limit.
func WithMaxDepth(limit int) Option {
	return func(c *config) error {
		if limit < 0 {
			return fmt.Errorf("max depth %d: %w", limit, ErrInvalidRange)
		}
		c.maxDepth = limit
		return nil
	}
}

// WithCycleGuard toggles the per-path guard against indirect type cycles.
// It is enabled by default.
func WithCycleGuard(enabled bool) Option {
	return func(c *config) error {
		c.cycleGuard = enabled
		return nil
	}
}

// WithoutEmbedded leaves embedded struct fields unpopulated.
func WithoutEmbedded() Option {
	return func(c *config) error {
		c.skipEmbedded = true
		return nil
	}
}

// WithPopulatePredicate replaces DefaultPopulatePredicate.
func WithPopulatePredicate(fn func(reflect.Type) bool) Option {
	return func(c *config) error {
		if fn == nil {
			return fmt.Errorf("populate predicate: %w", ErrNilArgument)
		}
		c.populate = fn
		return nil
	}
}

// WithRegistry makes the engine use r instead of a private registry.
// The registry is bound to the last engine that adopts it.
func WithRegistry(r *Registry) Option {
	return func(c *config) error {
		if r == nil {
			return fmt.Errorf("registry: %w", ErrNilArgument)
		}
		c.registry = r
		return nil
	}
}
