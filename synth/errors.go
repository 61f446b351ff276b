package synth

import "errors"

var (
	// ErrNilArgument is returned when a required argument is nil.
	ErrNilArgument = errors.New("synth: required argument is nil")

	// ErrNegativeCount is returned by batch entry points for a count below zero.
	ErrNegativeCount = errors.New("synth: count must not be negative")

	// ErrInvalidRange is returned by options receiving an empty or inverted interval.
	ErrInvalidRange = errors.New("synth: invalid range")

	// ErrTypeMismatch is returned when a strategy or constructor does not
	// produce the type it is registered for.
	ErrTypeMismatch = errors.New("synth: type mismatch")

	// ErrCannotSynthesize reports that every construction candidate for a type
	// failed. It is degraded to the zero value unless the engine is strict.
	ErrCannotSynthesize = errors.New("synth: cannot synthesize value")

	// ErrUnsupportedShape reports a collection shape that is not synthesized
	// automatically (maps, channels). Register an explicit strategy instead.
	ErrUnsupportedShape = errors.New("synth: unsupported collection shape")

	// ErrNoConstructor is returned when no registered constructor matches a
	// configured parameter list.
	ErrNoConstructor = errors.New("synth: no matching constructor")
)

// isDegradable reports whether err may be turned into a zero value.
func isDegradable(err error) bool {
	return errors.Is(err, ErrCannotSynthesize) || errors.Is(err, ErrUnsupportedShape)
}
