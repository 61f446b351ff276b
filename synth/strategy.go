package synth

import (
	"reflect"
	"slices"
)

// Producer creates one value of the strategy's type.
type Producer func() (reflect.Value, error)

// TypeStrategy describes how values of one type are produced and keeps every
// value produced or assigned for that type.
//
// Resolution order when producing: the explicit producer, then the configured
// constructor parameter list, then the engine's default producer.
type TypeStrategy struct {
	typ        reflect.Type
	producer   Producer
	ctorParams []reflect.Type
	ctorArgs   map[int]reflect.Value
	fallback   Producer
	history    []reflect.Value

	// seeded marks a producer installed by an engine rather than the caller.
	seeded bool
}

// NewStrategy adapts a nullary factory into a strategy for T.
func NewStrategy[T any](factory func() T) *TypeStrategy {
	s := &TypeStrategy{typ: reflect.TypeFor[T]()}
	if factory != nil {
		s.producer = func() (reflect.Value, error) {
			v := factory()
			return reflect.ValueOf(&v).Elem(), nil
		}
	}

	return s
}

// NewStrategyFor creates a strategy for t backed by producer. producer may be
// nil, in which case the constructor parameter list or the default producer
// are used.
func NewStrategyFor(t reflect.Type, producer Producer) *TypeStrategy {
	return &TypeStrategy{typ: t, producer: producer}
}

// Type returns the type the strategy produces.
func (s *TypeStrategy) Type() reflect.Type {
	return s.typ
}

// HasProducer reports whether an explicit producer is configured.
func (s *TypeStrategy) HasProducer() bool {
	return s.producer != nil
}

// ConstructorParams returns the configured constructor parameter types.
func (s *TypeStrategy) ConstructorParams() []reflect.Type {
	return slices.Clone(s.ctorParams)
}

// WithConstructorParams configures the parameter list of the constructor to
// use when there is no explicit producer.
func (s *TypeStrategy) WithConstructorParams(params ...reflect.Type) *TypeStrategy {
	s.ctorParams = slices.Clone(params)
	return s
}

// WithArgument pins the constructor argument at position pos to v instead of
// synthesizing it.
func (s *TypeStrategy) WithArgument(pos int, v any) *TypeStrategy {
	if s.ctorArgs == nil {
		s.ctorArgs = make(map[int]reflect.Value)
	}
	s.ctorArgs[pos] = reflect.ValueOf(v)

	return s
}

// Record appends a shallow copy of v to the history.
func (s *TypeStrategy) Record(v reflect.Value) {
	if !v.IsValid() {
		return
	}

	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	s.history = append(s.history, c)
}

// LastValue returns the most recently recorded value, if any.
func (s *TypeStrategy) LastValue() (reflect.Value, bool) {
	if len(s.history) == 0 {
		return reflect.Value{}, false
	}

	return s.history[len(s.history)-1], true
}

// History returns the recorded values, oldest first.
func (s *TypeStrategy) History() []reflect.Value {
	return slices.Clone(s.history)
}

// Len returns the number of recorded values.
func (s *TypeStrategy) Len() int {
	return len(s.history)
}
