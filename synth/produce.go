package synth

import (
	"fmt"
	"reflect"

	"value-synth/node"
)

// Produce creates one populated value of T.
func Produce[T any](e *Engine) (T, error) {
	var zero T
	if e == nil {
		return zero, ErrNilArgument
	}

	v, err := e.ProduceType(reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}

	return valueAs[T](v), nil
}

// MustProduce is like Produce but panics on error.
func MustProduce[T any](e *Engine) T {
	v, err := Produce[T](e)
	if err != nil {
		panic(err)
	}

	return v
}

// BatchOption configures ProduceMany.
type BatchOption func(*batch)

type batch struct {
	distinct bool
	progress func(percent float64)
}

// WithRepeat produces a single value and repeats it for the whole batch.
// For pointer types every slot holds the same pointer.
func WithRepeat() BatchOption {
	return func(b *batch) { b.distinct = false }
}

// WithProgress reports 100*(i+1)/count after each item.
func WithProgress(fn func(percent float64)) BatchOption {
	return func(b *batch) { b.progress = fn }
}

// ProduceMany creates count values of T, each one a distinct draw unless
// WithRepeat is given.
func ProduceMany[T any](e *Engine, count int, opts ...BatchOption) ([]T, error) {
	if e == nil {
		return nil, ErrNilArgument
	}

	v, err := e.ProduceManyType(reflect.TypeFor[T](), count, opts...)
	if err != nil {
		return nil, err
	}

	return valueAs[[]T](v), nil
}

// ProduceManyType is ProduceMany for a runtime type. The result is a []t.
func (e *Engine) ProduceManyType(t reflect.Type, count int, opts ...BatchOption) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, ErrNilArgument
	}
	if count < 0 {
		return reflect.Value{}, fmt.Errorf("count %d: %w", count, ErrNegativeCount)
	}

	b := batch{distinct: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}

	var shared reflect.Value
	if !b.distinct && count > 0 {
		v, err := e.ProduceType(t)
		if err != nil {
			return reflect.Value{}, err
		}
		shared = v
	}

	out := reflect.MakeSlice(reflect.SliceOf(t), 0, count)
	for i := range count {
		item := shared
		if b.distinct {
			v, err := e.ProduceType(t)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("item %d: %w", i, err)
			}
			item = v
		}
		out = reflect.Append(out, item)

		if b.progress != nil {
			b.progress(100 * float64(i+1) / float64(count))
		}
	}

	return out, nil
}

// ProduceSlice creates a []T of exactly count elements. Elements are drawn
// through the registry and not populated.
func ProduceSlice[T any](e *Engine, count int) ([]T, error) {
	if e == nil {
		return nil, ErrNilArgument
	}
	if count < 0 {
		return nil, fmt.Errorf("count %d: %w", count, ErrNegativeCount)
	}

	e.adopt()

	v, err := e.collect(reflect.TypeFor[[]T](), count)
	if err != nil {
		return nil, err
	}

	return valueAs[[]T](v), nil
}

// Register makes factory the producer for T.
func Register[T any](e *Engine, factory func() T) error {
	if e == nil || factory == nil {
		return ErrNilArgument
	}

	return e.registry.Set(reflect.TypeFor[T](), NewStrategy(factory))
}

// RegisterStrategy installs s for T.
func RegisterStrategy[T any](e *Engine, s *TypeStrategy) error {
	if e == nil || s == nil {
		return ErrNilArgument
	}

	return e.registry.Set(reflect.TypeFor[T](), s)
}

// Argument pins one positional constructor argument.
type Argument struct {
	Pos   int
	Value any
}

// Arg pins the constructor argument at pos to v.
func Arg(pos int, v any) Argument {
	return Argument{Pos: pos, Value: v}
}

// RegisterConstructor adds fn to the constructors of T and configures the
// strategy of T to call it with synthesized arguments, except those pinned
// by args. fn must have one of the signatures accepted by
// node.ParseConstructor and return T or *T.
//
// Constructors stay in the default fallback chain in registration order; the
// last registered one is the configured one.
func RegisterConstructor[T any](e *Engine, fn any, args ...Argument) error {
	if e == nil || fn == nil {
		return ErrNilArgument
	}

	t := reflect.TypeFor[T]()

	c, err := node.ParseConstructor(fn)
	if err != nil {
		return fmt.Errorf("constructor for %s: %w", node.TypeName(t), err)
	}
	if !c.Produces(t) {
		return fmt.Errorf("%s returns %s, not %s: %w", c, node.TypeName(c.Out), node.TypeName(t), ErrTypeMismatch)
	}

	for _, a := range args {
		if a.Pos < 0 || a.Pos >= len(c.In) {
			return fmt.Errorf("%s argument %d: %w", c, a.Pos, ErrInvalidRange)
		}
	}

	e.ctors[t] = append(e.ctors[t], c)

	s := e.registry.Strategy(t)
	if c.IsNullary() {
		return nil
	}

	s.WithConstructorParams(c.In...)
	s.ctorArgs = nil
	for _, a := range args {
		s.WithArgument(a.Pos, a.Value)
	}

	return nil
}

// RegisterMap installs a producer for map[K]V drawing keys and values
// through the registry with a cardinality from the collection range.
func RegisterMap[K comparable, V any](e *Engine) error {
	if e == nil {
		return ErrNilArgument
	}

	t := reflect.TypeFor[map[K]V]()

	return e.registry.Set(t, NewStrategyFor(t, func() (reflect.Value, error) {
		return e.collectMap(t)
	}))
}

func valueAs[T any](v reflect.Value) T {
	out, _ := v.Interface().(T)
	return out
}
