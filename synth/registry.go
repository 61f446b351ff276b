package synth

import (
	"fmt"
	"reflect"

	"value-synth/node"
)

// backend is what a registry falls back on for types without an explicit producer.
type backend interface {
	defaultProducer(t reflect.Type) Producer
	construct(t reflect.Type, params []reflect.Type, args map[int]reflect.Value) (reflect.Value, error)
}

// Entry is a snapshot of one registry slot.
type Entry struct {
	Type        reflect.Type
	HasProducer bool
	Params      []reflect.Type
	Recorded    int
}

// Registry maps every type to exactly one strategy. Entries are created lazily
// on first access and never removed; registering a type again replaces its
// strategy.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	strategies map[reflect.Type]*TypeStrategy
	order      []reflect.Type
	backend    backend
}

// NewRegistry returns an empty registry. It can produce values only for
// explicitly registered producers until an Engine adopts it. A registry shared
// by several engines serves the engine that produced through it last;
// registered producers and histories are shared.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[reflect.Type]*TypeStrategy)}
}

// bind makes b the backend of r. Producers installed by the previous backend
// and cached fallbacks belong to it and are dropped.
func (r *Registry) bind(b backend) bool {
	if r.backend == b {
		return false
	}

	r.backend = b
	for _, s := range r.strategies {
		s.fallback = nil
		if s.seeded {
			s.producer, s.seeded = nil, false
		}
	}

	return true
}

// Strategy returns the strategy for t, creating an empty one on first access.
func (r *Registry) Strategy(t reflect.Type) *TypeStrategy {
	if s, ok := r.strategies[t]; ok {
		return s
	}

	s := &TypeStrategy{typ: t}
	r.store(t, s)

	return s
}

// Lookup returns the strategy for t without creating one.
func (r *Registry) Lookup(t reflect.Type) (*TypeStrategy, bool) {
	s, ok := r.strategies[t]
	return s, ok
}

// Set stores s for t, replacing any previous strategy. The history of the
// replaced strategy is carried over.
func (r *Registry) Set(t reflect.Type, s *TypeStrategy) error {
	if t == nil || s == nil {
		return ErrNilArgument
	}

	if s.typ == nil {
		s.typ = t
	}
	if s.typ != t {
		return fmt.Errorf("strategy for %s registered as %s: %w",
			node.TypeName(s.typ), node.TypeName(t), ErrTypeMismatch)
	}

	if prev, ok := r.strategies[t]; ok && prev != s && len(s.history) == 0 {
		s.history = prev.history
	}
	r.store(t, s)

	return nil
}

func (r *Registry) store(t reflect.Type, s *TypeStrategy) {
	if _, ok := r.strategies[t]; !ok {
		r.order = append(r.order, t)
	}
	r.strategies[t] = s
}

// Record appends v to the history of t.
func (r *Registry) Record(t reflect.Type, v reflect.Value) {
	if t == nil {
		return
	}

	r.Strategy(t).Record(v)
}

// LastValue returns the most recently recorded value of t.
func (r *Registry) LastValue(t reflect.Type) (reflect.Value, bool) {
	s, ok := r.strategies[t]
	if !ok {
		return reflect.Value{}, false
	}

	return s.LastValue()
}

// Count returns the number of types known to the registry.
func (r *Registry) Count() int {
	return len(r.strategies)
}

// Entries returns a snapshot of every slot in first-access order.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.order))
	for _, t := range r.order {
		s := r.strategies[t]
		entries = append(entries, Entry{
			Type:        t,
			HasProducer: s.HasProducer(),
			Params:      s.ConstructorParams(),
			Recorded:    s.Len(),
		})
	}

	return entries
}

// Produce creates one value of t without walking its members.
//
// The explicit producer wins. Otherwise a configured constructor parameter
// list is tried, and the default producer is used when that fails or when
// nothing is configured.
func (r *Registry) Produce(t reflect.Type) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, ErrNilArgument
	}

	s := r.Strategy(t)
	if s.producer != nil {
		v, err := s.producer()
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%s: %w", node.TypeName(t), err)
		}
		return conform(t, v)
	}

	if r.backend == nil {
		return reflect.Value{}, fmt.Errorf("%s: %w: registry is not bound to an engine",
			node.TypeName(t), ErrCannotSynthesize)
	}

	if len(s.ctorParams) > 0 {
		if v, err := r.backend.construct(t, s.ctorParams, s.ctorArgs); err == nil {
			return v, nil
		}
	}

	if s.fallback == nil {
		s.fallback = r.backend.defaultProducer(t)
	}

	return s.fallback()
}

// conform returns v as a value of exactly t. An invalid v stands for the zero value.
func conform(t reflect.Type, v reflect.Value) (reflect.Value, error) {
	switch {
	case !v.IsValid():
		return reflect.New(t).Elem(), nil
	case v.Type() == t:
		return v, nil
	case v.Type().AssignableTo(t):
		out := reflect.New(t).Elem()
		out.Set(v)
		return out, nil
	case v.Type().ConvertibleTo(t) && !isLossyConversion(v.Type(), t):
		return v.Convert(t), nil
	default:
		return reflect.Value{}, fmt.Errorf("produced %s for %s: %w",
			node.TypeName(v.Type()), node.TypeName(t), ErrTypeMismatch)
	}
}

// isLossyConversion rejects conversions reflect allows but no producer means,
// such as int to string.
func isLossyConversion(from, to reflect.Type) bool {
	return to.Kind() == reflect.String && from.Kind() != reflect.String
}
