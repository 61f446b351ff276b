package synth

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"reflect"

	"value-synth/internal/diagnostic"
	"value-synth/logging"
	"value-synth/node"
	"value-synth/options"
	"value-synth/primitive"
	"value-synth/walk"
)

// Engine produces populated values of arbitrary types.
//
// An Engine is not safe for concurrent use; see Any and Many for the
// serialized process-wide engine.
type Engine struct {
	seed     uint64
	entropy  *primitive.Entropy
	ranges   primitive.Ranges
	collMin  int
	collMax  int
	mode     options.FailureMode
	logger   logging.Logger
	populate func(reflect.Type) bool

	registry *Registry
	ctors    map[reflect.Type][]node.Constructor
	inflight map[reflect.Type]bool
	walker   *walk.Walker
	diags    diagnostic.Diagnostics
}

// New creates an engine with pre-seeded primitive strategies.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if !cfg.seeded {
		cfg.seed = rand.Uint64()
	}

	e := &Engine{
		seed:     cfg.seed,
		entropy:  primitive.NewEntropy(cfg.seed),
		ranges:   cfg.ranges,
		collMin:  cfg.collMin,
		collMax:  cfg.collMax,
		mode:     cfg.mode,
		logger:   cfg.logger,
		populate: cfg.populate,
		registry: cfg.registry,
		ctors:    make(map[reflect.Type][]node.Constructor),
		inflight: make(map[reflect.Type]bool),
	}

	if e.registry == nil {
		e.registry = NewRegistry()
	}
	e.adopt()

	walkOpts := []walk.Option{
		walk.WithMaxDepth(cfg.maxDepth),
		walk.WithCycleGuard(cfg.cycleGuard),
		walk.WithRecorder(e.registry),
		walk.WithOnCut(e.onCut),
	}
	if cfg.skipEmbedded {
		walkOpts = append(walkOpts, walk.WithoutEmbedded())
	}
	e.walker = walk.New(walkOpts...)

	return e, nil
}

// MustNew is like New but panics on an invalid option.
func MustNew(opts ...Option) *Engine {
	e, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return e
}

// adopt binds the registry to e, installing e's primitive producers.
func (e *Engine) adopt() {
	if e.registry.bind(e) {
		e.seedPrimitives()
	}
}

// seedPrimitives installs the random producers for primitive types that have
// no strategy with a producer yet.
func (e *Engine) seedPrimitives() {
	for _, t := range primitive.SeededTypes() {
		if s, ok := e.registry.Lookup(t); ok && s.HasProducer() {
			continue
		}

		s := e.registry.Strategy(t)
		s.seeded = true
		s.producer = func() (reflect.Value, error) {
			v, ok := primitive.Generate(t, e.entropy, e.ranges)
			if !ok {
				return reflect.Value{}, fmt.Errorf("%s: %w", node.TypeName(t), ErrCannotSynthesize)
			}
			return v, nil
		}
	}
}

// Seed returns the seed of the engine random source.
func (e *Engine) Seed() uint64 {
	return e.seed
}

// Registry returns the strategy registry of the engine.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// FailureMode returns the configured failure mode.
func (e *Engine) FailureMode() options.FailureMode {
	return e.mode
}

// Diagnostics returns a copy of what was reported since the last reset.
func (e *Engine) Diagnostics() diagnostic.Diagnostics {
	return e.diags.Clone()
}

// ResetDiagnostics clears collected diagnostics.
func (e *Engine) ResetDiagnostics() {
	e.diags.Reset()
}

// SetPopulatePredicate replaces the rule deciding which types get their
// members walked and filled.
func (e *Engine) SetPopulatePredicate(fn func(reflect.Type) bool) error {
	if fn == nil {
		return fmt.Errorf("populate predicate: %w", ErrNilArgument)
	}
	e.populate = fn

	return nil
}

// ShouldPopulate reports whether values of t get their members filled.
func (e *Engine) ShouldPopulate(t reflect.Type) bool {
	return e.populate(t)
}

// DefaultPopulatePredicate accepts structs and pointers to structs that are
// not primitive-like (time, uuid, decimal).
func DefaultPopulatePredicate(t reflect.Type) bool {
	switch node.Dispatch(t) {
	case node.ShapeStruct:
		return true
	case node.ShapePointer:
		return node.Dispatch(node.Base(t)) == node.ShapeStruct
	default:
		return false
	}
}

// ProduceType creates one value of t and, when t passes the populate
// predicate, fills its member graph. The final value is recorded in the
// history of t.
func (e *Engine) ProduceType(t reflect.Type) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, ErrNilArgument
	}
	e.adopt()

	v, err := e.draw(t, "")
	if err != nil {
		return reflect.Value{}, err
	}

	root := reflect.New(t).Elem()
	root.Set(v)

	if e.populate(t) {
		if err := e.walker.Walk(root, e.visit); err != nil {
			return reflect.Value{}, err
		}
	}

	e.registry.Record(t, root)

	return root, nil
}

// visit fills one member with a fresh value and decides on descent.
func (e *Engine) visit(step walk.Step) (bool, error) {
	if step.IsRoot() || !step.HasOwner() {
		return false, nil
	}

	m := step.Member
	if m.Excluded {
		return false, nil
	}

	if !m.CanSet(step.Parent) {
		e.diags.AddWarning(diagnostic.CodeAssignFailed, "member is not settable",
			node.TypeName(m.DeclaringType), m.Name)
		return false, nil
	}

	v, err := e.draw(m.Type, m.String())
	if err != nil {
		return false, fmt.Errorf("%s: %w", m, err)
	}

	if err := m.Set(step.Parent, v); err != nil {
		if e.mode == options.FailureStrict {
			e.diags.AddError(diagnostic.CodeAssignFailed, err.Error(), node.TypeName(m.DeclaringType), m.Name)
			return false, fmt.Errorf("%s: %w", m, err)
		}
		e.diags.AddWarning(diagnostic.CodeAssignFailed, err.Error(), node.TypeName(m.DeclaringType), m.Name)
		return false, nil
	}

	return e.descend(m), nil
}

func (e *Engine) descend(m *node.Member) bool {
	switch {
	case m.IsSelfReference():
		return false
	case node.Dispatch(m.Type) == node.ShapeInterface:
		return true
	case node.IsTerminal(m.Type):
		return false
	default:
		return e.populate(m.Type)
	}
}

// draw produces through the registry and degrades construction failures to
// the zero value unless the engine is strict.
func (e *Engine) draw(t reflect.Type, member string) (reflect.Value, error) {
	v, err := e.registry.Produce(t)
	if err == nil {
		return v, nil
	}

	if !isDegradable(err) {
		return reflect.Value{}, err
	}

	code := diagnostic.CodeCannotSynthesize
	if errors.Is(err, ErrUnsupportedShape) {
		code = diagnostic.CodeUnsupportedShape
	}
	if e.mode == options.FailureStrict {
		e.diags.AddError(code, err.Error(), node.TypeName(t), member)
		return reflect.Value{}, err
	}
	e.diags.AddWarning(code, err.Error(), node.TypeName(t), member)
	e.logger.Debug("degraded to zero value", "type", node.TypeName(t), "member", member, "error", err)

	return reflect.New(t).Elem(), nil
}

// defaultProducer picks the producer for a type without explicit strategy.
func (e *Engine) defaultProducer(t reflect.Type) Producer {
	switch node.Dispatch(t) {
	case node.ShapePrimitive:
		if base := primitive.BaseType(t); base != nil && base != t {
			return func() (reflect.Value, error) {
				v, err := e.registry.Produce(base)
				if err != nil {
					return reflect.Value{}, err
				}
				return v.Convert(t), nil
			}
		}
		return e.guarded(t, func() (reflect.Value, error) { return e.constructDefault(t) })

	case node.ShapeCollection:
		return e.guarded(t, func() (reflect.Value, error) { return e.collect(t, -1) })

	case node.ShapeMap:
		return func() (reflect.Value, error) {
			return reflect.Value{}, fmt.Errorf("%s: %w", node.TypeName(t), ErrUnsupportedShape)
		}

	case node.ShapePointer:
		return e.guarded(t, func() (reflect.Value, error) {
			elem, err := e.registry.Produce(t.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			p := reflect.New(t.Elem())
			p.Elem().Set(elem)
			return p, nil
		})

	default:
		return e.guarded(t, func() (reflect.Value, error) { return e.constructDefault(t) })
	}
}

// guarded refuses re-entrant production of t, which only happens for
// recursive shapes such as type List []List.
func (e *Engine) guarded(t reflect.Type, p Producer) Producer {
	return func() (reflect.Value, error) {
		if e.inflight[t] {
			return reflect.Value{}, fmt.Errorf("%s: %w: recursive type", node.TypeName(t), ErrCannotSynthesize)
		}

		e.inflight[t] = true
		defer delete(e.inflight, t)

		return p()
	}
}

func (e *Engine) onCut(step walk.Step, reason walk.CutReason) {
	code := diagnostic.CodeCycleCut
	if reason == walk.CutDepth {
		code = diagnostic.CodeDepthLimit
	}

	e.diags.AddInfo(code, "descent refused: "+reason.String(), node.TypeName(step.Member.DeclaringType), step.Member.Name)
	e.logger.Debug("descent refused", "member", step.Member.String(), "reason", reason.String())
}
