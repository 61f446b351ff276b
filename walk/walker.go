package walk

import (
	"reflect"

	"value-synth/node"
)

// Step describes one visited member. Member is nil for the root. Parent and
// Current are invalid when the owning instance is absent, in which case the
// step is a notification only.
type Step struct {
	Parent  reflect.Value
	Current reflect.Value
	Member  *node.Member
	Depth   int
}

// IsRoot reports whether the step is the root visit.
func (s Step) IsRoot() bool {
	return s.Member == nil
}

// HasOwner reports whether the member can be read and assigned.
func (s Step) HasOwner() bool {
	return s.Parent.IsValid()
}

// VisitFunc is invoked for the root and for every member. The returned bool
// asks the walker to descend into the member; it is ignored for the root.
type VisitFunc func(step Step) (bool, error)

type Walker struct {
	opts Options
}

func New(opts ...Option) *Walker {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Walker{opts: o}
}

// Walk visits root and its member graph. root must be addressable (or a
// pointer) for the callback to be able to assign members.
func (w *Walker) Walk(root reflect.Value, visit VisitFunc) error {
	if visit == nil {
		return ErrNilVisit
	}

	if !root.IsValid() {
		return ErrInvalidRoot
	}

	if _, err := visit(Step{Current: root, Depth: 1}); err != nil {
		return err
	}

	var guard node.PathGuard

	return w.walkMembers(root, root.Type(), 1, &guard, visit)
}

func (w *Walker) walkMembers(
	owner reflect.Value,
	t reflect.Type,
	depth int,
	guard *node.PathGuard,
	visit VisitFunc,
) error {
	depth = max(depth, 1)

	t = node.Base(t)
	if t.Kind() != reflect.Struct {
		return nil
	}

	if w.opts.CycleGuard {
		if !guard.Enter(t) {
			return nil
		}
		defer guard.Leave(t)
	}

	owner = node.Indirect(owner)

	for _, m := range node.Members(t) {
		if w.opts.SkipEmbedded && m.Embedded {
			continue
		}

		if !owner.IsValid() {
			if _, err := visit(Step{Member: &m, Depth: depth}); err != nil {
				return err
			}
			continue
		}

		step := Step{Parent: owner, Current: m.Get(owner), Member: &m, Depth: depth}

		recurse, err := visit(step)
		if err != nil {
			return err
		}

		if recurse {
			if err := w.descend(step, m.Get(owner), guard, visit); err != nil {
				return err
			}
		}

		if w.opts.Recorder != nil {
			w.opts.Recorder.Record(m.Type, m.Get(owner))
		}
	}

	return nil
}

// descend walks the members of value, the current value of step's member.
func (w *Walker) descend(step Step, value reflect.Value, guard *node.PathGuard, visit VisitFunc) error {
	next, nextType := value, step.Member.Type
	if next.Kind() == reflect.Interface && !next.IsNil() {
		next = next.Elem()
		nextType = next.Type()
	}

	if w.opts.MaxDepth > 0 && step.Depth+1 > w.opts.MaxDepth {
		w.cut(step, CutDepth)
		return nil
	}

	if w.opts.CycleGuard && guard.Active(nextType) {
		w.cut(step, CutCycle)
		return nil
	}

	return w.walkMembers(next, nextType, step.Depth+1, guard, visit)
}

func (w *Walker) cut(step Step, reason CutReason) {
	if w.opts.OnCut != nil {
		w.opts.OnCut(step, reason)
	}
}
