package walk

import (
	"errors"
	"reflect"
)

var (
	// ErrNilVisit is returned when Walk is called without a visit callback.
	ErrNilVisit = errors.New("walk: visit function is nil")

	// ErrInvalidRoot is returned when the root value is absent.
	ErrInvalidRoot = errors.New("walk: root value is invalid")
)

// Recorder receives every member value once the member and everything below
// it were visited.
type Recorder interface {
	Record(t reflect.Type, v reflect.Value)
}

// CutReason tells why a descent requested by the visit callback was refused.
type CutReason int

const (
	CutDepth CutReason = iota + 1 // MaxDepth reached
	CutCycle                      // the member type is already on the current path
)

func (r CutReason) String() string {
	switch r {
	case CutDepth:
		return "depth limit"
	case CutCycle:
		return "cycle"
	default:
		return "none"
	}
}

// Option configures optional behavior of a Walker.
type Option func(*Options)

// Options holds configurable parameters for a walk.
type Options struct {
	// MaxDepth, if positive, is the deepest member level that is visited.
	// Root members are at depth 1. Default is 0 (no limit).
	MaxDepth int

	// CycleGuard refuses to descend into a struct type that is already on the
	// current path. Default is false.
	CycleGuard bool

	// SkipEmbedded leaves embedded fields out of the enumeration.
	SkipEmbedded bool

	// Recorder, if non-nil, gets the final value of every member.
	Recorder Recorder

	// OnCut, if non-nil, is invoked for every refused descent.
	OnCut func(step Step, reason CutReason)
}

// DefaultOptions returns Options with no depth limit, no cycle guard and
// embedded fields included.
func DefaultOptions() Options {
	return Options{
		MaxDepth:     0,
		CycleGuard:   false,
		SkipEmbedded: false,
		Recorder:     nil,
		OnCut:        nil,
	}
}

// WithMaxDepth limits the walk to member levels up to limit. Non-positive
// values remove the limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithCycleGuard toggles the per-path visited-type guard.
func WithCycleGuard(enabled bool) Option {
	return func(o *Options) {
		o.CycleGuard = enabled
	}
}

// WithoutEmbedded skips embedded fields.
func WithoutEmbedded() Option {
	return func(o *Options) {
		o.SkipEmbedded = true
	}
}

// WithRecorder installs r as the member value recorder.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		o.Recorder = r
	}
}

// WithOnCut installs fn as the refused-descent hook.
func WithOnCut(fn func(step Step, reason CutReason)) Option {
	return func(o *Options) {
		o.OnCut = fn
	}
}
