package node

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"value-synth/utils"
)

var (
	ErrIsNotAConstructor         = errors.New("provided function is not a recognizable constructor")
	ErrConstructorIsNotAFunction = errors.New("provided constructor is not a function")
	ErrDoublePointer             = errors.New("constructor function does not support double pointers")
	ErrConstructorDeclined       = errors.New("constructor reported no value")
	ErrConstructorPanicked       = errors.New("constructor panicked")
	ErrNilResult                 = errors.New("constructor returned a nil pointer")
)

type Constructor struct {
	Fn           reflect.Value
	In           []reflect.Type
	Out          reflect.Type
	PackageAlias string
	Name         string
	HasBool      bool
	HasErr       bool
}

// ParseConstructor inspects the provided function and returns a Constructor if it is a valid constructor function.
//
// Supports interfaces:
//   - func(args...) (dst Type)
//   - func(args...) (dst Type, bool)
//   - func(args...) (dst Type, error)
//   - func(args...) (dst Type, bool, error)
func ParseConstructor(fn any) (Constructor, error) {
	if fn == nil {
		return Constructor{}, ErrConstructorIsNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return Constructor{}, ErrConstructorIsNotAFunction
	}

	if fnType.IsVariadic() || fnType.NumOut() == 0 {
		return Constructor{}, ErrIsNotAConstructor
	}

	in := make([]reflect.Type, fnType.NumIn())
	for i := range in {
		in[i] = fnType.In(i)
	}

	dst := fnType.Out(0)
	if depth, _ := ptrDepthAndBase(dst); depth > 1 {
		return Constructor{}, ErrDoublePointer
	}

	// "value-synth/store.NewPerson" -> "store", "NewPerson"
	fnPC := runtime.FuncForPC(fnVal.Pointer())
	alias, name := utils.Unpack2(strings.SplitN(utils.Second(path.Split(fnPC.Name())), ".", 2))

	ctor := Constructor{
		Fn:           fnVal,
		In:           in,
		Out:          dst,
		Name:         name,
		PackageAlias: alias,
	}

	switch fnType.NumOut() {
	default:
		return Constructor{}, ErrIsNotAConstructor

	case 1:
		return ctor, nil

	case 2:
		last := fnType.Out(1)

		switch {
		default:
			return Constructor{}, ErrIsNotAConstructor
		case last.Kind() == reflect.Bool:
			ctor.HasBool = true
		case isError(last):
			ctor.HasErr = true
		}
		return ctor, nil

	case 3:
		tbool, terr := fnType.Out(1), fnType.Out(2)
		if tbool.Kind() != reflect.Bool || !isError(terr) {
			return Constructor{}, ErrIsNotAConstructor
		}

		ctor.HasBool = true
		ctor.HasErr = true
		return ctor, nil
	}
}

// Produces reports whether the constructor result can stand for a value of t,
// either directly or by dereferencing a single pointer.
func (c Constructor) Produces(t reflect.Type) bool {
	if c.Out == t || c.Out.AssignableTo(t) {
		return true
	}

	return c.Out.Kind() == reflect.Ptr && c.Out.Elem() == t
}

// Matches reports whether the constructor parameters are exactly params.
func (c Constructor) Matches(params []reflect.Type) bool {
	if len(c.In) != len(params) {
		return false
	}

	for i := range params {
		if c.In[i] != params[i] {
			return false
		}
	}

	return true
}

// IsNullary reports whether the constructor takes no arguments.
func (c Constructor) IsNullary() bool {
	return len(c.In) == 0
}

// Call invokes the constructor and adapts its result to target.
// A false flag, a non-nil error and a panic are all reported as errors.
func (c Constructor) Call(target reflect.Type, args []reflect.Value) (result reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = reflect.Value{}, fmt.Errorf("%s: %w: %v", c, ErrConstructorPanicked, r)
		}
	}()

	out := c.Fn.Call(args)

	if c.HasErr {
		if errVal := out[len(out)-1]; !errVal.IsNil() {
			return reflect.Value{}, fmt.Errorf("%s: %w", c, errVal.Interface().(error))
		}
	}

	if c.HasBool && !out[1].Bool() {
		return reflect.Value{}, fmt.Errorf("%s: %w", c, ErrConstructorDeclined)
	}

	v := out[0]
	switch {
	case c.Out == target:
		return v, nil
	case c.Out.Kind() == reflect.Ptr && c.Out.Elem() == target:
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%s: %w", c, ErrNilResult)
		}
		return v.Elem(), nil
	default:
		converted := reflect.New(target).Elem()
		converted.Set(v)
		return converted, nil
	}
}

// String returns "alias.Name" of the underlying function.
func (c Constructor) String() string {
	if c.PackageAlias == "" {
		return c.Name
	}

	return c.PackageAlias + "." + c.Name
}
