package synth

import (
	"errors"
	"fmt"
	"reflect"

	"value-synth/node"
)

// construct calls the registered constructor of t whose parameters are
// exactly params. Arguments come from args by position, the rest are drawn.
func (e *Engine) construct(
	t reflect.Type,
	params []reflect.Type,
	args map[int]reflect.Value,
) (reflect.Value, error) {
	for _, c := range e.ctors[t] {
		if !c.Matches(params) {
			continue
		}

		v, err := e.call(t, c, args)
		if err != nil {
			e.logger.Debug("configured constructor failed",
				"type", node.TypeName(t), "constructor", c.String(), "error", err)
		}
		return v, err
	}

	return reflect.Value{}, fmt.Errorf("%s%s: %w", node.TypeName(t), signature(params), ErrNoConstructor)
}

// constructDefault runs the fallback chain for t: parameterless instantiation
// first, then every registered constructor in registration order.
func (e *Engine) constructDefault(t reflect.Type) (reflect.Value, error) {
	ctors := e.ctors[t]

	for _, c := range ctors {
		if !c.IsNullary() {
			continue
		}

		v, err := c.Call(t, nil)
		if err == nil {
			return v, nil
		}
		e.logger.Debug("parameterless constructor failed",
			"type", node.TypeName(t), "constructor", c.String(), "error", err)
	}

	if v, ok := zeroInstance(t); ok {
		return v, nil
	}

	var errs []error
	for _, c := range ctors {
		if c.IsNullary() {
			continue
		}

		v, err := e.call(t, c, nil)
		if err == nil {
			return v, nil
		}
		e.logger.Debug("constructor failed",
			"type", node.TypeName(t), "constructor", c.String(), "error", err)
		errs = append(errs, err)
	}

	err := fmt.Errorf("%s: %w", node.TypeName(t), ErrCannotSynthesize)
	if len(errs) > 0 {
		err = fmt.Errorf("%w: %w", err, errors.Join(errs...))
	}

	return reflect.Value{}, err
}

func (e *Engine) call(t reflect.Type, c node.Constructor, args map[int]reflect.Value) (reflect.Value, error) {
	in := make([]reflect.Value, len(c.In))
	for i, p := range c.In {
		if a, ok := args[i]; ok {
			v, err := conform(p, a)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("%s argument %d: %w", c, i, err)
			}
			in[i] = v
			continue
		}

		v, err := e.draw(p, "")
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%s argument %d: %w", c, i, err)
		}
		in[i] = v
	}

	return c.Call(t, in)
}

// zeroInstance returns a usable zero value for kinds that have one.
func zeroInstance(t reflect.Type) (reflect.Value, bool) {
	switch t.Kind() {
	default:
		return reflect.Value{}, false
	case reflect.Struct, reflect.Array,
		reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return reflect.New(t).Elem(), true
	}
}

func signature(params []reflect.Type) string {
	s := "("
	for i, p := range params {
		if i > 0 {
			s += ", "
		}
		s += node.TypeName(p)
	}

	return s + ")"
}
