package synth

import (
	"fmt"
	"reflect"

	"value-synth/node"
	"value-synth/utils"
)

// collect builds a slice or array of t. A negative count draws the slice
// cardinality from the configured collection range; arrays always fill every slot.
func (e *Engine) collect(t reflect.Type, count int) (reflect.Value, error) {
	switch t.Kind() {
	case reflect.Array:
		out := reflect.New(t).Elem()
		for i := range t.Len() {
			v, err := e.draw(t.Elem(), "")
			if err != nil {
				return reflect.Value{}, fmt.Errorf("%s[%d]: %w", node.TypeName(t), i, err)
			}
			out.Index(i).Set(v)
		}
		return out, nil

	case reflect.Slice:
		if count < 0 {
			count = e.cardinality()
		}

		out := reflect.MakeSlice(t, 0, count)
		for i := range count {
			v, err := e.draw(t.Elem(), "")
			if err != nil {
				return reflect.Value{}, fmt.Errorf("%s[%d]: %w", node.TypeName(t), i, err)
			}
			out = reflect.Append(out, v)
		}
		return out, nil

	default:
		return reflect.Value{}, fmt.Errorf("%s: %w", node.TypeName(t), ErrUnsupportedShape)
	}
}

// collectMap builds a map with a drawn cardinality. Colliding keys shrink it.
func (e *Engine) collectMap(t reflect.Type) (reflect.Value, error) {
	if t.Kind() != reflect.Map {
		return reflect.Value{}, fmt.Errorf("%s: %w", node.TypeName(t), ErrUnsupportedShape)
	}

	n := e.cardinality()
	out := reflect.MakeMapWithSize(t, n)
	for range n {
		k, err := e.draw(t.Key(), "")
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%s key: %w", node.TypeName(t), err)
		}

		v, err := e.draw(t.Elem(), "")
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%s value: %w", node.TypeName(t), err)
		}

		out.SetMapIndex(k, v)
	}

	return out, nil
}

func (e *Engine) cardinality() int {
	return utils.IntBetween(e.entropy, e.collMin, e.collMax)
}
