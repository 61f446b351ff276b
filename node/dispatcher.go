package node

import (
	"reflect"

	"value-synth/primitive"
)

// Dispatch routes a type to the synthesis shape that handles it. Primitive-like
// types win over their structural kind, so time.Time and uuid.UUID are not
// treated as a struct and an array.
func Dispatch(t reflect.Type) ShapeEnum {
	if t == nil {
		return ShapeUnknown
	}

	if primitive.IsPrimitive(t) {
		return ShapePrimitive
	}

	switch t.Kind() {
	default:
		return ShapeUnknown
	case reflect.Interface:
		return ShapeInterface
	case reflect.Slice, reflect.Array:
		return ShapeCollection
	case reflect.Map:
		return ShapeMap
	case reflect.Struct:
		return ShapeStruct
	case reflect.Ptr:
		return ShapePointer
	}
}

// IsCollection reports whether t is a single-element-type collection shape.
func IsCollection(t reflect.Type) bool {
	return Dispatch(t) == ShapeCollection
}

// IsTerminal reports whether a value of t has no member graph worth walking.
func IsTerminal(t reflect.Type) bool {
	switch Dispatch(Base(t)) {
	default:
		return true
	case ShapeStruct:
		return false
	}
}

// Base strips every pointer level from t.
func Base(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// ptrDepthAndBase returns the pointer depth and the final base type.
func ptrDepthAndBase(t reflect.Type) (depth int, base reflect.Type) {
	depth, base = 0, t
	for t != nil && base.Kind() == reflect.Ptr {
		depth++
		base = base.Elem()
	}

	return
}

// Indirect follows pointers of v down to the first non-pointer value. It
// returns an invalid value when a nil pointer is met on the way.
func Indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}

	return v
}
