package node

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// TagKey is the struct tag consulted for member options. `synth:"-"` excludes
// a field from generation.
const TagKey = "synth"

var (
	ErrNotAStruct    = errors.New("member owner is not a struct")
	ErrNotSettable   = errors.New("member is not settable on this owner")
	ErrIncompatible  = errors.New("value is not assignable to member")
	ErrInvalidOwner  = errors.New("member owner is absent")
	ErrForeignMember = errors.New("member does not belong to owner type")
)

// Member is a uniform read/write accessor over an exported struct field.
type Member struct {
	DeclaringType reflect.Type
	Type          reflect.Type
	Name          string
	Index         []int
	Embedded      bool
	Excluded      bool
	Tag           reflect.StructTag
}

// Members lists the exported fields of t (pointers are stripped) in
// declaration order. Unexported fields can neither be read nor written through
// reflection from another package, so they are not members.
func Members(t reflect.Type) []Member {
	t = Base(t)
	if t.Kind() != reflect.Struct {
		return nil
	}

	members := make([]Member, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		members = append(members, Member{
			DeclaringType: t,
			Type:          f.Type,
			Name:          f.Name,
			Index:         f.Index,
			Embedded:      f.Anonymous,
			Excluded:      isExcluded(f),
			Tag:           f.Tag,
		})
	}

	return members
}

func isExcluded(f reflect.StructField) bool {
	tag, ok := f.Tag.Lookup(TagKey)
	if !ok {
		return false
	}

	name, _, _ := strings.Cut(tag, ",")

	return name == "-"
}

// Get reads the member from owner. owner may be a struct or a pointer to it;
// an invalid value is returned when owner is absent.
func (m *Member) Get(owner reflect.Value) reflect.Value {
	owner = Indirect(owner)
	if !owner.IsValid() || owner.Type() != m.DeclaringType {
		return reflect.Value{}
	}

	return owner.FieldByIndex(m.Index)
}

// CanSet reports whether Set would succeed for owner.
func (m *Member) CanSet(owner reflect.Value) bool {
	field := m.Get(owner)

	return field.IsValid() && field.CanSet()
}

// Set assigns v to the member of owner. owner must be addressable.
func (m *Member) Set(owner reflect.Value, v reflect.Value) error {
	owner = Indirect(owner)

	switch {
	case !owner.IsValid():
		return fmt.Errorf("%s: %w", m, ErrInvalidOwner)
	case owner.Kind() != reflect.Struct:
		return fmt.Errorf("%s: %w", m, ErrNotAStruct)
	case owner.Type() != m.DeclaringType:
		return fmt.Errorf("%s on %s: %w", m, TypeName(owner.Type()), ErrForeignMember)
	}

	field := owner.FieldByIndex(m.Index)
	if !field.CanSet() {
		return fmt.Errorf("%s: %w", m, ErrNotSettable)
	}

	if !v.IsValid() {
		field.SetZero()
		return nil
	}

	if !v.Type().AssignableTo(m.Type) {
		return fmt.Errorf("%s: %s %w", m, TypeName(v.Type()), ErrIncompatible)
	}

	field.Set(v)

	return nil
}

// IsSelfReference reports whether the member type, pointers stripped, is the
// type that declares it.
func (m *Member) IsSelfReference() bool {
	return Base(m.Type) == m.DeclaringType
}

func (m *Member) String() string {
	return TypeName(m.DeclaringType) + "." + m.Name
}
