package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"value-synth/internal/match"
	"value-synth/node"
	"value-synth/store"
	"value-synth/synth"
	"value-synth/warehouse"
)

// ErrUnknownModel is returned by Lookup for a name that is not in the catalog.
var ErrUnknownModel = errors.New("unknown model")

// Model is one generatable type.
type Model struct {
	Name string
	Type reflect.Type
}

// Members returns the number of exported struct fields of the model.
func (m Model) Members() int {
	return len(node.Members(m.Type))
}

// Excluded returns the names of the fields tagged to be left alone.
func (m Model) Excluded() []string {
	var names []string
	for _, member := range node.Members(m.Type) {
		if member.Excluded {
			names = append(names, member.Name)
		}
	}

	return names
}

var models = newModels(
	reflect.TypeFor[store.Address](),
	reflect.TypeFor[store.Person](),
	reflect.TypeFor[store.Category](),
	reflect.TypeFor[store.Product](),
	reflect.TypeFor[store.Order](),
	reflect.TypeFor[store.OrderItem](),
	reflect.TypeFor[warehouse.Address](),
	reflect.TypeFor[warehouse.Site](),
	reflect.TypeFor[warehouse.Employee](),
	reflect.TypeFor[warehouse.Shipment](),
)

func newModels(types ...reflect.Type) []Model {
	out := make([]Model, 0, len(types))
	for _, t := range types {
		out = append(out, Model{Name: node.TypeName(t), Type: t})
	}

	slices.SortFunc(out, func(a, b Model) int { return strings.Compare(a.Name, b.Name) })

	return out
}

// Models lists every model sorted by name.
func Models() []Model {
	return slices.Clone(models)
}

// Lookup finds a model by name, case-insensitively.
func Lookup(name string) (Model, error) {
	for _, m := range models {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}

	if hints := Suggest(name); len(hints) > 0 {
		return Model{}, fmt.Errorf("%q: %w, did you mean %s?", name, ErrUnknownModel, strings.Join(hints, " or "))
	}

	return Model{}, fmt.Errorf("%q: %w", name, ErrUnknownModel)
}

// Suggest returns up to three model names close to name.
func Suggest(name string) []string {
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.Name
	}

	return match.Suggest(name, names, 3)
}

// Setup registers what the models need beyond the default strategies.
func Setup(e *synth.Engine) error {
	steps := []func(*synth.Engine) error{
		func(e *synth.Engine) error {
			return synth.RegisterConstructor[warehouse.Dimensions](e, warehouse.NewDimensions)
		},
		func(e *synth.Engine) error {
			return synth.RegisterConstructor[warehouse.Carrier](e, warehouse.NewTruck)
		},
		func(e *synth.Engine) error {
			return synth.RegisterConstructor[warehouse.Carrier](e, warehouse.NewDrone)
		},
		synth.RegisterMap[string, string],
		func(e *synth.Engine) error {
			return synth.Register(e, func() store.OrderStatus {
				statuses := store.OrderStatuses()
				return statuses[synth.MustProduce[uint8](e)%uint8(len(statuses))]
			})
		},
	}

	for _, step := range steps {
		if err := step(e); err != nil {
			return fmt.Errorf("catalog setup: %w", err)
		}
	}

	return nil
}
