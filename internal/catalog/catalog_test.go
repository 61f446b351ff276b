package catalog

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"value-synth/store"
	"value-synth/synth"
	"value-synth/warehouse"
)

func TestLookup(t *testing.T) {
	m, err := Lookup("STORE.person")
	require.NoError(t, err)
	assert.Equal(t, "store.Person", m.Name)
	assert.Equal(t, reflect.TypeFor[store.Person](), m.Type)
	assert.Equal(t, []string{"PasswordHash"}, m.Excluded())

	_, err = Lookup("zzz")
	require.ErrorIs(t, err, ErrUnknownModel)
	assert.NotContains(t, err.Error(), "did you mean")

	_, err = Lookup("store.Persno")
	require.ErrorIs(t, err, ErrUnknownModel)
	assert.Contains(t, err.Error(), "did you mean store.Person?")

	assert.Equal(t, []string{"store.Address", "warehouse.Address"}, Suggest("adress"))
}

func TestModelsSorted(t *testing.T) {
	models := Models()
	require.NotEmpty(t, models)

	for i := 1; i < len(models); i++ {
		assert.Less(t, models[i-1].Name, models[i].Name)
	}

	models[0].Name = "changed"
	assert.NotEqual(t, "changed", Models()[0].Name)
}

func TestSetupServesWarehouse(t *testing.T) {
	e := synth.MustNew(synth.WithSeed(21))
	require.NoError(t, Setup(e))

	shipments, err := synth.ProduceMany[warehouse.Shipment](e, 20)
	require.NoError(t, err)

	var trucks, drones int
	for _, s := range shipments {
		switch c := s.Carrier.(type) {
		case *warehouse.Truck:
			trucks++
			assert.NotEmpty(t, c.Plate)
		case *warehouse.Drone:
			drones++
			assert.NotEmpty(t, c.Code())
		default:
			t.Fatalf("unexpected carrier %T", s.Carrier)
		}

		assert.NotEmpty(t, s.Labels)
		assert.NotEmpty(t, s.Origin.Address.City)
		assert.Empty(t, s.Internal)
	}
	assert.Equal(t, len(shipments), trucks+drones)

	diags := e.Diagnostics()
	assert.False(t, diags.HasErrors())
	assert.Empty(t, diags.Warnings)
}

func TestSetupCarriersAreReproducible(t *testing.T) {
	produce := func() []warehouse.Carrier {
		e := synth.MustNew(synth.WithSeed(5))
		require.NoError(t, Setup(e))

		carriers, err := synth.ProduceMany[warehouse.Carrier](e, 30)
		require.NoError(t, err)
		return carriers
	}

	first, second := produce(), produce()
	assert.Equal(t, first, second)

	var drones int
	for _, c := range first {
		if d, ok := c.(*warehouse.Drone); ok {
			drones++
			assert.GreaterOrEqual(t, d.RangeKm, uint8(128))
			assert.NotEqual(t, uuid.Nil, d.Serial)
		}
	}
	assert.Positive(t, drones)
}

func TestSetupOrderStatus(t *testing.T) {
	e := synth.MustNew(synth.WithSeed(4))
	require.NoError(t, Setup(e))

	orders, err := synth.ProduceMany[store.Order](e, 10)
	require.NoError(t, err)

	for _, o := range orders {
		assert.Contains(t, store.OrderStatuses(), o.Status)
		assert.NotEmpty(t, o.Items)
	}
}
