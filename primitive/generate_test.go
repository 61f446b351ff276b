package primitive_test

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"value-synth/primitive"
	"value-synth/utils"
)

func TestGenerateRanges(t *testing.T) {
	t.Parallel()

	rg := primitive.DefaultRanges()
	e := primitive.NewEntropy(7)

	for range 500 {
		v, ok := primitive.Generate(reflect.TypeFor[int](), e, rg)
		require.True(t, ok)
		assert.True(t, utils.IsInInterval(-10000, v.Interface().(int), 10000))

		v, ok = primitive.Generate(reflect.TypeFor[int8](), e, rg)
		require.True(t, ok)
		assert.True(t, utils.IsInInterval(-128, int(v.Interface().(int8)), 128))

		v, ok = primitive.Generate(reflect.TypeFor[uint16](), e, rg)
		require.True(t, ok)
		assert.Less(t, v.Interface().(uint16), uint16(10000))

		v, ok = primitive.Generate(reflect.TypeFor[rune](), e, rg)
		require.True(t, ok)
		assert.True(t, strings.ContainsRune(primitive.DefaultAlphabet, v.Interface().(rune)))

		v, ok = primitive.Generate(reflect.TypeFor[float64](), e, rg)
		require.True(t, ok)
		assert.True(t, utils.IsInInterval(-10000, v.Interface().(float64), 10000))

		v, ok = primitive.Generate(reflect.TypeFor[string](), e, rg)
		require.True(t, ok)
		s := v.Interface().(string)
		assert.True(t, utils.IsInInterval(8, len(s), 24))

		v, ok = primitive.Generate(reflect.TypeFor[time.Time](), e, rg)
		require.True(t, ok)
		ts := v.Interface().(time.Time)
		assert.False(t, ts.Before(rg.TimeMin))
		assert.True(t, ts.Before(rg.TimeMax))

		v, ok = primitive.Generate(reflect.TypeFor[time.Duration](), e, rg)
		require.True(t, ok)
		assert.True(t, utils.IsInInterval(0, v.Interface().(time.Duration), 24*time.Hour))
	}
}

func TestGenerateFullInt64Range(t *testing.T) {
	t.Parallel()

	rg := primitive.DefaultRanges()
	rg.IntMin, rg.IntMax = math.MinInt64, math.MaxInt64
	e := primitive.NewEntropy(1)

	var negative, positive bool
	for range 200 {
		v, ok := primitive.Generate(reflect.TypeFor[int64](), e, rg)
		require.True(t, ok)
		n := v.Interface().(int64)
		negative = negative || n < 0
		positive = positive || n > 0
	}
	assert.True(t, negative)
	assert.True(t, positive)
}

func TestGenerateNarrowKinds(t *testing.T) {
	t.Parallel()

	rg := primitive.DefaultRanges()
	rg.IntMin, rg.IntMax = 200, 300
	e := primitive.NewEntropy(2)

	for _, rtype := range []reflect.Type{
		reflect.TypeFor[int8](),
		reflect.TypeFor[uint8](),
	} {
		t.Run(rtype.String(), func(t *testing.T) {
			_, ok := primitive.Generate(rtype, e, rg)
			assert.False(t, ok)
		})
	}

	for range 100 {
		v, ok := primitive.Generate(reflect.TypeFor[int16](), e, rg)
		require.True(t, ok)
		assert.True(t, utils.IsInInterval(200, v.Interface().(int16), 300))

		v, ok = primitive.Generate(reflect.TypeFor[uint16](), e, rg)
		require.True(t, ok)
		assert.True(t, utils.IsInInterval(200, v.Interface().(uint16), 300))
	}

	rg.IntMin, rg.IntMax = -10, -5
	_, ok := primitive.Generate(reflect.TypeFor[uint32](), e, rg)
	assert.False(t, ok)
}

func TestGenerateDomainTypes(t *testing.T) {
	t.Parallel()

	rg := primitive.DefaultRanges()
	e := primitive.NewEntropy(11)

	v, ok := primitive.Generate(reflect.TypeFor[uuid.UUID](), e, rg)
	require.True(t, ok)
	id := v.Interface().(uuid.UUID)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, uuid.Version(4), id.Version())

	v, ok = primitive.Generate(reflect.TypeFor[apd.Decimal](), e, rg)
	require.True(t, ok)
	d := v.Interface().(apd.Decimal)
	assert.Equal(t, int32(-2), d.Exponent)

	_, ok = primitive.Generate(reflect.TypeFor[struct{ A int }](), e, rg)
	assert.False(t, ok)
}

func TestEntropyIsDeterministic(t *testing.T) {
	t.Parallel()

	a, b := primitive.NewEntropy(42), primitive.NewEntropy(42)
	rg := primitive.DefaultRanges()

	for range 20 {
		va, _ := primitive.Generate(reflect.TypeFor[string](), a, rg)
		vb, _ := primitive.Generate(reflect.TypeFor[string](), b, rg)
		assert.Equal(t, va.Interface(), vb.Interface())
	}

	ua, _ := primitive.Generate(reflect.TypeFor[uuid.UUID](), a, rg)
	ub, _ := primitive.Generate(reflect.TypeFor[uuid.UUID](), b, rg)
	assert.Equal(t, ua.Interface(), ub.Interface())
}

func TestBaseType(t *testing.T) {
	t.Parallel()

	type Status string
	type Level uint8

	assert.Equal(t, reflect.TypeFor[string](), primitive.BaseType(reflect.TypeFor[Status]()))
	assert.Equal(t, reflect.TypeFor[uint8](), primitive.BaseType(reflect.TypeFor[Level]()))
	assert.Nil(t, primitive.BaseType(reflect.TypeFor[[]int]()))
	assert.True(t, primitive.IsPrimitive(reflect.TypeFor[Status]()))
	assert.False(t, primitive.IsPrimitive(reflect.TypeFor[*int]()))
}
