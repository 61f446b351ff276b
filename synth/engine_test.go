package synth_test

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"value-synth/internal/diagnostic"
	"value-synth/options"
	"value-synth/primitive"
	"value-synth/synth"
)

type Address struct {
	City   string
	Street string
	Zip    uint16
}

type Person struct {
	Name    string
	Age     int
	Address Address
	Home    *Address
	Tags    []string
	Secret  string `synth:"-"`
}

type Node struct {
	Value int
	Next  *Node
}

type Left struct {
	Name  string
	Right *Right
}

type Right struct {
	Name string
	Left *Left
}

type Shape interface {
	Area() float64
}

type square struct{ side float64 }

func (s square) Area() float64 { return s.side * s.side }

type Holder struct {
	Label string
	Shape Shape
}

type Status string

type List []List

type Money struct {
	amount   int
	currency string
}

func NewMoney(amount int, currency string) Money {
	return Money{amount: amount, currency: currency}
}

func newEngine(t *testing.T, opts ...synth.Option) *synth.Engine {
	t.Helper()

	e, err := synth.New(append([]synth.Option{synth.WithSeed(7)}, opts...)...)
	require.NoError(t, err)

	return e
}

func TestRegisteredProducerWins(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, synth.Register(e, func() int { return 42 }))

	for range 10 {
		v, err := synth.Produce[int](e)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	}

	p, err := synth.Produce[Person](e)
	require.NoError(t, err)
	assert.Equal(t, 42, p.Age)
}

func TestDefaultPrimitiveRanges(t *testing.T) {
	e := newEngine(t)

	ints, err := synth.ProduceMany[int](e, 500)
	require.NoError(t, err)
	for _, v := range ints {
		assert.GreaterOrEqual(t, v, -10000)
		assert.Less(t, v, 10000)
	}

	runes, err := synth.ProduceMany[rune](e, 200)
	require.NoError(t, err)
	for _, r := range runes {
		assert.Contains(t, primitive.DefaultAlphabet, string(r))
	}

	s, err := synth.Produce[string](e)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(s), 8)
	assert.Less(t, len(s), 24)

	status, err := synth.Produce[Status](e)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(status), 8)
}

func TestCollectionCardinality(t *testing.T) {
	e := newEngine(t)

	for range 50 {
		xs, err := synth.Produce[[]int](e)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(xs), synth.DefaultCollectionMin)
		assert.Less(t, len(xs), synth.DefaultCollectionMax)
	}

	arr, err := synth.Produce[[4]string](e)
	require.NoError(t, err)
	for _, s := range arr {
		assert.NotEmpty(t, s)
	}

	exact, err := synth.ProduceSlice[uuid.UUID](e, 3)
	require.NoError(t, err)
	assert.Len(t, exact, 3)

	e = newEngine(t, synth.WithCollectionRange(2, 3))
	xs, err := synth.Produce[[]Address](e)
	require.NoError(t, err)
	assert.Len(t, xs, 2)
}

func TestProduceMany(t *testing.T) {
	e := newEngine(t)

	xs, err := synth.ProduceMany[int](e, 7)
	require.NoError(t, err)
	assert.Len(t, xs, 7)

	ids, err := synth.ProduceMany[uuid.UUID](e, 5, synth.WithRepeat())
	require.NoError(t, err)
	require.Len(t, ids, 5)
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}

	ids, err = synth.ProduceMany[uuid.UUID](e, 5)
	require.NoError(t, err)
	assert.NotEqual(t, ids[0], ids[1])
	assert.Equal(t, uuid.Version(4), ids[0].Version())

	people, err := synth.ProduceMany[*Person](e, 3, synth.WithRepeat())
	require.NoError(t, err)
	assert.Same(t, people[0], people[2])

	xs, err = synth.ProduceMany[int](e, -1)
	require.ErrorIs(t, err, synth.ErrNegativeCount)
	assert.Nil(t, xs)

	xs, err = synth.ProduceMany[int](e, 0)
	require.NoError(t, err)
	assert.Empty(t, xs)
}

func TestProduceManyProgress(t *testing.T) {
	e := newEngine(t)

	var got []float64
	_, err := synth.ProduceMany[Address](e, 4, synth.WithProgress(func(p float64) {
		got = append(got, p)
	}))
	require.NoError(t, err)
	assert.Equal(t, []float64{25, 50, 75, 100}, got)
}

func TestPopulatesNestedMembers(t *testing.T) {
	e := newEngine(t)

	p, err := synth.Produce[Person](e)
	require.NoError(t, err)

	assert.NotEmpty(t, p.Name)
	assert.NotEmpty(t, p.Address.City)
	assert.NotEmpty(t, p.Address.Street)
	require.NotNil(t, p.Home)
	assert.NotEmpty(t, p.Home.City)
	assert.NotEmpty(t, p.Tags)
	assert.Empty(t, p.Secret)

	ptr, err := synth.Produce[*Person](e)
	require.NoError(t, err)
	require.NotNil(t, ptr)
	assert.NotEmpty(t, ptr.Address.City)
}

func TestExcludedMemberKeepsConstructedValue(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, synth.RegisterConstructor[Person](e, func() Person {
		return Person{Secret: "keep"}
	}))

	p, err := synth.Produce[Person](e)
	require.NoError(t, err)
	assert.Equal(t, "keep", p.Secret)
	assert.NotEmpty(t, p.Name)
}

func TestSelfReferenceIsNotDescended(t *testing.T) {
	e := newEngine(t)

	n, err := synth.Produce[Node](e)
	require.NoError(t, err)
	require.NotNil(t, n.Next)
	assert.Zero(t, n.Next.Value)
	assert.Nil(t, n.Next.Next)
}

func TestIndirectCycleIsCut(t *testing.T) {
	e := newEngine(t)

	l, err := synth.Produce[Left](e)
	require.NoError(t, err)
	require.NotNil(t, l.Right)
	assert.NotEmpty(t, l.Right.Name)
	require.NotNil(t, l.Right.Left)
	assert.Nil(t, l.Right.Left.Right)

	diags := e.Diagnostics()
	assert.NotEmpty(t, diags.WithCode(diagnostic.CodeCycleCut))
}

func TestMaxDepth(t *testing.T) {
	e := newEngine(t, synth.WithMaxDepth(1))

	p, err := synth.Produce[Person](e)
	require.NoError(t, err)
	assert.NotEmpty(t, p.Name)
	assert.Empty(t, p.Address.City)

	diags := e.Diagnostics()
	assert.NotEmpty(t, diags.WithCode(diagnostic.CodeDepthLimit))
}

func TestInterfaceWithoutConstructor(t *testing.T) {
	e := newEngine(t)

	h, err := synth.Produce[Holder](e)
	require.NoError(t, err)
	assert.NotEmpty(t, h.Label)
	assert.Nil(t, h.Shape)

	diags := e.Diagnostics()
	assert.Len(t, diags.WithCode(diagnostic.CodeCannotSynthesize), 1)
	assert.False(t, diags.HasErrors())

	strict := newEngine(t, synth.WithFailureMode(options.FailureStrict))
	_, err = synth.Produce[Holder](strict)
	require.ErrorIs(t, err, synth.ErrCannotSynthesize)

	diags = strict.Diagnostics()
	assert.True(t, diags.HasErrors())
	require.Error(t, diags.Error())
	assert.Contains(t, diags.Error().Error(), diagnostic.CodeCannotSynthesize)
}

func TestIntRangeBounds(t *testing.T) {
	e := newEngine(t, synth.WithIntRange(math.MinInt64, math.MaxInt64))
	assert.NotPanics(t, func() {
		_, err := synth.ProduceMany[int64](e, 100)
		require.NoError(t, err)
	})

	e = newEngine(t, synth.WithIntRange(200, 300))
	n, err := synth.Produce[int8](e)
	require.NoError(t, err)
	assert.Zero(t, n)
	diags := e.Diagnostics()
	assert.Len(t, diags.WithCode(diagnostic.CodeCannotSynthesize), 1)

	wide, err := synth.Produce[int16](e)
	require.NoError(t, err)
	assert.True(t, wide >= 200 && wide < 300)

	strict := newEngine(t, synth.WithIntRange(200, 300), synth.WithFailureMode(options.FailureStrict))
	_, err = synth.Produce[int8](strict)
	require.ErrorIs(t, err, synth.ErrCannotSynthesize)
}

func TestConstructorChainFallsThrough(t *testing.T) {
	e := newEngine(t, synth.WithFailureMode(options.FailureStrict))

	calls := make([]string, 0, 3)
	require.NoError(t, synth.RegisterConstructor[Shape](e, func(int) (Shape, error) {
		calls = append(calls, "first")
		return nil, errors.New("first refuses")
	}))
	require.NoError(t, synth.RegisterConstructor[Shape](e, func(side float64) Shape {
		calls = append(calls, "second")
		return square{side: 2}
	}))
	require.NoError(t, synth.RegisterConstructor[Shape](e, func(string) (Shape, bool) {
		calls = append(calls, "third")
		return nil, false
	}))

	s, err := synth.Produce[Shape](e)
	require.NoError(t, err)
	assert.Equal(t, square{side: 2}, s)
	assert.Equal(t, []string{"third", "first", "second"}, calls)

	h, err := synth.Produce[Holder](e)
	require.NoError(t, err)
	assert.Equal(t, 4.0, h.Shape.Area())
}

func TestConstructorPinnedArgument(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, synth.RegisterConstructor[Money](e, NewMoney, synth.Arg(1, "EUR")))

	params := e.Registry().Strategy(reflect.TypeFor[Money]()).ConstructorParams()
	assert.Equal(t, []reflect.Type{reflect.TypeFor[int](), reflect.TypeFor[string]()}, params)

	m, err := synth.Produce[Money](e)
	require.NoError(t, err)
	assert.Equal(t, "EUR", m.currency)
	assert.Less(t, m.amount, 10000)

	err = synth.RegisterConstructor[Money](e, NewMoney, synth.Arg(2, "USD"))
	require.ErrorIs(t, err, synth.ErrInvalidRange)

	err = synth.RegisterConstructor[Money](e, func() int { return 1 })
	require.ErrorIs(t, err, synth.ErrTypeMismatch)
}

func TestMaps(t *testing.T) {
	e := newEngine(t)

	m, err := synth.Produce[map[string]int](e)
	require.NoError(t, err)
	assert.Nil(t, m)

	diags := e.Diagnostics()
	assert.NotEmpty(t, diags.WithCode(diagnostic.CodeUnsupportedShape))

	strict := newEngine(t, synth.WithFailureMode(options.FailureStrict))
	_, err = synth.Produce[map[string]int](strict)
	require.ErrorIs(t, err, synth.ErrUnsupportedShape)

	require.NoError(t, synth.RegisterMap[string, int](strict))
	m, err = synth.Produce[map[string]int](strict)
	require.NoError(t, err)
	assert.NotEmpty(t, m)
}

func TestRecursiveCollectionTerminates(t *testing.T) {
	e := newEngine(t)

	l, err := synth.Produce[List](e)
	require.NoError(t, err)
	assert.NotEmpty(t, l)
	for _, inner := range l {
		assert.Nil(t, inner)
	}
}

func TestPopulatePredicate(t *testing.T) {
	e := newEngine(t)
	assert.True(t, e.ShouldPopulate(reflect.TypeFor[*Person]()))
	assert.False(t, e.ShouldPopulate(reflect.TypeFor[[]Person]()))
	assert.False(t, e.ShouldPopulate(reflect.TypeFor[uuid.UUID]()))

	require.ErrorIs(t, e.SetPopulatePredicate(nil), synth.ErrNilArgument)
	require.NoError(t, e.SetPopulatePredicate(func(reflect.Type) bool { return false }))

	p, err := synth.Produce[Person](e)
	require.NoError(t, err)
	assert.Equal(t, Person{}, p)
}

func TestDeterministicSeed(t *testing.T) {
	a, err := synth.Produce[Person](newEngine(t))
	require.NoError(t, err)

	b, err := synth.Produce[Person](newEngine(t))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestHistory(t *testing.T) {
	e := newEngine(t)

	p, err := synth.Produce[Person](e)
	require.NoError(t, err)

	last, ok := e.Registry().LastValue(reflect.TypeFor[Person]())
	require.True(t, ok)
	assert.Equal(t, p, last.Interface())

	addr, ok := e.Registry().LastValue(reflect.TypeFor[Address]())
	require.True(t, ok)
	assert.Equal(t, p.Address, addr.Interface())

	_, ok = e.Registry().LastValue(reflect.TypeFor[Money]())
	assert.False(t, ok)
}

func TestInvalidArguments(t *testing.T) {
	_, err := synth.New(synth.WithCollectionRange(5, 5))
	require.ErrorIs(t, err, synth.ErrInvalidRange)

	_, err = synth.New(synth.WithFailureMode(options.FailureMode(9)))
	require.ErrorIs(t, err, options.ErrUnknownOption)

	_, err = synth.New(synth.WithLogger(nil))
	require.ErrorIs(t, err, synth.ErrNilArgument)

	_, err = synth.Produce[int](nil)
	require.ErrorIs(t, err, synth.ErrNilArgument)

	e := newEngine(t)
	_, err = e.ProduceType(nil)
	require.ErrorIs(t, err, synth.ErrNilArgument)

	require.ErrorIs(t, synth.Register[int](e, nil), synth.ErrNilArgument)
}

func TestDefaultEngine(t *testing.T) {
	synth.SetDefault(synth.MustNew(synth.WithSeed(1), synth.WithAlphabet("x")))
	t.Cleanup(func() { synth.SetDefault(nil) })

	s, err := synth.Any[string]()
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("x", len(s)), s)

	xs, err := synth.Many[Address](3)
	require.NoError(t, err)
	assert.Len(t, xs, 3)
}
