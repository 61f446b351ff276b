// Package synth produces fully populated random values of arbitrary Go types.
//
// Every type has one TypeStrategy in the engine Registry. A strategy either
// has an explicit producer (Register, RegisterStrategy), a configured
// constructor (RegisterConstructor), or falls back on a default producer
// chosen by shape:
//
//   - primitives (numbers, bool, string, time.Time, time.Duration, uuid.UUID,
//     apd.Decimal) are drawn uniformly from configurable ranges;
//   - slices get a random cardinality, arrays fill every slot;
//   - pointers wrap a value of their element type;
//   - structs start from their zero value, other types go through the
//     registered constructors.
//
// Once a root value exists its exported struct fields are filled depth-first.
// Fields tagged `synth:"-"` are left alone, a field of its own declaring type
// is assigned but not descended into, and descending into a type already on
// the current path is refused by the cycle guard.
//
// Failures to build a value degrade to the zero value and a diagnostic unless
// the engine runs with options.FailureStrict.
//
//	e, _ := synth.New(synth.WithSeed(7))
//	_ = synth.Register(e, func() int { return 42 })
//	p, err := synth.Produce[store.Person](e)
package synth
