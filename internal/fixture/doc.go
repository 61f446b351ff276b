// Package fixture persists generated values in a SQLite database so that a
// seeded run can be kept and inspected later.
//
// Every row holds one value encoded as canonical JSON, the model name it was
// generated for, the seed of the engine and its position in the batch.
package fixture
