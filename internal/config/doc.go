// Package config loads engine settings from YAML files.
//
// # Schema
//
//	version: "1"
//	seed: 42                 # omit for a random seed
//	failure_mode: degrade    # degrade | strict
//	collection:
//	  min: 5                 # slice and map cardinality, [min, max)
//	  max: 50
//	strings:
//	  min_length: 8          # [min_length, max_length)
//	  max_length: 24
//	alphabet: "abc123"       # runes and strings are drawn from it, NFC normalized
//	max_depth: 0             # 0 means unlimited
//	cycle_guard: true
//
// Missing sections fall back to the engine defaults. Unknown failure modes
// are rejected with options.ErrUnknownOption.
package config
