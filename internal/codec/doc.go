// Package codec renders generated values for the synth command.
//
// The json format is the canonical one: fixtures are stored in it, and the
// yaml format is derived from it so both use the same field names. The text
// format is a go-spew dump meant for humans.
package codec
