// Package cli implements the synth command line.
//
//	synth types                               list the models that can be generated
//	synth generate <model> [-n N] [--repeat]  generate and print values
//	synth fixtures <model> --db <path>        list values stored by generate --db
//
// Global flags select the output format (text, json, yaml) and verbose
// logging to stderr.
package cli
