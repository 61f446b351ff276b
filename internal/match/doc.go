// Package match ranks names by similarity so that a mistyped model name can
// be answered with suggestions.
//
// Key functions:
//   - Normalize: folds a qualified name into comparable lowercase form
//   - Distance: rune-wise edit distance between two strings
//   - Suggest: the closest candidates for a query
package match
