// Package format implements the string transforms that turn a variant
// identifier (or an override string) into a display name.
//
// A transform is selected by a Rule. Every rule starts from title casing:
// the input is split into words on case and separator boundaries and each
// word is capitalized. Two independent axes refine the result:
//
//   - lower: the whole result is lowercased after casing
//   - plural: a literal "s" is appended
//
// Pluralization only appends "s": "Box" becomes "Boxs", and irregular
// nouns need an explicit override in the schema.
//
// All functions are pure and locale-independent.
package format
