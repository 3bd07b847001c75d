// Package gen provides deterministic Go code generation for enumeration
// helpers.
//
// Generation uses github.com/dave/jennifer, which renders through
// go/format, so output is formatted and byte-identical for identical
// plans.
//
// Generated surface per enumeration:
//   - Name / Name<Key> accessors: exhaustive switch returning constants
//   - Name[<Key>]Pluralized(n): singular accessor when n == 1, plural otherwise
//   - Is<Variant> predicates
//   - <T>VariantCount, <T>Variants(), <T>Iter, New<T>Iter(), All<T>()
//
// Constant enumerations receive value-receiver methods. Union enumerations
// receive functions prefixed with the type name that dispatch with a type
// switch. Package-level names follow the exportedness of the type.
package gen
