// Package analyze loads Go packages and extracts annotated enumerations.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// type declarations carrying //enum: directives and to collect their
// variants in declaration order.
//
// Two shapes are recognised:
//   - const: a named integer or string type; variants are the constants
//     of that type declared in the same package
//   - union: a named interface; variants are the same-package named types
//     implementing it, with or without a pointer receiver
//
// Key types:
//   - EnumDecl: type name, shape, position, directives and variants
//   - VariantDecl: variant name, payload flag, receiver forms, directives
package analyze
