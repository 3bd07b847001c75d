package schema

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// Sentinel errors for the two failure families.
var (
	// ErrInvalidSchema indicates a malformed or inconsistent naming schema.
	ErrInvalidSchema = errors.New("enum: invalid schema")
	// ErrInvalidShape indicates an enumeration whose variants do not fit a generator.
	ErrInvalidShape = errors.New("enum: invalid shape")
)

// ErrorKind classifies a SchemaError.
type ErrorKind int

const (
	// KindSyntax is a directive that does not follow the attribute grammar.
	KindSyntax ErrorKind = iota
	// KindInvalidFormat is a format literal naming no known rule.
	KindInvalidFormat
	// KindMissingBase is an enumeration requesting accessors without a base rule.
	KindMissingBase
	// KindUnknownKey is an override or pluralizer referencing an undeclared key.
	KindUnknownKey
	// KindReservedKeyName is an extra key literally named "base".
	KindReservedKeyName
	// KindDuplicateOverride is a second override for the same variant and key.
	KindDuplicateOverride
	// KindAccessorCollision is two keys that would generate the same accessor.
	KindAccessorCollision
)

var kindCodes = [...]string{
	KindSyntax:            "syntax",
	KindInvalidFormat:     "invalid_format",
	KindMissingBase:       "missing_base",
	KindUnknownKey:        "unknown_key",
	KindReservedKeyName:   "reserved_key_name",
	KindDuplicateOverride: "duplicate_override",
	KindAccessorCollision: "accessor_collision",
}

// String returns the diagnostic code of k.
func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindCodes) {
		return "unknown"
	}

	return kindCodes[k]
}

// Sites reported by UnknownKey errors.
const (
	SitePluralizer = "pluralizer"
	SiteOverride   = "override"
)

// SchemaError represents a schema definition error.
type SchemaError struct {
	Kind    ErrorKind
	Enum    string // Enumeration type name
	Variant string // Variant name (if applicable)
	Key     string // Format key (if applicable)
	Site    string // Where an unknown key was referenced
	Message string
	Pos     token.Position
	Cause   error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("enum: schema error")
	if e.Enum != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Enum)
	}
	if e.Variant != "" {
		b.WriteString(" variant ")
		b.WriteString(e.Variant)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// Code returns the diagnostic code.
func (e *SchemaError) Code() string {
	return e.Kind.String()
}

// Position returns the location of the offending directive.
func (e *SchemaError) Position() token.Position {
	return e.Pos
}

// ShapeKind classifies a ShapeError.
type ShapeKind int

const (
	// KindNonUnitVariant is a payload-bearing variant where only unit variants are allowed.
	KindNonUnitVariant ShapeKind = iota
	// KindEmptyEnumeration is an enumeration without variants.
	KindEmptyEnumeration
)

// String returns the diagnostic code of k.
func (k ShapeKind) String() string {
	switch k {
	case KindNonUnitVariant:
		return "non_unit_variant"
	case KindEmptyEnumeration:
		return "empty_enumeration"
	default:
		return "unknown"
	}
}

// ShapeError reports an enumeration whose variants cannot be enumerated.
type ShapeError struct {
	Kind    ShapeKind
	Enum    string
	Variant string
	Pos     token.Position
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	switch e.Kind {
	case KindNonUnitVariant:
		return fmt.Sprintf("enum: shape error on type %s: variant %s must be a unit variant (no payload)", e.Enum, e.Variant)
	case KindEmptyEnumeration:
		return fmt.Sprintf("enum: shape error on type %s: must not be empty", e.Enum)
	default:
		return fmt.Sprintf("enum: shape error on type %s", e.Enum)
	}
}

// Is reports whether the target matches the sentinel error for ShapeError.
func (e *ShapeError) Is(target error) bool {
	return target == ErrInvalidShape
}

// Code returns the diagnostic code.
func (e *ShapeError) Code() string {
	return e.Kind.String()
}

// Position returns the location of the offending variant.
func (e *ShapeError) Position() token.Position {
	return e.Pos
}

// IsSchemaError reports whether the error is a SchemaError.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}

// IsShapeError reports whether the error is a ShapeError.
func IsShapeError(err error) bool {
	var shapeErr *ShapeError
	return errors.As(err, &shapeErr)
}

// KindOf returns the kind of the SchemaError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var schemaErr *SchemaError
	if errors.As(err, &schemaErr) {
		return schemaErr.Kind, true
	}

	return 0, false
}
