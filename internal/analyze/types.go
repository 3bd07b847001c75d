package analyze

import (
	"fmt"
	"go/token"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"enum-generator/internal/schema"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "enum-generator/examples/words"
	Name    string // e.g., "Words"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// EnumKind distinguishes the two Go shapes of an enumeration.
type EnumKind int

const (
	// KindConst is a named basic type with typed constants as variants.
	KindConst EnumKind = iota
	// KindUnion is a named interface implemented by same-package types.
	KindUnion
)

// String returns a human-readable representation of the EnumKind.
func (k EnumKind) String() string {
	switch k {
	case KindConst:
		return "const"
	case KindUnion:
		return "union"
	default:
		return "unknown"
	}
}

// EnumDecl is one annotated enumeration found in a package.
type EnumDecl struct {
	Name     string         // Type name
	Kind     EnumKind       // Const or union
	Exported bool           // Whether the type name is exported
	Package  string         // Import path of the declaring package
	PkgName  string         // Package name used in the generated file
	File     string         // Declaring file
	Dir      string         // Directory of the declaring file
	Pos      token.Position // Position of the type name
	Attrs    []schema.Attr  // Enumeration-level directives in source order
	Variants []VariantDecl  // Variants in declaration order

	// Err is set when the type carries directives but cannot be used as an
	// enumeration. Variants are empty in that case.
	Err error

	// Warnings are problems that do not stop generation.
	Warnings []Warning
}

// ID returns the package-qualified identity of the enumeration.
func (d *EnumDecl) ID() TypeID {
	return TypeID{PkgPath: d.Package, Name: d.Name}
}

// Source converts the declaration into the schema parser's input.
func (d *EnumDecl) Source() schema.Source {
	src := schema.Source{
		Enum:     d.Name,
		Pos:      d.Pos,
		Attrs:    d.Attrs,
		Variants: make([]schema.VariantSource, 0, len(d.Variants)),
	}

	for _, v := range d.Variants {
		src.Variants = append(src.Variants, schema.VariantSource{Name: v.Name, Pos: v.Pos, Attrs: v.Attrs})
	}

	return src
}

// VariantNames returns the variant identifiers in declaration order.
func (d *EnumDecl) VariantNames() []string {
	names := make([]string, len(d.Variants))
	for i, v := range d.Variants {
		names[i] = v.Name
	}

	return names
}

// VariantDecl describes one variant.
type VariantDecl struct {
	Name        string         // Constant or type name
	Payload     bool           // True for union variants whose underlying type is not struct{}
	ValueImpl   bool           // Union only: T implements the interface
	PointerImpl bool           // Union only: *T implements the interface
	Pos         token.Position // Position of the identifier
	Attrs       []schema.Attr  // Variant-level directives in source order
}

// CodeAliasDirective marks directives on a constant that repeats an
// earlier value.
const CodeAliasDirective = "alias_directive"

// Warning is a non-fatal finding about a declaration.
type Warning struct {
	Code    string
	Message string
	Pos     token.Position
}

// UnsupportedError reports an annotated type that is neither a constant
// nor a union enumeration.
type UnsupportedError struct {
	Enum   string
	Reason string
	Pos    token.Position
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return "enum: type " + e.Enum + " cannot be an enumeration: " + e.Reason
}

// Code returns the diagnostic code.
func (e *UnsupportedError) Code() string {
	return "unsupported_type"
}

// Position returns the location of the type name.
func (e *UnsupportedError) Position() token.Position {
	return e.Pos
}

// TypeCheckError reports type errors in the loaded packages that did not
// stop extraction. LoadPackages returns it together with the enumerations
// it found; callers may treat it as a warning.
type TypeCheckError struct {
	Errors []packages.Error
}

// Error implements the error interface.
func (e *TypeCheckError) Error() string {
	if len(e.Errors) == 1 {
		return "type error: " + e.Errors[0].Error()
	}

	return fmt.Sprintf("%d type errors, first: %s", len(e.Errors), e.Errors[0].Error())
}

// ErrorPosition parses the "file:line:col" position of a package error.
// Missing parts are left zero.
func ErrorPosition(e packages.Error) token.Position {
	var pos token.Position

	rest := e.Pos
	nums := make([]int, 0, 2)

	for range 2 {
		i := strings.LastIndexByte(rest, ':')
		if i < 0 {
			break
		}

		n, err := strconv.Atoi(rest[i+1:])
		if err != nil {
			break
		}

		nums = append(nums, n)
		rest = rest[:i]
	}

	pos.Filename = rest

	switch len(nums) {
	case 2:
		pos.Line, pos.Column = nums[1], nums[0]
	case 1:
		pos.Line = nums[0]
	}

	return pos
}
