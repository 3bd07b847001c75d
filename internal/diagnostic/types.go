package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// Diagnostics holds all diagnostic information from one run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this kind of diagnostic, e.g. "unknown_key".
	Code string
	// Message is the human-readable description.
	Message string
	// Enum is the enumeration type the diagnostic relates to (if any).
	Enum string
	// Pos is the source location of the offending declaration or directive.
	Pos token.Position
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Coder is implemented by errors that carry a diagnostic code and position.
type Coder interface {
	error
	Code() string
	Position() token.Position
}

// FromError converts err into an error diagnostic for enum. Errors
// implementing Coder keep their code and position, anything else is reported
// under the code "internal" at fallback.
func FromError(enum string, fallback token.Position, err error) Diagnostic {
	d := Diagnostic{
		Severity: SeverityError,
		Code:     "internal",
		Message:  err.Error(),
		Enum:     enum,
		Pos:      fallback,
	}

	var c Coder
	if errors.As(err, &c) {
		d.Code = c.Code()
		if pos := c.Position(); pos.IsValid() {
			d.Pos = pos
		}
	}

	return d
}

// Add appends d to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, enum string, pos token.Position) {
	d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, Enum: enum, Pos: pos})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, enum string, pos token.Position) {
	d.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Enum: enum, Pos: pos})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, enum string, pos token.Position) {
	d.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Enum: enum, Pos: pos})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "\n"))
}

// String formats the diagnostic the way the Go toolchain reports errors:
//
//	words.go:12:1: [unknown_key] Words: ...
func (d Diagnostic) String() string {
	var b strings.Builder
	if d.Pos.IsValid() {
		b.WriteString(d.Pos.String())
		b.WriteString(": ")
	}

	if d.Severity != SeverityError {
		b.WriteString(d.Severity.String())
		b.WriteString(": ")
	}

	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}

	if d.Enum != "" {
		b.WriteString(d.Enum)
		b.WriteString(": ")
	}

	b.WriteString(d.Message)

	return b.String()
}
