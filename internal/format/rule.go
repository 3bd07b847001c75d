package format

import (
	"fmt"
	"strings"

	"enum-generator/internal/match"
)

//go:generate go tool stringer -type=Rule -trimprefix=Rule -output=rule_string.go

// Rule identifies one of the supported format transforms.
type Rule int

const (
	_ Rule = iota // zero value is not a valid rule

	RuleTitleCase
	RuleTitleCaseLower
	RuleTitleCasePlural
	RuleTitleCaseLowerPlural

	// RuleTotal is the number of defined rules plus the invalid zero value.
	RuleTotal = int(iota)
)

var literals = [RuleTotal]string{
	RuleTitleCase:            "title case",
	RuleTitleCaseLower:       "title case lower",
	RuleTitleCasePlural:      "title case plural",
	RuleTitleCaseLowerPlural: "title case lower plural",
}

// ParseRule maps a format literal such as "title case lower" to its Rule.
// Surrounding whitespace is ignored, inner spacing and case are not.
func ParseRule(literal string) (Rule, error) {
	s := strings.TrimSpace(literal)
	for r := RuleTitleCase; int(r) < RuleTotal; r++ {
		if literals[r] == s {
			return r, nil
		}
	}

	return 0, fmt.Errorf("unknown format %q (want one of %s)%s", literal, strings.Join(Literals(), ", "), match.Hint(s, literals[1:]))
}

// Literals returns the accepted format literals in rule order, quoted.
func Literals() []string {
	out := make([]string, 0, RuleTotal-1)
	for r := RuleTitleCase; int(r) < RuleTotal; r++ {
		out = append(out, fmt.Sprintf("%q", literals[r]))
	}

	return out
}

// Valid reports whether r is one of the defined rules.
func (r Rule) Valid() bool {
	return r > 0 && int(r) < RuleTotal
}

// Literal returns the schema spelling of r, or "" for an invalid rule.
func (r Rule) Literal() string {
	if !r.Valid() {
		return ""
	}

	return literals[r]
}

// Lower reports whether r lowercases its result.
func (r Rule) Lower() bool {
	return r == RuleTitleCaseLower || r == RuleTitleCaseLowerPlural
}

// Plural reports whether r appends the plural suffix.
func (r Rule) Plural() bool {
	return r == RuleTitleCasePlural || r == RuleTitleCaseLowerPlural
}
