package format

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PluralSuffix is appended by the plural rules.
const PluralSuffix = "s"

// Transform applies rule to raw. It is total: an invalid rule falls back to
// plain title casing. Casers are built per call since x/text casers keep
// state and must not be shared across goroutines.
func Transform(rule Rule, raw string) string {
	title := cases.Title(language.Und)

	words := Words(raw)
	for i, w := range words {
		words[i] = title.String(w)
	}

	out := strings.Join(words, " ")
	if rule.Lower() {
		out = cases.Lower(language.Und).String(out)
	}

	if rule.Plural() {
		out += PluralSuffix
	}

	return out
}

// TitleCase is Transform(RuleTitleCase, raw).
func TitleCase(raw string) string {
	return Transform(RuleTitleCase, raw)
}
