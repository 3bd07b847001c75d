package format

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words splits an identifier into its words.
// Boundaries are separators (_, -, space), a lower-to-upper transition and
// the end of an acronym run:
//   - "HelloWorld" -> ["Hello", "World"]
//   - "snake_case_test" -> ["snake", "case", "test"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "getHTTPResponse" -> ["get", "HTTP", "Response"]
func Words(s string) []string {
	if s == "" {
		return nil
	}

	var (
		words   []string
		current strings.Builder
	)

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && startsWord(runes, i) && current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// startsWord reports whether runes[i] opens a new word.
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "orderID": split before 'I'.
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser": split before 'P'.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// SnakeCase joins the lowercased words of s with underscores.
// "HelloWorld" becomes "hello_world".
func SnakeCase(s string) string {
	lower := cases.Lower(language.Und)

	words := Words(s)
	for i, w := range words {
		words[i] = lower.String(w)
	}

	return strings.Join(words, "_")
}

// PascalCase joins the title-cased words of s.
// "snake_case_test" becomes "SnakeCaseTest"; "HTTPServer" becomes "HttpServer".
func PascalCase(s string) string {
	title := cases.Title(language.Und)

	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(title.String(w))
	}

	return b.String()
}
