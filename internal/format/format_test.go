package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"HelloWorld", []string{"Hello", "World"}},
		{"Foo", []string{"Foo"}},
		{"snake_case_test", []string{"snake", "case", "test"}},
		{"Snake_Case", []string{"Snake", "Case"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"orderID", []string{"order", "ID"}},
		{"Big fish", []string{"Big", "fish"}},
		{"kebab-case", []string{"kebab", "case"}},
		{"Foo2Bar", []string{"Foo2", "Bar"}},
		{"__leading", []string{"leading"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Words(tt.input))
		})
	}
}

func TestTransform(t *testing.T) {
	tests := []struct {
		rule     Rule
		raw      string
		expected string
	}{
		{RuleTitleCase, "HelloWorld", "Hello World"},
		{RuleTitleCaseLower, "HelloWorld", "hello world"},
		{RuleTitleCasePlural, "Foo", "Foos"},
		{RuleTitleCaseLowerPlural, "Foo", "foos"},
		{RuleTitleCasePlural, "HelloWorld", "Hello Worlds"},
		{RuleTitleCase, "Baz", "Baz"},
		{RuleTitleCasePlural, "Baz", "Bazs"},
		{RuleTitleCase, "XMLParser", "Xml Parser"},
		{RuleTitleCase, "snake_case_test", "Snake Case Test"},
		{RuleTitleCaseLowerPlural, "Big Fish", "big fishs"},
		{RuleTitleCase, "", ""},
		{RuleTitleCasePlural, "", "s"},
	}

	for _, tt := range tests {
		t.Run(tt.rule.String()+"/"+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, Transform(tt.rule, tt.raw))
		})
	}
}

func TestTransform_Pure(t *testing.T) {
	for r := RuleTitleCase; int(r) < RuleTotal; r++ {
		first := Transform(r, "HelloWorld")
		for range 5 {
			assert.Equal(t, first, Transform(r, "HelloWorld"))
		}
	}
}

func TestTransform_InvalidRuleFallsBackToTitleCase(t *testing.T) {
	assert.Equal(t, "Hello World", Transform(Rule(0), "HelloWorld"))
	assert.Equal(t, "Hello World", Transform(Rule(42), "HelloWorld"))
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		literal  string
		expected Rule
	}{
		{"title case", RuleTitleCase},
		{"title case lower", RuleTitleCaseLower},
		{"title case plural", RuleTitleCasePlural},
		{"title case lower plural", RuleTitleCaseLowerPlural},
		{"  title case  ", RuleTitleCase},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			r, err := ParseRule(tt.literal)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
			assert.True(t, r.Valid())
		})
	}

	for _, bad := range []string{"", "Title Case", "title  case", "title case plural lower", "snake case"} {
		t.Run("invalid/"+bad, func(t *testing.T) {
			_, err := ParseRule(bad)
			require.Error(t, err)
			assert.Contains(t, err.Error(), `"title case lower plural"`)
		})
	}
}

func TestParseRule_Hint(t *testing.T) {
	_, err := ParseRule("title case plurl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "title case plural"?`)

	_, err = ParseRule("upper")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestRule_Axes(t *testing.T) {
	assert.False(t, RuleTitleCase.Lower())
	assert.False(t, RuleTitleCase.Plural())
	assert.True(t, RuleTitleCaseLower.Lower())
	assert.False(t, RuleTitleCaseLower.Plural())
	assert.False(t, RuleTitleCasePlural.Lower())
	assert.True(t, RuleTitleCasePlural.Plural())
	assert.True(t, RuleTitleCaseLowerPlural.Lower())
	assert.True(t, RuleTitleCaseLowerPlural.Plural())
}

func TestRule_LiteralRoundTrip(t *testing.T) {
	for r := RuleTitleCase; int(r) < RuleTotal; r++ {
		parsed, err := ParseRule(r.Literal())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	assert.Empty(t, Rule(0).Literal())
}

func TestRule_String(t *testing.T) {
	assert.Equal(t, "TitleCase", RuleTitleCase.String())
	assert.Equal(t, "TitleCaseLowerPlural", RuleTitleCaseLowerPlural.String())
	assert.Equal(t, "Rule(0)", Rule(0).String())
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "hello_world", SnakeCase("HelloWorld"))
	assert.Equal(t, "foo", SnakeCase("Foo"))
	assert.Equal(t, "snake_case_test", SnakeCase("SnakeCaseTest"))
	assert.Equal(t, "xml_parser", SnakeCase("XMLParser"))
}

func TestPascalCase(t *testing.T) {
	assert.Equal(t, "HelloWorld", PascalCase("HelloWorld"))
	assert.Equal(t, "SnakeCaseTest", PascalCase("snake_case_test"))
	assert.Equal(t, "Foo", PascalCase("foo"))
	assert.Equal(t, "HttpServer", PascalCase("HTTPServer"))
}
