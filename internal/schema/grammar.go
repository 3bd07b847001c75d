package schema

import (
	"fmt"
	"go/scanner"
	"go/token"
	"strconv"
)

// Attr is the text of one //enum: directive, without the prefix, and the
// position of its first byte.
type Attr struct {
	Text string
	Pos  token.Position
}

// term is one node of the attribute grammar:
//
//	term := IDENT [ "=" STRING | "(" [ term { "," term } [ "," ] ] ")" ]
//
// Every directive is a single term; its meaning is assigned by the caller.
type term struct {
	ident string
	pos   token.Position
	value *literal
	call  bool
	args  []term
}

type literal struct {
	value string
	pos   token.Position
}

// bare reports whether t is a lone identifier.
func (t term) bare() bool {
	return t.value == nil && !t.call
}

type parser struct {
	attr Attr
	file *token.File
	sc   scanner.Scanner
	err  *SchemaError

	pos token.Pos
	tok token.Token
	lit string
}

// parseTerm parses a complete directive.
func parseTerm(attr Attr) (term, *SchemaError) {
	src := []byte(attr.Text)
	fset := token.NewFileSet()

	p := &parser{attr: attr, file: fset.AddFile("", fset.Base(), len(src))}
	p.sc.Init(p.file, src, func(pos token.Position, msg string) {
		p.fail(p.shift(pos.Offset), "%s", msg)
	}, 0)
	p.next()

	t := p.term()
	if p.err == nil && p.tok != token.EOF {
		p.fail(p.at(p.pos), "unexpected %s after directive", p.describe())
	}

	return t, p.err
}

// next advances to the next token, skipping the semicolon the scanner
// inserts at the end of input.
func (p *parser) next() {
	for {
		p.pos, p.tok, p.lit = p.sc.Scan()
		if p.tok == token.SEMICOLON && p.lit == "\n" {
			continue
		}

		return
	}
}

func (p *parser) term() term {
	t := term{pos: p.at(p.pos)}
	if p.tok != token.IDENT {
		p.fail(t.pos, "expected identifier, found %s", p.describe())
		return t
	}

	t.ident = p.lit
	p.next()

	switch p.tok {
	case token.ASSIGN:
		p.next()
		if p.tok != token.STRING {
			p.fail(p.at(p.pos), "expected string literal after %s =, found %s", t.ident, p.describe())
			return t
		}

		v, err := strconv.Unquote(p.lit)
		if err != nil {
			p.fail(p.at(p.pos), "invalid string literal %s", p.lit)
			return t
		}

		t.value = &literal{value: v, pos: p.at(p.pos)}
		p.next()

	case token.LPAREN:
		t.call = true
		p.next()

		for p.tok != token.RPAREN {
			t.args = append(t.args, p.term())
			if p.err != nil {
				return t
			}

			if p.tok == token.COMMA {
				p.next()
				continue
			}

			if p.tok != token.RPAREN {
				p.fail(p.at(p.pos), "expected , or ) in %s(...), found %s", t.ident, p.describe())
				return t
			}
		}

		p.next()
	}

	return t
}

func (p *parser) describe() string {
	switch {
	case p.tok == token.EOF:
		return "end of directive"
	case p.lit != "":
		return strconv.Quote(p.lit)
	default:
		return p.tok.String()
	}
}

// at converts a position inside the directive text into a source position.
func (p *parser) at(pos token.Pos) token.Position {
	return p.shift(p.file.Offset(pos))
}

func (p *parser) shift(off int) token.Position {
	r := p.attr.Pos
	r.Offset += off
	r.Column += off

	return r
}

// fail records the first syntax error only.
func (p *parser) fail(pos token.Position, format string, args ...any) {
	if p.err != nil {
		return
	}

	p.err = &SchemaError{
		Kind:    KindSyntax,
		Message: fmt.Sprintf("invalid directive %q: ", p.attr.Text) + fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}
