// Package parser implements a recursive-descent parser with precedence
// climbing over the MiniLang++ grammar. Errors use panic-mode recovery:
// an internal sentinel error unwinds back to the top-level function loop
// through ordinary Go error returns — there is no use of panic/recover
// for control flow.
package parser

import (
	"errors"
	"fmt"

	"github.com/minilangpp/minilangc/internal/ast"
	"github.com/minilangpp/minilangc/internal/diagnostics"
	"github.com/minilangpp/minilangc/internal/token"
)

// errAbort signals that the current function definition could not be
// parsed and the caller should synchronize to the next likely function
// start. It carries no payload — the actual diagnostic was already
// recorded in the Sink at the point of failure.
var errAbort = errors.New("parser: abort current function")

// Parser holds the token cursor and the diagnostics sink shared with the
// rest of the pipeline.
type Parser struct {
	tokens []token.Token
	pos    int
	diags  *diagnostics.Sink
}

// New creates a Parser over tokens, recording diagnostics into diags.
func New(tokens []token.Token, diags *diagnostics.Sink) *Parser {
	return &Parser{tokens: tokens, diags: diags}
}

// Parse consumes the entire token stream and returns the resulting
// Program. A function that fails to parse is skipped (after
// synchronizing to the next type keyword) but does not stop the parser
// from attempting the remaining functions.
func (p *Parser) Parse() *ast.Program {
	var functions []*ast.FunctionDef
	for p.current() != nil {
		fn, err := p.parseFunction()
		if err != nil {
			p.synchronize()
			continue
		}
		functions = append(functions, fn)
	}
	return &ast.Program{Functions: functions}
}

// current returns the token under the cursor, or nil at end of input.
func (p *Parser) current() *token.Token {
	if p.pos < len(p.tokens) {
		return &p.tokens[p.pos]
	}
	return nil
}

// lookahead returns the token n positions ahead of the cursor, or nil if
// that position is past the end of input. Used only to distinguish a
// call (`ID (`) from an assignment target or a bare identifier.
func (p *Parser) lookahead(n int) *token.Token {
	if p.pos+n < len(p.tokens) {
		return &p.tokens[p.pos+n]
	}
	return nil
}

// match consumes and returns the current token if its kind is one of
// kinds; otherwise it leaves the cursor untouched and returns nil.
func (p *Parser) match(kinds ...token.Kind) *token.Token {
	tok := p.current()
	if tok == nil {
		return nil
	}
	for _, k := range kinds {
		if tok.Kind == k {
			p.pos++
			return tok
		}
	}
	return nil
}

// expect consumes the current token if it matches one of kinds, else
// records an "Expected ... but found ..." diagnostic and returns
// errAbort.
func (p *Parser) expect(kinds ...token.Kind) (token.Token, error) {
	if tok := p.match(kinds...); tok != nil {
		return *tok, nil
	}
	expected := ""
	for i, k := range kinds {
		if i > 0 {
			expected += " or "
		}
		expected += k.String()
	}
	cur := p.current()
	if cur == nil {
		p.diags.Add(diagnostics.Diagnostic{
			Phase:  diagnostics.PhaseParser,
			Reason: fmt.Sprintf("Expected %s but found EOF", expected),
		})
	} else {
		p.diags.Addf(diagnostics.PhaseParser, cur.Line, cur.Column, "Expected %s but found %s", expected, cur.Kind)
	}
	return token.Token{}, errAbort
}

// unexpected records an "Unexpected token ..." diagnostic for tok (which
// may be nil, meaning end of input) and returns errAbort.
func (p *Parser) unexpected(tok *token.Token, context string) error {
	if tok == nil {
		p.diags.Add(diagnostics.Diagnostic{
			Phase:  diagnostics.PhaseParser,
			Reason: fmt.Sprintf("Unexpected token EOF %s", context),
		})
		return errAbort
	}
	p.diags.Addf(diagnostics.PhaseParser, tok.Line, tok.Column, "Unexpected token %s %s", tok.Kind, context)
	return errAbort
}

// synchronize discards tokens until the next type keyword (a plausible
// function start) or end of input, so the next parseFunction call has a
// fighting chance.
func (p *Parser) synchronize() {
	for {
		tok := p.current()
		if tok == nil {
			return
		}
		if tok.Kind == token.INT || tok.Kind == token.FLOAT || tok.Kind == token.BOOL {
			return
		}
		p.pos++
	}
}

func isTypeKind(k token.Kind) bool {
	return k == token.INT || k == token.FLOAT || k == token.BOOL
}
