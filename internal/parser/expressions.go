package parser

import (
	"strconv"

	"github.com/minilangpp/minilangc/internal/ast"
	"github.com/minilangpp/minilangc/internal/token"
)

// parseExpression is the grammar's single entry point into the
// precedence-climbing ladder; it always starts at the loosest-binding
// level (logical or).
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() (ast.Expression, error) {
	node, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for {
		opTok := p.match(token.OR)
		if opTok == nil {
			return node, nil
		}
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryOp{Tok: *opTok, Op: "||", Left: node, Right: right}
	}
}

func (p *Parser) parseLogicalAnd() (ast.Expression, error) {
	node, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for {
		opTok := p.match(token.AND)
		if opTok == nil {
			return node, nil
		}
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryOp{Tok: *opTok, Op: "&&", Left: node, Right: right}
	}
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	node, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for {
		if opTok := p.match(token.EQ); opTok != nil {
			right, err := p.parseRelational()
			if err != nil {
				return nil, err
			}
			node = &ast.BinaryOp{Tok: *opTok, Op: "==", Left: node, Right: right}
			continue
		}
		if opTok := p.match(token.NEQ); opTok != nil {
			right, err := p.parseRelational()
			if err != nil {
				return nil, err
			}
			node = &ast.BinaryOp{Tok: *opTok, Op: "!=", Left: node, Right: right}
			continue
		}
		return node, nil
	}
}

func (p *Parser) parseRelational() (ast.Expression, error) {
	node, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.current() != nil && p.current().Kind == token.LT:
			opTok := p.match(token.LT)
			right, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			node = &ast.BinaryOp{Tok: *opTok, Op: "<", Left: node, Right: right}
		case p.current() != nil && p.current().Kind == token.LE:
			opTok := p.match(token.LE)
			right, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			node = &ast.BinaryOp{Tok: *opTok, Op: "<=", Left: node, Right: right}
		case p.current() != nil && p.current().Kind == token.GT:
			opTok := p.match(token.GT)
			right, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			node = &ast.BinaryOp{Tok: *opTok, Op: ">", Left: node, Right: right}
		case p.current() != nil && p.current().Kind == token.GE:
			opTok := p.match(token.GE)
			right, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			node = &ast.BinaryOp{Tok: *opTok, Op: ">=", Left: node, Right: right}
		default:
			return node, nil
		}
	}
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		if opTok := p.match(token.PLUS); opTok != nil {
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			node = &ast.BinaryOp{Tok: *opTok, Op: "+", Left: node, Right: right}
			continue
		}
		if opTok := p.match(token.MINUS); opTok != nil {
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			node = &ast.BinaryOp{Tok: *opTok, Op: "-", Left: node, Right: right}
			continue
		}
		return node, nil
	}
}

func (p *Parser) parseTerm() (ast.Expression, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		if opTok := p.match(token.MUL); opTok != nil {
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			node = &ast.BinaryOp{Tok: *opTok, Op: "*", Left: node, Right: right}
			continue
		}
		if opTok := p.match(token.DIV); opTok != nil {
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			node = &ast.BinaryOp{Tok: *opTok, Op: "/", Left: node, Right: right}
			continue
		}
		return node, nil
	}
}

// parseFactor handles parenthesized expressions, unary prefix operators
// (right-associative via recursion back into parseFactor), calls,
// identifiers, and literals.
func (p *Parser) parseFactor() (ast.Expression, error) {
	cur := p.current()
	if cur == nil {
		return nil, p.unexpected(nil, "in expression")
	}
	switch cur.Kind {
	case token.LPAREN:
		p.match(token.LPAREN)
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case token.MINUS:
		opTok := p.match(token.MINUS)
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Tok: *opTok, Op: "-", Operand: operand}, nil
	case token.NOT:
		opTok := p.match(token.NOT)
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Tok: *opTok, Op: "!", Operand: operand}, nil
	case token.ID:
		if next := p.lookahead(1); next != nil && next.Kind == token.LPAREN {
			return p.parseFunctionCall()
		}
		idTok := p.match(token.ID)
		return &ast.Identifier{Tok: *idTok, Name: idTok.Lexeme}, nil
	case token.INT_LIT, token.FLOAT_LIT, token.TRUE, token.FALSE:
		return p.parseLiteral()
	default:
		return nil, p.unexpected(cur, "in expression")
	}
}

// parseFunctionCall parses: ID '(' args? ')'
func (p *Parser) parseFunctionCall() (*ast.FunctionCall, error) {
	nameTok, err := p.expect(token.ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expression
	if cur := p.current(); cur != nil && cur.Kind != token.RPAREN {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.match(token.COMMA) == nil {
				break
			}
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.FunctionCall{Tok: nameTok, Name: nameTok.Lexeme, Args: args}, nil
}

// parseLiteral parses a single INT_LIT, FLOAT_LIT, TRUE, or FALSE token.
func (p *Parser) parseLiteral() (*ast.Literal, error) {
	cur := p.current()
	switch cur.Kind {
	case token.INT_LIT:
		tok := *p.match(token.INT_LIT)
		v, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			// The lexer's INT_LIT rule only ever matches [0-9]+, so this
			// cannot fail in practice short of integer overflow.
			v = 0
		}
		return &ast.Literal{Tok: tok, Value: v, Type: "int"}, nil
	case token.FLOAT_LIT:
		tok := *p.match(token.FLOAT_LIT)
		v, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			v = 0
		}
		return &ast.Literal{Tok: tok, Value: v, Type: "float"}, nil
	case token.TRUE:
		tok := *p.match(token.TRUE)
		return &ast.Literal{Tok: tok, Value: true, Type: "bool"}, nil
	case token.FALSE:
		tok := *p.match(token.FALSE)
		return &ast.Literal{Tok: tok, Value: false, Type: "bool"}, nil
	default:
		return nil, p.unexpected(cur, "in literal")
	}
}
