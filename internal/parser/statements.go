package parser

import (
	"github.com/minilangpp/minilangc/internal/ast"
	"github.com/minilangpp/minilangc/internal/token"
)

// parseFunction parses: type ID '(' params? ')' block
func (p *Parser) parseFunction() (*ast.FunctionDef, error) {
	typeTok, err := p.expect(token.INT, token.FLOAT, token.BOOL)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDef{
		Tok:        typeTok,
		ReturnType: typeKeyword(typeTok.Kind),
		Name:       nameTok.Lexeme,
		Params:     params,
		Body:       body,
	}, nil
}

// parseParams parses: (param (',' param)*)?
func (p *Parser) parseParams() ([]*ast.VariableDecl, error) {
	var params []*ast.VariableDecl
	if cur := p.current(); cur != nil && isTypeKind(cur.Kind) {
		for {
			typeTok, err := p.expect(token.INT, token.FLOAT, token.BOOL)
			if err != nil {
				return nil, err
			}
			nameTok, err := p.expect(token.ID)
			if err != nil {
				return nil, err
			}
			params = append(params, &ast.VariableDecl{
				Tok:     typeTok,
				VarType: typeKeyword(typeTok.Kind),
				Name:    nameTok.Lexeme,
			})
			if p.match(token.COMMA) == nil {
				break
			}
		}
	}
	return params, nil
}

// parseBlock parses: '{' statement* '}'
func (p *Parser) parseBlock() (*ast.Block, error) {
	lbrace, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}
	var statements []ast.Statement
	for {
		cur := p.current()
		if cur == nil || cur.Kind == token.RBRACE {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.Block{Tok: lbrace, Statements: statements}, nil
}

// parseStatement dispatches on the current token's kind to the
// appropriate statement production.
func (p *Parser) parseStatement() (ast.Statement, error) {
	cur := p.current()
	if cur == nil {
		return nil, p.unexpected(nil, "in statement")
	}
	switch cur.Kind {
	case token.INT, token.FLOAT, token.BOOL:
		return p.parseVarDecl()
	case token.ID:
		if next := p.lookahead(1); next != nil && next.Kind == token.LPAREN {
			tok := *cur
			call, err := p.parseFunctionCall()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.SEMI); err != nil {
				return nil, err
			}
			return &ast.ExpressionStatement{Tok: tok, Expr: call}, nil
		}
		return p.parseAssignment()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.RETURN:
		return p.parseReturn()
	case token.LBRACE:
		return p.parseBlock()
	default:
		return nil, p.unexpected(cur, "in statement")
	}
}

// parseVarDecl parses: type ID ('=' expr)? ';'
func (p *Parser) parseVarDecl() (*ast.VariableDecl, error) {
	typeTok, err := p.expect(token.INT, token.FLOAT, token.BOOL)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.ID)
	if err != nil {
		return nil, err
	}
	var initializer ast.Expression
	if p.match(token.ASSIGN) != nil {
		initializer, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.VariableDecl{
		Tok:         typeTok,
		VarType:     typeKeyword(typeTok.Kind),
		Name:        nameTok.Lexeme,
		Initializer: initializer,
	}, nil
}

// parseAssignment parses: ID '=' expr ';'
func (p *Parser) parseAssignment() (*ast.Assignment, error) {
	nameTok, err := p.expect(token.ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.Assignment{
		Tok:    nameTok,
		Target: &ast.Identifier{Tok: nameTok, Name: nameTok.Lexeme},
		Value:  value,
	}, nil
}

// parseIf parses: 'if' '(' expr ')' block ('else' block)?
func (p *Parser) parseIf() (*ast.If, error) {
	ifTok, err := p.expect(token.IF)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	thenBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBlock *ast.Block
	if p.match(token.ELSE) != nil {
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Tok: ifTok, Condition: cond, Then: thenBlock, Else: elseBlock}, nil
}

// parseWhile parses: 'while' '(' expr ')' block
func (p *Parser) parseWhile() (*ast.While, error) {
	whileTok, err := p.expect(token.WHILE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Tok: whileTok, Condition: cond, Body: body}, nil
}

// parseReturn parses: 'return' expr? ';'
func (p *Parser) parseReturn() (*ast.Return, error) {
	returnTok, err := p.expect(token.RETURN)
	if err != nil {
		return nil, err
	}
	var value ast.Expression
	if cur := p.current(); cur != nil && cur.Kind != token.SEMI {
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.Return{Tok: returnTok, Value: value}, nil
}

// typeKeyword renders a type-keyword token kind as the lowercase type
// name used throughout the AST and symbol table.
func typeKeyword(k token.Kind) string {
	switch k {
	case token.INT:
		return "int"
	case token.FLOAT:
		return "float"
	case token.BOOL:
		return "bool"
	default:
		return ""
	}
}
