package analyzer

import (
	"github.com/minilangpp/minilangc/internal/ast"
	"github.com/minilangpp/minilangc/internal/diagnostics"
	"github.com/minilangpp/minilangc/internal/symbols"
	"github.com/minilangpp/minilangc/internal/typesystem"
)

// analyzeExpr type-checks expr and returns its type, or unknownType if a
// diagnostic was already raised for it (directly or by a sub-expression).
// An unknownType result is treated as compatible with anything downstream
// so one error never cascades into a pile of follow-on diagnostics.
func (a *Analyzer) analyzeExpr(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Type

	case *ast.Identifier:
		sym, ok := a.stack.Lookup(e.Name)
		if !ok {
			a.diags.Addf(diagnostics.PhaseSemantic, e.Tok.Line, e.Tok.Column, "Undeclared identifier: %s", e.Name)
			return unknownType
		}
		return sym.Type

	case *ast.BinaryOp:
		return a.analyzeBinaryOp(e)

	case *ast.UnaryOp:
		return a.analyzeUnaryOp(e)

	case *ast.FunctionCall:
		return a.analyzeFunctionCall(e)

	default:
		return unknownType
	}
}

func (a *Analyzer) analyzeBinaryOp(e *ast.BinaryOp) string {
	left := a.analyzeExpr(e.Left)
	right := a.analyzeExpr(e.Right)

	switch e.Op {
	case "+", "-", "*", "/":
		if left == unknownType || right == unknownType {
			return unknownType
		}
		if left != right || !typesystem.IsNumeric(typesystem.FromKeyword(left)) {
			a.diags.Addf(diagnostics.PhaseSemantic, e.Tok.Line, e.Tok.Column, "Type error in binary op %s: %s %s %s", e.Op, left, e.Op, right)
			return unknownType
		}
		return left

	case "==", "!=", "<", "<=", ">", ">=":
		if left != unknownType && right != unknownType && left != right {
			a.diags.Addf(diagnostics.PhaseSemantic, e.Tok.Line, e.Tok.Column, "Type error in comparison: %s %s %s", left, e.Op, right)
		}
		return "bool"

	case "&&", "||":
		if left != unknownType && right != unknownType && (left != "bool" || right != "bool") {
			a.diags.Addf(diagnostics.PhaseSemantic, e.Tok.Line, e.Tok.Column, "Logical op %s requires bool operands, got %s, %s", e.Op, left, right)
		}
		return "bool"

	default:
		return unknownType
	}
}

func (a *Analyzer) analyzeUnaryOp(e *ast.UnaryOp) string {
	operand := a.analyzeExpr(e.Operand)
	if operand == unknownType {
		return unknownType
	}
	switch e.Op {
	case "-":
		if typesystem.IsNumeric(typesystem.FromKeyword(operand)) {
			return operand
		}
		a.diags.Addf(diagnostics.PhaseSemantic, e.Tok.Line, e.Tok.Column, "Unary op %s type error: got %s", e.Op, operand)
		return unknownType
	case "!":
		if operand == "bool" {
			return "bool"
		}
		a.diags.Addf(diagnostics.PhaseSemantic, e.Tok.Line, e.Tok.Column, "Unary op %s type error: got %s", e.Op, operand)
		return unknownType
	default:
		return unknownType
	}
}

func (a *Analyzer) analyzeFunctionCall(call *ast.FunctionCall) string {
	sym, ok := a.stack.Lookup(call.Name)
	if !ok || sym.Kind != symbols.KindFunction {
		a.diags.Addf(diagnostics.PhaseSemantic, call.Tok.Line, call.Tok.Column, "Undeclared function: %s", call.Name)
		for _, arg := range call.Args {
			a.analyzeExpr(arg)
		}
		return unknownType
	}

	if len(sym.Params) != len(call.Args) {
		a.diags.Addf(diagnostics.PhaseSemantic, call.Tok.Line, call.Tok.Column,
			"Function %s expects %d args, got %d", call.Name, len(sym.Params), len(call.Args))
	}

	n := len(sym.Params)
	if len(call.Args) < n {
		n = len(call.Args)
	}
	for i := 0; i < n; i++ {
		argType := a.analyzeExpr(call.Args[i])
		expected := sym.Params[i].Type
		if argType != unknownType && argType != expected {
			a.diags.Addf(diagnostics.PhaseSemantic, call.Tok.Line, call.Tok.Column,
				"Function %s argument type mismatch: expected %s, got %s", call.Name, expected, argType)
		}
	}
	// Any extra supplied arguments beyond the declared arity are still
	// walked so their own sub-expressions get checked.
	for i := n; i < len(call.Args); i++ {
		a.analyzeExpr(call.Args[i])
	}

	return sym.Type
}
