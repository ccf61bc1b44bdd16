package analyzer

import (
	"github.com/minilangpp/minilangc/internal/ast"
	"github.com/minilangpp/minilangc/internal/diagnostics"
	"github.com/minilangpp/minilangc/internal/symbols"
)

// analyzeStatement dispatches on the concrete statement type via a type
// switch — there is no separate Visitor interface to implement.
func (a *Analyzer) analyzeStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VariableDecl:
		a.analyzeVarDecl(s)
	case *ast.Assignment:
		a.analyzeAssignment(s)
	case *ast.If:
		a.analyzeIf(s)
	case *ast.While:
		a.analyzeWhile(s)
	case *ast.Return:
		a.analyzeReturn(s)
	case *ast.Block:
		a.analyzeBlock(s)
	case *ast.ExpressionStatement:
		a.analyzeExpr(s.Expr)
	}
}

func (a *Analyzer) analyzeVarDecl(decl *ast.VariableDecl) {
	top := a.stack.Top()
	if !top.Add(&symbols.Symbol{Name: decl.Name, Type: decl.VarType, Kind: symbols.KindVariable}) {
		a.diags.Addf(diagnostics.PhaseSemantic, decl.Tok.Line, decl.Tok.Column, "Redeclaration of %s in scope %s", decl.Name, top.ScopeName)
	}
	if decl.Initializer != nil {
		initType := a.analyzeExpr(decl.Initializer)
		if initType != unknownType && initType != decl.VarType {
			a.diags.Addf(diagnostics.PhaseSemantic, decl.Tok.Line, decl.Tok.Column,
				"Type mismatch in initialization of %s: %s = %s", decl.Name, decl.VarType, initType)
		}
	}
}

func (a *Analyzer) analyzeAssignment(assign *ast.Assignment) {
	sym, ok := a.stack.Lookup(assign.Target.Name)
	if !ok {
		a.diags.Addf(diagnostics.PhaseSemantic, assign.Tok.Line, assign.Tok.Column, "Undeclared variable: %s", assign.Target.Name)
		a.analyzeExpr(assign.Value)
		return
	}
	valueType := a.analyzeExpr(assign.Value)
	if valueType != unknownType && valueType != sym.Type {
		a.diags.Addf(diagnostics.PhaseSemantic, assign.Tok.Line, assign.Tok.Column,
			"Type mismatch in assignment to %s: %s = %s", assign.Target.Name, sym.Type, valueType)
	}
}

func (a *Analyzer) analyzeIf(stmt *ast.If) {
	condType := a.analyzeExpr(stmt.Condition)
	if condType != unknownType && condType != "bool" {
		a.diags.Addf(diagnostics.PhaseSemantic, stmt.Tok.Line, stmt.Tok.Column, "Condition in if must be bool, got %s", condType)
	}
	a.analyzeBlock(stmt.Then)
	if stmt.Else != nil {
		a.analyzeBlock(stmt.Else)
	}
}

func (a *Analyzer) analyzeWhile(stmt *ast.While) {
	condType := a.analyzeExpr(stmt.Condition)
	if condType != unknownType && condType != "bool" {
		a.diags.Addf(diagnostics.PhaseSemantic, stmt.Tok.Line, stmt.Tok.Column, "Condition in while must be bool, got %s", condType)
	}
	a.analyzeBlock(stmt.Body)
}

func (a *Analyzer) analyzeReturn(stmt *ast.Return) {
	if stmt.Value != nil {
		valueType := a.analyzeExpr(stmt.Value)
		if valueType != unknownType && valueType != a.currentReturnType {
			a.diags.Addf(diagnostics.PhaseSemantic, stmt.Tok.Line, stmt.Tok.Column,
				"Return type mismatch: expected %s, got %s", a.currentReturnType, valueType)
		}
		return
	}
	// The grammar never produces a "void" return type, so this path is
	// unreachable today; the check is kept for forward extensibility.
	if a.currentReturnType != "void" {
		a.diags.Addf(diagnostics.PhaseSemantic, stmt.Tok.Line, stmt.Tok.Column,
			"Return statement missing value for function returning %s", a.currentReturnType)
	}
}
