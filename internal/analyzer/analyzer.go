// Package analyzer implements the two-pass scope-aware semantic analysis
// pass: global function-signature registration, then per-function body
// analysis over a stack of lexical scopes. It never aborts on an error —
// every diagnostic is collected and the walk continues, so later stages
// still see as complete an analysis as possible.
package analyzer

import (
	"github.com/minilangpp/minilangc/internal/ast"
	"github.com/minilangpp/minilangc/internal/diagnostics"
	"github.com/minilangpp/minilangc/internal/symbols"
)

// unknownType marks an expression whose type could not be determined
// because of a previously reported error. It is silently compatible with
// any other type so that one mistake never cascades into a pile of
// spurious follow-on diagnostics.
const unknownType = ""

// Analyzer walks a Program, building the symbol table stack and
// recording diagnostics as it goes.
type Analyzer struct {
	stack             *symbols.Stack
	diags             *diagnostics.Sink
	currentReturnType string
}

// New creates an Analyzer that will report into diags.
func New(diags *diagnostics.Sink) *Analyzer {
	return &Analyzer{
		stack: symbols.NewStack(),
		diags: diags,
	}
}

// Analyze runs both passes over program and returns the symbol table
// stack as it stood at the end of the run (with only the global scope
// left on it).
func (a *Analyzer) Analyze(program *ast.Program) *symbols.Stack {
	global := symbols.NewTable("global", nil)
	a.stack.Push(global)
	// The global scope is never popped: it is meant to still be on the
	// stack when this method returns, so callers (the driver's "symbols"
	// report) can see it.

	// Pass 1: register every function's signature before analyzing any
	// body, so forward references and mutual recursion just work.
	for _, fn := range program.Functions {
		if _, exists := global.Lookup(fn.Name); exists {
			a.diags.Addf(diagnostics.PhaseSemantic, fn.Tok.Line, fn.Tok.Column, "Function redeclaration: %s", fn.Name)
			continue
		}
		params := make([]symbols.Param, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = symbols.Param{Type: p.VarType, Name: p.Name}
		}
		global.Add(&symbols.Symbol{
			Name:   fn.Name,
			Type:   fn.ReturnType,
			Kind:   symbols.KindFunction,
			Params: params,
		})
	}

	// Pass 2: analyze each function body against the now-complete global
	// signature table.
	for _, fn := range program.Functions {
		a.analyzeFunction(fn)
	}

	return a.stack
}

func (a *Analyzer) analyzeFunction(fn *ast.FunctionDef) {
	funcTable := symbols.NewTable("function "+fn.Name, a.stack.Top())
	a.stack.Push(funcTable)
	defer a.stack.Pop()

	for _, param := range fn.Params {
		if !funcTable.Add(&symbols.Symbol{Name: param.Name, Type: param.VarType, Kind: symbols.KindParameter}) {
			a.diags.Addf(diagnostics.PhaseSemantic, param.Tok.Line, param.Tok.Column, "Redeclaration of %s in scope %s", param.Name, funcTable.ScopeName)
		}
	}

	prevReturnType := a.currentReturnType
	a.currentReturnType = fn.ReturnType
	a.analyzeBlock(fn.Body)
	a.currentReturnType = prevReturnType
}

func (a *Analyzer) analyzeBlock(block *ast.Block) {
	blockTable := symbols.NewTable("block", a.stack.Top())
	a.stack.Push(blockTable)
	defer a.stack.Pop()

	for _, stmt := range block.Statements {
		a.analyzeStatement(stmt)
	}
}
