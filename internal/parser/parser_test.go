package parser_test

import (
	"testing"

	"github.com/minilangpp/minilangc/internal/ast"
	"github.com/minilangpp/minilangc/internal/diagnostics"
	"github.com/minilangpp/minilangc/internal/lexer"
	"github.com/minilangpp/minilangc/internal/parser"
)

func parseSource(t *testing.T, src string) (*ast.Program, *diagnostics.Sink) {
	t.Helper()
	diags := &diagnostics.Sink{}
	tokens := lexer.Lex(src, diags)
	program := parser.New(tokens, diags).Parse()
	return program, diags
}

func TestParseFunctionWithParamsAndBody(t *testing.T) {
	program, diags := parseSource(t, `
int add(int a, int b) {
    return a + b;
}
`)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Items())
	}
	if len(program.Functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(program.Functions))
	}
	fn := program.Functions[0]
	if fn.Name != "add" || fn.ReturnType != "int" {
		t.Fatalf("unexpected function header: %+v", fn)
	}
	if len(fn.Params) != 2 || fn.Params[0].Name != "a" || fn.Params[1].Name != "b" {
		t.Fatalf("unexpected params: %+v", fn.Params)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("expected 1 statement in body, got %d", len(fn.Body.Statements))
	}
	ret, ok := fn.Body.Statements[0].(*ast.Return)
	if !ok {
		t.Fatalf("expected a return statement, got %T", fn.Body.Statements[0])
	}
	bin, ok := ret.Value.(*ast.BinaryOp)
	if !ok || bin.Op != "+" {
		t.Fatalf("expected a '+' binary op, got %+v", ret.Value)
	}
}

func TestParseIfElse(t *testing.T) {
	program, diags := parseSource(t, `
int choose(bool flag) {
    int result;
    if (flag) {
        result = 1;
    } else {
        result = 0;
    }
    return result;
}
`)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Items())
	}
	fn := program.Functions[0]
	ifStmt, ok := fn.Body.Statements[1].(*ast.If)
	if !ok {
		t.Fatalf("expected an if statement, got %T", fn.Body.Statements[1])
	}
	if ifStmt.Else == nil {
		t.Fatalf("expected an else block")
	}
}

func TestParseWhileLoop(t *testing.T) {
	program, diags := parseSource(t, `
int countdown(int n) {
    while (n > 0) {
        n = n - 1;
    }
    return n;
}
`)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Items())
	}
	fn := program.Functions[0]
	whileStmt, ok := fn.Body.Statements[0].(*ast.While)
	if !ok {
		t.Fatalf("expected a while statement, got %T", fn.Body.Statements[0])
	}
	cond, ok := whileStmt.Condition.(*ast.BinaryOp)
	if !ok || cond.Op != ">" {
		t.Fatalf("expected a '>' condition, got %+v", whileStmt.Condition)
	}
}

func TestParseCallStatement(t *testing.T) {
	program, diags := parseSource(t, `
int main() {
    add(1, 2);
    return 0;
}
`)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Items())
	}
	fn := program.Functions[0]
	exprStmt, ok := fn.Body.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected an expression statement, got %T", fn.Body.Statements[0])
	}
	call, ok := exprStmt.Expr.(*ast.FunctionCall)
	if !ok || call.Name != "add" || len(call.Args) != 2 {
		t.Fatalf("unexpected call: %+v", exprStmt.Expr)
	}
}

func TestParsePrecedence(t *testing.T) {
	program, diags := parseSource(t, `
int f() {
    int x;
    x = 1 + 2 * 3;
    return x;
}
`)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Items())
	}
	fn := program.Functions[0]
	assign, ok := fn.Body.Statements[1].(*ast.Assignment)
	if !ok {
		t.Fatalf("expected an assignment, got %T", fn.Body.Statements[1])
	}
	top, ok := assign.Value.(*ast.BinaryOp)
	if !ok || top.Op != "+" {
		t.Fatalf("expected top-level '+' op, got %+v", assign.Value)
	}
	right, ok := top.Right.(*ast.BinaryOp)
	if !ok || right.Op != "*" {
		t.Fatalf("expected '*' to bind tighter than '+', got %+v", top.Right)
	}
}

func TestParseErrorRecoversAcrossFunctions(t *testing.T) {
	program, diags := parseSource(t, `
int broken( {
    return 0;
}
int ok() {
    return 1;
}
`)
	if !diags.HasErrors() {
		t.Fatalf("expected diagnostics from the malformed first function")
	}
	var names []string
	for _, fn := range program.Functions {
		names = append(names, fn.Name)
	}
	found := false
	for _, name := range names {
		if name == "ok" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected parsing to recover and still find function 'ok', got %v", names)
	}
}
