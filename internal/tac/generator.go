package tac

import (
	"strconv"
	"strings"

	"github.com/minilangpp/minilangc/internal/ast"
)

// Generator lowers a Program into a flat Instruction sequence. Its temp
// and label counters are scoped to one Generator instance — never
// package-level state — so nothing leaks across compilation runs.
type Generator struct {
	instructions []Instruction
	tempCount    int
	labelCount   int
}

// New creates an empty Generator.
func New() *Generator {
	return &Generator{}
}

func (g *Generator) newTemp() string {
	g.tempCount++
	return "t" + strconv.Itoa(g.tempCount)
}

func (g *Generator) newLabel() string {
	g.labelCount++
	return "L" + strconv.Itoa(g.labelCount)
}

func (g *Generator) emit(instr Instruction) {
	g.instructions = append(g.instructions, instr)
}

// Generate lowers program and returns the emitted instruction sequence.
func (g *Generator) Generate(program *ast.Program) []Instruction {
	for _, fn := range program.Functions {
		g.genFunction(fn)
	}
	return g.instructions
}

func (g *Generator) genFunction(fn *ast.FunctionDef) {
	g.emit(label(fn.Name))
	g.genBlock(fn.Body)
}

func (g *Generator) genBlock(block *ast.Block) {
	for _, stmt := range block.Statements {
		g.genStatement(stmt)
	}
}

func (g *Generator) genStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VariableDecl:
		if s.Initializer != nil {
			place := g.genExpr(s.Initializer)
			g.emit(assign(s.Name, place))
		}
	case *ast.Assignment:
		place := g.genExpr(s.Value)
		g.emit(assign(s.Target.Name, place))
	case *ast.If:
		g.genIf(s)
	case *ast.While:
		g.genWhile(s)
	case *ast.Return:
		if s.Value != nil {
			place := g.genExpr(s.Value)
			g.emit(ret(place, true))
		} else {
			g.emit(ret("", false))
		}
	case *ast.ExpressionStatement:
		g.genExpr(s.Expr)
	case *ast.Block:
		g.genBlock(s)
	}
}

// genIf allocates the else label before the end label, so that for an
// if-with-else, elseLabel numerically precedes endLabel — load-bearing
// for golden-output stability, not just a leftover implementation detail.
func (g *Generator) genIf(stmt *ast.If) {
	condPlace := g.genExpr(stmt.Condition)
	elseLabel := g.newLabel()
	var endLabel string
	if stmt.Else != nil {
		endLabel = g.newLabel()
	}
	g.emit(ifz(condPlace, elseLabel))
	g.genBlock(stmt.Then)
	if stmt.Else != nil {
		g.emit(gotoInstr(endLabel))
		g.emit(label(elseLabel))
		g.genBlock(stmt.Else)
		g.emit(label(endLabel))
	} else {
		g.emit(label(elseLabel))
	}
}

func (g *Generator) genWhile(stmt *ast.While) {
	startLabel := g.newLabel()
	endLabel := g.newLabel()
	g.emit(label(startLabel))
	condPlace := g.genExpr(stmt.Condition)
	g.emit(ifz(condPlace, endLabel))
	g.genBlock(stmt.Body)
	g.emit(gotoInstr(startLabel))
	g.emit(label(endLabel))
}

func (g *Generator) genFunctionCall(fc *ast.FunctionCall) string {
	argPlaces := make([]string, len(fc.Args))
	for i, arg := range fc.Args {
		argPlaces[i] = g.genExpr(arg)
	}
	for _, place := range argPlaces {
		g.emit(param(place))
	}
	result := g.newTemp()
	g.emit(call(result, fc.Name, len(argPlaces)))
	return result
}

// genExpr lowers expr and returns its "place": a temporary name, a
// variable name, or a literal in canonical textual form.
func (g *Generator) genExpr(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.Literal:
		return canonicalLiteral(e)

	case *ast.Identifier:
		return e.Name

	case *ast.BinaryOp:
		left := g.genExpr(e.Left)
		right := g.genExpr(e.Right)
		if folded, ok := foldConstant(e.Op, left, right); ok {
			return folded
		}
		result := g.newTemp()
		g.emit(binary(e.Op, result, left, right))
		return result

	case *ast.UnaryOp:
		operand := g.genExpr(e.Operand)
		result := g.newTemp()
		g.emit(unary(e.Op, result, operand))
		return result

	case *ast.FunctionCall:
		return g.genFunctionCall(e)

	default:
		return ""
	}
}

func canonicalLiteral(lit *ast.Literal) string {
	switch lit.Type {
	case "bool":
		if b, _ := lit.Value.(bool); b {
			return "true"
		}
		return "false"
	case "int":
		v, _ := lit.Value.(int64)
		return strconv.FormatInt(v, 10)
	case "float":
		v, _ := lit.Value.(float64)
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// foldConstant computes a binary arithmetic op over two places at
// compile time when both places are all-digit (i.e. non-negative integer
// literals or already-folded integer results). Folding is restricted to
// + - * / — the operators the generator can assume are pure integer
// arithmetic; floats, negative numbers, comparisons, and logical
// operators never fold.
func foldConstant(op, left, right string) (string, bool) {
	if !isAllDigits(left) || !isAllDigits(right) {
		return "", false
	}
	l, errL := strconv.ParseInt(left, 10, 64)
	r, errR := strconv.ParseInt(right, 10, 64)
	if errL != nil || errR != nil {
		return "", false
	}
	switch op {
	case "+":
		return strconv.FormatInt(l+r, 10), true
	case "-":
		return strconv.FormatInt(l-r, 10), true
	case "*":
		return strconv.FormatInt(l*r, 10), true
	case "/":
		if r == 0 {
			return "", false
		}
		return strconv.FormatInt(l/r, 10), true
	default:
		return "", false
	}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) == -1
}
