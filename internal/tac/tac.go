// Package tac lowers an analyzed AST into a flat sequence of three-address
// instructions: integer-literal constant folding, temporary allocation,
// and control-flow labeling all happen here.
package tac

import (
	"fmt"
	"strconv"
)

// Instruction is a single three-address record. Not every field is
// meaningful for every Op — String renders exactly the fields a given Op
// uses, mirroring the textual TAC format.
type Instruction struct {
	Op     string
	Arg1   string
	Arg2   string
	Result string

	hasArg1   bool
	hasArg2   bool
	hasResult bool
}

func label(name string) Instruction {
	return Instruction{Op: "label", Result: name, hasResult: true}
}

func gotoInstr(target string) Instruction {
	return Instruction{Op: "goto", Arg1: target, hasArg1: true}
}

func ifz(cond, target string) Instruction {
	return Instruction{Op: "ifz", Arg1: cond, Arg2: target, hasArg1: true, hasArg2: true}
}

func assign(result, value string) Instruction {
	return Instruction{Op: "=", Arg1: value, Result: result, hasArg1: true, hasResult: true}
}

func binary(op, result, left, right string) Instruction {
	return Instruction{Op: op, Arg1: left, Arg2: right, Result: result, hasArg1: true, hasArg2: true, hasResult: true}
}

func unary(op, result, operand string) Instruction {
	return Instruction{Op: op, Arg1: operand, Result: result, hasArg1: true, hasResult: true}
}

func param(value string) Instruction {
	return Instruction{Op: "param", Arg1: value, hasArg1: true}
}

func call(result, name string, argc int) Instruction {
	return Instruction{Op: "call", Arg1: name, Arg2: strconv.Itoa(argc), Result: result, hasArg1: true, hasArg2: true, hasResult: true}
}

func ret(value string, has bool) Instruction {
	return Instruction{Op: "return", Arg1: value, hasArg1: has}
}

// String renders the instruction in the canonical textual TAC form.
func (i Instruction) String() string {
	switch i.Op {
	case "label":
		return fmt.Sprintf("%s:", i.Result)
	case "goto":
		return fmt.Sprintf("goto %s", i.Arg1)
	case "ifz", "ifnz":
		return fmt.Sprintf("%s %s %s", i.Op, i.Arg1, i.Arg2)
	case "=":
		return fmt.Sprintf("%s = %s", i.Result, i.Arg1)
	case "param":
		return fmt.Sprintf("param %s", i.Arg1)
	case "return":
		if i.hasArg1 {
			return fmt.Sprintf("return %s", i.Arg1)
		}
		return "return"
	case "call":
		return fmt.Sprintf("%s = %s call %s", i.Result, i.Arg1, i.Arg2)
	default:
		if i.hasArg2 {
			return fmt.Sprintf("%s = %s %s %s", i.Result, i.Arg1, i.Op, i.Arg2)
		}
		return fmt.Sprintf("%s = %s %s", i.Result, i.Op, i.Arg1)
	}
}
