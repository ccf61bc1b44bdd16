// Package pipeline wires the lexer, parser, semantic analyzer, and TAC
// generator into a single ordered sequence of stages sharing one context.
package pipeline

import (
	"github.com/google/uuid"
	"github.com/minilangpp/minilangc/internal/ast"
	"github.com/minilangpp/minilangc/internal/diagnostics"
	"github.com/minilangpp/minilangc/internal/symbols"
	"github.com/minilangpp/minilangc/internal/tac"
	"github.com/minilangpp/minilangc/internal/token"
)

// PipelineContext is threaded through every stage of a compilation run.
// Each stage reads what earlier stages produced and appends its own
// output and diagnostics; no stage rewinds or mutates a prior stage's
// output.
type PipelineContext struct {
	RunID        uuid.UUID
	File         string
	Source       string
	Tokens       []token.Token
	Program      *ast.Program
	Symbols      *symbols.Stack
	Instructions []tac.Instruction
	Diagnostics  *diagnostics.Sink
}

// NewContext builds a PipelineContext for a single compilation of source,
// stamping it with a fresh run identifier and an empty diagnostics sink.
func NewContext(file, source string) *PipelineContext {
	return &PipelineContext{
		RunID:       uuid.New(),
		File:        file,
		Source:      source,
		Diagnostics: &diagnostics.Sink{},
	}
}

// Processor is one stage of a Pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from an ordered list of stages.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order over initialCtx.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors: a later stage (e.g. the TAC generator) is
		// still expected to run best-effort against whatever a previous
		// stage produced, so every phase's diagnostics end up reported.
	}
	return ctx
}
