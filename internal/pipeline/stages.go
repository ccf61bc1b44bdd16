package pipeline

import "github.com/minilangpp/minilangc/internal/tac"

// TACProcessor runs TAC generation as the final pipeline stage. It lives
// here rather than in package tac so that tac.Instruction can be a field
// type on PipelineContext without tac needing to import this package back.
type TACProcessor struct{}

func (tp *TACProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.Program == nil {
		return ctx
	}
	ctx.Instructions = tac.New().Generate(ctx.Program)
	return ctx
}
