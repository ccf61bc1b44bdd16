package lexer

import "github.com/minilangpp/minilangc/internal/pipeline"

// Processor runs the lexer as the first stage of a pipeline.Pipeline.
type Processor struct{}

func (lp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.Tokens = Lex(ctx.Source, ctx.Diagnostics)
	return ctx
}
