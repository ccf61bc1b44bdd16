package parser

import "github.com/minilangpp/minilangc/internal/pipeline"

// Processor runs the parser as one stage of a pipeline.Pipeline, reading
// ctx.Tokens and populating ctx.Program.
type Processor struct{}

func (pp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	parser := New(ctx.Tokens, ctx.Diagnostics)
	ctx.Program = parser.Parse()
	return ctx
}
