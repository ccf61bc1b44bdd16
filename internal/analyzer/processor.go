package analyzer

import "github.com/minilangpp/minilangc/internal/pipeline"

// Processor runs semantic analysis as a pipeline stage, reading
// ctx.Program and populating ctx.Symbols.
type Processor struct{}

func (ap *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Program == nil {
		return ctx
	}
	a := New(ctx.Diagnostics)
	ctx.Symbols = a.Analyze(ctx.Program)
	return ctx
}
