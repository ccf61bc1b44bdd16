// Package diagnostics collects the free-form error reports produced by
// each compiler phase. A diagnostic is never fatal to the
// pipeline: every phase keeps going after recording one, so later phases
// can still run on a best-effort basis and surface their own findings.
package diagnostics

import "fmt"

// Phase identifies which pipeline stage produced a Diagnostic.
type Phase string

const (
	PhaseLexer    Phase = "lexer"
	PhaseParser   Phase = "parser"
	PhaseSemantic Phase = "semantic"
	PhaseTAC      Phase = "tac"
)

// Diagnostic is a single tagged report: which phase raised it, why, and
// where in the source it happened. Line and Column are 0 when the
// diagnostic is not tied to a specific source position.
type Diagnostic struct {
	Phase  Phase
	Reason string
	Line   int
	Column int
}

func (d Diagnostic) String() string {
	if d.Line == 0 && d.Column == 0 {
		return fmt.Sprintf("[%s] %s", d.Phase, d.Reason)
	}
	return fmt.Sprintf("[%s] line %d:%d: %s", d.Phase, d.Line, d.Column, d.Reason)
}

// Sink accumulates diagnostics from one or more phases in the order they
// were reported. A Sink's zero value is ready to use.
type Sink struct {
	items []Diagnostic
}

// Add records d.
func (s *Sink) Add(d Diagnostic) {
	s.items = append(s.items, d)
}

// Addf builds a Diagnostic from phase, a 1-based line/column, and a
// formatted reason, then records it.
func (s *Sink) Addf(phase Phase, line, column int, format string, args ...interface{}) {
	s.Add(Diagnostic{
		Phase:  phase,
		Reason: fmt.Sprintf(format, args...),
		Line:   line,
		Column: column,
	})
}

// Items returns every diagnostic recorded so far, in report order.
func (s *Sink) Items() []Diagnostic {
	return s.items
}

// HasErrors reports whether any diagnostic has been recorded. Every
// diagnostic in this compiler is an error — there is no separate warning
// severity — so this is equivalent to a non-empty Sink.
func (s *Sink) HasErrors() bool {
	return len(s.items) > 0
}

// Len returns the number of diagnostics recorded.
func (s *Sink) Len() int {
	return len(s.items)
}

// Merge appends another Sink's items onto s, preserving order.
func (s *Sink) Merge(other *Sink) {
	if other == nil {
		return
	}
	s.items = append(s.items, other.items...)
}
