// Package diagnostics defines the structured diagnostic record produced by
// the Lexer, Parser, and Resolver, and the Diagnoser that collects them.
// Rendering (colorization, source snippets) is explicitly an external
// collaborator's job; this package only ever produces and stores records.
package diagnostics

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/accelec/accele/internal/token"
)

// Diagnostic is one structured record in the diagnostics channel (§6).
type Diagnostic struct {
	Code            Code
	Severity        Severity
	Meta            token.SourceMeta
	HighlightLength int
	Message         string
	RunID           uuid.UUID
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s %s: %s", d.Meta, d.Severity, d.Code.StringID(), d.Message)
}

// New builds a Diagnostic at tok's position with the default severity for
// code, formatting Message from code's template and args.
func New(code Code, tok token.Token, args ...any) Diagnostic {
	return Diagnostic{
		Code:            code,
		Severity:        code.DefaultSeverity(),
		Meta:            tok.Meta,
		HighlightLength: len(tok.Text),
		Message:         fmt.Sprintf(code.template(), args...),
	}
}

// NewAt is New but with an explicit SourceMeta instead of a token (used
// when no single token anchors the diagnostic, e.g. end-of-file).
func NewAt(code Code, meta token.SourceMeta, highlightLength int, args ...any) Diagnostic {
	return Diagnostic{
		Code:            code,
		Severity:        code.DefaultSeverity(),
		Meta:            meta,
		HighlightLength: highlightLength,
		Message:         fmt.Sprintf(code.template(), args...),
	}
}

// Diagnoser accepts diagnostic records from all pipeline stages (§2) and
// enforces warning enable/disable state. It is the sole external contract
// (b) of the front end's purpose statement.
type Diagnoser struct {
	RunID        uuid.UUID
	WarningState map[string]bool // kebab id -> enabled; absent means default-on
	records      []Diagnostic
}

// NewDiagnoser creates a Diagnoser for one compilation run.
func NewDiagnoser(runID uuid.UUID, warningState map[string]bool) *Diagnoser {
	if warningState == nil {
		warningState = map[string]bool{}
	}
	return &Diagnoser{RunID: runID, WarningState: warningState}
}

// Report records d, unless d is a disabled warning. Errors can never be
// suppressed.
func (dg *Diagnoser) Report(d Diagnostic) {
	if d.Severity == WARNING {
		if enabled, set := dg.WarningState[d.Code.StringID()]; set && !enabled {
			return
		}
	}
	d.RunID = dg.RunID
	dg.records = append(dg.records, d)
}

// Records returns every accepted diagnostic, in report order.
func (dg *Diagnoser) Records() []Diagnostic {
	return dg.records
}

// Truncate drops every record recorded after the first n, used by the
// Parser's reset_to_mark to discharge diagnostics raised along an aborted
// speculative path (§4.2, §8 Testable Property 6).
func (dg *Diagnoser) Truncate(n int) {
	if n < len(dg.records) {
		dg.records = dg.records[:n]
	}
}

// HasErrors reports whether any ERROR-severity diagnostic was recorded;
// the driver's exit status (§6) is derived from this.
func (dg *Diagnoser) HasErrors() bool {
	for _, r := range dg.records {
		if r.Severity == ERROR {
			return true
		}
	}
	return false
}

// Merge appends other's records into dg, used when the ImportHandler pulls
// in diagnostics raised while compiling a dependency module.
func (dg *Diagnoser) Merge(other *Diagnoser) {
	if other == nil {
		return
	}
	dg.records = append(dg.records, other.records...)
}
