package diagnostics_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/token"
)

func tok(text string) token.Token {
	return token.Token{Kind: token.ID, Text: text, Meta: token.SourceMeta{ModuleRef: "m.accele", Line: 2, Column: 5}}
}

func TestNewFormatsMessageAndSeverity(t *testing.T) {
	d := diagnostics.New(diagnostics.UNDEFINED_SYMBOL, tok("x"), "x")
	assert.Equal(t, diagnostics.ERROR, d.Severity)
	assert.Contains(t, d.Message, "x")
	assert.Equal(t, len("x"), d.HighlightLength)
}

func TestDiagnosticString(t *testing.T) {
	d := diagnostics.New(diagnostics.UNDEFINED_SYMBOL, tok("x"), "x")
	assert.Equal(t, "m.accele:2:5: error undefined-symbol: undefined symbol 'x'", d.String())
}

func TestReportStampsRunID(t *testing.T) {
	id := uuid.New()
	dg := diagnostics.NewDiagnoser(id, nil)
	dg.Report(diagnostics.New(diagnostics.UNDEFINED_SYMBOL, tok("x"), "x"))
	require.Len(t, dg.Records(), 1)
	assert.Equal(t, id, dg.Records()[0].RunID)
}

func TestReportSuppressesDisabledWarning(t *testing.T) {
	dg := diagnostics.NewDiagnoser(uuid.New(), map[string]bool{
		diagnostics.STATIC_ACCESS_VIA_INSTANCE.StringID(): false,
	})
	dg.Report(diagnostics.New(diagnostics.STATIC_ACCESS_VIA_INSTANCE, tok("Foo"), "Foo"))
	assert.Empty(t, dg.Records())
}

func TestReportNeverSuppressesErrors(t *testing.T) {
	dg := diagnostics.NewDiagnoser(uuid.New(), map[string]bool{
		diagnostics.UNDEFINED_SYMBOL.StringID(): false,
	})
	dg.Report(diagnostics.New(diagnostics.UNDEFINED_SYMBOL, tok("x"), "x"))
	assert.Len(t, dg.Records(), 1)
}

func TestHasErrors(t *testing.T) {
	dg := diagnostics.NewDiagnoser(uuid.New(), nil)
	assert.False(t, dg.HasErrors())
	dg.Report(diagnostics.New(diagnostics.STATIC_ACCESS_VIA_INSTANCE, tok("Foo"), "Foo"))
	assert.False(t, dg.HasErrors())
	dg.Report(diagnostics.New(diagnostics.UNDEFINED_SYMBOL, tok("x"), "x"))
	assert.True(t, dg.HasErrors())
}

func TestTruncateDropsTrailingRecords(t *testing.T) {
	dg := diagnostics.NewDiagnoser(uuid.New(), nil)
	dg.Report(diagnostics.New(diagnostics.UNDEFINED_SYMBOL, tok("a"), "a"))
	mark := len(dg.Records())
	dg.Report(diagnostics.New(diagnostics.UNDEFINED_SYMBOL, tok("b"), "b"))
	dg.Report(diagnostics.New(diagnostics.UNDEFINED_SYMBOL, tok("c"), "c"))
	require.Len(t, dg.Records(), 3)

	dg.Truncate(mark)
	require.Len(t, dg.Records(), 1)
	assert.Contains(t, dg.Records()[0].Message, "'a'")
}

func TestMergeAppendsOtherRecords(t *testing.T) {
	id := uuid.New()
	dg := diagnostics.NewDiagnoser(id, nil)
	dg.Report(diagnostics.New(diagnostics.UNDEFINED_SYMBOL, tok("a"), "a"))

	other := diagnostics.NewDiagnoser(id, nil)
	other.Report(diagnostics.New(diagnostics.UNDEFINED_SYMBOL, tok("b"), "b"))

	dg.Merge(other)
	assert.Len(t, dg.Records(), 2)
}

func TestMergeNilIsNoop(t *testing.T) {
	dg := diagnostics.NewDiagnoser(uuid.New(), nil)
	dg.Report(diagnostics.New(diagnostics.UNDEFINED_SYMBOL, tok("a"), "a"))
	dg.Merge(nil)
	assert.Len(t, dg.Records(), 1)
}
