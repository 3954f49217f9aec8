package lexer_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/lexer"
	"github.com/accelec/accele/internal/token"
)

func tokenize(t *testing.T, input string) ([]token.Token, *diagnostics.Diagnoser) {
	t.Helper()
	diag := diagnostics.NewDiagnoser(uuid.New(), nil)
	l := lexer.New("test.accele", input, diag, nil)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, diag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	toks, diag := tokenize(t, "fun add x")
	require.Empty(t, diag.Records())
	assert.Equal(t, []token.Kind{token.FUN, token.ID, token.ID, token.EOF}, kinds(toks))
	assert.Equal(t, "add", toks[1].Text)
}

func TestLexerOperators(t *testing.T) {
	toks, diag := tokenize(t, "+= ** <=> ??")
	require.Empty(t, diag.Records())
	assert.Equal(t, []token.Kind{token.PLUS_ASSIGN, token.STAR_STAR, token.SPACESHIP, token.QUESTION_QUESTION, token.EOF}, kinds(toks))
}

func TestLexerComposesTryOptionalGreedily(t *testing.T) {
	toks, diag := tokenize(t, "try? + 2")
	require.Empty(t, diag.Records())
	assert.Equal(t, []token.Kind{token.TRY_OPTIONAL, token.PLUS, token.INTEGER_LITERAL, token.EOF}, kinds(toks))
	assert.Equal(t, "try?", toks[0].Text)
	assert.Equal(t, "2", toks[2].Text)
}

func TestLexerIntegerAndFloat(t *testing.T) {
	toks, diag := tokenize(t, "42 3.14")
	require.Empty(t, diag.Records())
	require.Len(t, toks, 3)
	assert.Equal(t, token.INTEGER_LITERAL, toks[0].Kind)
	assert.Equal(t, token.FLOAT_LITERAL, toks[1].Kind)
}

func TestLexerNewlineIsSignificant(t *testing.T) {
	toks, diag := tokenize(t, "a\nb")
	require.Empty(t, diag.Records())
	assert.Equal(t, []token.Kind{token.ID, token.NL, token.ID, token.EOF}, kinds(toks))
}

func TestLexerUnterminatedString(t *testing.T) {
	_, diag := tokenize(t, `"unterminated`)
	require.NotEmpty(t, diag.Records())
	assert.Equal(t, diagnostics.UNTERMINATED_STRING, diag.Records()[0].Code)
}

func TestLexerLineComment(t *testing.T) {
	toks, diag := tokenize(t, "a // comment\nb")
	require.Empty(t, diag.Records())
	assert.Equal(t, []token.Kind{token.ID, token.NL, token.ID, token.EOF}, kinds(toks))
}

func TestLexerCapturesNestedInterpolationSpan(t *testing.T) {
	diag := diagnostics.NewDiagnoser(uuid.New(), nil)
	l := lexer.New("test.accele", `"a\{ f({1: 2}) }b"`, diag, nil)
	tok := l.NextToken()
	require.Empty(t, diag.Records())
	assert.Equal(t, token.INTERP_STRING, tok.Kind)

	spans := l.TakeStringSpans()
	require.Len(t, spans, 1, "the brace pair inside the map literal must not prematurely close the interpolation")
	assert.Equal(t, " f({1: 2}) ", spans[0].Source)
}

func TestRelexSplitsCompositeAssignOperator(t *testing.T) {
	diag := diagnostics.NewDiagnoser(uuid.New(), nil)
	l := lexer.New("test.accele", ">>=", diag, nil)
	tok := l.NextToken()
	require.Equal(t, token.RSHIFT_ASSIGN, tok.Kind)

	pieces := lexer.Relex(tok)
	require.Len(t, pieces, 2)
	assert.Equal(t, ">", pieces[0].Text)
	assert.Equal(t, ">=", pieces[1].Text)
	assert.Equal(t, tok.Meta.Column, pieces[0].Meta.Column)
	assert.Equal(t, tok.Meta.Column+1, pieces[1].Meta.Column)
}
