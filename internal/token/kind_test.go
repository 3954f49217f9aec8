package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/accelec/accele/internal/token"
)

func TestKindStringKnown(t *testing.T) {
	assert.Equal(t, "fun", token.FUN.String())
	assert.Equal(t, "+=", token.PLUS_ASSIGN.String())
	assert.Equal(t, "EOF", token.EOF.String())
}

func TestKindStringUnknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", token.Kind(-1).String())
}

func TestIsAssignmentOp(t *testing.T) {
	assignOps := []token.Kind{
		token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN,
		token.SLASH_ASSIGN, token.PERCENT_ASSIGN, token.AMP_ASSIGN, token.PIPE_ASSIGN,
		token.CARET_ASSIGN, token.TILDE_ASSIGN, token.POWER_ASSIGN, token.LSHIFT_ASSIGN,
		token.RSHIFT_ASSIGN,
	}
	for _, k := range assignOps {
		assert.Truef(t, k.IsAssignmentOp(), "%s should be an assignment op", k)
	}

	nonAssignOps := []token.Kind{token.PLUS, token.EQ, token.ARROW, token.ID}
	for _, k := range nonAssignOps {
		assert.Falsef(t, k.IsAssignmentOp(), "%s should not be an assignment op", k)
	}
}

func TestTokenIsZero(t *testing.T) {
	var zero token.Token
	assert.True(t, zero.IsZero())

	tok := token.Token{Kind: token.ID, Text: "x", Meta: token.SourceMeta{ModuleRef: "m.accele", Line: 1, Column: 1}}
	assert.False(t, tok.IsZero())
}

func TestSourceMetaString(t *testing.T) {
	m := token.SourceMeta{ModuleRef: "foo.accele", Line: 3, Column: 7}
	assert.Equal(t, "foo.accele:3:7", m.String())
}
