package ast

import "github.com/accelec/accele/internal/token"

// MetaDecl is a standalone top-level meta tag (`@srclock`, `@nobuiltins`,
// or a bare `@enablewarning(...)`/`@disablewarning(...)`) — one of spec
// §4.2's top-level forms that isn't attached to another declaration.
type MetaDecl struct {
	Tok token.Token
	Mod *Modifier
}

func (m *MetaDecl) Accept(v Visitor)      {}
func (m *MetaDecl) GetToken() token.Token { return m.Tok }
func (m *MetaDecl) statementNode()        {}
