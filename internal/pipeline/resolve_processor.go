package pipeline

import "github.com/accelec/accele/internal/resolver"

// ResolveProcessor drives the Resolver up to TargetStage: Resolved for the
// module under direct compilation, InternalAll for a module reached only
// through an import (§4.3's recursion rule — resolved by the Loader's
// Compiler callback in compile.go, not here).
type ResolveProcessor struct {
	TargetStage resolver.Stage
}

func (rp *ResolveProcessor) Process(ctx *Context) *Context {
	if ctx.AstRoot == nil {
		return ctx
	}
	r := resolver.New(ctx.Ctx, ctx.Diag, ctx.Registry, ctx.Loader, ctx.AstRoot, ctx.ModuleDir)
	ctx.Resolver = r
	r.RunToStage(rp.TargetStage)
	return ctx
}
