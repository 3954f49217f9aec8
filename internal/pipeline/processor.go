package pipeline

// Processor is one stage of the compilation pipeline — grounded on
// funxy's internal/pipeline.Processor: each stage reads whatever the
// prior stage left on the Context and returns the Context for the next.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline runs a fixed sequence of Processors over one Context. As in
// the teacher's own Pipeline.Run, a stage never aborts the run on error —
// later stages guard their own preconditions, so a consumer that wants
// every diagnostic a partial compile can produce (an LSP-style caller)
// gets them all in one pass.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
	}
	return ctx
}
