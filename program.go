package cellite

import (
	"github.com/google/uuid"

	"github.com/dekarrin/cel-lite/internal/cel"
)

// Program is a compiled expression: immutable, safe to share and evaluate
// concurrently across goroutines against independent contexts.
type Program struct {
	id     uuid.UUID
	source string
	ast    *cel.Expr
	opts   Options
}

// Compile parses source into a Program using the given options, or the
// module defaults if opts is omitted. At most one Options value may be
// given; passing more than one is a programmer error and only the first is
// used.
func Compile(source string, opts ...Options) (*Program, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	o = o.resolve()

	if len(source) > o.MaxExpressionLength {
		return nil, wrapError(cel.NewExpressionTooLongError(o.MaxExpressionLength))
	}

	ast, err := cel.CompileAST(source, o.MaxAstNodes)
	if err != nil {
		return nil, wrapError(err)
	}

	return &Program{
		id:     uuid.New(),
		source: source,
		ast:    ast,
		opts:   o,
	}, nil
}

// ID returns the Program's trace-correlation identifier, generated once at
// compile time. Hosts that log Explain results alongside which compiled rule
// produced them can key on this rather than the source text itself.
func (p *Program) ID() uuid.UUID {
	return p.id
}

// Source returns the exact text Compile was called with.
func (p *Program) Source() string {
	return p.source
}

// String returns a deterministic pretty-print of the whole parsed
// expression, using the same pretty-printer Explain's trace entries do.
// Useful for logging which compiled rule fired without re-emitting the raw
// source.
func (p *Program) String() string {
	return cel.PrettyPrint(p.ast)
}

// Eval evaluates the Program against ctx and returns the resulting value.
func (p *Program) Eval(ctx Context) (Value, error) {
	val, err := cel.Run(p.ast, ctx, p.opts.MaxCallDepth)
	if err != nil {
		return cel.Undefined, wrapError(err)
	}
	return val, nil
}

// Explain evaluates the Program against ctx with a bounded post-order trace.
// If evaluation fails partway through, the returned trace still contains
// every entry recorded before the failing node.
func (p *Program) Explain(ctx Context) (Value, []Entry, error) {
	val, trace, err := cel.Trace(p.ast, ctx, p.opts.MaxCallDepth, p.opts.MaxTraceEntries)
	if err != nil {
		return cel.Undefined, trace, wrapError(err)
	}
	return val, trace, nil
}
