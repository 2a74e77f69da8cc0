package cellite

// file options.go resolves caller-supplied Options against the module's
// defaults, the same way the teacher's server.Config validates and fills in
// a Database config before a connection is attempted (server/config.go).
// Here resolution is just "zero means use the default"; nothing is
// validated, and any other value, negative ones included, is used as given.

// Options are the resource limits and behavior knobs recognized by Compile.
// A zero-valued field means "use the default" (see DefaultOptions); there is
// no way to request a limit of exactly zero.
type Options struct {
	// MaxExpressionLength rejects source longer than this, in bytes, at
	// compile time.
	MaxExpressionLength int

	// MaxAstNodes aborts the parser once the node count would exceed it.
	MaxAstNodes int

	// MaxCallDepth aborts evaluation once function-call nesting would
	// exceed it.
	MaxCallDepth int

	// MaxTraceEntries stops the trace buffer from recording further entries
	// once it is full; evaluation itself continues to completion.
	MaxTraceEntries int
}

// DefaultOptions returns the module's built-in defaults.
func DefaultOptions() Options {
	return Options{
		MaxExpressionLength: 4096,
		MaxAstNodes:         2000,
		MaxCallDepth:        50,
		MaxTraceEntries:     5000,
	}
}

// resolve fills any zero-valued field of o with the corresponding default.
func (o Options) resolve() Options {
	d := DefaultOptions()
	if o.MaxExpressionLength == 0 {
		o.MaxExpressionLength = d.MaxExpressionLength
	}
	if o.MaxAstNodes == 0 {
		o.MaxAstNodes = d.MaxAstNodes
	}
	if o.MaxCallDepth == 0 {
		o.MaxCallDepth = d.MaxCallDepth
	}
	if o.MaxTraceEntries == 0 {
		o.MaxTraceEntries = d.MaxTraceEntries
	}
	return o
}
