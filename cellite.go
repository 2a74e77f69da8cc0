package cellite

import "github.com/dekarrin/cel-lite/internal/cel"

// Value is a dynamically tagged runtime value: null, boolean, finite
// number, string, ordered sequence, or string-keyed mapping, plus the
// distinguished Undefined sentinel used to flag a missing property without
// raising an error.
type Value = cel.Value

// Context is the read-only mapping a Program is evaluated against. Build one
// directly, or convert host data (e.g. unmarshaled JSON) with ContextFromGo.
type Context = cel.Context

// Entry is one post-order record produced by Program.Explain: the id and
// kind of the AST node that produced it, its deterministic pretty-printed
// form, and the value it evaluated to.
type Entry = cel.Entry

// Kind tags the type of a Value.
type Kind = cel.Kind

// The closed set of Value kinds.
const (
	KindUndefined = cel.KindUndefined
	KindNull      = cel.KindNull
	KindBool      = cel.KindBool
	KindNumber    = cel.KindNumber
	KindString    = cel.KindString
	KindSequence  = cel.KindSequence
	KindMap       = cel.KindMap
)

var (
	// Bool, Number, and String construct literal Values directly, for hosts
	// that want to build a Context without going through ContextFromGo.
	Bool   = cel.Bool
	Number = cel.Number
	String = cel.String

	// Undefined and Null are the two non-literal-constructible Values.
	Undefined = cel.Undefined
	Null      = cel.Null

	// FromGo converts a single Go value (nil, bool, string, a built-in
	// numeric type, map[string]any, []any, or []string) into a Value; any
	// other type converts to Undefined.
	FromGo = cel.FromGo

	// ContextFromGo converts a map[string]any, the shape a host typically
	// already has its session/claims data in, into a Context.
	ContextFromGo = cel.ContextFromGo

	// DeepEqual implements the structural equality used internally by "==",
	// "!=", "in", and contains()/containsAny(), exposed so hosts and tests
	// can compare Values the same way the engine does.
	DeepEqual = cel.DeepEqual
)

// Registry returns the closed list of allow-listed function names and their
// arity bounds, so host tooling (editor autocompletion, documentation
// generation) can be built against the language surface without reaching
// into cel-lite's internals.
func Registry() []cel.Builtin {
	return cel.Registry()
}
