package cel

// file registry.go is the closed function allow-list of spec §4.4, following
// the shape of the teacher's Function/FuncCall/NewInterpreter pattern in
// internal/tunascript/tunascript.go: each entry names itself, its arity
// bounds, and a plain Go function implementing it. There is no way for a
// compiled expression to call anything not listed here.

// BuiltinCall is the Go implementation of one allow-listed function. args has
// already been evaluated left-to-right by the time Call runs.
type BuiltinCall func(args []Value) (Value, error)

// Builtin describes one allow-listed function: its name, arity bounds, and
// implementation.
type Builtin struct {
	Name string

	// MinArgs is the minimum number of arguments Call receives; a call with
	// fewer is padded with Undefined before dispatch.
	MinArgs int

	// MaxArgs is the maximum number of arguments accepted, or -1 for
	// unbounded (collect, coalesce).
	MaxArgs int

	Call BuiltinCall
}

// registry is the closed allow-list keyed by name exactly as written (e.g.
// "containsAny"). Names in CEL-lite are case-sensitive identifiers, matched
// exactly as written in spec §4.4.
var registry = map[string]Builtin{}

func register(b Builtin) {
	registry[b.Name] = b
}

func init() {
	register(Builtin{Name: "has", MinArgs: 1, MaxArgs: 1, Call: builtinHasExists})
	register(Builtin{Name: "exists", MinArgs: 1, MaxArgs: 1, Call: builtinHasExists})
	register(Builtin{Name: "size", MinArgs: 1, MaxArgs: 1, Call: builtinSize})
	register(Builtin{Name: "first", MinArgs: 1, MaxArgs: 1, Call: builtinFirst})
	register(Builtin{Name: "last", MinArgs: 1, MaxArgs: 1, Call: builtinLast})
	register(Builtin{Name: "collect", MinArgs: 1, MaxArgs: -1, Call: builtinCollect})
	register(Builtin{Name: "lower", MinArgs: 1, MaxArgs: 1, Call: builtinLower})
	register(Builtin{Name: "upper", MinArgs: 1, MaxArgs: 1, Call: builtinUpper})
	register(Builtin{Name: "trim", MinArgs: 1, MaxArgs: 1, Call: builtinTrim})
	register(Builtin{Name: "contains", MinArgs: 2, MaxArgs: 2, Call: builtinContains})
	register(Builtin{Name: "containsAny", MinArgs: 2, MaxArgs: 2, Call: builtinContainsAny})
	register(Builtin{Name: "startsWith", MinArgs: 2, MaxArgs: 2, Call: builtinStartsWith})
	register(Builtin{Name: "endsWith", MinArgs: 2, MaxArgs: 2, Call: builtinEndsWith})
	register(Builtin{Name: "matches", MinArgs: 2, MaxArgs: 2, Call: builtinMatches})
	register(Builtin{Name: "regexReplace", MinArgs: 3, MaxArgs: 3, Call: builtinRegexReplace})
	register(Builtin{Name: "coalesce", MinArgs: 1, MaxArgs: -1, Call: builtinCoalesce})
	register(Builtin{Name: "join", MinArgs: 2, MaxArgs: 2, Call: builtinJoin})
	register(Builtin{Name: "split", MinArgs: 2, MaxArgs: 2, Call: builtinSplit})
}

// lookupBuiltin returns the allow-listed function for name, if any.
func lookupBuiltin(name string) (Builtin, bool) {
	b, ok := registry[name]
	return b, ok
}

// Registry returns the closed list of allow-listed function names and their
// arity bounds. It exists so host tooling (editor/IntelliSense integrations,
// per spec §1's "external collaborators") can introspect the language surface
// without reaching into cel-lite's internals.
func Registry() []Builtin {
	out := make([]Builtin, 0, len(registry))
	for _, b := range registry {
		out = append(out, b)
	}
	return out
}
