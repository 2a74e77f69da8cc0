package cel

import "sort"

// Context is the read-only mapping the evaluator resolves bare identifiers
// against. Hosts build one from whatever they already have (claims, SAML
// attributes, request metadata); FromGo converts the common case of nested
// map[string]any/[]any/string/float64/bool/nil data.
type Context map[string]Value

// FromGo converts an arbitrary Go value coming from a host (typically the
// result of unmarshaling JSON) into the Value tagged union the evaluator
// operates on. Supported shapes: nil, Value, bool, string, the built-in Go
// numeric types, map[string]any (recursively), []any (recursively), and
// []string. Any other type, including other slice and map types, converts to
// Undefined rather than panicking, since a host's context is never trusted
// input to the sandbox.
func FromGo(v any) Value {
	switch tv := v.(type) {
	case nil:
		return Null
	case Value:
		return tv
	case bool:
		return Bool(tv)
	case string:
		return String(tv)
	case float64:
		return Number(tv)
	case float32:
		return Number(float64(tv))
	case int:
		return Number(float64(tv))
	case int8:
		return Number(float64(tv))
	case int16:
		return Number(float64(tv))
	case int32:
		return Number(float64(tv))
	case int64:
		return Number(float64(tv))
	case uint:
		return Number(float64(tv))
	case uint8:
		return Number(float64(tv))
	case uint16:
		return Number(float64(tv))
	case uint32:
		return Number(float64(tv))
	case uint64:
		return Number(float64(tv))
	case map[string]any:
		keys := make([]string, 0, len(tv))
		for k := range tv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make(map[string]Value, len(tv))
		for _, k := range keys {
			entries[k] = FromGo(tv[k])
		}
		return Map(keys, entries)
	case []any:
		elems := make([]Value, len(tv))
		for i, e := range tv {
			elems[i] = FromGo(e)
		}
		return Sequence(elems)
	case []string:
		elems := make([]Value, len(tv))
		for i, e := range tv {
			elems[i] = String(e)
		}
		return Sequence(elems)
	default:
		return Undefined
	}
}

// ContextFromGo builds a Context from a map[string]any, the common shape a
// host assembles from its own session/claims data before calling Eval.
func ContextFromGo(m map[string]any) Context {
	ctx := make(Context, len(m))
	for k, v := range m {
		ctx[k] = FromGo(v)
	}
	return ctx
}

// lookup resolves name against the context's top-level keys. Absent keys
// produce Undefined, never an error, per spec §4.3.
func (c Context) lookup(name string) Value {
	if v, ok := c[name]; ok {
		return v
	}
	return Undefined
}
