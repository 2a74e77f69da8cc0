package cel

import (
	"fmt"
	"math"
	"strconv"
)

// Kind is the tag of a runtime Value. It is formally seven-valued, though
// Undefined never appears inside a container produced by an expression; it is
// only ever returned from an accessor to flag a missing property.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is a dynamically tagged runtime value produced and consumed within a
// single evaluation. Only the field matching kind is meaningful; the zero
// Value is Undefined.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	seq  []Value
	m    map[string]Value
	keys []string // insertion order of m, for deterministic iteration/pretty-print
}

// Undefined is the distinguished "absent" value: it flags a missing property
// or index without being confusable with an explicit null.
var Undefined = Value{kind: KindUndefined}

// Null is the CEL-lite null literal value.
var Null = Value{kind: KindNull}

// Bool constructs a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number constructs a numeric Value. It does not check that n is finite: the
// lexer only produces finite literals, but "+" on operands that convert to
// NaN yields NaN, and an overflowing sum yields an infinity.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String constructs a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Sequence constructs an ordered-sequence Value from its elements. The slice
// is retained, not copied; callers must not mutate it afterward.
func Sequence(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindSequence, seq: elems}
}

// Map constructs a string-keyed mapping Value. keys is retained as the
// insertion order used for iteration, rendering, and size(); Map does not
// deduplicate it or check it against entries, so it should list each key of
// entries exactly once.
func Map(keys []string, entries map[string]Value) Value {
	if entries == nil {
		entries = map[string]Value{}
	}
	return Value{kind: KindMap, m: entries, keys: keys}
}

// Kind returns the tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsUndefined reports whether v is the Undefined sentinel.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// IsNull reports whether v is the Null literal.
func (v Value) IsNull() bool { return v.kind == KindNull }

// BoolValue returns the boolean payload of v. Only meaningful when Kind() == KindBool.
func (v Value) BoolValue() bool { return v.b }

// NumberValue returns the numeric payload of v. Only meaningful when Kind() == KindNumber.
func (v Value) NumberValue() float64 { return v.n }

// StringValue returns the string payload of v. Only meaningful when Kind() == KindString.
func (v Value) StringValue() string { return v.s }

// SeqValue returns the element slice of v. Only meaningful when Kind() == KindSequence.
// The returned slice must not be mutated by the caller.
func (v Value) SeqValue() []Value { return v.seq }

// MapKeys returns the insertion-ordered key list of v. Only meaningful when
// Kind() == KindMap.
func (v Value) MapKeys() []string { return v.keys }

// MapGet looks up key in v's mapping. Ok is false if v is not a map or the
// key is absent.
func (v Value) MapGet(key string) (Value, bool) {
	if v.kind != KindMap {
		return Undefined, false
	}
	val, ok := v.m[key]
	return val, ok
}

// poisonKeys are property/index names that must never resolve through the
// evaluator, regardless of what the context actually contains under them.
// This is what keeps the sandbox from exposing a host language's prototype
// chain through ordinary member access.
var poisonKeys = map[string]bool{
	"__proto__":   true,
	"constructor": true,
	"prototype":   true,
}

// IsPoisonKey reports whether name is one of the reserved poison keys.
func IsPoisonKey(name string) bool {
	return poisonKeys[name]
}

// Truthy implements the truthiness coercion from GLOSSARY: falsy is
// {null, undefined, false, 0, NaN, ""}; everything else is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindUndefined, KindNull:
		return false
	case KindBool:
		return v.b
	case KindNumber:
		return v.n != 0 && !math.IsNaN(v.n)
	case KindString:
		return v.s != ""
	case KindSequence, KindMap:
		return true
	default:
		return false
	}
}

// ToNumber applies the standard numeric conversion used by relational
// operators: booleans become 1/0, numeric strings parse, everything else
// (including null/undefined and non-numeric strings) becomes NaN.
func (v Value) ToNumber() float64 {
	switch v.kind {
	case KindNumber:
		return v.n
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindString:
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// ToStringValue renders v the way join() and split()'s separator do: null and
// undefined become the empty string, not the literal text "null". "+" uses it
// too, except that it renders null as "null" (see addOperandString).
func (v Value) ToStringValue() string {
	switch v.kind {
	case KindUndefined, KindNull:
		return ""
	case KindString:
		return v.s
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindNumber:
		return formatNumber(v.n)
	case KindSequence:
		return "[" + joinElems(v.seq, ", ") + "]"
	case KindMap:
		return "{" + joinMapEntries(v) + "}"
	default:
		return ""
	}
}

func joinElems(vals []Value, sep string) string {
	out := ""
	for i, e := range vals {
		if i > 0 {
			out += sep
		}
		out += e.ToStringValue()
	}
	return out
}

func joinMapEntries(m Value) string {
	out := ""
	for i, k := range m.keys {
		if i > 0 {
			out += ", "
		}
		val := m.m[k]
		out += k + ": " + val.ToStringValue()
	}
	return out
}

// formatNumber renders a finite float64 the way the pretty-printer and "+"
// string coercion need: integral values print without a trailing ".0".
func formatNumber(n float64) string {
	if n == math.Trunc(n) && !math.IsInf(n, 0) && math.Abs(n) < 1e15 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// DeepEqual implements the structural equality used by "==", "!=", "in"
// membership, and contains()/containsAny(). Numbers compare by value
// (1 == 1.0), strings are byte-exact, arrays compare length + element-wise,
// objects compare key-set + value-wise, null equals only null, and
// undefined equals only undefined.
func DeepEqual(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindUndefined, KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString:
		return a.s == b.s
	case KindSequence:
		if len(a.seq) != len(b.seq) {
			return false
		}
		for i := range a.seq {
			if !DeepEqual(a.seq[i], b.seq[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.m) != len(b.m) {
			return false
		}
		for k, av := range a.m {
			bv, ok := b.m[k]
			if !ok || !DeepEqual(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// GoString aids debugging/tests: a terse, unambiguous representation.
func (v Value) GoString() string {
	switch v.kind {
	case KindUndefined:
		return "Undefined"
	case KindNull:
		return "Null"
	case KindBool:
		return fmt.Sprintf("Bool(%t)", v.b)
	case KindNumber:
		return fmt.Sprintf("Number(%v)", v.n)
	case KindString:
		return fmt.Sprintf("String(%q)", v.s)
	case KindSequence:
		return fmt.Sprintf("Sequence(len=%d)", len(v.seq))
	case KindMap:
		return fmt.Sprintf("Map(len=%d)", len(v.m))
	default:
		return "Value(?)"
	}
}
