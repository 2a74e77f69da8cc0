package cel

import "strings"

// file operators.go implements the binary/unary operator semantics of spec
// §4.3, following the teacher's pattern of one small pure function per
// operator (syntax/value.go's Value.Add/EqualTo/LessThan methods) rather than
// a single sprawling switch.

// not implements unary "!": boolean negation of truthiness.
func not(v Value) Value {
	return Bool(!v.Truthy())
}

// equal implements "==".
func equal(a, b Value) Value {
	return Bool(DeepEqual(a, b))
}

// notEqual implements "!=".
func notEqual(a, b Value) Value {
	return Bool(!DeepEqual(a, b))
}

// lessThan, lessOrEqual, greaterThan, greaterOrEqual implement the four
// relational operators via the standard numeric conversion (spec §4.3): any
// comparison against NaN is false.
func lessThan(a, b Value) Value {
	an, bn := a.ToNumber(), b.ToNumber()
	return Bool(an < bn)
}

func lessOrEqual(a, b Value) Value {
	an, bn := a.ToNumber(), b.ToNumber()
	return Bool(an <= bn)
}

func greaterThan(a, b Value) Value {
	an, bn := a.ToNumber(), b.ToNumber()
	return Bool(an > bn)
}

func greaterOrEqual(a, b Value) Value {
	an, bn := a.ToNumber(), b.ToNumber()
	return Bool(an >= bn)
}

// add implements "+": string concatenation if either side is a string, else
// numeric addition. Per spec §9's preserved quirk, null renders as the
// literal text "null" when concatenated against a string (unlike every other
// string coercion in the language, where null renders as ""); undefined
// still renders as "". When neither side is a string both go through
// ToNumber, where null becomes NaN rather than 0.
func add(a, b Value) Value {
	if a.Kind() == KindString || b.Kind() == KindString {
		return String(addOperandString(a) + addOperandString(b))
	}
	return Number(a.ToNumber() + b.ToNumber())
}

func addOperandString(v Value) string {
	if v.Kind() == KindNull {
		return "null"
	}
	return v.ToStringValue()
}

// in implements the "in" operator. Its semantics are determined entirely by
// the right operand's kind, per spec §4.3.
func inOp(left, right Value) Value {
	switch right.Kind() {
	case KindSequence:
		for _, elem := range right.SeqValue() {
			if DeepEqual(left, elem) {
				return Bool(true)
			}
		}
		return Bool(false)
	case KindString:
		if left.Kind() != KindString {
			return Bool(false)
		}
		return Bool(strings.Contains(right.StringValue(), left.StringValue()))
	case KindMap:
		if left.Kind() != KindString {
			return Bool(false)
		}
		_, ok := right.MapGet(left.StringValue())
		return Bool(ok)
	default:
		return Bool(false)
	}
}
