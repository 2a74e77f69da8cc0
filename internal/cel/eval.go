package cel

// file eval.go is the tree-walking evaluator of spec §4.3, structured the
// same way as the teacher's internal/tunascript interpreter: one struct
// carrying the mutable evaluation state (here: call depth and the optional
// tracer), with a method per AST shape. Evaluation is always single-threaded
// and never suspends, so depth is plain struct state rather than anything
// context.Context-based.

type evaluator struct {
	ctx          Context
	maxCallDepth int
	depth        int
	tr           *tracer
}

// Run evaluates ast against ctx with no tracing.
func Run(ast *Expr, ctx Context, maxCallDepth int) (Value, error) {
	ev := &evaluator{ctx: ctx, maxCallDepth: maxCallDepth}
	return ev.eval(ast)
}

// Trace evaluates ast against ctx, recording a bounded post-order trace.
func Trace(ast *Expr, ctx Context, maxCallDepth, maxTraceEntries int) (Value, []Entry, error) {
	tr := newTracer(maxTraceEntries)
	ev := &evaluator{ctx: ctx, maxCallDepth: maxCallDepth, tr: tr}
	val, err := ev.eval(ast)
	return val, tr.entries, err
}

// eval evaluates e and, on success, records its post-order trace entry. It
// is the single entry point every recursive call in this file goes through,
// so every evaluated node gets exactly one entry. Nodes that are never
// evaluated get none: the branch skipped by &&, || or ?:, and a call's callee
// expression, which is resolved by name only.
func (ev *evaluator) eval(e *Expr) (Value, error) {
	val, err := ev.evalNode(e)
	if err != nil {
		return Undefined, err
	}
	ev.tr.record(e, val)
	return val, nil
}

func (ev *evaluator) evalNode(e *Expr) (Value, error) {
	switch e.kind {
	case nodeLiteral:
		return e.lit, nil

	case nodeIdentifier:
		return ev.ctx.lookup(e.name), nil

	case nodeMember:
		obj, err := ev.eval(e.obj)
		if err != nil {
			return Undefined, err
		}
		return memberAccess(obj, e.prop), nil

	case nodeIndex:
		obj, err := ev.eval(e.obj)
		if err != nil {
			return Undefined, err
		}
		idx, err := ev.eval(e.idx)
		if err != nil {
			return Undefined, err
		}
		return indexAccess(obj, idx), nil

	case nodeArray:
		elems := make([]Value, len(e.elems))
		for i, el := range e.elems {
			v, err := ev.eval(el)
			if err != nil {
				return Undefined, err
			}
			elems[i] = v
		}
		return Sequence(elems), nil

	case nodeUnary:
		operand, err := ev.eval(e.operand)
		if err != nil {
			return Undefined, err
		}
		return not(operand), nil

	case nodeBinary:
		return ev.evalBinary(e)

	case nodeTernary:
		cond, err := ev.eval(e.cond)
		if err != nil {
			return Undefined, err
		}
		if cond.Truthy() {
			return ev.eval(e.then)
		}
		return ev.eval(e.els)

	case nodeCall:
		return ev.evalCall(e)

	default:
		return Undefined, nil
	}
}

// evalBinary implements the short-circuit exceptions of spec §4.3: && and ||
// must not evaluate their suppressed branch, which also means that branch
// never gets a trace entry.
func (ev *evaluator) evalBinary(e *Expr) (Value, error) {
	switch e.op {
	case opAnd:
		left, err := ev.eval(e.left)
		if err != nil {
			return Undefined, err
		}
		if !left.Truthy() {
			return Bool(false), nil
		}
		right, err := ev.eval(e.right)
		if err != nil {
			return Undefined, err
		}
		return Bool(right.Truthy()), nil

	case opOr:
		left, err := ev.eval(e.left)
		if err != nil {
			return Undefined, err
		}
		if left.Truthy() {
			return Bool(true), nil
		}
		right, err := ev.eval(e.right)
		if err != nil {
			return Undefined, err
		}
		return Bool(right.Truthy()), nil

	default:
		left, err := ev.eval(e.left)
		if err != nil {
			return Undefined, err
		}
		right, err := ev.eval(e.right)
		if err != nil {
			return Undefined, err
		}
		switch e.op {
		case opEq:
			return equal(left, right), nil
		case opNe:
			return notEqual(left, right), nil
		case opLt:
			return lessThan(left, right), nil
		case opLe:
			return lessOrEqual(left, right), nil
		case opGt:
			return greaterThan(left, right), nil
		case opGe:
			return greaterOrEqual(left, right), nil
		case opAdd:
			return add(left, right), nil
		case opIn:
			return inOp(left, right), nil
		default:
			return Undefined, nil
		}
	}
}

// memberAccess implements obj.prop per spec §4.3: null/undefined propagate
// to undefined, poison keys always resolve to undefined regardless of what
// the object actually contains, and only maps have properties.
func memberAccess(obj Value, prop string) Value {
	if obj.IsNull() || obj.IsUndefined() {
		return Undefined
	}
	if IsPoisonKey(prop) {
		return Undefined
	}
	if obj.Kind() != KindMap {
		return Undefined
	}
	v, ok := obj.MapGet(prop)
	if !ok {
		return Undefined
	}
	return v
}

// indexAccess implements obj[k] per spec §4.3: a numeric key indexes a
// sequence (out of range or non-integral ⇒ undefined), a string key applies
// the poison-key filter and looks up a map entry, anything else ⇒ undefined.
func indexAccess(obj, idx Value) Value {
	if obj.IsNull() || obj.IsUndefined() {
		return Undefined
	}
	switch idx.Kind() {
	case KindNumber:
		if obj.Kind() != KindSequence {
			return Undefined
		}
		n := idx.NumberValue()
		i := int(n)
		if float64(i) != n {
			return Undefined
		}
		elems := obj.SeqValue()
		if i < 0 || i >= len(elems) {
			return Undefined
		}
		return elems[i]

	case KindString:
		if IsPoisonKey(idx.StringValue()) {
			return Undefined
		}
		if obj.Kind() != KindMap {
			return Undefined
		}
		v, ok := obj.MapGet(idx.StringValue())
		if !ok {
			return Undefined
		}
		return v

	default:
		return Undefined
	}
}

// evalCall implements f(args...) per spec §4.3/§4.4. The callee must be an
// identifier or a member access; a member-access callee dispatches by name
// only and never evaluates its receiver, since the language has no method
// dispatch (spec §9).
func (ev *evaluator) evalCall(e *Expr) (Value, error) {
	var name string
	switch e.callee.kind {
	case nodeIdentifier:
		name = e.callee.name
	case nodeMember:
		name = e.callee.prop
	default:
		return Undefined, newEvalErrorAt(e.callee.pos, "Invalid function call target")
	}

	ev.depth++
	defer func() { ev.depth-- }()
	if ev.depth > ev.maxCallDepth {
		return Undefined, newEvalErrorAt(e.pos, "Max call depth exceeded")
	}

	args := make([]Value, len(e.args))
	for i, a := range e.args {
		v, err := ev.eval(a)
		if err != nil {
			return Undefined, err
		}
		args[i] = v
	}

	fn, ok := lookupBuiltin(name)
	if !ok {
		return Undefined, newEvalErrorAt(e.pos, "Function not allowed: %s", name)
	}
	// Arity is not in the closed set of evaluation errors (spec §7): a
	// too-short call is padded with Undefined, a too-long one truncated,
	// so a miscounted call degrades to undefined/false rather than raising.
	if len(args) < fn.MinArgs {
		padded := make([]Value, fn.MinArgs)
		copy(padded, args)
		for i := len(args); i < fn.MinArgs; i++ {
			padded[i] = Undefined
		}
		args = padded
	} else if fn.MaxArgs >= 0 && len(args) > fn.MaxArgs {
		args = args[:fn.MaxArgs]
	}
	val, err := fn.Call(args)
	if evalErr, ok := err.(*EvalError); ok {
		// Builtins do not know where they were called from; report the call.
		evalErr.Offset, evalErr.hasOffset = e.pos, true
	}
	return val, err
}
