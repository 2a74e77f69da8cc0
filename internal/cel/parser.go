package cel

// file parser.go is a recursive-descent parser implementing the grammar in
// spec §6 directly, one function per precedence level from weakest (ternary)
// to strongest (primary), the same shape as the teacher's parser.go but
// without its Pratt-style nud/led dispatch: CEL-lite's grammar is small and
// fixed enough that a literal precedence ladder reads more directly against
// the spec and makes the maxAstNodes abort trivial to place (every node
// constructor in this file routes through p.newNode).

type parser struct {
	stream   tokenStream
	maxNodes int
	nextID   int
	nodeCnt  int
}

// parse builds the single-root AST for source's token stream, aborting with
// a CompileError if more than maxNodes nodes would be produced.
func parse(tokens tokenStream, maxNodes int) (*Expr, error) {
	p := &parser{stream: tokens, maxNodes: maxNodes}
	expr, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if p.stream.peek().kind != tokEOF {
		t := p.stream.peek()
		return nil, newCompileErrorAt(t.pos, "unexpected %s after expression", t.kind)
	}
	return expr, nil
}

// newNode allocates a node, assigning it the next stable id and enforcing
// the AST node cap (spec §3 invariant: total node count <= maxAstNodes).
func (p *parser) newNode(pos int, kind nodeKind) (*Expr, error) {
	p.nodeCnt++
	if p.nodeCnt > p.maxNodes {
		return nil, newCompileErrorAt(pos, "expression is too complex: exceeds %d AST nodes", p.maxNodes)
	}
	e := &Expr{id: p.nextID, kind: kind, pos: pos}
	p.nextID++
	return e, nil
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.stream.peek()
	if t.kind != kind {
		return token{}, newCompileErrorAt(t.pos, "expected %s, found %s", kind, t.kind)
	}
	return p.stream.next(), nil
}

// parseTernary = or ("?" ternary ":" ternary)?, right-associative.
func (p *parser) parseTernary() (*Expr, error) {
	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.stream.peek().kind != tokQuestion {
		return cond, nil
	}
	qTok := p.stream.next()

	thenExpr, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokColon); err != nil {
		return nil, err
	}
	elseExpr, err := p.parseTernary()
	if err != nil {
		return nil, err
	}

	node, err := p.newNode(qTok.pos, nodeTernary)
	if err != nil {
		return nil, err
	}
	node.cond, node.then, node.els = cond, thenExpr, elseExpr
	return node, nil
}

// parseOr = and ("||" and)*, left-associative.
func (p *parser) parseOr() (*Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.stream.peek().kind == tokOr {
		tok := p.stream.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left, err = p.newBinary(tok.pos, opOr, left, right)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// parseAnd = equality ("&&" equality)*, left-associative.
func (p *parser) parseAnd() (*Expr, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.stream.peek().kind == tokAnd {
		tok := p.stream.next()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left, err = p.newBinary(tok.pos, opAnd, left, right)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// parseEquality = rel (("==" | "!=" | "in") rel)*, left-associative, all same
// precedence per spec §4.2 step 4.
func (p *parser) parseEquality() (*Expr, error) {
	left, err := p.parseRel()
	if err != nil {
		return nil, err
	}
	for {
		var op binOp
		switch p.stream.peek().kind {
		case tokEq:
			op = opEq
		case tokNe:
			op = opNe
		case tokIn:
			op = opIn
		default:
			return left, nil
		}
		tok := p.stream.next()
		right, err := p.parseRel()
		if err != nil {
			return nil, err
		}
		left, err = p.newBinary(tok.pos, op, left, right)
		if err != nil {
			return nil, err
		}
	}
}

// parseRel = add (("<"|"<="|">"|">=") add)*, left-associative, all same
// precedence.
func (p *parser) parseRel() (*Expr, error) {
	left, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	for {
		var op binOp
		switch p.stream.peek().kind {
		case tokLt:
			op = opLt
		case tokLe:
			op = opLe
		case tokGt:
			op = opGt
		case tokGe:
			op = opGe
		default:
			return left, nil
		}
		tok := p.stream.next()
		right, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		left, err = p.newBinary(tok.pos, op, left, right)
		if err != nil {
			return nil, err
		}
	}
}

// parseAdd = unary ("+" unary)*, left-associative. "+" is the only additive
// operator; there is no "-" binary operator.
func (p *parser) parseAdd() (*Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.stream.peek().kind == tokPlus {
		tok := p.stream.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left, err = p.newBinary(tok.pos, opAdd, left, right)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *parser) newBinary(pos int, op binOp, left, right *Expr) (*Expr, error) {
	node, err := p.newNode(pos, nodeBinary)
	if err != nil {
		return nil, err
	}
	node.op, node.left, node.right = op, left, right
	return node, nil
}

// parseUnary = "!" unary | postfix, right-associative (may stack).
func (p *parser) parseUnary() (*Expr, error) {
	if p.stream.peek().kind == tokNot {
		tok := p.stream.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		node, err := p.newNode(tok.pos, nodeUnary)
		if err != nil {
			return nil, err
		}
		node.operand = operand
		return node, nil
	}
	return p.parsePostfix()
}

// parsePostfix = primary ( "." IDENT | "[" ternary "]" | "(" args? ")" )*
func (p *parser) parsePostfix() (*Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.stream.peek().kind {
		case tokDot:
			dotTok := p.stream.next()
			nameTok, err := p.expect(tokIdent)
			if err != nil {
				return nil, err
			}
			node, err := p.newNode(dotTok.pos, nodeMember)
			if err != nil {
				return nil, err
			}
			node.obj, node.prop = expr, nameTok.text
			expr = node

		case tokLBracket:
			brTok := p.stream.next()
			idxExpr, err := p.parseTernary()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokRBracket); err != nil {
				return nil, err
			}
			node, err := p.newNode(brTok.pos, nodeIndex)
			if err != nil {
				return nil, err
			}
			node.obj, node.idx = expr, idxExpr
			expr = node

		case tokLParen:
			parenTok := p.stream.next()
			var args []*Expr
			if p.stream.peek().kind != tokRParen {
				args, err = p.parseArgs()
				if err != nil {
					return nil, err
				}
			}
			if _, err := p.expect(tokRParen); err != nil {
				return nil, err
			}
			node, err := p.newNode(parenTok.pos, nodeCall)
			if err != nil {
				return nil, err
			}
			node.callee, node.args = expr, args
			expr = node

		default:
			return expr, nil
		}
	}
}

func (p *parser) parseArgs() ([]*Expr, error) {
	var args []*Expr
	for {
		arg, err := p.parseTernary()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.stream.peek().kind != tokComma {
			break
		}
		p.stream.next()
	}
	return args, nil
}

// parsePrimary = NUMBER | STRING | "true" | "false" | "null"
//              | IDENT | "(" ternary ")" | "[" args? "]"
func (p *parser) parsePrimary() (*Expr, error) {
	t := p.stream.peek()

	switch t.kind {
	case tokNumber, tokString, tokTrue, tokFalse, tokNull:
		p.stream.next()
		node, err := p.newNode(t.pos, nodeLiteral)
		if err != nil {
			return nil, err
		}
		node.lit = t.literal
		return node, nil

	case tokIdent:
		p.stream.next()
		node, err := p.newNode(t.pos, nodeIdentifier)
		if err != nil {
			return nil, err
		}
		node.name = t.text
		return node, nil

	case tokLParen:
		p.stream.next()
		inner, err := p.parseTernary()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return inner, nil

	case tokLBracket:
		brTok := p.stream.next()
		var elems []*Expr
		if p.stream.peek().kind != tokRBracket {
			var err error
			elems, err = p.parseArgs()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(tokRBracket); err != nil {
			return nil, err
		}
		node, err := p.newNode(brTok.pos, nodeArray)
		if err != nil {
			return nil, err
		}
		node.elems = elems
		return node, nil

	default:
		return nil, newCompileErrorAt(t.pos, "unexpected %s (expected an expression)", t.kind)
	}
}
