package cel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, source string) *Expr {
	t.Helper()
	ast, err := CompileAST(source, 2000)
	if err != nil {
		t.Fatalf("CompileAST(%q): %v", source, err)
	}
	return ast
}

func Test_parse_precedenceAndPrettyPrint(t *testing.T) {
	testCases := []struct {
		name   string
		source string
		expect string
	}{
		{name: "ternary right assoc", source: "a ? b : c ? d : e", expect: "(a ? b : (c ? d : e))"},
		{name: "or binds looser than and", source: "a || b && c", expect: "(a || (b && c))"},
		{name: "equality same prec as in, left assoc", source: "a == b in c", expect: "((a == b) in c)"},
		{name: "relational tighter than equality", source: "a < b == c", expect: "((a < b) == c)"},
		{name: "add tighter than relational", source: "a + b < c", expect: "((a + b) < c)"},
		{name: "unary stacks right assoc", source: "!!a", expect: "!!a"},
		{name: "postfix chains left to right", source: "a.b[0].c", expect: "a.b[0].c"},
		{name: "call on member prints receiver and name", source: "a.b(1, 2)", expect: "a.b(1, 2)"},
		{name: "array literal", source: "[1, 2, 3]", expect: "[1, 2, 3]"},
		{name: "empty array literal", source: "[]", expect: "[]"},
		{name: "parens do not add an extra layer to pretty print", source: "(a + b)", expect: "(a + b)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ast := mustParse(t, tc.source)
			assert.Equal(t, tc.expect, PrettyPrint(ast))
		})
	}
}

func Test_parse_nodeIDsAreSequentialAndUnique(t *testing.T) {
	assert := assert.New(t)

	ast := mustParse(t, "a.b[0] + f(1, 2) ? x : y")

	seen := make(map[int]bool)
	var walk func(e *Expr)
	walk = func(e *Expr) {
		if e == nil {
			return
		}
		assert.False(seen[e.ID()], "node id %d seen twice", e.ID())
		seen[e.ID()] = true
		walk(e.obj)
		walk(e.idx)
		walk(e.callee)
		for _, a := range e.args {
			walk(a)
		}
		walk(e.operand)
		walk(e.left)
		walk(e.right)
		for _, el := range e.elems {
			walk(el)
		}
		walk(e.cond)
		walk(e.then)
		walk(e.els)
	}
	walk(ast)
	assert.NotEmpty(seen)
	for id := 0; id < len(seen); id++ {
		assert.True(seen[id], "node id %d missing; ids are not sequential", id)
	}
}

func Test_parse_maxAstNodesAborts(t *testing.T) {
	assert := assert.New(t)

	_, err := CompileAST("1 + 1 + 1 + 1 + 1", 3)
	assert.Error(err)

	_, err = CompileAST("1", 3)
	assert.NoError(err)
}

func Test_parse_errorsOnMalformed(t *testing.T) {
	testCases := []string{
		"1 +",
		"a ? b",
		"(a",
		"[1, 2",
		"1 2",
	}

	for _, source := range testCases {
		t.Run(source, func(t *testing.T) {
			_, err := CompileAST(source, 2000)
			assert.Error(t, err)
		})
	}
}
