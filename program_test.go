package cellite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cellite "github.com/dekarrin/cel-lite"
)

func Test_Compile_sourceRoundTrips(t *testing.T) {
	assert := assert.New(t)

	prog, err := cellite.Compile("1 + 1")
	if !assert.NoError(err) {
		return
	}
	assert.Equal("1 + 1", prog.Source())
}

func Test_Program_explainResultMatchesEval(t *testing.T) {
	assert := assert.New(t)

	prog, err := cellite.Compile(`has(saml.attributes.mail) ? lower(trim(first(saml.attributes.mail))) : 'n/a'`)
	if !assert.NoError(err) {
		return
	}

	ctx := cellite.ContextFromGo(map[string]any{
		"saml": map[string]any{
			"attributes": map[string]any{
				"mail": []any{"  USER@EXAMPLE.COM  "},
			},
		},
	})

	evalResult, err := prog.Eval(ctx)
	if !assert.NoError(err) {
		return
	}

	explainResult, trace, err := prog.Explain(ctx)
	if !assert.NoError(err) {
		return
	}
	assert.True(cellite.DeepEqual(evalResult, explainResult))
	assert.NotEmpty(trace)
}

func Test_Compile_rejectsOversizedSource(t *testing.T) {
	assert := assert.New(t)

	_, err := cellite.Compile("1 + 1", cellite.Options{MaxExpressionLength: 3})
	assert.Error(err)

	var celErr *cellite.Error
	assert.ErrorAs(err, &celErr)
}

func Test_Compile_contextUnaffectedByEval(t *testing.T) {
	assert := assert.New(t)

	prog, err := cellite.Compile(`a.b`)
	if !assert.NoError(err) {
		return
	}

	ctx := cellite.ContextFromGo(map[string]any{"a": map[string]any{"b": 1.0}})
	before := cellite.ContextFromGo(map[string]any{"a": map[string]any{"b": 1.0}})

	_, err = prog.Eval(ctx)
	assert.NoError(err)

	for k := range ctx {
		assert.True(cellite.DeepEqual(ctx[k], before[k]))
	}
}

func Test_Registry_listsAllowListedFunctions(t *testing.T) {
	assert := assert.New(t)

	names := make(map[string]bool)
	for _, b := range cellite.Registry() {
		names[b.Name] = true
	}
	for _, want := range []string{"has", "exists", "size", "coalesce", "matches", "join", "split"} {
		assert.True(names[want], "expected %q in registry", want)
	}
}

func Test_Program_String_isDeterministicPrettyPrint(t *testing.T) {
	assert := assert.New(t)

	prog, err := cellite.Compile(`a.b && c`)
	if !assert.NoError(err) {
		return
	}
	assert.Equal("(a.b && c)", prog.String())
}
