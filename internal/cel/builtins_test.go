package cel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_builtinHasExists(t *testing.T) {
	assert := assert.New(t)

	got, err := builtinHasExists([]Value{Sequence(nil)})
	assert.NoError(err)
	assert.False(got.BoolValue())

	got, _ = builtinHasExists([]Value{Sequence([]Value{Number(1)})})
	assert.True(got.BoolValue())

	got, _ = builtinHasExists([]Value{Null})
	assert.False(got.BoolValue())

	got, _ = builtinHasExists([]Value{Number(0)})
	assert.True(got.BoolValue())
}

func Test_builtinSize(t *testing.T) {
	assert := assert.New(t)

	got, _ := builtinSize([]Value{String("hello")})
	assert.Equal(float64(5), got.NumberValue())

	got, _ = builtinSize([]Value{Sequence([]Value{Number(1), Number(2)})})
	assert.Equal(float64(2), got.NumberValue())

	got, _ = builtinSize([]Value{Map([]string{"a", "b"}, map[string]Value{"a": Null, "b": Null})})
	assert.Equal(float64(2), got.NumberValue())

	got, _ = builtinSize([]Value{Number(5)})
	assert.Equal(float64(0), got.NumberValue())
}

func Test_builtinCollect(t *testing.T) {
	assert := assert.New(t)

	got, _ := builtinCollect([]Value{Sequence([]Value{Number(1), Number(2)})})
	assert.Equal(Sequence([]Value{Number(1), Number(2)}), got)

	got, _ = builtinCollect([]Value{Number(1)})
	assert.Equal(Sequence([]Value{Number(1)}), got)

	got, _ = builtinCollect([]Value{Number(1), Number(2), Number(3)})
	assert.Equal(Sequence([]Value{Number(1), Number(2), Number(3)}), got)
}

func Test_builtinStringFuncsPassThroughNonStrings(t *testing.T) {
	assert := assert.New(t)

	got, _ := builtinLower([]Value{Number(5)})
	assert.Equal(Number(5), got)

	got, _ = builtinLower([]Value{String("ABC")})
	assert.Equal(String("abc"), got)

	got, _ = builtinTrim([]Value{String("  hi  ")})
	assert.Equal(String("hi"), got)
}

func Test_builtinContainsAndContainsAny(t *testing.T) {
	assert := assert.New(t)

	got, _ := builtinContains([]Value{Sequence([]Value{Number(1), Number(2)}), Number(2)})
	assert.True(got.BoolValue())

	got, _ = builtinContains([]Value{String("hello"), String("ell")})
	assert.True(got.BoolValue())

	got, _ = builtinContains([]Value{Number(1), Number(1)})
	assert.False(got.BoolValue())

	got, _ = builtinContainsAny([]Value{
		Sequence([]Value{String("a"), String("b")}),
		Sequence([]Value{String("x"), String("b")}),
	})
	assert.True(got.BoolValue())

	got, _ = builtinContainsAny([]Value{String("abc"), Sequence([]Value{String("a")})})
	assert.False(got.BoolValue())
}

func Test_builtinMatchesAndRegexReplace(t *testing.T) {
	assert := assert.New(t)

	got, err := builtinMatches([]Value{String("hello123"), String(`^[a-z]+\d+$`)})
	assert.NoError(err)
	assert.True(got.BoolValue())

	got, err = builtinRegexReplace([]Value{String("a1b2"), String(`\d`), String("_")})
	assert.NoError(err)
	assert.Equal(String("a_b_"), got)

	_, err = builtinMatches([]Value{String("x"), String("(")})
	assert.Error(err)
}

func Test_builtinCoalesce(t *testing.T) {
	assert := assert.New(t)

	got, _ := builtinCoalesce([]Value{Null, Sequence(nil), String("fallback")})
	assert.Equal(String("fallback"), got)

	got, _ = builtinCoalesce([]Value{Undefined, Null})
	assert.True(got.IsUndefined())
}

func Test_builtinJoinAndSplit(t *testing.T) {
	assert := assert.New(t)

	got, _ := builtinJoin([]Value{Sequence([]Value{Number(1), String("b")}), String(",")})
	assert.Equal(String("1,b"), got)

	got, _ = builtinJoin([]Value{Number(5), String(",")})
	assert.Equal(String(""), got)

	got, _ = builtinJoin([]Value{String("kept"), String(",")})
	assert.Equal(String("kept"), got)

	got, _ = builtinSplit([]Value{String("a,b,c"), String(",")})
	assert.Equal(Sequence([]Value{String("a"), String("b"), String("c")}), got)

	got, _ = builtinSplit([]Value{Number(1), String(",")})
	assert.Equal(Sequence(nil), got)
}
