package cel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_add_stringConcatAndNullQuirk(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(String("ab"), add(String("a"), String("b")))
	assert.Equal(String("anull"), add(String("a"), Null))
	assert.Equal(String("a"), add(String("a"), Undefined))
	assert.Equal(Number(3), add(Number(1), Number(2)))
	assert.True(math.IsNaN(add(Null, Number(1)).NumberValue()))
}

func Test_relational_NaNComparisonsAreFalse(t *testing.T) {
	assert := assert.New(t)

	assert.False(lessThan(String("x"), Number(1)).BoolValue())
	assert.False(greaterThan(String("x"), Number(1)).BoolValue())
	assert.False(lessOrEqual(Null, Number(0)).BoolValue())
}

func Test_inOp_dispatchesOnRightOperand(t *testing.T) {
	assert := assert.New(t)

	seq := Sequence([]Value{Number(1), Number(2)})
	assert.True(inOp(Number(2), seq).BoolValue())
	assert.False(inOp(Number(3), seq).BoolValue())

	assert.True(inOp(String("ell"), String("hello")).BoolValue())
	assert.False(inOp(Number(1), String("hello")).BoolValue())

	m := Map([]string{"a"}, map[string]Value{"a": Number(1)})
	assert.True(inOp(String("a"), m).BoolValue())
	assert.False(inOp(String("b"), m).BoolValue())

	assert.False(inOp(String("x"), Number(1)).BoolValue())
}

func Test_equal_deepStructural(t *testing.T) {
	assert := assert.New(t)

	a := Sequence([]Value{Number(1), String("x")})
	b := Sequence([]Value{Number(1), String("x")})
	assert.True(equal(a, b).BoolValue())

	c := Map([]string{"k"}, map[string]Value{"k": Bool(true)})
	d := Map([]string{"k"}, map[string]Value{"k": Bool(true)})
	assert.True(equal(c, d).BoolValue())

	assert.True(equal(Null, Null).BoolValue())
	assert.False(equal(Null, Undefined).BoolValue())
}
