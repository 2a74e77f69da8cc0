package cel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_lex_tokenKindSequence(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    []tokenKind
		expectErr bool
	}{
		{name: "empty", input: "", expect: []tokenKind{tokEOF}},
		{name: "number", input: "42", expect: []tokenKind{tokNumber, tokEOF}},
		{name: "negative number", input: "-3.5", expect: []tokenKind{tokNumber, tokEOF}},
		{name: "string single quote", input: "'hi'", expect: []tokenKind{tokString, tokEOF}},
		{name: "string double quote", input: `"hi"`, expect: []tokenKind{tokString, tokEOF}},
		{name: "bools and null", input: "true false null", expect: []tokenKind{tokTrue, tokFalse, tokNull, tokEOF}},
		{name: "in keyword", input: "in", expect: []tokenKind{tokIn, tokEOF}},
		{name: "identifier", input: "saml_attrs", expect: []tokenKind{tokIdent, tokEOF}},
		{name: "two char ops win over prefix", input: "<= >= == != && ||", expect: []tokenKind{
			tokLe, tokGe, tokEq, tokNe, tokAnd, tokOr, tokEOF,
		}},
		{name: "single char ops", input: "< > ! + ? :", expect: []tokenKind{
			tokLt, tokGt, tokNot, tokPlus, tokQuestion, tokColon, tokEOF,
		}},
		{name: "punctuation", input: "(a.b[0],c)", expect: []tokenKind{
			tokLParen, tokIdent, tokDot, tokIdent, tokLBracket, tokNumber, tokRBracket,
			tokComma, tokIdent, tokRParen, tokEOF,
		}},
		{name: "unterminated string is error", input: "'abc", expectErr: true},
		{name: "invalid escape is error", input: `'a\qb'`, expectErr: true},
		{name: "unexpected character is error", input: "a & b", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			ts, err := lex(tc.input)
			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}

			var got []tokenKind
			for _, tok := range ts.tokens {
				got = append(got, tok.kind)
			}
			assert.Equal(tc.expect, got)
		})
	}
}

func Test_lexString_escapes(t *testing.T) {
	assert := assert.New(t)

	ts, err := lex(`'line\nbreak\ttab\\slash\'quote'`)
	assert.NoError(err)
	assert.Len(ts.tokens, 2)
	assert.Equal("line\nbreak\ttab\\slash'quote", ts.tokens[0].literal.StringValue())
}

func Test_lexNumber_literalValue(t *testing.T) {
	assert := assert.New(t)

	ts, err := lex("-12.5")
	assert.NoError(err)
	assert.Equal(-12.5, ts.tokens[0].literal.NumberValue())
}
