package cel

import (
	"strconv"
	"strings"
)

// file lexer.go turns source text into a tokenStream, per spec §4.1. It
// follows the same table-driven longest-match approach as the teacher's
// internal/tunascript lexer: punctuation/operator lexemes are tried in order
// of decreasing length so that e.g. "<=" is recognized before "<".

// matchRule is one entry in the punctuation/operator match table.
type matchRule struct {
	literal string
	kind    tokenKind
}

// operatorRules is tried longest-literal-first so two-char operators win over
// their single-char prefixes.
var operatorRules = []matchRule{
	{"&&", tokAnd},
	{"||", tokOr},
	{"==", tokEq},
	{"!=", tokNe},
	{"<=", tokLe},
	{">=", tokGe},
	{"<", tokLt},
	{">", tokGt},
	{"!", tokNot},
	{"(", tokLParen},
	{")", tokRParen},
	{"[", tokLBracket},
	{"]", tokRBracket},
	{",", tokComma},
	{".", tokDot},
	{"+", tokPlus},
	{"?", tokQuestion},
	{":", tokColon},
}

var reservedIdents = map[string]tokenKind{
	"true":  tokTrue,
	"false": tokFalse,
	"null":  tokNull,
	"in":    tokIn,
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentCont(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

// lex tokenizes source completely and returns a tokenStream whose final
// element is always a tokEOF sentinel.
func lex(source string) (tokenStream, error) {
	var tokens []token
	i := 0
	n := len(source)

	for i < n {
		ch := source[i]

		switch {
		case isSpace(ch):
			i++

		case ch == '\'' || ch == '"':
			tok, consumed, err := lexString(source, i)
			if err != nil {
				return tokenStream{}, err
			}
			tokens = append(tokens, tok)
			i += consumed

		case isDigit(ch) || (ch == '-' && i+1 < n && isDigit(source[i+1])):
			tok, consumed, err := lexNumber(source, i)
			if err != nil {
				return tokenStream{}, err
			}
			tokens = append(tokens, tok)
			i += consumed

		case isIdentStart(ch):
			start := i
			for i < n && isIdentCont(source[i]) {
				i++
			}
			text := source[start:i]
			if kind, ok := reservedIdents[text]; ok {
				lit := Undefined
				switch kind {
				case tokTrue:
					lit = Bool(true)
				case tokFalse:
					lit = Bool(false)
				case tokNull:
					lit = Null
				}
				tokens = append(tokens, token{kind: kind, text: text, pos: start, literal: lit})
			} else {
				tokens = append(tokens, token{kind: tokIdent, text: text, pos: start})
			}

		default:
			matched := false
			for _, rule := range operatorRules {
				if strings.HasPrefix(source[i:], rule.literal) {
					tokens = append(tokens, token{kind: rule.kind, text: rule.literal, pos: i})
					i += len(rule.literal)
					matched = true
					break
				}
			}
			if !matched {
				return tokenStream{}, &CompileError{Message: "unexpected character " + quoteRune(ch), Offset: i, hasOffset: true}
			}
		}
	}

	tokens = append(tokens, token{kind: tokEOF, pos: n})
	return tokenStream{tokens: tokens}, nil
}

func quoteRune(ch byte) string {
	return strconv.QuoteRune(rune(ch))
}

// lexString consumes a quoted string literal starting at the opening quote
// and returns the produced token plus the number of bytes consumed.
func lexString(source string, start int) (token, int, error) {
	quote := source[start]
	n := len(source)
	var sb strings.Builder

	i := start + 1
	for i < n {
		ch := source[i]
		if ch == quote {
			text := source[start : i+1]
			return token{kind: tokString, text: text, pos: start, literal: String(sb.String())}, i + 1 - start, nil
		}
		if ch == '\\' {
			if i+1 >= n {
				return token{}, 0, &CompileError{Message: "unterminated string", Offset: start, hasOffset: true}
			}
			esc := source[i+1]
			var decoded byte
			switch esc {
			case 'n':
				decoded = '\n'
			case 'r':
				decoded = '\r'
			case 't':
				decoded = '\t'
			case '\\':
				decoded = '\\'
			case '\'':
				decoded = '\''
			case '"':
				decoded = '"'
			default:
				return token{}, 0, &CompileError{Message: "invalid escape sequence \\" + string(esc), Offset: i, hasOffset: true}
			}
			sb.WriteByte(decoded)
			i += 2
			continue
		}
		sb.WriteByte(ch)
		i++
	}

	return token{}, 0, &CompileError{Message: "unterminated string", Offset: start, hasOffset: true}
}

// lexNumber consumes a number literal (with its optional "-" prefix, which is
// lexical only — see spec §9, "-" is never a general unary operator).
func lexNumber(source string, start int) (token, int, error) {
	n := len(source)
	i := start
	if source[i] == '-' {
		i++
	}
	digitsStart := i
	for i < n && isDigit(source[i]) {
		i++
	}
	if i == digitsStart {
		return token{}, 0, &CompileError{Message: "invalid number literal", Offset: start, hasOffset: true}
	}
	if i < n && source[i] == '.' && i+1 < n && isDigit(source[i+1]) {
		i++
		for i < n && isDigit(source[i]) {
			i++
		}
	}

	text := source[start:i]
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, 0, &CompileError{Message: "invalid number literal " + strconv.Quote(text), Offset: start, hasOffset: true}
	}
	return token{kind: tokNumber, text: text, pos: start, literal: Number(f)}, i - start, nil
}
