package cel

// CompileAST lexes and parses source into an AST, enforcing maxAstNodes. It
// is the sole entry point the facade package needs into the lex/parse
// pipeline; everything else in this file's neighbors stays unexported.
func CompileAST(source string, maxAstNodes int) (*Expr, error) {
	tokens, err := lex(source)
	if err != nil {
		return nil, err
	}
	return parse(tokens, maxAstNodes)
}
