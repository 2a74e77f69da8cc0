package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dekarrin/cel-lite"
)

// policy is the on-disk shape of a celi policy file: the resource limits to
// compile with and the context to evaluate expressions against. Grounded on
// the teacher's TOML world-data files (internal/tqw/marshaling.go), which
// likewise unmarshal a whole document with toml.Unmarshal rather than
// streaming it field by field.
type policy struct {
	Limits struct {
		MaxExpressionLength int `toml:"max_expression_length"`
		MaxAstNodes         int `toml:"max_ast_nodes"`
		MaxCallDepth        int `toml:"max_call_depth"`
		MaxTraceEntries     int `toml:"max_trace_entries"`
	} `toml:"limits"`

	// Context is the evaluation context, in the same nested
	// string-keyed-map shape cellite.ContextFromGo expects.
	Context map[string]any `toml:"context"`
}

// loadPolicy reads and parses a TOML policy file. An empty path returns a
// policy with default limits and an empty context, rather than an error.
func loadPolicy(path string) (*policy, error) {
	if path == "" {
		return &policy{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}

	var pol policy
	if err := toml.Unmarshal(data, &pol); err != nil {
		return nil, fmt.Errorf("parse policy file %q: %w", path, err)
	}
	return &pol, nil
}

// options returns the cellite.Options this policy specifies, with any unset
// limit left at its module default.
func (p *policy) options() cellite.Options {
	return cellite.Options{
		MaxExpressionLength: p.Limits.MaxExpressionLength,
		MaxAstNodes:         p.Limits.MaxAstNodes,
		MaxCallDepth:        p.Limits.MaxCallDepth,
		MaxTraceEntries:     p.Limits.MaxTraceEntries,
	}
}

// context converts this policy's declared context into a cellite.Context.
func (p *policy) context() cellite.Context {
	return cellite.ContextFromGo(p.Context)
}
