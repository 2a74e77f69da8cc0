// Package cellite implements a compact, sandboxed expression language for
// identity-provider attribute mapping, group-assignment rules, and policy
// preconditions. Host applications compile administrator-authored
// expressions once and evaluate them repeatedly against a read-only context,
// getting back a deterministic value and, optionally, a step-by-step trace
// of how it was reached.
package cellite
