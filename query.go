package fts_exec

import (
	"fmt"
	"strings"
)

type (
	QueryOp int

	// Query an immutable token query. one Query value is shared, read-only,
	// by every partition execution of a dispatch call, so it carries no
	// mutable evaluation state; per-partition state (exec term ids, cursors)
	// lives inside the executor.
	Query struct {
		op     QueryOp
		tokens []string
	}
)

const (
	// QueryOpAnd document matches when every query token occurs in it
	QueryOpAnd QueryOp = iota
	// QueryOpOr document matches when any query token occurs in it
	QueryOpOr
)

// NewQuery builds a query from already-tokenized terms; duplicated tokens are
// dropped, first occurrence order is kept.
func NewQuery(op QueryOp, tokens ...string) *Query {
	distinct := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		distinct = append(distinct, token)
	}
	return &Query{op: op, tokens: distinct}
}

func (q *Query) Op() QueryOp {
	return q.op
}

func (q *Query) TokenCount() int {
	return len(q.tokens)
}

// Tokens returns a copy; the query itself stays immutable
func (q *Query) Tokens() []string {
	out := make([]string, len(q.tokens))
	copy(out, q.tokens)
	return out
}

func (q *Query) String() string {
	op := "AND"
	if q.op == QueryOpOr {
		op = "OR"
	}
	return fmt.Sprintf("%s(%s)", op, strings.Join(q.tokens, ","))
}
