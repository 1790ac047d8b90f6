package fts_exec

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/echoface/fts_exec/util"
)

type (
	// execContext per-partition evaluation state. it exclusively owns its
	// DocWordsSpace and accumulator; nothing here is shared with other
	// concurrently executing partitions.
	execContext struct {
		words   *DocWordsSpace
		cursors TermCursors
		masked  *MaskedDocsRegistry
		filter  DocsFilter
		acc     DocsAccumulator
		match   DocMatch
	}
)

func initTermCursors(q *Query, partition IndexPartition) (TermCursors, error) {
	cursors := make(TermCursors, 0, len(q.tokens))
	for i, token := range q.tokens {
		postings, err := partition.Postings(token)
		if err != nil {
			return nil, fmt.Errorf("fetch postings, token:%q err:%w", token, err)
		}
		if postings == nil || postings.Len() == 0 {
			Logger.Debugf("token:%s matches nothing in this partition", token)
			continue
		}
		cursors = append(cursors, NewTermCursor(ExecTermID(i+1), token, postings))
	}
	return cursors, nil
}

// ExecuteQuery evaluates q against one partition, skipping documents present
// in masked or excluded by filter (both read-only, filter may be nil), and
// hands every candidate document to acc. the executor owns a DocWordsSpace
// for the whole partition scan and repopulates it per document, so the
// accumulator can test term adjacency without any per-document allocation.
func ExecuteQuery(q *Query, partition IndexPartition, masked *MaskedDocsRegistry, acc DocsAccumulator, filter DocsFilter) error {
	util.PanicIf(q == nil || partition == nil || acc == nil,
		"query/partition/accumulator must not be nil")
	util.PanicIf(q.TokenCount() > math.MaxUint16, "too many query tokens:%d", q.TokenCount())

	cursors, err := initTermCursors(q, partition)
	if err != nil {
		return err
	}
	if len(cursors) == 0 {
		return nil
	}
	if q.op == QueryOpAnd && len(cursors) != len(q.tokens) {
		// some required token occurs nowhere in this partition
		return nil
	}

	ctx := &execContext{
		words:   NewDocWordsSpace(MaxPosition),
		cursors: cursors,
		masked:  masked,
		filter:  filter,
		acc:     acc,
	}
	ctx.match.Words = ctx.words

	if q.op == QueryOpAnd {
		return ctx.retrieveConjunction()
	}
	return ctx.retrieveDisjunction()
}

// retrieveConjunction doc-at-a-time intersection; the cursor with the
// shortest posting list drives the scan and the others leapfrog to it
func (ctx *execContext) retrieveConjunction() error {
	sort.Sort(ctx.cursors)
	lead := ctx.cursors[0]

	target := lead.GetCurDocID()
	for target != NULLDOC {
		aligned := true
		for _, tc := range ctx.cursors[1:] {
			if id := tc.SkipTo(target); id != target {
				if id == NULLDOC {
					return nil
				}
				target = lead.SkipTo(id)
				aligned = false
				break
			}
		}
		if !aligned {
			continue
		}
		if err := ctx.considerDoc(target); err != nil {
			return err
		}
		target = lead.Skip(target)
	}
	return nil
}

// retrieveDisjunction visit the minimum current doc id across cursors, then
// advance every cursor standing on it
func (ctx *execContext) retrieveDisjunction() error {
	for {
		minID := NULLDOC
		for _, tc := range ctx.cursors {
			if id := tc.GetCurDocID(); id < minID {
				minID = id
			}
		}
		if minID == NULLDOC {
			return nil
		}
		if err := ctx.considerDoc(minID); err != nil {
			return err
		}
		for _, tc := range ctx.cursors {
			if tc.GetCurDocID() == minID {
				tc.Skip(minID)
			}
		}
	}
}

// considerDoc apply the masked-docs registry and the global filter, then
// materialize the document's term positions into the words space and hand
// the match to the accumulator. the DocMatch is reused across documents.
func (ctx *execContext) considerDoc(id DocID) error {
	if ctx.masked.IsMasked(id) {
		return nil
	}
	if ctx.filter != nil && ctx.filter.Filter(id) {
		return nil
	}

	ctx.words.Reset()
	ctx.match.ID = id
	ctx.match.Terms = ctx.match.Terms[:0]
	for _, tc := range ctx.cursors {
		if tc.GetCurDocID() != id {
			continue
		}
		positions := tc.CurPositions()
		for _, pos := range positions {
			if pos == 0 || uint32(pos) > ctx.words.maxPos {
				// partition-supplied positions are not trusted on the Set fast path
				continue
			}
			ctx.words.Set(tc.term, pos)
		}
		ctx.match.Terms = append(ctx.match.Terms, MatchedTerm{
			Term:      tc.term,
			Token:     tc.token,
			Positions: positions,
		})
	}
	return ctx.acc.ConsiderMatch(&ctx.match)
}

// ExecQuery executes q on every partition of the collection in sequence and
// returns one accumulator per partition, in partition order. newAcc is
// invoked once per partition with whatever arguments its closure captured,
// so every accumulator is built the same way.
//
// merging/reducing/blending the per-partition accumulators is left to the
// caller. the first failing partition aborts the dispatch; no partial
// results are returned.
func ExecQuery[T DocsAccumulator](q *Query, collection *PartitionCollection, filter DocsFilter, newAcc func() T) ([]T, error) {
	n := collection.Size()
	Logger.Debugf("exec query:%s over %d partitions", q.String(), n)

	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		acc := newAcc()
		err := ExecuteQuery(q, collection.Partition(i), collection.MaskedRegistryFor(i), acc, filter)
		if err != nil {
			return nil, fmt.Errorf("partition %d: %w", i, err)
		}
		out = append(out, acc)
	}
	return out, nil
}

// ExecQueryPar parallel variant of ExecQuery with the same result contract:
// out[i] is partition i's accumulator no matter which task finishes first.
// partitions are isolated shards sharing no mutable state, and the query,
// collection and filter are read-only during the call, so one task per
// partition needs no locking; each task owns its accumulator and words
// space. a single-partition collection runs inline to skip the task-launch
// overhead.
//
// every launched task is joined before any failure is surfaced, and the
// error of the lowest failing partition index is reported so a multi-failure
// dispatch stays deterministic.
func ExecQueryPar[T DocsAccumulator](q *Query, collection *PartitionCollection, filter DocsFilter, newAcc func() T) ([]T, error) {
	n := collection.Size()
	if n <= 1 {
		return ExecQuery(q, collection, filter, newAcc)
	}
	Logger.Debugf("exec query:%s over %d partitions in parallel", q.String(), n)

	out := make([]T, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			acc := newAcc()
			errs[idx] = ExecuteQuery(q, collection.Partition(idx), collection.MaskedRegistryFor(idx), acc, filter)
			out[idx] = acc
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("partition %d: %w", i, err)
		}
	}
	return out, nil
}
