package fts_exec

import (
	"sync"

	"github.com/RoaringBitmap/roaring/roaring64"
)

type (
	// MatchedTerm one query term present in the matched document
	MatchedTerm struct {
		Term      ExecTermID
		Token     string
		Positions []TokenPos // ascending, 1-based, as supplied by the partition
	}

	// DocMatch a candidate document handed to the accumulator. Words is the
	// execution-owned DocWordsSpace, already populated with every matched
	// term position of ID, so the accumulator can run Test/TestPhrase for
	// adjacency or proximity scoring.
	//
	// the executor reuses the DocMatch across documents; it is only valid
	// for the duration of the ConsiderMatch call.
	DocMatch struct {
		ID    DocID
		Words *DocWordsSpace
		Terms []MatchedTerm
	}

	// DocsAccumulator per-partition matching-result sink. a fresh instance
	// is built per partition by the dispatch factory and is exclusively
	// owned by that partition's execution until it is handed back to the
	// caller. returning a non-nil error aborts the partition's execution
	// and propagates through the dispatcher.
	DocsAccumulator interface {
		ConsiderMatch(m *DocMatch) error
	}

	// DocIDAccumulator default accumulator collecting matched ids, removing duplicated doc
	DocIDAccumulator struct {
		docBits *roaring64.Bitmap
	}
)

// TermID exec term id assigned to token in this execution
func (m *DocMatch) TermID(token string) (ExecTermID, bool) {
	for i := range m.Terms {
		if m.Terms[i].Token == token {
			return m.Terms[i].Term, true
		}
	}
	return 0, false
}

func NewDocIDAccumulator() *DocIDAccumulator {
	return &DocIDAccumulator{
		docBits: roaring64.New(),
	}
}

// accumulatorPool recycle default accumulators between dispatch calls
var accumulatorPool = sync.Pool{
	New: func() interface{} {
		return NewDocIDAccumulator()
	},
}

func PickDocIDAccumulator() *DocIDAccumulator {
	return accumulatorPool.Get().(*DocIDAccumulator)
}

func PutDocIDAccumulator(acc *DocIDAccumulator) {
	if acc == nil {
		return
	}
	acc.Reset()
	accumulatorPool.Put(acc)
}

func (c *DocIDAccumulator) ConsiderMatch(m *DocMatch) error {
	c.docBits.Add(uint64(m.ID))
	return nil
}

func (c *DocIDAccumulator) DocCount() int {
	return int(c.docBits.GetCardinality())
}

func (c *DocIDAccumulator) Reset() {
	c.docBits.Clear()
}

func (c *DocIDAccumulator) GetDocIDs() (ids DocIDList) {
	if c.DocCount() == 0 {
		return nil
	}
	ids = make(DocIDList, 0, c.DocCount())
	iter := c.docBits.Iterator()
	for iter.HasNext() {
		ids = append(ids, DocID(iter.Next()))
	}
	return ids
}

func (c *DocIDAccumulator) GetDocIDsInto(ids *DocIDList) {
	if c.DocCount() == 0 {
		return
	}
	iter := c.docBits.Iterator()
	for iter.HasNext() {
		*ids = append(*ids, DocID(iter.Next()))
	}
}
