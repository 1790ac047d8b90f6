package fts_exec

type (
	// DocID document identifier inside one partition
	DocID uint64

	DocIDList []DocID

	// ExecTermID identifies a distinct term within one query execution.
	// it is NOT a vocabulary id; ids are assigned from 1 when the executor
	// compiles the query against a partition, so the same token may carry
	// a different ExecTermID in another execution.
	ExecTermID uint16

	// TokenPos 1-based offset of a token within a document, 0 is reserved
	// as sentinel and never occupied.
	TokenPos uint32
)

const (
	// NULLDOC returned by cursors drained past their last posting
	NULLDOC DocID = 0xFFFFFFFFFFFFFFFF
)

// DocIDList sort API
func (s DocIDList) Len() int           { return len(s) }
func (s DocIDList) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s DocIDList) Less(i, j int) bool { return s[i] < s[j] }
