package fts_exec

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/roaring64"
)

type (
	memPostings struct {
		docs      DocIDList
		positions [][]TokenPos
	}

	// MemPartition a small in-memory positional partition. it stands in for
	// codec-backed index sources in tests and tools: documents are appended
	// in ascending doc id order with their token stream, and each token
	// contributes a 1-based position to its posting list.
	MemPartition struct {
		docBits  *roaring64.Bitmap
		postings map[string]*memPostings

		lastDoc DocID
		hasDocs bool
	}
)

func NewMemPartition() *MemPartition {
	return &MemPartition{
		docBits:  roaring64.New(),
		postings: make(map[string]*memPostings),
	}
}

// AddDocument indexes the token stream of one document; tokens[i] occupies
// position i+1. doc ids must arrive in ascending order so posting lists stay
// sorted without a compile step. tokens beyond MaxPosition still count for
// document matching but carry no usable position.
func (p *MemPartition) AddDocument(id DocID, tokens []string) error {
	if id == NULLDOC {
		return fmt.Errorf("doc:%d is reserved", id)
	}
	if p.hasDocs && id <= p.lastDoc {
		return fmt.Errorf("doc:%d out of order, last added:%d", id, p.lastDoc)
	}

	for i, token := range tokens {
		pl := p.postings[token]
		if pl == nil {
			pl = &memPostings{}
			p.postings[token] = pl
		}
		if len(pl.docs) == 0 || pl.docs[len(pl.docs)-1] != id {
			pl.docs = append(pl.docs, id)
			pl.positions = append(pl.positions, nil)
		}
		if pos := TokenPos(i + 1); uint32(pos) <= MaxPosition {
			last := len(pl.positions) - 1
			pl.positions[last] = append(pl.positions[last], pos)
		}
	}

	p.docBits.Add(uint64(id))
	p.lastDoc = id
	p.hasDocs = true
	return nil
}

func (p *MemPartition) DocCount() int {
	return int(p.docBits.GetCardinality())
}

func (p *MemPartition) HasDoc(id DocID) bool {
	return p.docBits.Contains(uint64(id))
}

func (p *MemPartition) Postings(token string) (TermPostings, error) {
	pl, ok := p.postings[token]
	if !ok {
		return nil, nil
	}
	return pl, nil
}

func (p *MemPartition) DocFreq(token string) int {
	if pl, ok := p.postings[token]; ok {
		return len(pl.docs)
	}
	return 0
}

func (pl *memPostings) Len() int {
	return len(pl.docs)
}

func (pl *memPostings) DocID(i int) DocID {
	return pl.docs[i]
}

func (pl *memPostings) Positions(i int) []TokenPos {
	return pl.positions[i]
}
