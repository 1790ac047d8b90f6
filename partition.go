package fts_exec

import (
	"github.com/RoaringBitmap/roaring/roaring64"
)

type (
	// TermPostings read-only posting list of one term: doc ids in ascending
	// order, each doc carrying the term's 1-based token positions. how the
	// list is stored/decoded is the partition's business.
	TermPostings interface {
		Len() int
		DocID(i int) DocID
		Positions(i int) []TokenPos
	}

	// IndexPartition the read-only matching surface of one index shard.
	// partitions share no mutable state with each other and are never
	// written during a dispatch call, which is what makes per-partition
	// parallelism safe without coordination.
	IndexPartition interface {
		// Postings returns the posting list for token, nil when the token
		// occurs in no document of this partition.
		Postings(token string) (TermPostings, error)

		// DocFreq number of documents of this partition containing token
		DocFreq(token string) int
	}

	// MaskedDocsRegistry per-partition set of documents to omit from
	// results, e.g. deleted documents or documents superseded by a newer
	// partition. read-only during a dispatch call.
	MaskedDocsRegistry struct {
		docBits *roaring64.Bitmap
	}

	// DocsFilter optional filter applied uniformly across every partition of
	// a dispatch call; shared, read-only. Filter returning true excludes the
	// document from results.
	DocsFilter interface {
		Filter(id DocID) bool
	}

	// BitmapDocsFilter DocsFilter dropping every doc id present in a bitmap
	BitmapDocsFilter struct {
		docBits *roaring64.Bitmap
	}

	// PartitionCollection an ordered sequence of partitions, fixed for the
	// duration of a dispatch call, each with its masked-docs registry.
	PartitionCollection struct {
		partitions []IndexPartition
		registries []*MaskedDocsRegistry
	}
)

func NewMaskedDocsRegistry(ids ...DocID) *MaskedDocsRegistry {
	reg := &MaskedDocsRegistry{docBits: roaring64.New()}
	reg.Mask(ids...)
	return reg
}

func (reg *MaskedDocsRegistry) Mask(ids ...DocID) {
	for _, id := range ids {
		reg.docBits.Add(uint64(id))
	}
}

// IsMasked nil registry masks nothing
func (reg *MaskedDocsRegistry) IsMasked(id DocID) bool {
	return reg != nil && reg.docBits.Contains(uint64(id))
}

func (reg *MaskedDocsRegistry) MaskedCount() int {
	if reg == nil {
		return 0
	}
	return int(reg.docBits.GetCardinality())
}

func NewBitmapDocsFilter(ids ...DocID) *BitmapDocsFilter {
	f := &BitmapDocsFilter{docBits: roaring64.New()}
	f.Exclude(ids...)
	return f
}

func (f *BitmapDocsFilter) Exclude(ids ...DocID) {
	for _, id := range ids {
		f.docBits.Add(uint64(id))
	}
}

func (f *BitmapDocsFilter) Filter(id DocID) bool {
	return f.docBits.Contains(uint64(id))
}

func NewPartitionCollection() *PartitionCollection {
	return &PartitionCollection{}
}

// AddPartition appends a partition; masked may be nil when the partition has
// no masked documents.
func (c *PartitionCollection) AddPartition(p IndexPartition, masked *MaskedDocsRegistry) {
	c.partitions = append(c.partitions, p)
	c.registries = append(c.registries, masked)
}

func (c *PartitionCollection) Size() int {
	return len(c.partitions)
}

func (c *PartitionCollection) Partition(i int) IndexPartition {
	return c.partitions[i]
}

// MaskedRegistryFor registry of partition i, may be nil
func (c *PartitionCollection) MaskedRegistryFor(i int) *MaskedDocsRegistry {
	return c.registries[i]
}
