package fts_exec

import (
	"math"
	"sort"

	"github.com/echoface/fts_exec/util"
)

type (
	// position just 4 bytes/slot; seq and term are kept in one struct
	// instead of two parallel arrays: a wraparound clear would only need to
	// touch the seq array, but Set/Test would pay an extra cache miss per
	// probe, so we optimise for the probe path.
	position struct {
		seq  uint16
		term ExecTermID
	}

	// DocWordsSpace records which query term occupies each token position of
	// "the current document". one instance is created per execution context
	// and reused across every document of that partition via Reset(); it must
	// never be shared across concurrently executing partitions.
	//
	// a slot is set for the current document iff its seq equals curSeq and
	// its term matches, so switching documents is an O(1) seq bump instead of
	// clearing the whole array.
	DocWordsSpace struct {
		positions []position
		maxPos    uint32
		curSeq    uint16
	}
)

// NewDocWordsSpace allocates a space for positions [1, maxPos]. the backing
// array holds maxPos+1+MaxPhraseSize slots: slot 0 is an unused sentinel and
// the trailing MaxPhraseSize slots stay zero forever, so phrase probes
// starting from a real token position can always read ahead in bounds.
// invalid maxPos is a programmer error and panics.
func NewDocWordsSpace(maxPos uint32) *DocWordsSpace {
	util.PanicIf(maxPos == 0 || maxPos > MaxPosition,
		"maxPos:%d out of range (0, %d]", maxPos, MaxPosition)
	return &DocWordsSpace{
		positions: make([]position, maxPos+1+MaxPhraseSize),
		maxPos:    maxPos,
		curSeq:    1, // IMPORTANT, start from (1); seq 0 marks a never-written slot
	}
}

// MaxPos the highest position Set accepts
func (dws *DocWordsSpace) MaxPos() uint32 {
	return dws.maxPos
}

// Reset switches the space to the next document. instead of clearing
// positions[] per document we bump curSeq and let stale slots fail the seq
// comparison; a physical clear happens only when the 16bit seq wraps, so one
// memset per 65535 documents.
func (dws *DocWordsSpace) Reset() {
	if dws.curSeq == math.MaxUint16 {
		// clear [0, maxPos] only; guard slots were never written
		head := dws.positions[:dws.maxPos+1]
		for i := range head {
			head[i] = position{}
		}
		dws.curSeq = 1 // important; back to 1 not 0
		return
	}
	dws.curSeq++
}

// Set records term at pos for the current document.
// caller contract: 1 <= pos <= maxPos
func (dws *DocWordsSpace) Set(term ExecTermID, pos TokenPos) {
	dws.positions[pos] = position{seq: dws.curSeq, term: term}
}

// Test reports whether term occupies pos in the current document. valid for
// any pos in [0, maxPos+MaxPhraseSize] thanks to the guard region.
func (dws *DocWordsSpace) Test(term ExecTermID, pos TokenPos) bool {
	return dws.positions[pos].seq == dws.curSeq && dws.positions[pos].term == term
}

// Unset drops pos from the current document for every term. this helps
// accumulators track partially built sequences, e.g. consuming positions
// already attributed to an earlier phrase occurrence.
func (dws *DocWordsSpace) Unset(pos TokenPos) {
	dws.positions[pos].seq = 0
}

// TestPhrase reports whether terms occupy consecutive positions starting at
// one of firstTokenPositions, i.e. terms[i] at start+i for every i. the scan
// stops at the first matching candidate. candidates are real token positions
// (<= maxPos) and len(terms) must not exceed MaxPhraseSize, which together
// keep every probe inside the guard region.
func (dws *DocWordsSpace) TestPhrase(terms []ExecTermID, firstTokenPositions []TokenPos) bool {
	if len(terms) == 0 {
		return false
	}
nextCandidate:
	for _, start := range firstTokenPositions {
		for i, term := range terms {
			if !dws.Test(term, start+TokenPos(i)) {
				continue nextCandidate
			}
		}
		return true
	}
	return false
}

type (
	// PhraseProbe one phrase term together with its offset from the phrase
	// start, so probes stay correct in any order.
	PhraseProbe struct {
		Term   ExecTermID
		Offset TokenPos
	}
)

// PhraseProbes builds the probe list for a phrase. when df is not nil probes
// are ordered by ascending document frequency so the rarest term is tested
// first and most candidates die on the first probe; correctness does not
// depend on the order.
func PhraseProbes(terms []ExecTermID, df func(ExecTermID) int) []PhraseProbe {
	probes := make([]PhraseProbe, len(terms))
	for i, term := range terms {
		probes[i] = PhraseProbe{Term: term, Offset: TokenPos(i)}
	}
	if df == nil {
		return probes
	}
	sort.SliceStable(probes, func(i, j int) bool {
		return df(probes[i].Term) < df(probes[j].Term)
	})
	return probes
}

// TestPhraseProbes like TestPhrase but probes in the prepared order.
func (dws *DocWordsSpace) TestPhraseProbes(probes []PhraseProbe, firstTokenPositions []TokenPos) bool {
	if len(probes) == 0 {
		return false
	}
nextCandidate:
	for _, start := range firstTokenPositions {
		for i := range probes {
			if !dws.Test(probes[i].Term, start+probes[i].Offset) {
				continue nextCandidate
			}
		}
		return true
	}
	return false
}
