package fts_exec

import (
	"fmt"
	"strings"
)

const (
	LinearSearchLengthThreshold = 8
)

type (
	/*TermCursor a cursor over one term's postings inside one partition */
	// ("brand", term:2): [1, 2, 5, 19, 22]
	// cursor:                   ^
	TermCursor struct {
		term     ExecTermID
		token    string
		cursor   int // current doc cursor
		postings TermPostings
	}
	TermCursors []*TermCursor
)

func NewTermCursor(term ExecTermID, token string, postings TermPostings) *TermCursor {
	return &TermCursor{
		term:     term,
		token:    token,
		cursor:   0,
		postings: postings,
	}
}

func (tc *TermCursor) Term() ExecTermID {
	return tc.term
}

func (tc *TermCursor) Token() string {
	return tc.token
}

func (tc *TermCursor) GetCurDocID() DocID {
	if tc.postings.Len() <= tc.cursor {
		return NULLDOC
	}
	return tc.postings.DocID(tc.cursor)
}

// CurPositions token positions of the current document; undefined once the
// cursor is drained
func (tc *TermCursor) CurPositions() []TokenPos {
	return tc.postings.Positions(tc.cursor)
}

func (tc *TermCursor) LinearSkip(id DocID) DocID {
	doc := tc.GetCurDocID()
	if doc > id {
		return doc
	}
	size := tc.postings.Len()
	for ; tc.cursor < size && tc.postings.DocID(tc.cursor) <= id; tc.cursor++ {
	}
	return tc.GetCurDocID()
}

// Skip moves the cursor to the first doc id greater than id
func (tc *TermCursor) Skip(id DocID) DocID {
	doc := tc.GetCurDocID()
	if doc > id {
		return doc
	}

	size := tc.postings.Len()
	rightIdx := size
	var mid int
	for tc.cursor < rightIdx {
		if rightIdx-tc.cursor < LinearSearchLengthThreshold {
			return tc.LinearSkip(id)
		}
		mid = (tc.cursor + rightIdx) >> 1
		if tc.postings.DocID(mid) <= id {
			tc.cursor = mid + 1
		} else {
			rightIdx = mid
		}
		if tc.cursor >= size || tc.postings.DocID(tc.cursor) > id {
			break
		}
	}
	return tc.GetCurDocID()
}

func (tc *TermCursor) LinearSkipTo(id DocID) DocID {
	doc := tc.GetCurDocID()
	if doc >= id {
		return doc
	}
	size := tc.postings.Len()
	for ; tc.cursor < size && tc.postings.DocID(tc.cursor) < id; tc.cursor++ {
	}
	return tc.GetCurDocID()
}

// SkipTo moves the cursor to the first doc id greater than or equal to id
func (tc *TermCursor) SkipTo(id DocID) DocID {
	doc := tc.GetCurDocID()
	if doc >= id {
		return doc
	}

	size := tc.postings.Len()
	rightIdx := size
	var mid int
	for tc.cursor < rightIdx {
		if rightIdx-tc.cursor < LinearSearchLengthThreshold {
			return tc.LinearSkipTo(id)
		}
		mid = (tc.cursor + rightIdx) >> 1
		if tc.postings.DocID(mid) >= id {
			rightIdx = mid
		} else {
			tc.cursor = mid + 1
		}
		if tc.cursor >= size || tc.postings.DocID(tc.cursor) >= id {
			break
		}
	}
	return tc.GetCurDocID()
}

// TermCursors sort API, ordered by posting list length so conjunctions can
// drive the scan from the rarest term
func (s TermCursors) Len() int      { return len(s) }
func (s TermCursors) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s TermCursors) Less(i, j int) bool {
	return s[i].postings.Len() < s[j].postings.Len()
}

func (s TermCursors) Dump() string {
	sb := &strings.Builder{}
	for idx, tc := range s {
		sb.WriteString(fmt.Sprintf("\nidx:%d term:%d token:%s df:%d cur:%d",
			idx, tc.term, tc.token, tc.postings.Len(), tc.GetCurDocID()))
	}
	return sb.String()
}
