package fts_exec

import (
	"sort"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func newTestPostings(ids ...DocID) *memPostings {
	return &memPostings{
		docs:      ids,
		positions: make([][]TokenPos, len(ids)),
	}
}

func TestTermCursor_Skip(t *testing.T) {
	convey.Convey("skip test", t, func() {
		tc := NewTermCursor(1, "brand", newTestPostings(1, 2, 3, 10, 10, 10, 11, 12, 15, 15, 22, 111, 111))

		convey.So(tc.Skip(0), convey.ShouldEqual, 1)
		convey.So(tc.Skip(1), convey.ShouldEqual, 2)
		convey.So(tc.Skip(10), convey.ShouldEqual, 11)
		convey.So(tc.Skip(15), convey.ShouldEqual, 22)
		convey.So(tc.Skip(111), convey.ShouldEqual, NULLDOC)
		convey.So(tc.Skip(2), convey.ShouldEqual, NULLDOC)
	})

	convey.Convey("skip to test", t, func() {
		tc := NewTermCursor(1, "brand", newTestPostings(1, 2, 3, 10, 10, 10, 11, 12, 15, 15, 22, 111, 111))

		convey.So(tc.SkipTo(0), convey.ShouldEqual, 1)
		convey.So(tc.SkipTo(1), convey.ShouldEqual, 1)
		convey.So(tc.SkipTo(3), convey.ShouldEqual, 3)
		convey.So(tc.SkipTo(10), convey.ShouldEqual, 10)
		convey.So(tc.cursor, convey.ShouldEqual, 3)
		convey.So(tc.SkipTo(10), convey.ShouldEqual, 10)
		convey.So(tc.cursor, convey.ShouldEqual, 3)

		convey.So(tc.SkipTo(11), convey.ShouldEqual, 11)
		convey.So(tc.SkipTo(16), convey.ShouldEqual, 22)

		convey.So(tc.SkipTo(111), convey.ShouldEqual, 111)
		convey.So(tc.SkipTo(1000), convey.ShouldEqual, NULLDOC)
	})
}

func TestTermCursor_CurPositions(t *testing.T) {
	convey.Convey("positions follow the cursor", t, func() {
		pl := &memPostings{
			docs:      DocIDList{3, 7},
			positions: [][]TokenPos{{1, 4}, {2}},
		}
		tc := NewTermCursor(2, "color", pl)

		convey.So(tc.GetCurDocID(), convey.ShouldEqual, 3)
		convey.So(tc.CurPositions(), convey.ShouldResemble, []TokenPos{1, 4})

		convey.So(tc.SkipTo(5), convey.ShouldEqual, 7)
		convey.So(tc.CurPositions(), convey.ShouldResemble, []TokenPos{2})
	})
}

func TestTermCursors_Sort(t *testing.T) {
	convey.Convey("cursors order by posting length", t, func() {
		cursors := TermCursors{
			NewTermCursor(1, "a", newTestPostings(1, 2, 3, 4)),
			NewTermCursor(2, "b", newTestPostings(9)),
			NewTermCursor(3, "c", newTestPostings(5, 6)),
		}
		sort.Sort(cursors)

		convey.So(cursors[0].token, convey.ShouldEqual, "b")
		convey.So(cursors[1].token, convey.ShouldEqual, "c")
		convey.So(cursors[2].token, convey.ShouldEqual, "a")
		convey.So(cursors.Dump(), convey.ShouldNotBeEmpty)
	})
}
