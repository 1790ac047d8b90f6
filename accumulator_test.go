package fts_exec

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestDocIDAccumulator(t *testing.T) {
	convey.Convey("duplicated ids collapse", t, func() {
		acc := NewDocIDAccumulator()
		for _, id := range []DocID{9, 3, 9, 7} {
			convey.So(acc.ConsiderMatch(&DocMatch{ID: id}), convey.ShouldBeNil)
		}
		convey.So(acc.DocCount(), convey.ShouldEqual, 3)
		convey.So(acc.GetDocIDs(), convey.ShouldResemble, DocIDList{3, 7, 9})

		var ids DocIDList
		acc.GetDocIDsInto(&ids)
		convey.So(ids, convey.ShouldResemble, DocIDList{3, 7, 9})

		acc.Reset()
		convey.So(acc.DocCount(), convey.ShouldEqual, 0)
		convey.So(acc.GetDocIDs(), convey.ShouldBeNil)
	})

	convey.Convey("pooled accumulators come back clean", t, func() {
		acc := PickDocIDAccumulator()
		convey.So(acc.DocCount(), convey.ShouldEqual, 0)
		convey.So(acc.ConsiderMatch(&DocMatch{ID: 11}), convey.ShouldBeNil)
		PutDocIDAccumulator(acc)

		again := PickDocIDAccumulator()
		convey.So(again.DocCount(), convey.ShouldEqual, 0)
		PutDocIDAccumulator(again)

		convey.So(func() { PutDocIDAccumulator(nil) }, convey.ShouldNotPanic)
	})
}
