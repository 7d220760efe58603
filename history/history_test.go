package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/mpctl/mpctl/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

var stores int

func init() {
	filesystem.SetMemMapFs()
}

func TestStore(t *testing.T) {
	Convey("Given an empty store", t, func() {
		stores++
		store := Open(fmt.Sprintf("/history/%d.json", stores), 2)
		base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

		Convey("It has no entries", func() {
			recent, err := store.Recent()
			So(err, ShouldBeNil)
			So(recent, ShouldBeEmpty)
		})

		Convey("Saved entries come back most recent first", func() {
			So(store.Save(&Entry{URL: "a.mp3", PlayedAt: base}), ShouldBeNil)
			So(store.Save(&Entry{URL: "b.mp3", PlayedAt: base.Add(time.Minute)}), ShouldBeNil)

			recent, err := store.Recent()
			So(err, ShouldBeNil)
			So(recent, ShouldHaveLength, 2)
			So(recent[0].URL, ShouldEqual, "b.mp3")
			So(recent[1].URL, ShouldEqual, "a.mp3")

			Convey("Saving the same URL replaces it", func() {
				So(store.Save(&Entry{URL: "a.mp3", Position: 30, PlayedAt: base.Add(2 * time.Minute)}), ShouldBeNil)

				recent, err := store.Recent()
				So(err, ShouldBeNil)
				So(recent, ShouldHaveLength, 2)
				So(recent[0].URL, ShouldEqual, "a.mp3")
				So(recent[0].Position, ShouldEqual, 30)
			})

			Convey("The oldest entry is dropped past the limit", func() {
				So(store.Save(&Entry{URL: "c.mp3", PlayedAt: base.Add(3 * time.Minute)}), ShouldBeNil)

				saved, err := store.Get()
				So(err, ShouldBeNil)
				So(saved, ShouldHaveLength, 2)
				So(saved, ShouldContainKey, "b.mp3")
				So(saved, ShouldContainKey, "c.mp3")
			})

			Convey("Entries can be removed", func() {
				So(store.Remove("a.mp3"), ShouldBeNil)

				saved, err := store.Get()
				So(err, ShouldBeNil)
				So(saved, ShouldNotContainKey, "a.mp3")
			})
		})

		Convey("A missing play time is filled in", func() {
			e := &Entry{URL: "d.mp3"}
			So(store.Save(e), ShouldBeNil)
			So(e.PlayedAt.IsZero(), ShouldBeFalse)
		})
	})
}

func TestResumable(t *testing.T) {
	Convey("Resuming", t, func() {
		So((&Entry{Position: 0, Length: 100}).Resumable(), ShouldBeFalse)
		So((&Entry{Position: 40, Length: 100}).Resumable(), ShouldBeTrue)
		So((&Entry{Position: 97, Length: 100}).Resumable(), ShouldBeFalse)
		So((&Entry{Position: 40}).Resumable(), ShouldBeTrue)
	})
}
