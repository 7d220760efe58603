package util

import (
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "key", "keys"), ShouldEqual, "1 key")
		So(Quantify(0, "key", "keys"), ShouldEqual, "0 keys")
		So(Quantify(2, "key", "keys"), ShouldEqual, "2 keys")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("playing"), ShouldEqual, "Playing")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMediaTitle(t *testing.T) {
	Convey("MediaTitle", t, func() {
		Convey("Strips directories and extensions", func() {
			So(MediaTitle("/home/me/videos/clip.final.mkv"), ShouldEqual, "clip.final")
			So(MediaTitle(`C:\media\song.mp3`), ShouldEqual, "song")
		})

		Convey("Strips the scheme, query and fragment of URLs", func() {
			So(MediaTitle("http://example.com/stream/live.m3u8?token=abc#t=10"), ShouldEqual, "live")
			So(MediaTitle("https://example.com/radio/"), ShouldEqual, "radio")
		})

		Convey("Keeps names without an extension", func() {
			So(MediaTitle("dvd://1"), ShouldEqual, "1")
			So(MediaTitle("movie"), ShouldEqual, "movie")
		})

		Convey("Empty targets stay empty", func() {
			So(MediaTitle("   "), ShouldEqual, "")
		})
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`(?P<key>ID_\w+)=(?P<value>.*)`)

		groups := ReGroups(re, "ID_LENGTH=12.50")
		So(groups["key"], ShouldEqual, "ID_LENGTH")
		So(groups["value"], ShouldEqual, "12.50")

		So(ReGroups(re, "A:   1.0"), ShouldBeEmpty)
	})
}
