package player

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMediaInfoParser(t *testing.T) {
	Convey("mediaInfoParser", t, func() {
		var parser mediaInfoParser
		parser.reset()
		info := newMediaInfo("a.mp4")

		feed := func(lines ...string) {
			for _, line := range lines {
				parser.parse(info, line)
			}
		}

		Convey("Should fill video and audio fields", func() {
			feed(
				"ID_VIDEO_FORMAT=H264",
				"ID_VIDEO_BITRATE=1500000",
				"ID_VIDEO_WIDTH=1280",
				"ID_VIDEO_HEIGHT=720",
				"ID_VIDEO_FPS=23.976",
				"ID_VIDEO_CODEC=ffh264",
				"ID_AUDIO_FORMAT=MP4A",
				"ID_AUDIO_BITRATE=128000",
				"ID_AUDIO_RATE=44100",
				"ID_AUDIO_NCH=2",
				"ID_AUDIO_CODEC=ffaac",
				"ID_LENGTH=120.50",
				"ID_SEEKABLE=1",
			)

			So(info.Video, ShouldResemble, VideoInfo{
				Codec: "ffh264", Format: "H264", BitrateKbps: 1500,
				Width: 1280, Height: 720, FPS: 23.976,
			})
			So(info.Audio, ShouldResemble, AudioInfo{
				Codec: "ffaac", Format: "MP4A", BitrateKbps: 128,
				SampleRateHz: 44100, NumChannels: 2,
			})
			So(info.Length, ShouldEqual, 120.5)
			So(info.Seekable, ShouldBeTrue)
			So(info.HasVideo(), ShouldBeTrue)
			So(info.HasAudio(), ShouldBeTrue)
			So(info.Valid, ShouldBeFalse)
		})

		Convey("Should pair clip tag names with values", func() {
			feed(
				"ID_CLIP_INFO_NAME0=Title",
				"ID_CLIP_INFO_VALUE0=Song=With=Equals",
				"ID_CLIP_INFO_NAME1=Artist",
				"ID_CLIP_INFO_VALUE1=Someone",
			)
			So(info.Tags, ShouldResemble, map[string]string{
				"Title":  "Song=With=Equals",
				"Artist": "Someone",
			})
		})

		Convey("Should drop a value without a pending name", func() {
			feed("ID_CLIP_INFO_VALUE0=orphan")
			So(info.Tags, ShouldBeEmpty)
		})

		Convey("Should ignore malformed and unknown lines", func() {
			feed("ID_VIDEO_WIDTH", "ID_FILENAME=a.mp4", "ID_LENGTH=abc", "ID_VIDEO_WIDTH=wide")
			So(info.Length, ShouldEqual, 0)
			So(info.Video.Width, ShouldEqual, 0)
			So(info.HasVideo(), ShouldBeFalse)
		})

		Convey("snapshot should not share tags", func() {
			feed("ID_CLIP_INFO_NAME0=Title", "ID_CLIP_INFO_VALUE0=One")
			snap := info.snapshot()
			So(cmp.Diff(*info, snap), ShouldBeEmpty)

			info.Tags["Title"] = "Two"
			So(snap.Tags["Title"], ShouldEqual, "One")
		})
	})
}

func TestParsePosition(t *testing.T) {
	Convey("parsePosition", t, func() {
		pos, ok := parsePosition("A:  12.3 V:  12.3 A-V:  0.000")
		So(ok, ShouldBeTrue)
		So(pos, ShouldEqual, 12.3)

		pos, ok = parsePosition("V:7.")
		So(ok, ShouldBeTrue)
		So(pos, ShouldEqual, 7)

		_, ok = parsePosition("A: ???")
		So(ok, ShouldBeFalse)
	})
}
