package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Classify", t, func() {
		cases := map[string]OutputKind{
			"Playing /tmp/a.mp4.":                   Ignorable,
			"Cache fill:  5.00% (6553 bytes)":       BufferingNotice,
			"Starting playback...":                  PlaybackStarted,
			"File not found: '/tmp/missing.mp4'":    FatalNotice,
			"ANS_ID_PAUSED=yes":                     Ignorable,
			"ID_SIGNAL=11":                          Ignorable,
			"ID_EXIT=QUIT":                          Ignorable,
			"ID_VIDEO_WIDTH=640":                    MediaInfoField,
			"No stream found to handle url x":       FatalNotice,
			"A:   1.2 V:   1.2 A-V:  0.000 ct: 0.0": PositionUpdate,
			"V:   3.0   75/ 75  0%  0%  0.0% 0 0":   PositionUpdate,
			"Exiting... (End of file)":              ProcessExiting,
			"MPlayer SVN-r38151 (C) 2000-2019":      ErrorCandidate,
			"":                                      ErrorCandidate,
		}

		for line, kind := range cases {
			event := Classify(line)
			So(event.Kind, ShouldEqual, kind)
			So(event.Line, ShouldEqual, line)
		}

		Convey("Should prefer earlier rules", func() {
			So(Classify("ID_PAUSED").Kind, ShouldEqual, Ignorable)
			So(Classify("Playing A: 1.0").Kind, ShouldEqual, Ignorable)
		})
	})

	Convey("ClassifyStderr", t, func() {
		So(ClassifyStderr("Seek failed").Kind, ShouldEqual, SeekFailed)
		So(ClassifyStderr("[mp3] Seek failed, trying again").Kind, ShouldEqual, SeekFailed)
		So(ClassifyStderr("Failed to open VDPAU backend").Kind, ShouldEqual, ErrorCandidate)
	})
}
