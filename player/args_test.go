package player

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildArgs(t *testing.T) {
	Convey("buildArgs", t, func() {
		cfg := Config{AudioOutput: "alsa,", VideoOutput: "xv:ck=set,", ExtraArgs: []string{"-cache", "8192"}}
		video := videoDefaults{brightness: 5, contrast: -10, hue: 0, saturation: 12.6}

		Convey("Should carry the slave mode baseline", func() {
			args := buildArgs(cfg, video, StartOptions{})
			So(args[:5], ShouldResemble, []string{"-zoom", "-noautosub", "-slave", "-colorkey", "0x020202"})
			So(args, ShouldContain, "-idle")
			So(args, ShouldContain, "identify=4")
			So(lo.IndexOf(args, "-ao"), ShouldEqual, 5)
		})

		Convey("Should start with the committed picture settings", func() {
			args := buildArgs(cfg, video, StartOptions{})
			So(args[lo.IndexOf(args, "-contrast")+1], ShouldEqual, "-10")
			So(args[lo.IndexOf(args, "-brightness")+1], ShouldEqual, "5")
			So(args[lo.IndexOf(args, "-saturation")+1], ShouldEqual, "13")
		})

		Convey("Should append window embedding last", func() {
			args := buildArgs(cfg, video, StartOptions{WindowID: 42, Args: []string{"-fs"}})
			So(args[len(args)-4:], ShouldResemble, []string{"-wid", "42", "-vo", "xv:ck=set,"})
			So(lo.IndexOf(args, "-cache"), ShouldBeLessThan, lo.IndexOf(args, "-fs"))
		})

		Convey("Should skip embedding without a video output", func() {
			cfg.VideoOutput = ""
			args := buildArgs(cfg, video, StartOptions{WindowID: 42})
			So(args, ShouldNotContain, "-wid")
		})

		Convey("Should skip -ao without an audio output", func() {
			cfg.AudioOutput = ""
			So(buildArgs(cfg, video, StartOptions{}), ShouldNotContain, "-ao")
		})
	})
}
