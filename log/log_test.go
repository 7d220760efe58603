package log

import (
	"bytes"
	"testing"

	"github.com/mpctl/mpctl/filesystem"
	"github.com/mpctl/mpctl/key"
	"github.com/mpctl/mpctl/where"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestLog(t *testing.T) {
	Convey("Given a log buffer", t, func() {
		var buf bytes.Buffer
		Use(&buf, logrus.InfoLevel, false)
		Reset(Disable)

		Convey("Messages at or above the level are written", func() {
			Infof("state %s", "Idle")
			Warn("slow")
			So(buf.String(), ShouldContainSubstring, "state Idle")
			So(buf.String(), ShouldContainSubstring, "level=warning")
		})

		Convey("Messages below the level are dropped", func() {
			Debugf("stdin: %s", "pause")
			So(buf.String(), ShouldBeEmpty)
		})

		Convey("Nothing is written once disabled", func() {
			Disable()
			Error("lost")
			So(buf.String(), ShouldBeEmpty)
		})

		Convey("JSON output carries the message field", func() {
			Use(&buf, logrus.DebugLevel, true)
			Debugf("loadfile %q", "a.mkv")
			So(buf.String(), ShouldContainSubstring, `"msg":"loadfile \"a.mkv\""`)
		})
	})
}

func TestSetup(t *testing.T) {
	Convey("Setup follows logs.write", t, func() {
		Reset(func() {
			viper.Set(key.LogsWrite, false)
			Disable()
		})

		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)
		So(enabled, ShouldBeFalse)

		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		So(Setup(), ShouldBeNil)
		So(enabled, ShouldBeTrue)
		So(logger.GetLevel(), ShouldEqual, logrus.DebugLevel)

		files := lo.Must(filesystem.API().ReadDir(where.Logs()))
		So(files, ShouldHaveLength, 1)
	})
}
