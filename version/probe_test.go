package version

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/mpctl/mpctl/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func fakeBinary(t *testing.T, output string, code int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mplayer")
	script := "#!/bin/sh\nprintf '%s\\n' '" + output + "'\nexit " + strconv.Itoa(code) + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	Convey("Given -version output", t, func() {
		Convey("The MPlayer banner yields the version token", func() {
			v, err := Parse("MPlayer 1.5-12.2.0 (C) 2000-2022 MPlayer Team\nused CC: gcc\n")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "1.5-12.2.0")
		})

		Convey("Leading blank lines are skipped", func() {
			v, err := Parse("\n\nMPlayer SVN-r38151\n")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "SVN-r38151")
		})

		Convey("Other banners are returned whole", func() {
			v, err := Parse("  mplayer2 2.0-728  \n")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "mplayer2 2.0-728")
		})

		Convey("Only the first line counts", func() {
			v, err := Parse("something else\nMPlayer 1.4\n")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "something else")
		})

		Convey("Empty output is an error", func() {
			_, err := Parse(" \n\n")
			So(err, ShouldEqual, ErrNoVersion)
		})
	})
}

func TestProber(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	Convey("Given a Prober", t, func() {
		ctx := context.Background()

		Convey("A binary that exits non-zero after its banner is still probed", func() {
			p := NewProber(Options{})
			v, err := p.Query(ctx, fakeBinary(t, "MPlayer 1.5 (C) 2000-2022", 1))
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "1.5")
		})

		Convey("A silent failing binary is an error", func() {
			p := NewProber(Options{})
			_, err := p.Query(ctx, fakeBinary(t, "", 2))
			So(err, ShouldNotBeNil)
		})

		Convey("A missing binary is an error", func() {
			p := NewProber(Options{})
			_, err := p.Query(ctx, filepath.Join(t.TempDir(), "missing"))
			So(err, ShouldNotBeNil)
		})

		Convey("Results are cached in memory until forgotten", func() {
			p := NewProber(Options{})
			bin := fakeBinary(t, "MPlayer 1.4", 0)

			v, err := p.Query(ctx, bin)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "1.4")

			So(os.Remove(bin), ShouldBeNil)
			v, err = p.Query(ctx, bin)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "1.4")

			So(p.Forget(), ShouldBeNil)
			_, err = p.Query(ctx, bin)
			So(err, ShouldNotBeNil)
		})

		Convey("Results persist to the cache file", func() {
			opts := Options{CachePath: "/cache/" + t.Name() + "/versions.json", Lifetime: time.Hour}
			bin := fakeBinary(t, "MPlayer 1.3.0", 0)

			v, err := NewProber(opts).Query(ctx, bin)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "1.3.0")

			So(os.Remove(bin), ShouldBeNil)
			v, err = NewProber(opts).Query(ctx, bin)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "1.3.0")
		})
	})
}
