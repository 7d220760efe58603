package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackend(t *testing.T) {
	Convey("Filesystem backend", t, func() {
		Reset(SetOsFs)

		Convey("Defaults to the OS", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Switches to memory", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})

		Convey("GacheFs goes through the active backend", func() {
			SetMemMapFs()
			var fs GacheFs
			So(fs.MkdirAll("/cache/mpctl", 0o755), ShouldBeNil)

			f, err := fs.OpenFile("/cache/mpctl/versions.json", os.O_CREATE|os.O_WRONLY, 0o644)
			So(err, ShouldBeNil)
			_, err = f.Write([]byte("{}"))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			exists, err := API().Exists("/cache/mpctl/versions.json")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})
	})
}
