package open

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/mpctl/mpctl/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("The default handler depends on the platform", t, func() {
		cmd, err := command(constant.Linux, "/tmp/mpctl.toml")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"xdg-open", "/tmp/mpctl.toml"})

		cmd, err = command(constant.Darwin, "/tmp/mpctl.toml")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"open", "/tmp/mpctl.toml"})

		cmd, err = command(constant.Windows, `C:\mpctl.toml`)
		So(err, ShouldBeNil)
		So(filepath.Base(cmd.Args[0]), ShouldEqual, "rundll32.exe")

		_, err = command("plan9", "/tmp/mpctl.toml")
		So(err, ShouldNotBeNil)
	})

	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}

	Convey("A chosen application is run with the file", t, func() {
		So(RunWith("/tmp/mpctl.toml", "true"), ShouldBeNil)
	})
}
