package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLineSplitter(t *testing.T) {
	Convey("LineSplitter", t, func() {
		var s LineSplitter

		Convey("Should keep a partial line until it is completed", func() {
			So(s.Feed([]byte("ID_LENGTH=12")), ShouldBeEmpty)
			So(s.Feed([]byte("0.00\nID_SEEK")), ShouldResemble, []string{"ID_LENGTH=120.00"})
			So(s.Feed([]byte("ABLE=1\n")), ShouldResemble, []string{"ID_SEEKABLE=1"})
		})

		Convey("Should split on carriage returns", func() {
			lines := s.Feed([]byte("A:   1.0 V:   1.0\rA:   1.1 V:   1.1\r\nExiting...\n"))
			So(lines, ShouldResemble, []string{"A:   1.0 V:   1.0", "A:   1.1 V:   1.1", "Exiting..."})
		})

		Convey("Should treat a CRLF split across chunks as one terminator", func() {
			So(s.Feed([]byte("first\r")), ShouldResemble, []string{"first"})
			So(s.Feed([]byte("\nsecond\n")), ShouldResemble, []string{"second"})
		})

		Convey("Should drop empty lines", func() {
			So(s.Feed([]byte("\n\n\none\n\n")), ShouldResemble, []string{"one"})
		})

		Convey("Should not alias the caller's buffer", func() {
			buf := []byte("tail")
			s.Feed(buf)
			copy(buf, "XXXX")
			So(s.Feed([]byte("\n")), ShouldResemble, []string{"tail"})
		})

		Convey("Flush", func() {
			Convey("Should return the unterminated tail once", func() {
				s.Feed([]byte("Exiting... (Quit)"))
				line, ok := s.Flush()
				So(ok, ShouldBeTrue)
				So(line, ShouldEqual, "Exiting... (Quit)")

				_, ok = s.Flush()
				So(ok, ShouldBeFalse)
			})
		})
	})
}
