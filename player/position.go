package player

import (
	"regexp"
	"strconv"

	"github.com/mpctl/mpctl/util"
)

var positionPattern = regexp.MustCompile(`(?P<stream>[AV]):[ ]*(?P<seconds>[0-9]+[.]?[0-9]*)`)

// parsePosition extracts the playback position from an "A: 12.3 V: 12.3 ..." status line.
func parsePosition(line string) (float64, bool) {
	seconds, ok := util.ReGroups(positionPattern, line)["seconds"]
	if !ok {
		return 0, false
	}

	pos, err := strconv.ParseFloat(seconds, 64)
	if err != nil {
		return 0, false
	}
	return pos, true
}
