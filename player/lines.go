package player

// LineSplitter frames a byte stream into lines.
//
// Lines end at '\n', "\r\n" or a lone '\r' (the status line is redrawn with
// carriage returns). The trailing partial line is carried over to the next
// Feed. Empty lines are dropped. A LineSplitter is not safe for concurrent
// use; keep one per stream.
type LineSplitter struct {
	remainder []byte
}

// Feed appends chunk to the carried-over data and returns every line it completes.
func (s *LineSplitter) Feed(chunk []byte) []string {
	data := append(s.remainder, chunk...)

	var lines []string
	start := 0
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c != '\n' && c != '\r' {
			continue
		}

		if i > start {
			lines = append(lines, string(data[start:i]))
		}

		if c == '\r' && i+1 < len(data) && data[i+1] == '\n' {
			i++
		}
		start = i + 1
	}

	// Copy so the next Feed never aliases the caller's buffer.
	s.remainder = append([]byte(nil), data[start:]...)
	return lines
}

// Flush returns and clears the unterminated tail, if any.
func (s *LineSplitter) Flush() (string, bool) {
	if len(s.remainder) == 0 {
		return "", false
	}

	line := string(s.remainder)
	s.remainder = nil
	return line, true
}
