package player

import "strings"

// OutputKind tells how a line of process output is handled.
type OutputKind int

const (
	Ignorable OutputKind = iota
	BufferingNotice
	PlaybackStarted
	FatalNotice
	MediaInfoField
	PositionUpdate
	ProcessExiting
	ErrorCandidate
	SeekFailed
)

func (k OutputKind) String() string {
	switch k {
	case Ignorable:
		return "ignorable"
	case BufferingNotice:
		return "buffering"
	case PlaybackStarted:
		return "playback started"
	case FatalNotice:
		return "fatal"
	case MediaInfoField:
		return "media info"
	case PositionUpdate:
		return "position"
	case ProcessExiting:
		return "exiting"
	case ErrorCandidate:
		return "error candidate"
	case SeekFailed:
		return "seek failed"
	default:
		return "invalid"
	}
}

// OutputEvent is a classified line of process output.
type OutputEvent struct {
	Kind OutputKind
	Line string
}

type outputRule struct {
	match func(line string) bool
	kind  OutputKind
}

func prefix(p string) func(string) bool {
	return func(line string) bool { return strings.HasPrefix(line, p) }
}

// stdoutRules are tried in order, first match wins.
var stdoutRules = []outputRule{
	{prefix("Playing "), Ignorable},
	{prefix("Cache fill:"), BufferingNotice},
	{prefix("Starting playback..."), PlaybackStarted},
	{prefix("File not found: "), FatalNotice},
	{func(line string) bool {
		return strings.Contains(line, "ID_PAUSED") ||
			strings.HasPrefix(line, "ID_SIGNAL") ||
			strings.HasPrefix(line, "ID_EXIT")
	}, Ignorable},
	{prefix("ID_"), MediaInfoField},
	{prefix("No stream found"), FatalNotice},
	{func(line string) bool {
		return strings.HasPrefix(line, "A:") || strings.HasPrefix(line, "V:")
	}, PositionUpdate},
	{prefix("Exiting..."), ProcessExiting},
}

// Classify maps a stdout line to exactly one OutputEvent. Lines matching no
// rule become error candidates.
func Classify(line string) OutputEvent {
	for _, rule := range stdoutRules {
		if rule.match(line) {
			return OutputEvent{Kind: rule.kind, Line: line}
		}
	}
	return OutputEvent{Kind: ErrorCandidate, Line: line}
}

// ClassifyStderr maps a stderr line. Only seek failures are recognised.
func ClassifyStderr(line string) OutputEvent {
	if strings.Contains(line, "Seek failed") {
		return OutputEvent{Kind: SeekFailed, Line: line}
	}
	return OutputEvent{Kind: ErrorCandidate, Line: line}
}
