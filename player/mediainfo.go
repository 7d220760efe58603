package player

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// VideoInfo describes the video stream. Fields stay zero until reported.
type VideoInfo struct {
	Codec       string  `json:"codec" jsonschema:"description=Video codec reported by the player."`
	Format      string  `json:"format" jsonschema:"description=Video format (fourcc). Empty when the media has no video."`
	BitrateKbps int     `json:"bitrateKbps" jsonschema:"description=Video bitrate in kilobits per second."`
	Width       int     `json:"width" jsonschema:"description=Frame width in pixels."`
	Height      int     `json:"height" jsonschema:"description=Frame height in pixels."`
	FPS         float64 `json:"fps" jsonschema:"description=Frames per second."`
}

// AudioInfo describes the audio stream. Fields stay zero until reported.
type AudioInfo struct {
	Codec        string `json:"codec" jsonschema:"description=Audio codec reported by the player."`
	Format       string `json:"format" jsonschema:"description=Audio format tag. Empty when the media has no audio."`
	BitrateKbps  int    `json:"bitrateKbps" jsonschema:"description=Audio bitrate in kilobits per second."`
	SampleRateHz int    `json:"sampleRateHz" jsonschema:"description=Sample rate in hertz."`
	NumChannels  int    `json:"numChannels" jsonschema:"description=Number of audio channels."`
}

// MediaInfo is what the player reported about the loaded media.
// Until Valid is set the other fields are provisional.
type MediaInfo struct {
	URL      string            `json:"url" jsonschema:"description=URL or path passed to Play."`
	Valid    bool              `json:"valid" jsonschema:"description=True once playback has started and the fields are final."`
	Length   float64           `json:"length" jsonschema:"description=Media length in seconds. Zero when unknown."`
	Seekable bool              `json:"seekable" jsonschema:"description=Whether seeking is supported."`
	Video    VideoInfo         `json:"video"`
	Audio    AudioInfo         `json:"audio"`
	Tags     map[string]string `json:"tags" jsonschema:"description=Clip tags such as Title or Artist."`
}

func newMediaInfo(url string) *MediaInfo {
	return &MediaInfo{URL: url, Tags: make(map[string]string)}
}

// HasVideo reports whether a video stream was found.
func (m MediaInfo) HasVideo() bool { return m.Video.Format != "" }

// HasAudio reports whether an audio stream was found.
func (m MediaInfo) HasAudio() bool { return m.Audio.Format != "" }

// snapshot returns a copy that shares nothing with m.
func (m *MediaInfo) snapshot() MediaInfo {
	c := *m
	c.Tags = lo.Assign(m.Tags)
	return c
}

// mediaInfoParser applies ID_ lines to a MediaInfo. Clip tags arrive as a
// NAME line followed by a VALUE line, so the parser keeps the pending name.
type mediaInfoParser struct {
	tag mo.Option[string]
}

func (p *mediaInfoParser) reset() {
	p.tag = mo.None[string]()
}

// parse applies one ID_NAME=value line. Malformed and unknown lines are ignored.
func (p *mediaInfoParser) parse(info *MediaInfo, line string) {
	name, value, ok := strings.Cut(line, "=")
	if !ok {
		return
	}

	switch {
	case strings.HasPrefix(name, "ID_VIDEO"):
		p.video(&info.Video, name, value)
	case strings.HasPrefix(name, "ID_AUDIO"):
		p.audio(&info.Audio, name, value)
	case strings.HasPrefix(name, "ID_CLIP_INFO_NAME"):
		p.tag = mo.Some(value)
	case strings.HasPrefix(name, "ID_CLIP_INFO_VALUE"):
		if tag, ok := p.tag.Get(); ok && tag != "" {
			info.Tags[tag] = value
		}
	case name == "ID_LENGTH":
		info.Length = toFloat(value)
	case name == "ID_SEEKABLE":
		info.Seekable = toInt(value) != 0
	}
}

func (p *mediaInfoParser) video(v *VideoInfo, name, value string) {
	switch name {
	case "ID_VIDEO_CODEC":
		v.Codec = value
	case "ID_VIDEO_FORMAT":
		v.Format = value
	case "ID_VIDEO_BITRATE":
		v.BitrateKbps = toInt(value) / 1000
	case "ID_VIDEO_WIDTH":
		v.Width = toInt(value)
	case "ID_VIDEO_HEIGHT":
		v.Height = toInt(value)
	case "ID_VIDEO_FPS":
		v.FPS = toFloat(value)
	}
}

func (p *mediaInfoParser) audio(a *AudioInfo, name, value string) {
	switch name {
	case "ID_AUDIO_CODEC":
		a.Codec = value
	case "ID_AUDIO_FORMAT":
		a.Format = value
	case "ID_AUDIO_BITRATE":
		a.BitrateKbps = toInt(value) / 1000
	case "ID_AUDIO_RATE":
		a.SampleRateHz = toInt(value)
	case "ID_AUDIO_NCH":
		a.NumChannels = toInt(value)
	}
}

// toInt and toFloat read numbers the way the player prints them; junk is zero.
func toInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func toFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
