package player

import "context"

// State returns the current playback state.
func (p *Player) State() State {
	return query(p, NotStarted, func() State { return p.sm.current })
}

// MediaInfo returns a copy of what is known about the loaded media.
func (p *Player) MediaInfo() MediaInfo {
	return query(p, MediaInfo{}, func() MediaInfo { return p.info.snapshot() })
}

// Tell returns the last reported playback position in seconds.
func (p *Player) Tell() float64 {
	return p.param(slotSeek)
}

func (p *Player) AudioDelay() float64      { return p.param(slotAudioDelay) }
func (p *Player) AudioVolume() float64     { return p.param(slotAudioVolume) }
func (p *Player) AudioMute() bool          { return !fuzzyEqual(p.param(slotAudioMute), 0) }
func (p *Player) VideoBrightness() float64 { return p.param(slotBrightness) }
func (p *Player) VideoContrast() float64   { return p.param(slotContrast) }
func (p *Player) VideoGamma() float64      { return p.param(slotGamma) }
func (p *Player) VideoHue() float64        { return p.param(slotHue) }
func (p *Player) VideoSaturation() float64 { return p.param(slotSaturation) }

func (p *Player) param(s slot) float64 {
	return query(p, 0, func() float64 { return p.params.value(s) })
}

// SetAudioDelay changes the audio delay. Values are clamped to [-100, 100].
func (p *Player) SetAudioDelay(v float64, absolute bool) { p.set(slotAudioDelay, v, absolute) }

// SetAudioVolume changes the volume. Values are clamped to [0, 100].
func (p *Player) SetAudioVolume(v float64, absolute bool) { p.set(slotAudioVolume, v, absolute) }

// SetAudioMute mutes or unmutes the audio.
func (p *Player) SetAudioMute(mute bool) {
	v := 0.0
	if mute {
		v = 1
	}
	p.set(slotAudioMute, v, true)
}

// The video setters clamp to [-100, 100].

func (p *Player) SetVideoBrightness(v float64, absolute bool) { p.set(slotBrightness, v, absolute) }
func (p *Player) SetVideoContrast(v float64, absolute bool)   { p.set(slotContrast, v, absolute) }
func (p *Player) SetVideoGamma(v float64, absolute bool)      { p.set(slotGamma, v, absolute) }
func (p *Player) SetVideoHue(v float64, absolute bool)        { p.set(slotHue, v, absolute) }
func (p *Player) SetVideoSaturation(v float64, absolute bool) { p.set(slotSaturation, v, absolute) }

func (p *Player) set(s slot, v float64, absolute bool) {
	p.do(func() { p.request(s, v, absolute) })
}

// Play loads url and starts playing it. An empty url, or the url already
// loaded, resumes the current media.
func (p *Player) Play(url string) {
	p.do(func() { p.play(url) })
}

// Pause toggles pause. In Idle it plays the current media.
func (p *Player) Pause() {
	p.do(p.pause)
}

// Stop rewinds to the start of the media and pauses there.
func (p *Player) Stop() {
	p.do(p.stop)
}

// Seek moves to value seconds, or by value seconds when absolute is false.
// In Idle the current media is loaded first.
func (p *Player) Seek(value float64, absolute bool) {
	p.do(func() { p.seek(value, absolute) })
}

// WriteRaw sends cmd to the process unchanged.
func (p *Player) WriteRaw(cmd string) {
	p.do(func() { p.write(cmd) })
}

// LastError returns the most recent error notification.
func (p *Player) LastError() Error {
	return query(p, Error{Kind: NoError, Message: "No error"}, p.errs.last)
}

// SetBinaryPath sets the executable used by the next Start.
func (p *Player) SetBinaryPath(path string) {
	p.do(func() { p.binary = path })
}

// BinaryPath returns the executable used by Start.
func (p *Player) BinaryPath() string {
	return query(p, p.cfg.BinaryPath, func() string { return p.binary })
}

// BinaryVersion probes the version of the configured executable.
func (p *Player) BinaryVersion(ctx context.Context) (string, error) {
	return p.cfg.Versions.Query(ctx, p.BinaryPath())
}
