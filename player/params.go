package player

import (
	"fmt"
	"math"
	"strconv"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// slot is a player parameter changed through the coalescer.
type slot int

const (
	slotSeek slot = iota
	slotAudioDelay
	slotAudioVolume
	slotAudioMute
	slotBrightness
	slotContrast
	slotGamma
	slotHue
	slotSaturation
)

func (s slot) String() string {
	switch s {
	case slotSeek:
		return "seek"
	case slotAudioDelay:
		return "audio_delay"
	case slotAudioVolume:
		return "volume"
	case slotAudioMute:
		return "mute"
	case slotBrightness:
		return "brightness"
	case slotContrast:
		return "contrast"
	case slotGamma:
		return "gamma"
	case slotHue:
		return "hue"
	case slotSaturation:
		return "saturation"
	default:
		return "invalid"
	}
}

type pendingParam struct {
	slot  slot
	value float64
}

// coalescer keeps the committed value of every slot and at most one pending
// request.
type coalescer struct {
	committed map[slot]float64
	pending   mo.Option[pendingParam]
}

func newCoalescer() coalescer {
	return coalescer{
		committed: map[slot]float64{
			slotSeek:        0,
			slotAudioDelay:  0,
			slotAudioVolume: 100,
			slotAudioMute:   0,
			slotBrightness:  0,
			slotContrast:    0,
			slotGamma:       0,
			slotHue:         0,
			slotSaturation:  0,
		},
		pending: mo.None[pendingParam](),
	}
}

// pendingOther reports whether a slot other than s is pending.
func (c *coalescer) pendingOther(s slot) bool {
	pending, ok := c.pending.Get()
	return ok && pending.slot != s
}

// accumulate stores the new pending value for s. Relative values add to the
// pending value of s or, when nothing of s is pending, to its committed value.
func (c *coalescer) accumulate(s slot, value float64, absolute bool) float64 {
	if !absolute {
		base := c.committed[s]
		if pending, ok := c.pending.Get(); ok && pending.slot == s {
			base = pending.value
		}
		value += base
	}

	c.pending = mo.Some(pendingParam{slot: s, value: value})
	return value
}

// take removes and returns the pending request.
func (c *coalescer) take() (pendingParam, bool) {
	pending, ok := c.pending.Get()
	c.pending = mo.None[pendingParam]()
	return pending, ok
}

func (c *coalescer) unchanged(s slot, value float64) bool {
	return fuzzyEqual(c.committed[s], value)
}

func (c *coalescer) commit(s slot, value float64) {
	c.committed[s] = value
}

func (c *coalescer) value(s slot) float64 {
	return c.committed[s]
}

// serialize clamps value to the bounds of s and renders its command.
// length bounds seek positions; a non-positive length only bounds below.
func serialize(s slot, value, length float64) (string, float64) {
	switch s {
	case slotSeek:
		if length > 0 {
			value = lo.Clamp(value, 0, length)
		} else {
			value = math.Max(value, 0)
		}
		return fmt.Sprintf("seek %.1f 2", value), value
	case slotAudioDelay:
		value = lo.Clamp(math.Round(value), -100, 100)
		return fmt.Sprintf("audio_delay %d 2", int(value)), value
	case slotAudioVolume:
		value = lo.Clamp(value, 0, 100)
		return "volume " + strconv.FormatFloat(value, 'g', 6, 64) + " 1", value
	case slotAudioMute:
		value = lo.Ternary(fuzzyEqual(value, 0), 0.0, 1.0)
		return fmt.Sprintf("mute %d", int(value)), value
	default:
		value = lo.Clamp(math.Round(value), -100, 100)
		return fmt.Sprintf("%s %d 1", s, int(value)), value
	}
}

func fuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}
