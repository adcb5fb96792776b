package sm8150

import (
	"fmt"
	"math/bits"
	"strings"
)

// Direction of a substream.  Values match SNDRV_PCM_STREAM_*.
type Direction int

const (
	Playback Direction = 0
	Capture  Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Playback:
		return "playback"
	case Capture:
		return "capture"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "playback", "p", "rx":
		return Playback, nil
	case "capture", "c", "tx":
		return Capture, nil
	}

	return 0, fmt.Errorf("unknown stream direction %q", s)
}

// PCMFormat is an ALSA sample format number (SNDRV_PCM_FORMAT_*).
type PCMFormat int

const (
	FormatS8      PCMFormat = 0
	FormatU8      PCMFormat = 1
	FormatS16LE   PCMFormat = 2
	FormatS16BE   PCMFormat = 3
	FormatU16LE   PCMFormat = 4
	FormatU16BE   PCMFormat = 5
	FormatS24LE   PCMFormat = 6
	FormatS24BE   PCMFormat = 7
	FormatU24LE   PCMFormat = 8
	FormatU24BE   PCMFormat = 9
	FormatS32LE   PCMFormat = 10
	FormatS32BE   PCMFormat = 11
	FormatU32LE   PCMFormat = 12
	FormatU32BE   PCMFormat = 13
	FormatFloatLE PCMFormat = 14
	FormatFloatBE PCMFormat = 15

	formatLast = FormatFloatBE
)

var formatNames = [...]string{
	"S8", "U8",
	"S16_LE", "S16_BE", "U16_LE", "U16_BE",
	"S24_LE", "S24_BE", "U24_LE", "U24_BE",
	"S32_LE", "S32_BE", "U32_LE", "U32_BE",
	"FLOAT_LE", "FLOAT_BE",
}

func (f PCMFormat) String() string {
	if f >= 0 && f <= formatLast {
		return formatNames[f]
	}

	return fmt.Sprintf("0x%x", int(f))
}

func ParseFormat(s string) (PCMFormat, error) {
	var want = strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	for i, name := range formatNames {
		if name == want {
			return PCMFormat(i), nil
		}
	}

	return 0, fmt.Errorf("unknown sample format %q", s)
}

// Interval is an inclusive range of acceptable values for one hardware parameter.
type Interval struct {
	Min uint32
	Max uint32
}

func (i *Interval) Fix(v uint32) {
	i.Min = v
	i.Max = v
}

// FormatMask is the set of sample formats still acceptable to both ends.
type FormatMask uint64

func (m *FormatMask) None() {
	*m = 0
}

func (m *FormatMask) Set(f PCMFormat) {
	*m |= 1 << uint(f)
}

func (m FormatMask) Test(f PCMFormat) bool {
	return f >= 0 && f < 64 && m&(1<<uint(f)) != 0
}

// First returns the lowest format in the mask, which is what the
// framework picks once a parameter set is refined down.
func (m FormatMask) First() (PCMFormat, bool) {
	if m == 0 {
		return 0, false
	}

	return PCMFormat(bits.TrailingZeros64(uint64(m))), true
}

// HwParams is the constraint set for one substream, the parts of
// snd_pcm_hw_params that matter here.
type HwParams struct {
	Rate     Interval
	Channels Interval
	Format   FormatMask
}

// NewHwParams builds a parameter set already narrowed to a single point.
func NewHwParams(rate, channels uint32, format PCMFormat) *HwParams {
	var p = new(HwParams)
	p.Rate.Fix(rate)
	p.Channels.Fix(channels)
	p.Format.Set(format)

	return p
}

// These read the committed value, as params_rate() and friends do.

func (p *HwParams) RateHz() uint32 {
	return p.Rate.Min
}

func (p *HwParams) ChannelCount() int {
	return int(p.Channels.Min)
}

func (p *HwParams) SampleFormat() PCMFormat {
	var f, ok = p.Format.First()
	if !ok {
		return -1
	}

	return f
}

func (p *HwParams) String() string {
	return fmt.Sprintf("rate=%d channels=%d format=%s", p.RateHz(), p.ChannelCount(), p.SampleFormat())
}
