package sm8150

/*------------------------------------------------------------------
 *
 * Purpose:	Program the TDM slot layout for a backend stream.
 *
 * Description:	Called at hw_params time, once the front end and the
 *		fixup have settled on rate, channels and format.
 *
 *		The host side DAI is told which slots carry data in
 *		which direction and where each channel sits in the
 *		frame.  Each amplifier is then given its clock and the
 *		slot it listens on.  The amplifiers only ever receive,
 *		so their map is a receive map even for capture.
 *
 *		Nothing is undone on failure.  The host runtime tears
 *		the whole link down and starts again.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"math/bits"
)

const (
	// Every amplifier runs off the same 12.288 MHz bit clock (256 x 48 kHz).
	AmpSysclkHz = 12288000

	tdmSlotWidth = 32
)

// SlotMaskPolicy decides which TDM slots are active for a channel count.
type SlotMaskPolicy func(channels int) uint32

// HardwiredSlotMask is what shipping boards use: slots 2 and 6, whatever the
// channel count.  It only lines up with the 2 channel fixup.
func HardwiredSlotMask(int) uint32 {
	return 0x44
}

// ContiguousSlotMask enables the first n slots.
func ContiguousSlotMask(channels int) uint32 {
	if channels <= 0 {
		return 0
	}

	if channels >= 16 {
		return 0xFFFF
	}

	return 0x0000FFFF >> (16 - channels)
}

var ErrChannelCount = fmt.Errorf("channel count outside 1..%d", TDMSlots)

type TDMConfigurator struct {
	Wiring   Wiring
	SlotMask SlotMaskPolicy
}

func NewTDMConfigurator(w Wiring, policy SlotMaskPolicy) *TDMConfigurator {
	if policy == nil {
		policy = HardwiredSlotMask
	}

	return &TDMConfigurator{Wiring: w, SlotMask: policy}
}

// SlotWidth returns the slot width for a sample format.
func SlotWidth(f PCMFormat) (int, error) {
	switch f {
	case FormatS24LE:
		return tdmSlotWidth, nil
	default:
		return 0, fmt.Errorf("%w: invalid param format %s", ErrUnsupportedFormat, f)
	}
}

// Configure applies slot, channel map and clock settings for sub.
func (c *TDMConfigurator) Configure(sub *Substream, params *HwParams) error {
	var slotWidth, err = SlotWidth(params.SampleFormat())
	if err != nil {
		logger.Error("tdm hw_params", "link", sub.Link.Name, "err", err)
		return err
	}

	var channels = params.ChannelCount()
	if channels < 1 || channels > TDMSlots {
		return fmt.Errorf("%s: %w: %d", sub.Link.Name, ErrChannelCount, channels)
	}

	c.Wiring.CheckLink(sub.Link.Name, len(sub.Codecs))

	var slotMask = c.SlotMask(channels)
	if n := bits.OnesCount32(slotMask); n < channels {
		logger.Warn("slot mask has fewer slots than channels",
			"link", sub.Link.Name, "mask", fmt.Sprintf("0x%x", slotMask), "slots", n, "channels", channels)
	}

	var offsets = c.Wiring.Slots.Offsets(channels)

	if sub.Stream == Playback {
		err = sub.CPU.SetTDMSlot(0, slotMask, TDMSlots, slotWidth)
		if err != nil {
			return c.fail(sub.CPU, "set_tdm_slot", "rx_mask", int64(slotMask), err)
		}

		err = sub.CPU.SetChannelMap(channels, offsets, 0, nil)
		if err != nil {
			return c.fail(sub.CPU, "set_channel_map", "tx_num", int64(channels), err)
		}
	} else {
		err = sub.CPU.SetTDMSlot(slotMask, 0, TDMSlots, slotWidth)
		if err != nil {
			return c.fail(sub.CPU, "set_tdm_slot", "tx_mask", int64(slotMask), err)
		}

		err = sub.CPU.SetChannelMap(0, nil, channels, offsets)
		if err != nil {
			return c.fail(sub.CPU, "set_channel_map", "rx_num", int64(channels), err)
		}
	}

	for j, codec := range sub.Codecs {
		var amp = c.Wiring.Amp(j)

		// DAI driver's clock
		err = codec.SetSysclk(0, AmpSysclkHz, ClockIn)
		if err != nil {
			return c.fail(codec, "set_sysclk", "freq", AmpSysclkHz, err)
		}

		// and the component's
		err = codec.Component().SetSysclk(0, 0, AmpSysclkHz, ClockIn)
		if err != nil {
			return c.fail(codec, "component_set_sysclk", "freq", AmpSysclkHz, err)
		}

		var rx = amp.RxSlots()
		err = codec.SetChannelMap(0, nil, len(rx), rx)
		if err != nil {
			return c.fail(codec, "set_channel_map", "rx_slot", int64(rx[0]), err)
		}

		logger.Debug("amplifier configured", "dai", codec.Name(), "position", amp.Position, "rx", rx)
	}

	return nil
}

func (c *TDMConfigurator) fail(dai DAI, call, param string, value int64, err error) error {
	var hwErr = hwCallFailed(dai, call, param, value, err)
	logger.Error("failed to "+call, "dai", dai.Name(), "err", hwErr)

	return hwErr
}
