package sm8150

import (
	"fmt"
	"strings"
)

// ClockDirection says whether a DAI takes its system clock in or drives it out.
type ClockDirection int

const (
	ClockIn  ClockDirection = 0
	ClockOut ClockDirection = 1
)

func (d ClockDirection) String() string {
	return IfThenElse(d == ClockOut, "out", "in")
}

// DAIFormat holds the SND_SOC_DAIFMT_* bit fields: framing in the low
// nibble, clock inversion in bits 8-11, clock provider role in bits 12-15.
type DAIFormat uint32

const (
	DAIFmtI2S    DAIFormat = 1
	DAIFmtRightJ DAIFormat = 2
	DAIFmtLeftJ  DAIFormat = 3
	DAIFmtDSPA   DAIFormat = 4
	DAIFmtDSPB   DAIFormat = 5

	DAIFmtNBNF DAIFormat = 0 << 8
	DAIFmtNBIF DAIFormat = 2 << 8
	DAIFmtIBNF DAIFormat = 3 << 8
	DAIFmtIBIF DAIFormat = 4 << 8

	DAIFmtCBMCFM DAIFormat = 1 << 12
	DAIFmtCBSCFM DAIFormat = 2 << 12
	DAIFmtCBMCFS DAIFormat = 3 << 12
	DAIFmtCBSCFS DAIFormat = 4 << 12

	daiFmtFormatMask   DAIFormat = 0x000f
	daiFmtInvMask      DAIFormat = 0x0f00
	daiFmtProviderMask DAIFormat = 0xf000
)

func (f DAIFormat) String() string {
	var parts []string

	switch f & daiFmtProviderMask {
	case DAIFmtCBMCFM:
		parts = append(parts, "CBM_CFM")
	case DAIFmtCBSCFM:
		parts = append(parts, "CBS_CFM")
	case DAIFmtCBMCFS:
		parts = append(parts, "CBM_CFS")
	case DAIFmtCBSCFS:
		parts = append(parts, "CBS_CFS")
	}

	switch f & daiFmtInvMask {
	case DAIFmtNBIF:
		parts = append(parts, "NB_IF")
	case DAIFmtIBNF:
		parts = append(parts, "IB_NF")
	case DAIFmtIBIF:
		parts = append(parts, "IB_IF")
	default:
		if f&daiFmtFormatMask != 0 {
			parts = append(parts, "NB_NF")
		}
	}

	switch f & daiFmtFormatMask {
	case DAIFmtI2S:
		parts = append(parts, "I2S")
	case DAIFmtRightJ:
		parts = append(parts, "RIGHT_J")
	case DAIFmtLeftJ:
		parts = append(parts, "LEFT_J")
	case DAIFmtDSPA:
		parts = append(parts, "DSP_A")
	case DAIFmtDSPB:
		parts = append(parts, "DSP_B")
	}

	if len(parts) == 0 {
		return fmt.Sprintf("0x%x", uint32(f))
	}

	return strings.Join(parts, "|")
}

// LPASS clock id of the quaternary TDM bit clock, as the DSP side DAI knows it.
const ClockQuaternaryTDMIBit = 0x206

// DAI is the slice of a digital audio interface driver this package
// drives.  Every call blocks until the control bus transaction is done.
type DAI interface {
	Name() string
	SetTDMSlot(txMask, rxMask uint32, slots, slotWidth int) error
	SetChannelMap(txNum int, txSlots []uint32, rxNum int, rxSlots []uint32) error
	SetSysclk(clkID int, freq uint, dir ClockDirection) error
	SetFormat(format DAIFormat) error
}

// Component is the codec device behind a DAI, with its own clock tree.
type Component interface {
	SetSysclk(clkID, source int, freq uint, dir ClockDirection) error
}

// CodecDAI is one external amplifier interface on the link.
type CodecDAI interface {
	DAI
	Component() Component
}

// Substream is what the host runtime hands us when a backend stream opens:
// the link it belongs to, the CPU side DAI and the amplifiers.
type Substream struct {
	Stream Direction
	Link   *DAILink
	CPU    DAI
	Codecs []CodecDAI
}

func (s *Substream) Endpoint() EndpointID {
	return s.Link.CPUEndpoint
}
