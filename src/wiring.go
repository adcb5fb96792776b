package sm8150

import "fmt"

// Hardware limits of the quaternary TDM bus on this board.
const (
	TDMSlots   = 8
	MaxAmps    = 4
	MaxRxSlots = 2
)

// SlotLayout gives, for each logical channel, the byte offset of its
// time slot within a TDM frame.
type SlotLayout [TDMSlots]uint32

// DefaultSlotLayout packs channels into consecutive 32-bit slots.
var DefaultSlotLayout = SlotLayout{0, 4, 8, 12, 16, 20, 24, 28}

// Offsets returns the offsets for the first n channels.
func (l SlotLayout) Offsets(n int) []uint32 {
	if n > TDMSlots {
		n = TDMSlots
	}

	if n <= 0 {
		return nil
	}

	var out = make([]uint32, n)
	copy(out, l[:n])

	return out
}

// AmpWiring is one amplifier's place on the bus: the speaker it drives
// and the receive slots it listens on.
type AmpWiring struct {
	Position string
	rx       [MaxRxSlots]uint32
	numRx    int
}

func NewAmpWiring(position string, rx ...uint32) AmpWiring {
	if len(rx) == 0 || len(rx) > MaxRxSlots {
		panic(fmt.Sprintf("amplifier %s: %d receive slots, want 1..%d", position, len(rx), MaxRxSlots))
	}

	var a = AmpWiring{Position: position, numRx: len(rx)}
	copy(a.rx[:], rx)

	return a
}

// RxSlots returns a copy of the receive slot list.
func (a AmpWiring) RxSlots() []uint32 {
	var out = make([]uint32, a.numRx)
	copy(out, a.rx[:a.numRx])

	return out
}

// Wiring ties the host slot layout to the amplifiers in link order.
// Amplifier i on the link is always Amp(i); there is no second table
// to keep in step.
type Wiring struct {
	Slots SlotLayout
	amps  [MaxAmps]AmpWiring
	count int
}

func NewWiring(slots SlotLayout, amps ...AmpWiring) Wiring {
	if len(amps) > MaxAmps {
		panic(fmt.Sprintf("wiring has %d amplifiers, bus carries at most %d", len(amps), MaxAmps))
	}

	var w = Wiring{Slots: slots, count: len(amps)}
	copy(w.amps[:], amps)

	return w
}

// Four CS35L41 amplifiers, two per side.  Bottom speakers take slot 6,
// top speakers slot 7.
var DefaultWiring = NewWiring(DefaultSlotLayout,
	NewAmpWiring("BR", 6),
	NewAmpWiring("TR", 7),
	NewAmpWiring("BL", 6),
	NewAmpWiring("TL", 7),
)

func (w Wiring) NumAmps() int {
	return w.count
}

// Amp returns the wiring for the i'th amplifier on the link.  Asking for
// one the board does not have is a wiring table bug and panics.
func (w Wiring) Amp(i int) AmpWiring {
	if i < 0 || i >= w.count {
		panic(fmt.Sprintf("amplifier %d not in channel map (%d entries)", i, w.count))
	}

	return w.amps[i]
}

// CheckLink panics unless the link has exactly as many amplifiers as the table.
func (w Wiring) CheckLink(link string, numCodecs int) {
	if numCodecs != w.count {
		panic(fmt.Sprintf("%s: link has %d codec DAIs but channel map has %d entries", link, numCodecs, w.count))
	}
}
