package sm8150

/*------------------------------------------------------------------
 *
 * Purpose:	Backend endpoint identities.
 *
 * Description:	These are the Q6AFE port numbers the DSP uses for its
 *		TDM interfaces.  The device tree names a backend DAI link
 *		by one of these numbers and it stays fixed for the life
 *		of the card.
 *
 *		Each TDM group has 8 receive and 8 transmit ports,
 *		interleaved RX_0, TX_0, RX_1, TX_1, ...
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"strconv"
	"strings"
)

type EndpointID int

const (
	PrimaryTDMRx0    EndpointID = 24
	PrimaryTDMTx0    EndpointID = 25
	SecondaryTDMRx0  EndpointID = 40
	SecondaryTDMTx0  EndpointID = 41
	TertiaryTDMRx0   EndpointID = 56
	TertiaryTDMTx0   EndpointID = 57
	QuaternaryTDMRx0 EndpointID = 72
	QuaternaryTDMTx0 EndpointID = 73
)

// Upper bound on port ids, sizes per-port state arrays.
const AFEPortMax = 137

const tdmPortsPerGroup = 16

var tdmGroupNames = []struct {
	base EndpointID
	name string
}{
	{PrimaryTDMRx0, "PRIMARY"},
	{SecondaryTDMRx0, "SECONDARY"},
	{TertiaryTDMRx0, "TERTIARY"},
	{QuaternaryTDMRx0, "QUATERNARY"},
}

// Valid reports whether id can index per-port state.
func (id EndpointID) Valid() bool {
	return id >= 0 && id < AFEPortMax
}

func (id EndpointID) String() string {
	for _, g := range tdmGroupNames {
		if id >= g.base && id < g.base+tdmPortsPerGroup {
			var off = int(id - g.base)
			var dir = IfThenElse(off%2 == 0, "RX", "TX")

			return fmt.Sprintf("%s_TDM_%s_%d", g.name, dir, off/2)
		}
	}

	return fmt.Sprintf("AFE_PORT_%d", int(id))
}

// ParseEndpoint accepts the names String produces, case insensitive,
// or a bare port number.
func ParseEndpoint(s string) (EndpointID, error) {
	var want = strings.ToUpper(strings.TrimSpace(s))

	for _, g := range tdmGroupNames {
		for id := g.base; id < g.base+tdmPortsPerGroup; id++ {
			if id.String() == want {
				return id, nil
			}
		}
	}

	if n, err := strconv.Atoi(want); err == nil {
		var id = EndpointID(n)
		if !id.Valid() {
			return 0, fmt.Errorf("endpoint %d out of range 0..%d", n, AFEPortMax-1)
		}

		return id, nil
	}

	if rest, ok := strings.CutPrefix(want, "AFE_PORT_"); ok {
		return ParseEndpoint(rest)
	}

	return 0, fmt.Errorf("unknown endpoint %q", s)
}

// Because sometimes it's really convenient to have C's ternary ?:
func IfThenElse[T any](x bool, a T, b T) T { //nolint:ireturn
	if x {
		return a
	} else {
		return b
	}
}
