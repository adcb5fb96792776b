package sm8150

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func Test_DAIFormat_String(t *testing.T) {
	assert.Equal(t, "CBS_CFS", DAIFmtCBSCFS.String())
	assert.Equal(t, "CBS_CFS|NB_NF|DSP_A", (DAIFmtCBSCFS | DAIFmtNBNF | DAIFmtDSPA).String())
	assert.Equal(t, "CBM_CFM|IB_IF|I2S", (DAIFmtCBMCFM | DAIFmtIBIF | DAIFmtI2S).String())
	assert.Equal(t, "0x0", DAIFormat(0).String())
}

func Test_FormatMask(t *testing.T) {
	var m FormatMask

	var _, ok = m.First()
	assert.False(t, ok)

	m.Set(FormatS32LE)
	m.Set(FormatS16LE)
	assert.True(t, m.Test(FormatS16LE))
	assert.False(t, m.Test(FormatS24LE))

	var first, _ = m.First()
	assert.Equal(t, FormatS16LE, first)

	m.None()
	assert.Equal(t, FormatMask(0), m)
	assert.Equal(t, PCMFormat(-1), (&HwParams{}).SampleFormat())
}

func Test_ParseFormat(t *testing.T) {
	for f := FormatS8; f <= formatLast; f++ {
		var parsed, err = ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	var f, err = ParseFormat("s24-le")
	require.NoError(t, err)
	assert.Equal(t, FormatS24LE, f)

	_, err = ParseFormat("S20_3LE")
	assert.Error(t, err)
}

func Test_ParseDirection(t *testing.T) {
	var d, err = ParseDirection("Capture")
	require.NoError(t, err)
	assert.Equal(t, Capture, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}

func Test_HardwareCallError(t *testing.T) {
	var dai = NewTrace().NewDAI("cs35l41.tl")

	var err error = hwCallFailed(dai, "set_sysclk", "freq", 12288000, unix.ENODEV)
	assert.Equal(t, "cs35l41.tl: set_sysclk failed (freq=12288000): no such device, err:-19", err.Error())
	assert.ErrorIs(t, err, unix.ENODEV)

	var wrapped = fmt.Errorf("QUAT_TDM_RX_0: hw_params: %w", err)
	var hwErr *HardwareCallError
	require.ErrorAs(t, wrapped, &hwErr)
	assert.Equal(t, -19, hwErr.Code())

	// No errno to report, so the code is -EIO.
	err = hwCallFailed(dai, "set_fmt", "fmt", 0, errors.New("bus wedged"))
	require.ErrorAs(t, err, &hwErr)
	assert.Equal(t, -int(unix.EIO), hwErr.Code())
}

func Test_Wiring(t *testing.T) {
	assert.Equal(t, MaxAmps, DefaultWiring.NumAmps())
	assert.Equal(t, "BR", DefaultWiring.Amp(0).Position)
	assert.Equal(t, []uint32{7}, DefaultWiring.Amp(3).RxSlots())
	assert.Equal(t, []uint32{0, 4, 8}, DefaultWiring.Slots.Offsets(3))
	assert.Len(t, DefaultWiring.Slots.Offsets(12), TDMSlots)
	assert.Nil(t, DefaultWiring.Slots.Offsets(0))

	assert.Panics(t, func() { DefaultWiring.Amp(MaxAmps) })
	assert.Panics(t, func() { DefaultWiring.CheckLink("x", 3) })
	assert.NotPanics(t, func() { DefaultWiring.CheckLink("x", MaxAmps) })
	assert.Panics(t, func() { NewAmpWiring("X") })
	assert.Panics(t, func() { NewAmpWiring("X", 1, 2, 3) })

	// Callers get copies, the table itself never changes.
	var rx = DefaultWiring.Amp(0).RxSlots()
	rx[0] = 99
	assert.Equal(t, []uint32{6}, DefaultWiring.Amp(0).RxSlots())

	var off = DefaultSlotLayout.Offsets(2)
	off[0] = 99
	assert.Equal(t, uint32(0), DefaultSlotLayout[0])
}
