package sm8150

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func Test_FixupBackendParams(t *testing.T) {
	quietLogs(t)

	rapid.Check(t, func(t *rapid.T) {
		var params = &HwParams{
			Rate: Interval{
				Min: rapid.Uint32Range(0, 384000).Draw(t, "rateMin"),
				Max: rapid.Uint32Range(0, 384000).Draw(t, "rateMax"),
			},
			Channels: Interval{
				Min: rapid.Uint32Range(0, 32).Draw(t, "channelsMin"),
				Max: rapid.Uint32Range(0, 32).Draw(t, "channelsMax"),
			},
			Format: FormatMask(rapid.Uint64().Draw(t, "format")),
		}

		require.NoError(t, FixupBackendParams(nil, params))

		assert.Equal(t, Interval{48000, 48000}, params.Rate)
		assert.Equal(t, Interval{2, 2}, params.Channels)
		assert.Equal(t, FormatMask(1<<FormatS24LE), params.Format)

		// Running it again changes nothing.
		var again = *params
		require.NoError(t, FixupBackendParams(nil, &again))
		assert.Equal(t, *params, again)
	})
}

func Test_FixupBackendParams_AlreadyMatching(t *testing.T) {
	quietLogs(t)

	var params = NewHwParams(48000, 2, FormatS24LE)
	var link = &DAILink{Name: "QUAT_TDM_RX_0", NoPCM: true, CPUEndpoint: QuaternaryTDMRx0}

	require.NoError(t, FixupBackendParams(link, params))
	assert.Equal(t, uint32(48000), params.RateHz())
	assert.Equal(t, 2, params.ChannelCount())
	assert.Equal(t, FormatS24LE, params.SampleFormat())
}
