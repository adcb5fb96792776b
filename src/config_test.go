package sm8150

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testBoard = `
card:
  name: test-card
  links:
    - name: MultiMedia1
    - name: QUAT_TDM_RX_0
      no_pcm: true
      cpu: QUATERNARY_TDM_RX_0
      codecs: [amp0, amp1, amp2, amp3]
    - name: QUAT_TDM_TX_0
      no_pcm: true
      cpu: 73
      codecs: [amp0, amp1, amp2, amp3]
tdm:
  slot_mask: contiguous
startup:
  ignore_errors: true
log:
  level: debug
  timestamp_format: "%H:%M:%S"
`

func Test_ParseConfig(t *testing.T) {
	var cfg, err = ParseConfig([]byte(testBoard))
	require.NoError(t, err)

	assert.Equal(t, "test-card", cfg.Card.Name)
	require.Len(t, cfg.Card.Links, 3)
	assert.False(t, cfg.Card.Links[0].NoPCM)
	assert.Equal(t, QuaternaryTDMRx0, cfg.Card.Links[1].CPU)
	assert.Equal(t, QuaternaryTDMTx0, cfg.Card.Links[2].CPU)
	assert.Equal(t, []string{"amp0", "amp1", "amp2", "amp3"}, cfg.Card.Links[2].Codecs)
	assert.Equal(t, "contiguous", cfg.TDM.SlotMask)
	assert.True(t, cfg.Startup.IgnoreErrors)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "%H:%M:%S", cfg.Log.TimestampFormat)
}

func Test_ParseConfig_Defaults(t *testing.T) {
	var cfg, err = ParseConfig([]byte("tdm:\n  slot_mask: hardwired\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func Test_ParseConfig_Invalid(t *testing.T) {
	var cases = map[string]string{
		"bad yaml":          "card: [",
		"unknown endpoint":  "card:\n  links:\n    - {name: x, no_pcm: true, cpu: OCTAL_TDM_RX_0}\n",
		"endpoint range":    "card:\n  links:\n    - {name: x, no_pcm: true, cpu: 999}\n",
		"no name":           "card:\n  links:\n    - {no_pcm: true, cpu: 72}\n",
		"duplicate":         "card:\n  links:\n    - {name: x, no_pcm: true, cpu: 72}\n    - {name: x, no_pcm: true, cpu: 73}\n",
		"too many codecs":   "card:\n  links:\n    - {name: x, no_pcm: true, cpu: 72, codecs: [a, b, c, d, e]}\n",
		"slot mask":         "tdm:\n  slot_mask: odd\n",
		"short channel map": "card:\n  links:\n    - {name: x, no_pcm: true, cpu: 72, codecs: [a, b]}\n",
		"no codecs":         "card:\n  links:\n    - {name: x, no_pcm: true, cpu: QUATERNARY_TDM_TX_0}\n",
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			var _, err = ParseConfig([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func Test_LoadConfig(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testBoard), 0o600))

	var cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "test-card", cfg.Card.Name)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_Config_Links(t *testing.T) {
	var cfg = DefaultConfig()
	var links = cfg.Links()

	require.Len(t, links, 3)
	assert.Equal(t, "QUAT_TDM_RX_0", links[1].Name)
	assert.True(t, links[1].NoPCM)
	assert.Equal(t, QuaternaryTDMRx0, links[1].CPUEndpoint)

	// Links get their own copy of the codec list.
	links[1].Codecs[0] = "changed"
	assert.Equal(t, "cs35l41.br", cfg.Card.Links[1].Codecs[0])
}

func Test_EndpointID_YAMLRoundTrip(t *testing.T) {
	var out, err = yaml.Marshal(LinkConfig{Name: "x", NoPCM: true, CPU: QuaternaryTDMTx0})
	require.NoError(t, err)
	assert.Contains(t, string(out), "cpu: QUATERNARY_TDM_TX_0")

	var back LinkConfig
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, QuaternaryTDMTx0, back.CPU)
}
