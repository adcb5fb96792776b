package sm8150

/*------------------------------------------------------------------
 *
 * Purpose:	Board description file.
 *
 * Description:	On a real system the card layout comes from the device
 *		tree.  For bring-up and for the dry run tool we read
 *		the same information from YAML:
 *
 *		card:
 *		  name: sm8150-sndcard
 *		  links:
 *		    - name: QUAT_TDM_RX_0
 *		      no_pcm: true
 *		      cpu: QUATERNARY_TDM_RX_0
 *		      codecs: [cs35l41.br, cs35l41.tr, cs35l41.bl, cs35l41.tl]
 *		tdm:
 *		  slot_mask: hardwired		# or "contiguous"
 *		startup:
 *		  ignore_errors: false
 *		log:
 *		  level: info
 *		  timestamp_format: "%H:%M:%S"
 *
 *------------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DriverName = "sm8150"

type Config struct {
	Card    CardConfig    `yaml:"card"`
	TDM     TDMConfig     `yaml:"tdm"`
	Startup StartupConfig `yaml:"startup"`
	Log     LogConfig     `yaml:"log"`
}

type CardConfig struct {
	Name  string       `yaml:"name"`
	Links []LinkConfig `yaml:"links"`
}

type LinkConfig struct {
	Name   string     `yaml:"name"`
	NoPCM  bool       `yaml:"no_pcm"`
	CPU    EndpointID `yaml:"cpu"`
	Codecs []string   `yaml:"codecs,omitempty"`
}

type TDMConfig struct {
	// "hardwired" (default) or "contiguous"
	SlotMask string `yaml:"slot_mask"`
}

type StartupConfig struct {
	IgnoreErrors bool `yaml:"ignore_errors"`
}

type LogConfig struct {
	Level           string `yaml:"level"`
	TimestampFormat string `yaml:"timestamp_format"`
}

var ErrInvalidConfig = errors.New("invalid board config")

var defaultAmps = []string{"cs35l41.br", "cs35l41.tr", "cs35l41.bl", "cs35l41.tl"}

// DefaultConfig describes the stock SM8150 speaker setup: one front end
// and the quaternary TDM backends to the four amplifiers.
func DefaultConfig() *Config {
	return &Config{
		Card: CardConfig{
			Name: "sm8150-sndcard",
			Links: []LinkConfig{
				{Name: "MultiMedia1"},
				{Name: "QUAT_TDM_RX_0", NoPCM: true, CPU: QuaternaryTDMRx0, Codecs: defaultAmps},
				{Name: "QUAT_TDM_TX_0", NoPCM: true, CPU: QuaternaryTDMTx0, Codecs: defaultAmps},
			},
		},
		TDM:     TDMConfig{SlotMask: "hardwired"},
		Startup: StartupConfig{IgnoreErrors: false},
		Log:     LogConfig{Level: "info"},
	}
}

// ParseConfig reads a board file.  Fields left out keep their defaults.
func ParseConfig(data []byte) (*Config, error) {
	var cfg = DefaultConfig()
	cfg.Card.Links = nil

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if len(cfg.Card.Links) == 0 {
		cfg.Card.Links = DefaultConfig().Card.Links
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func LoadConfig(path string) (*Config, error) {
	var data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading board config: %w", err)
	}

	var cfg, parseErr = ParseConfig(data)
	if parseErr != nil {
		return nil, fmt.Errorf("%s: %w", path, parseErr)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var seen = make(map[string]bool)

	for i, l := range c.Card.Links {
		if l.Name == "" {
			return fmt.Errorf("%w: link %d has no name", ErrInvalidConfig, i)
		}

		if seen[l.Name] {
			return fmt.Errorf("%w: duplicate link %q", ErrInvalidConfig, l.Name)
		}

		seen[l.Name] = true

		if l.NoPCM && !l.CPU.Valid() {
			return fmt.Errorf("%w: backend link %q has no cpu endpoint", ErrInvalidConfig, l.Name)
		}

		if len(l.Codecs) > MaxAmps {
			return fmt.Errorf("%w: link %q has %d codecs, at most %d", ErrInvalidConfig, l.Name, len(l.Codecs), MaxAmps)
		}

		// Quad TDM links drive every amplifier in the channel map.
		if l.NoPCM && (l.CPU == QuaternaryTDMRx0 || l.CPU == QuaternaryTDMTx0) && len(l.Codecs) != DefaultWiring.NumAmps() {
			return fmt.Errorf("%w: link %q has %d codecs, channel map has %d", ErrInvalidConfig, l.Name, len(l.Codecs), DefaultWiring.NumAmps())
		}
	}

	if _, err := c.SlotMaskPolicy(); err != nil {
		return err
	}

	return nil
}

// SlotMaskPolicy maps tdm.slot_mask to a policy.
func (c *Config) SlotMaskPolicy() (SlotMaskPolicy, error) {
	switch c.TDM.SlotMask {
	case "", "hardwired":
		return HardwiredSlotMask, nil
	case "contiguous":
		return ContiguousSlotMask, nil
	default:
		return nil, fmt.Errorf("%w: unknown tdm.slot_mask %q", ErrInvalidConfig, c.TDM.SlotMask)
	}
}

// Links builds the card's link list the way the topology layer would.
func (c *Config) Links() []*DAILink {
	var links = make([]*DAILink, 0, len(c.Card.Links))

	for _, l := range c.Card.Links {
		links = append(links, &DAILink{
			Name:        l.Name,
			NoPCM:       l.NoPCM,
			CPUEndpoint: l.CPU,
			Codecs:      append([]string(nil), l.Codecs...),
		})
	}

	return links
}

func (id *EndpointID) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	var parsed, err = ParseEndpoint(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}

	*id = parsed

	return nil
}

func (id EndpointID) MarshalYAML() (any, error) {
	return id.String(), nil
}
