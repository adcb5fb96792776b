package sm8150

/*------------------------------------------------------------------
 *
 * Purpose:	The sound card as the host runtime sees it.
 *
 * Description:	Holds the link list after Attach, plus the per-port
 *		"stream prepared" flags.  OpenStream and CloseStream
 *		stand in for the host's backend open/close sequence:
 *		startup, fixup, hw_params, then mark the backend port
 *		prepared so a second open of it is not set up twice.
 *		Front end links carry no hooks and no prepared flag.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
)

// DAIProvider hands out driver instances for a link's DAIs.
type DAIProvider interface {
	CPUDAI(link *DAILink) DAI
	CodecDAIs(link *DAILink) []CodecDAI
}

type Card struct {
	Name       string
	DriverName string
	Links      []*DAILink

	registry       *Registry
	daiProvider    DAIProvider
	streamPrepared [AFEPortMax]bool
}

// NewCard builds the card from a board config and attaches backend ops.
func NewCard(cfg *Config, dais DAIProvider) (*Card, error) {
	var registry, err = NewRegistry(cfg)
	if err != nil {
		return nil, err
	}

	var card = &Card{
		Name:        cfg.Card.Name,
		DriverName:  DriverName,
		Links:       cfg.Links(),
		registry:    registry,
		daiProvider: dais,
	}

	var n = registry.Attach(card.Links)
	logger.Info("card registered", "card", card.Name, "links", len(card.Links), "backends", n)

	return card, nil
}

func (c *Card) Registry() *Registry {
	return c.registry
}

func (c *Card) Link(name string) (*DAILink, error) {
	for _, l := range c.Links {
		if l.Name == name {
			return l, nil
		}
	}

	return nil, fmt.Errorf("card %s has no link %q", c.Name, name)
}

// LinkForEndpoint finds the backend link whose CPU DAI is ep.
func (c *Card) LinkForEndpoint(ep EndpointID) (*DAILink, error) {
	for _, l := range c.Links {
		if l.NoPCM && l.CPUEndpoint == ep {
			return l, nil
		}
	}

	return nil, fmt.Errorf("card %s has no backend link on %s", c.Name, ep)
}

func (c *Card) Prepared(ep EndpointID) bool {
	return ep.Valid() && c.streamPrepared[ep]
}

// OpenStream runs the backend setup sequence for link.  requested is
// narrowed in place by the link's fixup.  Already prepared ports return
// without touching the hardware again.
func (c *Card) OpenStream(link *DAILink, dir Direction, requested *HwParams) error {
	if !link.NoPCM {
		logger.Debug("front end link, nothing to set up", "link", link.Name)
		return nil
	}

	var ep = link.CPUEndpoint
	if !ep.Valid() {
		return fmt.Errorf("%s: %w: 0x%x", link.Name, ErrUnrecognizedEndpoint, int(ep))
	}

	if c.streamPrepared[ep] {
		logger.Debug("stream already prepared", "link", link.Name)
		return nil
	}

	var sub = &Substream{
		Stream: dir,
		Link:   link,
		CPU:    c.daiProvider.CPUDAI(link),
		Codecs: c.daiProvider.CodecDAIs(link),
	}

	if link.Ops != nil {
		if err := link.Ops.Startup(sub); err != nil {
			return fmt.Errorf("%s: startup: %w", link.Name, err)
		}
	}

	if link.Fixup != nil {
		if err := link.Fixup(link, requested); err != nil {
			return fmt.Errorf("%s: fixup: %w", link.Name, err)
		}
	}

	if link.Ops != nil {
		if err := link.Ops.HwParams(sub, requested); err != nil {
			return fmt.Errorf("%s: hw_params: %w", link.Name, err)
		}
	}

	c.streamPrepared[ep] = true
	logger.Info("stream prepared", "link", link.Name, "dir", dir, "params", requested)

	return nil
}

// CloseStream clears the prepared flag so the next open reconfigures.
func (c *Card) CloseStream(link *DAILink) {
	if link.NoPCM && link.CPUEndpoint.Valid() {
		c.streamPrepared[link.CPUEndpoint] = false
	}
}
