package sm8150

/*------------------------------------------------------------------
 *
 * Purpose:	Hook the backend links of a card up to the TDM logic.
 *
 * Description:	The topology layer parses the device tree into a list
 *		of DAI links.  Attach walks that list once and gives
 *		every backend (no_pcm) link our fixup and our startup
 *		and hw_params ops.  From then on the host runtime calls
 *		those hooks and they find what to do by looking the
 *		link's CPU endpoint up in one table of records.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"maps"
	"slices"
)

// LinkOps are the per-stream callbacks the host runtime makes on a link.
type LinkOps struct {
	Startup  func(sub *Substream) error
	HwParams func(sub *Substream, params *HwParams) error
}

// DAILink is one link of the card as the topology layer describes it.
type DAILink struct {
	Name        string
	NoPCM       bool
	CPUEndpoint EndpointID
	Codecs      []string

	Fixup FixupFunc
	Ops   *LinkOps
}

// EndpointConfig is everything this driver knows about one endpoint.
type EndpointConfig struct {
	ID EndpointID

	// Master is non-nil when the host must provide the clocks at startup.
	Master *ClockMaster

	// TDM is non-nil when hw_params programs a TDM slot layout.
	TDM *TDMConfigurator
}

type Registry struct {
	endpoints map[EndpointID]*EndpointConfig
	startup   StartupConfigurator
	ops       LinkOps
}

// NewRegistry builds the endpoint table for a board.
func NewRegistry(cfg *Config) (*Registry, error) {
	var policy, err = cfg.SlotMaskPolicy()
	if err != nil {
		return nil, err
	}

	var tdm = NewTDMConfigurator(DefaultWiring, policy)
	var master = QuadTDMClockMaster

	var r = &Registry{
		endpoints: map[EndpointID]*EndpointConfig{
			QuaternaryTDMRx0: {ID: QuaternaryTDMRx0, Master: &master, TDM: tdm},
			QuaternaryTDMTx0: {ID: QuaternaryTDMTx0, TDM: tdm},
		},
		startup: StartupConfigurator{IgnoreErrors: cfg.Startup.IgnoreErrors},
	}

	r.ops = LinkOps{
		Startup:  r.DispatchStartup,
		HwParams: r.DispatchHwParams,
	}

	return r, nil
}

// Lookup returns the record for id, or nil.
func (r *Registry) Lookup(id EndpointID) *EndpointConfig {
	return r.endpoints[id]
}

// Endpoints lists the recognised endpoints in order.
func (r *Registry) Endpoints() []EndpointID {
	return slices.Sorted(maps.Keys(r.endpoints))
}

// Attach installs the backend fixup and ops on every no_pcm link and
// returns how many links it touched.  Front end links are left alone.
func (r *Registry) Attach(links []*DAILink) int {
	var n = 0

	for _, link := range links {
		if !link.NoPCM {
			continue
		}

		link.Fixup = FixupBackendParams
		link.Ops = &r.ops
		n++

		logger.Debug("backend ops attached", "link", link.Name, "endpoint", link.CPUEndpoint)
	}

	return n
}

// DispatchStartup runs the startup configurator for the substream's endpoint.
// Endpoints without a record need nothing and succeed.
func (r *Registry) DispatchStartup(sub *Substream) error {
	var ep = r.Lookup(sub.Endpoint())
	if ep == nil {
		return nil
	}

	return r.startup.Startup(sub, ep.Master)
}

// DispatchHwParams runs the TDM configurator for the substream's endpoint.
func (r *Registry) DispatchHwParams(sub *Substream, params *HwParams) error {
	var ep = r.Lookup(sub.Endpoint())
	if ep == nil || ep.TDM == nil {
		var err = fmt.Errorf("%w: invalid dai id 0x%x", ErrUnrecognizedEndpoint, int(sub.Endpoint()))
		logger.Error("hw_params", "link", sub.Link.Name, "err", err)

		return err
	}

	return ep.TDM.Configure(sub, params)
}
