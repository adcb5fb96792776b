package sm8150

// The operating point the amplifier array is strapped for.
const (
	BackendRate     = 48000
	BackendChannels = 2
	BackendFormat   = FormatS24LE
)

// FixupFunc narrows a backend link's parameters before they are committed.
type FixupFunc func(link *DAILink, params *HwParams) error

// FixupBackendParams pins rate, channel count and sample format to the one
// combination the backend supports, whatever the front end asked for.
func FixupBackendParams(link *DAILink, params *HwParams) error {
	params.Rate.Fix(BackendRate)
	params.Channels.Fix(BackendChannels)
	params.Format.None()
	params.Format.Set(BackendFormat)

	if link != nil {
		logger.Debug("backend fixup", "link", link.Name, "params", params)
	}

	return nil
}
