package sm8150

// Bit clock for the quaternary TDM group: 8 slots x 32 bits x 48 kHz.
const QuadTDMBitClockHz = 12288000

// ClockMaster describes a link where the host drives bit clock and frame sync.
type ClockMaster struct {
	ClockID   int
	Freq      uint
	CPUFormat DAIFormat
	AmpFormat DAIFormat
}

// QuadTDMClockMaster is the clocking of the speaker link: host provides
// both clocks, amplifiers sample DSP-A frames on the falling edge.
var QuadTDMClockMaster = ClockMaster{
	ClockID:   ClockQuaternaryTDMIBit,
	Freq:      QuadTDMBitClockHz,
	CPUFormat: DAIFmtCBSCFS,
	AmpFormat: DAIFmtCBSCFS | DAIFmtNBNF | DAIFmtDSPA,
}

// StartupConfigurator sets up clocking when a backend stream opens.
//
// Older drivers ignored every return code here.  IgnoreErrors keeps that
// behaviour: failures are logged and startup still succeeds.
type StartupConfigurator struct {
	IgnoreErrors bool
}

// Startup applies m to sub.  A nil m means the link needs no clock setup.
func (s *StartupConfigurator) Startup(sub *Substream, m *ClockMaster) error {
	if m == nil {
		return nil
	}

	// The DSP DAI reads the direction argument as a stream number.
	var err = sub.CPU.SetSysclk(m.ClockID, m.Freq, ClockDirection(Playback))
	if err != nil {
		if err = s.check(hwCallFailed(sub.CPU, "set_sysclk", "clk_id", int64(m.ClockID), err)); err != nil {
			return err
		}
	}

	err = sub.CPU.SetFormat(m.CPUFormat)
	if err != nil {
		if err = s.check(hwCallFailed(sub.CPU, "set_fmt", "fmt", int64(m.CPUFormat), err)); err != nil {
			return err
		}
	}

	if len(sub.Codecs) == 0 {
		return nil
	}

	// Format goes to codec DAI 0 only.
	var codec = sub.Codecs[0]
	err = codec.SetFormat(m.AmpFormat)
	if err != nil {
		if err = s.check(hwCallFailed(codec, "set_fmt", "fmt", int64(m.AmpFormat), err)); err != nil {
			return err
		}
	}

	return nil
}

func (s *StartupConfigurator) check(err error) error {
	if s.IgnoreErrors {
		logger.Warn("startup call failed, continuing", "err", err)
		return nil
	}

	logger.Error("startup", "err", err)

	return err
}
