package main

/*------------------------------------------------------------------
 *
 * Purpose:	Dry run of the SM8150 backend link setup.
 *
 * Description:	Builds the card from a board file (or the built in
 *		default), opens one backend stream the way the host
 *		audio runtime would, and prints every DAI call the
 *		machine driver makes.  No hardware is touched.
 *
 *		Useful for checking a board file, or for seeing what
 *		a particular failing amplifier does to the sequence:
 *
 *		sm8150-tdm -e QUATERNARY_TDM_RX_0 --fail cs35l41.bl:set_channel_map
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"io"
	"os"

	sm8150 "github.com/doismellburning/sm8150snd/src"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var flags = pflag.NewFlagSet("sm8150-tdm", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	var configFileName = flags.StringP("config-file", "c", "", "Board configuration file (YAML).  Built in SM8150 speaker layout if omitted.")
	var endpointStr = flags.StringP("endpoint", "e", "QUATERNARY_TDM_RX_0", "Backend endpoint to open, by name or AFE port number.")
	var directionStr = flags.StringP("direction", "d", "playback", "Stream direction, playback or capture.")
	var rate = flags.Uint32P("rate", "r", 48000, "Requested sample rate.")
	var channels = flags.Uint32P("channels", "n", 2, "Requested channel count.")
	var formatStr = flags.StringP("format", "f", "S24_LE", "Requested sample format, e.g. S16_LE, S24_LE.")
	var faults = flags.StringArray("fail", nil, `Make a DAI call fail, device:op[:errno].
Ops are set_tdm_slot, set_channel_map, set_sysclk, component_set_sysclk, set_fmt.
May be repeated.`)
	var slotMask = flags.String("slot-mask", "", "Override tdm.slot_mask: hardwired or contiguous.")
	var timestampFormat = flags.StringP("timestamp-format", "T", "", "Precede trace lines with 'strftime' format time stamp.")
	var debug = flags.BoolP("debug", "D", false, "Debug logging.")
	var version = flags.BoolP("version", "v", false, "Print version and exit.")
	var help = flags.BoolP("help", "h", false, "Display help text.")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "sm8150-tdm - dry run of SM8150 backend TDM link configuration.\n")
		fmt.Fprintf(stderr, "\n")
		fmt.Fprintf(stderr, "Usage: sm8150-tdm [options]\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *help {
		flags.Usage()
		return 0
	}

	if *version {
		sm8150.PrintVersion(stdout, "sm8150-tdm", *debug)
		return 0
	}

	var cfg = sm8150.DefaultConfig()
	if *configFileName != "" {
		var err error
		cfg, err = sm8150.LoadConfig(*configFileName)
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			return 1
		}
	}

	if *slotMask != "" {
		cfg.TDM.SlotMask = *slotMask
	}

	if flags.Changed("timestamp-format") {
		cfg.Log.TimestampFormat = *timestampFormat
	}

	var level = cfg.Log.Level
	if *debug {
		level = "debug"
	}

	if err := sm8150.ConfigureLogging(stderr, level); err != nil {
		fmt.Fprintf(stderr, "log level %q: %s\n", level, err)
		return 1
	}

	var endpoint, epErr = sm8150.ParseEndpoint(*endpointStr)
	if epErr != nil {
		fmt.Fprintf(stderr, "%s\n", epErr)
		return 1
	}

	var direction, dirErr = sm8150.ParseDirection(*directionStr)
	if dirErr != nil {
		fmt.Fprintf(stderr, "%s\n", dirErr)
		return 1
	}

	var format, fmtErr = sm8150.ParseFormat(*formatStr)
	if fmtErr != nil {
		fmt.Fprintf(stderr, "%s\n", fmtErr)
		return 1
	}

	var trace = sm8150.NewTrace()
	for _, f := range *faults {
		if err := trace.ParseFault(f); err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			return 1
		}
	}

	var card, cardErr = sm8150.NewCard(cfg, sm8150.TraceProvider{Trace: trace})
	if cardErr != nil {
		fmt.Fprintf(stderr, "%s\n", cardErr)
		return 1
	}

	var link, linkErr = card.LinkForEndpoint(endpoint)
	if linkErr != nil {
		fmt.Fprintf(stderr, "%s\n", linkErr)
		return 1
	}

	var params = sm8150.NewHwParams(*rate, *channels, format)
	fmt.Fprintf(stdout, "%s %s on %s, requested %s\n", link.Name, direction, endpoint, params)

	var openErr = card.OpenStream(link, direction, params)

	if err := trace.Print(stdout, cfg.Log.TimestampFormat); err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	}

	if openErr != nil {
		fmt.Fprintf(stdout, "FAILED: %s\n", openErr)
		return 1
	}

	fmt.Fprintf(stdout, "OK: %s\n", params)

	return 0
}
