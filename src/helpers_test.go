package sm8150

import (
	"testing"
)

var testAmps = []string{"cs35l41.br", "cs35l41.tr", "cs35l41.bl", "cs35l41.tl"}

// quietLogs silences the package logger for the duration of a test.
func quietLogs(t testing.TB) {
	t.Helper()

	var old = logger
	SetLogger(nil)

	t.Cleanup(func() {
		logger = old
	})
}

func newTestSubstream(ep EndpointID, dir Direction) (*Substream, *Trace) {
	var trace = NewTrace()
	var link = &DAILink{Name: ep.String(), NoPCM: true, CPUEndpoint: ep, Codecs: testAmps}
	var p = TraceProvider{Trace: trace}

	return &Substream{
		Stream: dir,
		Link:   link,
		CPU:    p.CPUDAI(link),
		Codecs: p.CodecDAIs(link),
	}, trace
}

func callStrings(calls []Call) []string {
	var out = make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.String()
	}

	return out
}

// ampCalls is what a fully successful amplifier loop issues.
func ampCalls() []string {
	return []string{
		"cs35l41.br set_sysclk(0, 12288000, in)",
		"cs35l41.br component_set_sysclk(0, 0, 12288000, in)",
		"cs35l41.br set_channel_map(0, NULL, 1, [6])",
		"cs35l41.tr set_sysclk(0, 12288000, in)",
		"cs35l41.tr component_set_sysclk(0, 0, 12288000, in)",
		"cs35l41.tr set_channel_map(0, NULL, 1, [7])",
		"cs35l41.bl set_sysclk(0, 12288000, in)",
		"cs35l41.bl component_set_sysclk(0, 0, 12288000, in)",
		"cs35l41.bl set_channel_map(0, NULL, 1, [6])",
		"cs35l41.tl set_sysclk(0, 12288000, in)",
		"cs35l41.tl component_set_sysclk(0, 0, 12288000, in)",
		"cs35l41.tl set_channel_map(0, NULL, 1, [7])",
	}
}
