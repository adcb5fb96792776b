package sm8150

/*------------------------------------------------------------------
 *
 * Purpose:	Stand-in DAI drivers that record what they are asked.
 *
 * Description:	Used by the dry run tool and the tests.  Every call is
 *		appended to a shared Trace in the order it happens, and
 *		a call can be made to fail with a chosen errno to see
 *		how far configuration gets.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lestrrat-go/strftime"
	"golang.org/x/sys/unix"
)

// Call is one recorded capability call.
type Call struct {
	At     time.Time
	Device string
	Op     string
	Args   []any
}

func (c Call) String() string {
	var args = make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}

	return fmt.Sprintf("%s %s(%s)", c.Device, c.Op, strings.Join(args, ", "))
}

// Errors a control bus transaction typically ends with.
var errnoNames = map[string]unix.Errno{
	"EIO":       unix.EIO,
	"EINVAL":    unix.EINVAL,
	"EBUSY":     unix.EBUSY,
	"ENODEV":    unix.ENODEV,
	"ENXIO":     unix.ENXIO,
	"ETIMEDOUT": unix.ETIMEDOUT,
	"EREMOTEIO": unix.EREMOTEIO,
	"ENOTSUP":   unix.ENOTSUP,
}

type fault struct {
	device string
	op     string
	errno  unix.Errno
}

// Trace collects calls from any number of recording DAIs.
type Trace struct {
	mu     sync.Mutex
	calls  []Call
	faults []fault
	now    func() time.Time
}

func NewTrace() *Trace {
	return &Trace{now: time.Now}
}

// FailOn makes the next and every later op on device return errno.
func (t *Trace) FailOn(device, op string, errno unix.Errno) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.faults = append(t.faults, fault{device: device, op: op, errno: errno})
}

// ParseFault reads "device:op" or "device:op:errno" (errno number or name
// such as EIO).  The errno defaults to EIO.
func (t *Trace) ParseFault(spec string) error {
	var parts = strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("bad fault %q, want device:op[:errno]", spec)
	}

	var errno = unix.EIO
	if len(parts) == 3 {
		var n, ok = errnoNames[strings.ToUpper(parts[2])]
		if !ok {
			var v, err = strconv.Atoi(parts[2])
			if err != nil || v <= 0 {
				return fmt.Errorf("bad errno %q in fault %q", parts[2], spec)
			}

			n = unix.Errno(v)
		}

		errno = n
	}

	t.FailOn(parts[0], parts[1], errno)

	return nil
}

func (t *Trace) record(device, op string, args ...any) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls = append(t.calls, Call{At: t.now(), Device: device, Op: op, Args: args})

	for _, f := range t.faults {
		if f.device == device && f.op == op {
			return f.errno
		}
	}

	return nil
}

// Calls returns a copy of everything recorded so far.
func (t *Trace) Calls() []Call {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]Call(nil), t.calls...)
}

func (t *Trace) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls = nil
}

// Print writes the trace, one call per line, each preceded by a
// strftime formatted time stamp when timestampFormat is not empty.
func (t *Trace) Print(w io.Writer, timestampFormat string) error {
	var f *strftime.Strftime
	if timestampFormat != "" {
		var err error
		f, err = strftime.New(timestampFormat)
		if err != nil {
			return fmt.Errorf("timestamp format %q: %w", timestampFormat, err)
		}
	}

	for _, c := range t.Calls() {
		var line = c.String()
		if f != nil {
			line = f.FormatString(c.At) + " " + line
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// RecordingDAI implements CodecDAI by recording into a Trace.
type RecordingDAI struct {
	name  string
	trace *Trace
}

func (t *Trace) NewDAI(name string) *RecordingDAI {
	return &RecordingDAI{name: name, trace: t}
}

func (d *RecordingDAI) Name() string {
	return d.name
}

func (d *RecordingDAI) SetTDMSlot(txMask, rxMask uint32, slots, slotWidth int) error {
	return d.trace.record(d.name, "set_tdm_slot", fmt.Sprintf("0x%x", txMask), fmt.Sprintf("0x%x", rxMask), slots, slotWidth)
}

func (d *RecordingDAI) SetChannelMap(txNum int, txSlots []uint32, rxNum int, rxSlots []uint32) error {
	return d.trace.record(d.name, "set_channel_map", txNum, slotList(txSlots), rxNum, slotList(rxSlots))
}

func (d *RecordingDAI) SetSysclk(clkID int, freq uint, dir ClockDirection) error {
	return d.trace.record(d.name, "set_sysclk", clkID, freq, dir)
}

func (d *RecordingDAI) SetFormat(format DAIFormat) error {
	return d.trace.record(d.name, "set_fmt", format)
}

func (d *RecordingDAI) Component() Component {
	return recordingComponent{d}
}

type recordingComponent struct {
	dai *RecordingDAI
}

func (c recordingComponent) SetSysclk(clkID, source int, freq uint, dir ClockDirection) error {
	return c.dai.trace.record(c.dai.name, "component_set_sysclk", clkID, source, freq, dir)
}

func slotList(s []uint32) string {
	if s == nil {
		return "NULL"
	}

	return fmt.Sprint(s)
}

// TraceProvider hands out recording DAIs named after the link's CPU
// endpoint and codec names, all sharing one Trace.
type TraceProvider struct {
	Trace *Trace
}

func (p TraceProvider) CPUDAI(link *DAILink) DAI {
	return p.Trace.NewDAI(link.CPUEndpoint.String())
}

func (p TraceProvider) CodecDAIs(link *DAILink) []CodecDAI {
	var out = make([]CodecDAI, len(link.Codecs))
	for i, name := range link.Codecs {
		out[i] = p.Trace.NewDAI(name)
	}

	return out
}
