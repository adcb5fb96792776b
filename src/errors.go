package sm8150

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

var (
	ErrUnsupportedFormat    = errors.New("unsupported sample format")
	ErrUnrecognizedEndpoint = errors.New("unrecognized endpoint")
)

// HardwareCallError is returned when a DAI or component call fails.
// Param and Value name the argument most likely at fault.
type HardwareCallError struct {
	Device string
	Call   string
	Param  string
	Value  int64
	Err    error
}

func (e *HardwareCallError) Error() string {
	return fmt.Sprintf("%s: %s failed (%s=%d): %s, err:%d", e.Device, e.Call, e.Param, e.Value, e.Err, e.Code())
}

func (e *HardwareCallError) Unwrap() error {
	return e.Err
}

// Code is the kernel style negative errno for the failure.
// Errors that carry no errno report -EIO.
func (e *HardwareCallError) Code() int {
	var errno unix.Errno
	if errors.As(e.Err, &errno) {
		return -int(errno)
	}

	return -int(unix.EIO)
}

func hwCallFailed(dai DAI, call, param string, value int64, err error) error {
	return &HardwareCallError{
		Device: dai.Name(),
		Call:   call,
		Param:  param,
		Value:  value,
		Err:    err,
	}
}
