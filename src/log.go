package sm8150

/*------------------------------------------------------------------
 *
 * Purpose:	Diagnostics for the machine driver.
 *
 * Description:	Everything goes through one package logger so the
 *		command line tool can redirect it, change the level,
 *		or silence it in tests.  Messages follow the kernel
 *		habit of naming the function and the errno.
 *
 *------------------------------------------------------------------*/

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = newLogger(os.Stderr, log.InfoLevel)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: DriverName,
		Level:  level,
	})
}

// SetLogger replaces the package logger.  Passing nil discards all output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = newLogger(io.Discard, log.FatalLevel)
	}

	logger = l
}

// ConfigureLogging points the package logger at w with the named level
// ("debug", "info", "warn", "error").
func ConfigureLogging(w io.Writer, level string) error {
	var lvl, err = log.ParseLevel(level)
	if err != nil {
		return err
	}

	logger = newLogger(w, lvl)

	return nil
}
