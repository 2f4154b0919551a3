// Package assertx guards caller contract violations that are not
// recoverable errors. Checks are off by default and cost one atomic load.
package assertx

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/quickwritereader/simplevector/logutil"
)

var enabled atomic.Bool

// SetEnabled turns checking on or off and returns the previous setting.
func SetEnabled(on bool) bool {
	return enabled.Swap(on)
}

// Enabled reports whether Check is active.
func Enabled() bool {
	return enabled.Load()
}

// Violation is the panic value raised by a failed check.
type Violation struct {
	Msg string
}

func (v Violation) Error() string {
	return "assertion failed: " + v.Msg
}

// Check panics with a Violation when checking is enabled and cond is false.
// The failure is logged through logutil before the panic.
func Check(cond bool, msg string, fields ...zap.Field) {
	if cond || !enabled.Load() {
		return
	}
	logutil.GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Error("assertion failed: "+msg, fields...)
	panic(Violation{Msg: msg})
}

// Checkf is Check with a formatted message and no fields.
func Checkf(cond bool, format string, args ...any) {
	if cond || !enabled.Load() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	logutil.GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Error("assertion failed: " + msg)
	panic(Violation{Msg: msg})
}
