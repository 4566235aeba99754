// Package resource implements the close-exactly-once discipline used by
// evaluation handles.
//
// Every handle owns one Token. Closing the token twice, or dropping it
// without closing it, is a programming defect in the owning code. Those
// defects are reported only when debug checking is enabled; in release
// mode a second Close is a safe no-op and leaks go unreported.
//
// Detection is deterministic where it matters: Closed and AssertClosed
// can be called directly by tests and harnesses. The finalizer-based
// leak check is a best-effort safety net on top, attached only in debug
// mode because reclamation timing is not guaranteed.
package resource

import (
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
)

// Violation identifies a disposal-discipline defect.
type Violation int

const (
	// DoubleClose means Close was called more than once on one token.
	DoubleClose Violation = iota
	// Leak means a token was reclaimed, or checked, without ever being closed.
	Leak
)

// String returns a human-readable violation name.
func (v Violation) String() string {
	switch v {
	case DoubleClose:
		return "double close"
	case Leak:
		return "leak"
	default:
		return "unknown violation"
	}
}

var debug atomic.Bool

// handler holds the active violation hook as a func(Violation, string).
var handler atomic.Value

func init() {
	handler.Store(func(v Violation, label string) {
		fmt.Fprintf(os.Stderr, "resource: %s of %s\n", v, label)
	})
}

// SetDebug enables or disables disposal-discipline checking.
// With checking off, violations are silent and tokens carry no finalizer.
func SetDebug(on bool) {
	debug.Store(on)
}

// Debug reports whether disposal-discipline checking is enabled.
func Debug() bool {
	return debug.Load()
}

// SetViolationHandler replaces the hook invoked for each violation while
// debug checking is enabled. The default hook writes to stderr; it never
// panics, so enabling debug does not change program behavior, only
// diagnostics. Passing nil restores the default.
func SetViolationHandler(fn func(v Violation, label string)) {
	if fn == nil {
		fn = func(v Violation, label string) {
			fmt.Fprintf(os.Stderr, "resource: %s of %s\n", v, label)
		}
	}
	handler.Store(fn)
}

func report(v Violation, label string) {
	if !debug.Load() {
		return
	}
	handler.Load().(func(Violation, string))(v, label)
}

// Token is a close-exactly-once obligation.
//
// The zero value is not usable; tokens come from NewToken so the debug
// finalizer can be attached at creation time.
type Token struct {
	label  string
	closed atomic.Bool
}

// NewToken creates an open token. label names the owning resource in
// diagnostics. In debug mode the token carries a finalizer that reports
// a Leak if it is reclaimed unclosed.
func NewToken(label string) *Token {
	t := &Token{label: label}
	if debug.Load() {
		runtime.SetFinalizer(t, func(tok *Token) {
			tok.AssertClosed()
		})
	}
	return t
}

// Close marks the token closed and returns true on the first call.
// Subsequent calls return false and report DoubleClose.
func (t *Token) Close() bool {
	if t.closed.Swap(true) {
		report(DoubleClose, t.label)
		return false
	}
	if debug.Load() {
		runtime.SetFinalizer(t, nil)
	}
	return true
}

// Closed reports whether Close has been called. Deterministic; intended
// for test harnesses that must not depend on finalizer timing.
func (t *Token) Closed() bool {
	return t.closed.Load()
}

// AssertClosed is the reclamation check: it returns true if the token
// was closed and otherwise reports a Leak and returns false. The debug
// finalizer calls it; harnesses may call it directly.
func (t *Token) AssertClosed() bool {
	if t.closed.Load() {
		return true
	}
	report(Leak, t.label)
	return false
}
