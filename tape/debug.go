// Copyright 2025 DeepTape Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tape

import "github.com/deeptape-ml/deeptape/internal/resource"

// Violation identifies a disposal-discipline defect.
type Violation = resource.Violation

// Disposal-discipline violations.
const (
	// DoubleClose means a handle was closed more than once.
	DoubleClose = resource.DoubleClose
	// Leak means a handle was reclaimed, or checked, without being closed.
	Leak = resource.Leak
)

// SetDebug enables or disables disposal-discipline checking. With
// checking off (the default), double closes are silent no-ops and
// leaks go unreported; production behavior is unchanged either way.
func SetDebug(on bool) {
	resource.SetDebug(on)
}

// Debug reports whether disposal-discipline checking is enabled.
func Debug() bool {
	return resource.Debug()
}

// SetViolationHandler replaces the hook invoked for each violation
// while debug checking is enabled. Passing nil restores the default
// stderr report.
func SetViolationHandler(fn func(v Violation, label string)) {
	resource.SetViolationHandler(fn)
}
