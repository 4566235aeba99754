package resource_test

import (
	"testing"

	"github.com/deeptape-ml/deeptape/internal/resource"
)

// record enables debug checking with a recording violation handler for
// one test, restoring defaults on cleanup.
func record(t *testing.T) *[]resource.Violation {
	t.Helper()
	var got []resource.Violation
	resource.SetDebug(true)
	resource.SetViolationHandler(func(v resource.Violation, _ string) {
		got = append(got, v)
	})
	t.Cleanup(func() {
		resource.SetDebug(false)
		resource.SetViolationHandler(nil)
	})
	return &got
}

// TestToken_CloseOnce tests that a single close is accepted silently.
func TestToken_CloseOnce(t *testing.T) {
	got := record(t)

	tok := resource.NewToken("test")
	if tok.Closed() {
		t.Error("new token should not be closed")
	}
	if !tok.Close() {
		t.Error("first Close() should return true")
	}
	if !tok.Closed() {
		t.Error("Closed() should report true after Close()")
	}
	if len(*got) != 0 {
		t.Errorf("expected no violations, got %v", *got)
	}
}

// TestToken_DoubleCloseReported tests the debug double-close assertion.
func TestToken_DoubleCloseReported(t *testing.T) {
	got := record(t)

	tok := resource.NewToken("test")
	tok.Close()
	if tok.Close() {
		t.Error("second Close() should return false")
	}
	if len(*got) != 1 || (*got)[0] != resource.DoubleClose {
		t.Errorf("expected [double close], got %v", *got)
	}
}

// TestToken_DoubleCloseSilentInRelease tests that violations are not
// reported with debug checking off.
func TestToken_DoubleCloseSilentInRelease(t *testing.T) {
	var got []resource.Violation
	resource.SetViolationHandler(func(v resource.Violation, _ string) {
		got = append(got, v)
	})
	t.Cleanup(func() { resource.SetViolationHandler(nil) })

	tok := resource.NewToken("test")
	tok.Close()
	if tok.Close() {
		t.Error("second Close() should return false even in release mode")
	}
	if len(got) != 0 {
		t.Errorf("expected no violations in release mode, got %v", got)
	}
}

// TestToken_AssertClosed tests the reclamation check: no violation
// after a proper close, a leak violation when the close was omitted.
func TestToken_AssertClosed(t *testing.T) {
	got := record(t)

	closed := resource.NewToken("closed")
	closed.Close()
	if !closed.AssertClosed() {
		t.Error("AssertClosed() should pass for a closed token")
	}
	if len(*got) != 0 {
		t.Errorf("expected no violations, got %v", *got)
	}

	leaked := resource.NewToken("leaked")
	if leaked.AssertClosed() {
		t.Error("AssertClosed() should fail for an unclosed token")
	}
	if len(*got) != 1 || (*got)[0] != resource.Leak {
		t.Errorf("expected [leak], got %v", *got)
	}
	leaked.Close() // keep the finalizer quiet
}

// TestViolation_String tests the violation names.
func TestViolation_String(t *testing.T) {
	if resource.DoubleClose.String() != "double close" {
		t.Errorf("DoubleClose.String() = %q", resource.DoubleClose.String())
	}
	if resource.Leak.String() != "leak" {
		t.Errorf("Leak.String() = %q", resource.Leak.String())
	}
}
