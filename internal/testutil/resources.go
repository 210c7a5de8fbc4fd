// Package testutil holds helpers shared by frontsettings tests.
package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

// VerifyNoLeaks verifies that no goroutines are leaked during test execution.
// Call this at the beginning of tests that open databases or files.
//
// Example usage:
//
//	func TestWithDatabase(t *testing.T) {
//	    defer VerifyNoLeaks(t)
//	    // Test code that opens a database
//	}
func VerifyNoLeaks(t *testing.T) {
	t.Helper()
	goleak.VerifyNone(t, defaultOptions()...)
}

// defaultOptions returns common ignore patterns for testing framework goroutines
func defaultOptions() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreTopFunction("testing.tRunner.func1"),
		goleak.IgnoreTopFunction("testing.runTests"),
		goleak.IgnoreTopFunction("testing.(*M).Run"),
		goleak.IgnoreTopFunction("go.uber.org/goleak.(*opts).retry"),
		goleak.IgnoreTopFunction("time.Sleep"),
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	}
}
