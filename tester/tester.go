// Package tester contains fakes of the bus interfaces, for testing drivers without hardware.
package tester

// Failer is the part of testing.TB (or *quicktest.C) the fakes use to report misuse.
type Failer interface {
	Helper()
	Fatalf(format string, args ...interface{})
}
