// Package progress provides cosmetic activity indicators shown while a
// solver runs.
//
// An Indicator never reads or writes solver state; Stop joins the background
// goroutine before returning, so once Stop returns the indicator is inert.
// Nop satisfies the interface without doing anything and is the default for
// library callers and tests.
package progress
