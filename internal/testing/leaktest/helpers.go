// Package leaktest holds test helpers that catch goroutines left running
// after a component is shut down.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay = 10 * time.Millisecond
	drainDelay  = 50 * time.Millisecond
	pollEvery   = 10 * time.Millisecond
)

// GoroutineChecker records a goroutine baseline and compares against it later.
type GoroutineChecker struct {
	t        testing.TB
	baseline int
}

// NewGoroutineChecker snapshots the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	time.Sleep(settleDelay)
	return &GoroutineChecker{t: t, baseline: runtime.NumGoroutine()}
}

// Check fails the test when more than tolerance goroutines outlived the baseline.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	runtime.Gosched()
	time.Sleep(drainDelay)
	runtime.GC()

	after := runtime.NumGoroutine()
	if leaked := after - g.baseline; leaked > tolerance {
		g.t.Errorf("goroutine leak: baseline=%d after=%d leaked=%d tolerance=%d",
			g.baseline, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires the goroutine count to return to baseline.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines polls until at most target goroutines are running.
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= target {
			return
		}
		time.Sleep(pollEvery)
	}
	t.Errorf("timed out waiting for goroutines: current=%d target=%d", runtime.NumGoroutine(), target)
}
