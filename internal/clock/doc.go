// Package clock abstracts the time operations the sequencer and the
// contact form depend on, so tests can drive them deterministically.
//
// Production code receives [Real]; tests receive [Fake] and move time
// forward with [FakeClock.Advance]. Timers registered while Advance is
// running (for example a callback that schedules its successor) fire in
// the same Advance call when their deadline falls inside the advanced
// window, which lets a test step through a whole chain of delays with a
// single call:
//
//	clk := clock.Fake(time.Unix(0, 0))
//	clk.AfterFunc(10*time.Millisecond, func() {
//		clk.AfterFunc(10*time.Millisecond, done)
//	})
//	clk.Advance(20 * time.Millisecond) // both callbacks have run
package clock
