package core

import "time"

// FixedStep paces simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step time.Duration
	next time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now, sleep: time.Sleep}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Due reports whether a tick is due and consumes it. The first call is
// always due. Ticks missed while the caller was busy are dropped.
func (f *FixedStep) Due() bool {
	now := f.now()
	if f.next.IsZero() || !now.Before(f.next) {
		f.schedule(now)
		return true
	}
	return false
}

// Wait blocks until the next tick is due and consumes it.
func (f *FixedStep) Wait() {
	if !f.next.IsZero() {
		if d := f.next.Sub(f.now()); d > 0 {
			f.sleep(d)
		}
	}
	f.schedule(f.now())
}

func (f *FixedStep) schedule(now time.Time) {
	if f.next.IsZero() || now.Sub(f.next) >= f.step {
		f.next = now.Add(f.step)
		return
	}
	f.next = f.next.Add(f.step)
}
