package core

import "time"

// Pacer gates an action so that consecutive firings are at least one
// interval apart. Callers poll Ready every frame and act only when it
// reports true.
type Pacer struct {
	interval time.Duration
	last     time.Time
}

// NewPacer constructs a Pacer with the given interval. Non-positive
// intervals fire on every poll.
func NewPacer(interval time.Duration) *Pacer {
	p := &Pacer{}
	p.SetInterval(interval)
	return p
}

// SetInterval changes the minimum spacing between firings.
func (p *Pacer) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	p.interval = interval
}

// Interval returns the current spacing.
func (p *Pacer) Interval() time.Duration { return p.interval }

// Ready reports whether the pacer may fire at now and, if so, records now as
// the latest firing. The first poll after construction or Reset always fires.
func (p *Pacer) Ready(now time.Time) bool {
	if !p.last.IsZero() && now.Sub(p.last) < p.interval {
		return false
	}
	p.last = now
	return true
}

// Mark records a firing at now without polling.
func (p *Pacer) Mark(now time.Time) { p.last = now }

// Reset forgets the last firing so the next poll fires immediately.
func (p *Pacer) Reset() { p.last = time.Time{} }

// IntervalFromMillis converts a millisecond count into a Duration.
func IntervalFromMillis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
