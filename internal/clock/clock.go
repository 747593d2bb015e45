// Package clock lets time-dependent code run against the wall clock in
// production and a manually advanced clock in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) *Ticker
}

// Ticker mirrors time.Ticker so fake tickers can share the type.
type Ticker struct {
	C    <-chan time.Time
	stop func()
}

func (t *Ticker) Stop() {
	if t.stop != nil {
		t.stop()
	}
}

func Real() Clock {
	return realClock{}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) NewTicker(d time.Duration) *Ticker {
	t := time.NewTicker(d)
	return &Ticker{C: t.C, stop: t.Stop}
}
