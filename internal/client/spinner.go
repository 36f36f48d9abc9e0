package client

import "time"

const DefaultSpinnerGrace = 300 * time.Millisecond

// SpinnerGate decides whether a loading indicator should be displayed for a
// call. Calls that resolve within Grace never show one.
type SpinnerGate struct {
	Grace time.Duration
}

func NewSpinnerGate(grace time.Duration) SpinnerGate {
	if grace < 0 {
		grace = 0
	}
	return SpinnerGate{Grace: grace}
}

// Visible reports whether the indicator is shown elapsed after the call was issued.
func (g SpinnerGate) Visible(elapsed time.Duration, resolved bool) bool {
	return !resolved && elapsed >= g.Grace
}
