package panzoom

import (
	"fmt"
	"os"
	"time"
)

// debugReadoutInterval rate-limits the stderr readout during continuous
// gestures, which mutate the viewport at input-event frequency.
const debugReadoutInterval = 250 * time.Millisecond

// debugReadout is a viewport-change subscriber that prints the current
// state to stderr, at most once per interval.
type debugReadout struct {
	sub     Subscription
	last    time.Time
	pending bool
	state   State
}

func newDebugReadout(vp *Viewport) *debugReadout {
	r := &debugReadout{}
	r.sub = vp.Subscribe(r.observe)
	return r
}

// observe receives each state snapshot and prints it when the interval has
// elapsed. Skipped snapshots are not lost: the latest one prints on the
// next allowed tick.
func (r *debugReadout) observe(state State) {
	r.state = state
	r.pending = true
	now := time.Now()
	if now.Sub(r.last) < debugReadoutInterval {
		return
	}
	r.last = now
	r.pending = false
	_, _ = fmt.Fprintf(os.Stderr, "[panzoom] viewport offset=(%.1f, %.1f) scale=%.3f\n",
		state.OffsetX, state.OffsetY, state.Scale)
}

func (r *debugReadout) stop() {
	r.sub.Remove()
}
