package movement

import (
	"time"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Tween moves a position linearly towards a target over a fixed duration.
// It is advanced incrementally by Step and lands exactly on the target once
// the accumulated time exceeds the duration.
type Tween struct {
	start    core.Vec2
	target   core.Vec2
	velocity core.Vec2 // units per second
	elapsed  time.Duration
	duration time.Duration
	active   bool
}

// Start begins a tween from -> to lasting duration.
func (t *Tween) Start(from, to core.Vec2, duration time.Duration) {
	t.start = from
	t.target = to
	t.elapsed = 0
	t.duration = duration
	t.active = true

	secs := duration.Seconds()
	if secs > 0 {
		t.velocity = to.Add(from.Scale(-1)).Scale(1 / secs)
	} else {
		t.velocity = core.Vec2{}
	}
}

// Step advances the tween by dt starting from pos. While the accumulated time
// is within the duration it returns pos moved by velocity*dt; once the time
// exceeds the duration it returns the exact target and done=true.
func (t *Tween) Step(pos core.Vec2, dt time.Duration) (next core.Vec2, done bool) {
	if !t.active {
		return pos, false
	}

	t.elapsed += dt
	if t.elapsed > t.duration {
		t.active = false
		return t.target, true
	}
	return pos.Add(t.velocity.Scale(dt.Seconds())), false
}

// Active reports whether the tween is still running.
func (t *Tween) Active() bool { return t.active }

// Target returns the position the tween ends at.
func (t *Tween) Target() core.Vec2 { return t.target }

// From returns the start position of the current or last tween.
func (t *Tween) From() core.Vec2 { return t.start }

// Duration returns the total tween time.
func (t *Tween) Duration() time.Duration { return t.duration }

// Speed returns the scalar speed along the road axis, in units per second.
func (t *Tween) Speed() float64 { return t.velocity.X }

// Progress returns the elapsed fraction in [0, 1].
func (t *Tween) Progress() float64 {
	if !t.active {
		return 0
	}
	if t.duration <= 0 {
		return 1
	}
	return core.ClampF(float64(t.elapsed)/float64(t.duration), 0, 1)
}
