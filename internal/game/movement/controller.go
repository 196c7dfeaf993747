// Package movement implements the player movement controller: discrete
// "jump N tiles" commands become timed position tweens, and each completed
// jump reports the cumulative tile index reached.
package movement

import (
	"time"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// inputKey identifies the controller's subscription on the input bus.
const inputKey = "movement"

// Body is the scene object the controller moves.
type Body interface {
	Position() core.Vec2
	SetPosition(p core.Vec2)
}

// Animator plays the player's jump clips.
type Animator interface {
	// ClipDuration returns the length of the named clip, or false if the clip
	// does not exist.
	ClipDuration(name string) (time.Duration, bool)
	// Play starts the named clip.
	Play(name string)
}

// InputSource delivers input actions to subscribed handlers.
// *core.InputBus implements it.
type InputSource interface {
	Subscribe(key string, h core.InputHandler)
	Unsubscribe(key string)
}

// JumpEndFunc receives the cumulative tile index after a jump lands.
type JumpEndFunc func(moveIndex int)

// Options configure a Controller. Animator and Input are optional.
type Options struct {
	TileSize        float64
	DefaultDuration time.Duration
	Animator        Animator
	Input           InputSource
}

// Point is a Body that only stores a position.
type Point struct {
	pos core.Vec2
}

// Position returns the stored position.
func (p *Point) Position() core.Vec2 { return p.pos }

// SetPosition stores a new position.
func (p *Point) SetPosition(v core.Vec2) { p.pos = v }

// Controller moves the player by whole tiles.
type Controller struct {
	body     Body
	opts     Options
	tween    Tween
	jumping  bool
	step     int
	duration time.Duration

	moveIndex   int
	inputActive bool
	listeners   []JumpEndFunc
}

var _ core.Component = (*Controller)(nil)

// NewController creates a controller for body. A nil body is replaced by a
// Point at the origin.
func NewController(body Body, opts Options) *Controller {
	if body == nil {
		body = &Point{}
	}
	if opts.TileSize <= 0 {
		opts.TileSize = config.DefaultJumperConfig().Road.TileSize
	}
	if opts.DefaultDuration <= 0 {
		opts.DefaultDuration = config.DefaultJumperConfig().Player.DefaultJumpDuration
	}
	return &Controller{
		body:     body,
		opts:     opts,
		duration: opts.DefaultDuration,
	}
}

// OnJumpEnd registers fn to be called every time a jump lands.
func (c *Controller) OnJumpEnd(fn JumpEndFunc) {
	if fn != nil {
		c.listeners = append(c.listeners, fn)
	}
}

// Start implements core.Component. Input stays off until SetInputActive.
func (c *Controller) Start() {}

// SetInputActive subscribes or unsubscribes the controller's input handler.
// Repeating the current state is a no-op.
func (c *Controller) SetInputActive(active bool) {
	if active == c.inputActive {
		return
	}
	c.inputActive = active
	if c.opts.Input == nil {
		return
	}
	if active {
		c.opts.Input.Subscribe(inputKey, c.handleInput)
	} else {
		c.opts.Input.Unsubscribe(inputKey)
	}
}

// InputActive reports whether the controller is listening for input.
func (c *Controller) InputActive() bool { return c.inputActive }

// handleInput maps the primary action to a one-tile jump and the secondary
// action to a two-tile jump.
func (c *Controller) handleInput(a core.Action) {
	switch a {
	case core.ActionPrimary:
		c.JumpByStep(1)
	case core.ActionSecondary:
		c.JumpByStep(2)
	}
}

// JumpByStep starts a jump of 1 or 2 tiles. It is ignored while another jump
// is in flight and for any other step count.
func (c *Controller) JumpByStep(step int) {
	if c.jumping {
		return
	}
	if step != 1 && step != 2 {
		return
	}

	c.jumping = true
	c.step = step

	clip := clipForStep(step)
	c.duration = c.opts.DefaultDuration
	if c.opts.Animator != nil {
		if d, ok := c.opts.Animator.ClipDuration(clip); ok && d > 0 {
			c.duration = d
		}
	}

	from := c.body.Position()
	to := from.Add(core.Vec2{X: float64(step) * c.opts.TileSize})
	c.tween.Start(from, to, c.duration)

	if c.opts.Animator != nil {
		c.opts.Animator.Play(clip)
	}
	c.moveIndex += step
}

// Update advances an in-flight jump by dt. On the frame the accumulated time
// exceeds the jump duration the body is placed exactly on the target and
// jump-end listeners are notified.
func (c *Controller) Update(dt time.Duration) {
	if !c.jumping {
		return
	}

	next, done := c.tween.Step(c.body.Position(), dt)
	c.body.SetPosition(next)
	if !done {
		return
	}

	c.jumping = false
	for _, fn := range c.listeners {
		fn(c.moveIndex)
	}
}

// Reset zeroes the cumulative tile index. An in-flight jump is unaffected.
func (c *Controller) Reset() {
	c.moveIndex = 0
}

// SetPosition places the body directly, without a tween.
func (c *Controller) SetPosition(p core.Vec2) {
	c.body.SetPosition(p)
}

// Position returns the body's current position.
func (c *Controller) Position() core.Vec2 { return c.body.Position() }

// MoveIndex returns the cumulative tile index.
func (c *Controller) MoveIndex() int { return c.moveIndex }

// Jumping reports whether a jump is in flight.
func (c *Controller) Jumping() bool { return c.jumping }

// CurrentStep returns the step count of the current or last jump.
func (c *Controller) CurrentStep() int { return c.step }

// Target returns the landing position of the current or last jump.
func (c *Controller) Target() core.Vec2 { return c.tween.Target() }

// JumpDuration returns the duration used for the current or last jump.
func (c *Controller) JumpDuration() time.Duration { return c.duration }

// Speed returns the current jump speed in units per second.
func (c *Controller) Speed() float64 { return c.tween.Speed() }

// Progress returns how far the current jump has advanced, in [0, 1].
func (c *Controller) Progress() float64 { return c.tween.Progress() }

func clipForStep(step int) string {
	if step == 1 {
		return config.ClipOneStep
	}
	return config.ClipTwoStep
}
