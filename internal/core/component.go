package core

import "time"

// Component is a piece of game logic driven by the platform's frame loop.
// Start is called once before the first Update; Update is called once per
// tick with the frame time that elapsed since the previous tick.
type Component interface {
	Start()
	Update(dt time.Duration)
}
