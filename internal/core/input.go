package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionPrimary          // Space, left click - short jump
	ActionSecondary        // X, right click - long jump
	ActionStart            // Enter - start a run
	ActionBack             // B, Escape - leave the game
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionSecondary:
		return "Secondary"
	case ActionStart:
		return "Start"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// InputHandler receives actions dispatched on an InputBus.
type InputHandler func(Action)

// InputBus fans input actions out to subscribed handlers.
// Subscriptions are keyed so subscribing twice under the same key is a no-op.
type InputBus struct {
	order    []string
	handlers map[string]InputHandler
}

// NewInputBus creates an empty input bus.
func NewInputBus() *InputBus {
	return &InputBus{handlers: make(map[string]InputHandler)}
}

// Subscribe registers h under key. An existing subscription for key is kept.
func (b *InputBus) Subscribe(key string, h InputHandler) {
	if _, ok := b.handlers[key]; ok {
		return
	}
	b.handlers[key] = h
	b.order = append(b.order, key)
}

// Unsubscribe removes the handler registered under key, if any.
func (b *InputBus) Unsubscribe(key string) {
	if _, ok := b.handlers[key]; !ok {
		return
	}
	delete(b.handlers, key)
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Dispatch delivers a to every handler in subscription order.
func (b *InputBus) Dispatch(a Action) {
	// Handlers may unsubscribe while being called.
	keys := append([]string(nil), b.order...)
	for _, k := range keys {
		if h, ok := b.handlers[k]; ok {
			h(a)
		}
	}
}

// DispatchFrame delivers every action set in the frame, in Action order.
func (b *InputBus) DispatchFrame(f InputFrame) {
	for a := ActionPrimary; a <= ActionQuit; a++ {
		if f.Has(a) {
			b.Dispatch(a)
		}
	}
}
