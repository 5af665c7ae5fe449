package engine

import "github.com/vovakirdan/carrot-jump/internal/core"

// Keyboard tracks held and just-pressed actions across frames.
type Keyboard struct {
	held map[core.Action]bool
	prev map[core.Action]bool
	once map[core.Action][]func()
}

// NewKeyboard creates a keyboard with nothing held.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		held: make(map[core.Action]bool),
		prev: make(map[core.Action]bool),
		once: make(map[core.Action][]func()),
	}
}

// carry copies the held state of another keyboard, so keys that stay
// down across a scene start are not reported as just pressed.
func (k *Keyboard) carry(from *Keyboard) {
	for a, on := range from.held {
		if on {
			k.held[a] = true
		}
	}
}

// Update records the frame's input and fires one-shot listeners.
func (k *Keyboard) Update(in core.InputFrame) {
	k.prev, k.held = k.held, k.prev
	clear(k.held)
	for a, on := range in.Actions {
		if on {
			k.held[a] = true
		}
	}

	for a, fns := range k.once {
		if !k.JustPressed(a) {
			continue
		}
		delete(k.once, a)
		for _, fn := range fns {
			fn()
		}
	}
}

// IsDown reports whether the action is held this frame.
func (k *Keyboard) IsDown(a core.Action) bool {
	return k.held[a]
}

// JustPressed reports whether the action is held this frame but was not
// held in the previous one.
func (k *Keyboard) JustPressed(a core.Action) bool {
	return k.held[a] && !k.prev[a]
}

// Once registers fn to run the next time the action is just pressed.
func (k *Keyboard) Once(a core.Action, fn func()) {
	k.once[a] = append(k.once[a], fn)
}
