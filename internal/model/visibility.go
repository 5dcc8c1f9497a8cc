package model

import "sync"

// Visibility owns the show/hide state of the widget. It starts visible and
// is not persisted.
type Visibility struct {
	mu       sync.Mutex
	visible  bool
	onChange func(visible bool)
}

// NewVisibility creates a visibility state that starts visible
func NewVisibility() *Visibility {
	return &Visibility{visible: true}
}

// SetChangeCallback sets the function called after every change
func (v *Visibility) SetChangeCallback(fn func(visible bool)) {
	v.mu.Lock()
	v.onChange = fn
	v.mu.Unlock()
}

// Visible returns the current state
func (v *Visibility) Visible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visible
}

// Toggle flips the state and returns the new value
func (v *Visibility) Toggle() bool {
	v.mu.Lock()
	v.visible = !v.visible
	visible, fn := v.visible, v.onChange
	v.mu.Unlock()

	if fn != nil {
		fn(visible)
	}
	return visible
}

// Set forces the state, notifying only on change
func (v *Visibility) Set(visible bool) {
	v.mu.Lock()
	changed := v.visible != visible
	v.visible = visible
	fn := v.onChange
	v.mu.Unlock()

	if changed && fn != nil {
		fn(visible)
	}
}
