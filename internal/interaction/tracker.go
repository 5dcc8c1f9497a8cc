package interaction

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/ytget/solarclip/internal/platform"
)

// Capturer is the window collaborator that switches between capturing mouse
// input and passing it through.
type Capturer interface {
	SetIgnoreMouseEvents(ignore bool, opts platform.CaptureOptions) error
}

// Tracker holds the set of active interaction sources. The overlay captures
// mouse input iff the set is non-empty.
type Tracker struct {
	mu        sync.Mutex
	sources   SourceSet
	capturer  Capturer
	listeners map[int]func(active bool)
	nextID    int
}

// NewTracker creates a tracker that drives capturer on every transition
// between an empty and a non-empty source set.
func NewTracker(capturer Capturer) *Tracker {
	return &Tracker{
		capturer:  capturer,
		listeners: make(map[int]func(bool)),
	}
}

// Add marks src as active. Adding an active source is a no-op.
func (t *Tracker) Add(src Source) {
	t.mu.Lock()
	before := t.sources
	t.sources = t.sources.With(src)
	after := t.sources
	t.mu.Unlock()

	t.transition(before, after)
}

// Remove marks src as inactive. Removing an inactive source is a no-op.
func (t *Tracker) Remove(src Source) {
	t.mu.Lock()
	before := t.sources
	t.sources = t.sources.Without(src)
	after := t.sources
	t.mu.Unlock()

	t.transition(before, after)
}

// Set adds or removes src depending on active
func (t *Tracker) Set(src Source, active bool) {
	if active {
		t.Add(src)
	} else {
		t.Remove(src)
	}
}

// Has reports whether src is currently active
func (t *Tracker) Has(src Source) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sources.Has(src)
}

// IsAnyActive reports whether any source is active
func (t *Tracker) IsAnyActive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.sources.Empty()
}

// Sources returns a snapshot of the active set
func (t *Tracker) Sources() SourceSet {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sources
}

// Sync pushes the current capture state to the collaborator once,
// independent of transitions. Used at startup.
func (t *Tracker) Sync() {
	t.apply(t.IsAnyActive())
}

// Subscribe registers fn to be called after every capture transition. The
// returned function unregisters it and may be called more than once.
func (t *Tracker) Subscribe(fn func(active bool)) (unsubscribe func()) {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.listeners[id] = fn
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.listeners, id)
			t.mu.Unlock()
		})
	}
}

func (t *Tracker) transition(before, after SourceSet) {
	if before.Empty() == after.Empty() {
		return
	}

	active := !after.Empty()
	slog.Debug("interaction capture changed", "active", active, "sources", after.String())
	t.apply(active)

	t.mu.Lock()
	listeners := make([]func(bool), 0, len(t.listeners))
	for _, fn := range t.listeners {
		listeners = append(listeners, fn)
	}
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(active)
	}
}

func (t *Tracker) apply(active bool) {
	if t.capturer == nil {
		return
	}

	var err error
	if active {
		err = t.capturer.SetIgnoreMouseEvents(false, platform.CaptureOptions{})
	} else {
		err = t.capturer.SetIgnoreMouseEvents(true, platform.CaptureOptions{Forward: true})
	}
	if err != nil && !errors.Is(err, platform.ErrUnsupported) {
		slog.Warn("failed to update mouse capture", "active", active, "err", err)
	}
}
