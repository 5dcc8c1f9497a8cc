package hotkey

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ytget/solarclip/internal/model"
)

// SlotSource resolves a zero-based index to a slot
type SlotSource interface {
	Slot(index int) (model.ClipboardSlot, bool)
}

// Copier writes slot content to the clipboard asynchronously and handles
// its own failures.
type Copier interface {
	Copy(slotID int, content string)
}

// Source delivers actions to a dispatch function until stopped.
type Source interface {
	Name() string
	Start(dispatch func(Action)) error
	Stop()
}

// Dispatcher translates actions into slot copies and visibility toggles.
type Dispatcher struct {
	slots      SlotSource
	copier     Copier
	visibility *model.Visibility

	mu     sync.Mutex
	active Source
}

// NewDispatcher creates a dispatcher over the given collaborators
func NewDispatcher(slots SlotSource, copier Copier, visibility *model.Visibility) *Dispatcher {
	return &Dispatcher{
		slots:      slots,
		copier:     copier,
		visibility: visibility,
	}
}

// Dispatch performs a single action
func (d *Dispatcher) Dispatch(a Action) {
	switch a.Kind {
	case ActionCopySlot:
		slot, ok := d.slots.Slot(a.Index)
		if !ok {
			slog.Debug("hotkey for missing slot ignored", "index", a.Index)
			return
		}
		// Empty content is copied as an empty string.
		d.copier.Copy(slot.ID, slot.Content)
	case ActionToggleVisibility:
		visible := d.visibility.Toggle()
		slog.Debug("visibility toggled", "visible", visible)
	default:
		slog.Warn("unknown hotkey action", "kind", a.Kind)
	}
}

// Attach starts exactly one source: global if it starts, otherwise local.
// A running source is stopped first. It returns the source now feeding the
// dispatcher.
func (d *Dispatcher) Attach(global, local Source) (Source, error) {
	d.Detach()

	if global != nil {
		err := global.Start(d.Dispatch)
		if err == nil {
			d.setActive(global)
			slog.Info("hotkeys attached", "source", global.Name())
			return global, nil
		}
		slog.Warn("global hotkeys unavailable, using window shortcuts", "err", err)
	}

	if local == nil {
		return nil, fmt.Errorf("no hotkey source available")
	}
	if err := local.Start(d.Dispatch); err != nil {
		return nil, fmt.Errorf("start %s hotkeys: %w", local.Name(), err)
	}
	d.setActive(local)
	slog.Info("hotkeys attached", "source", local.Name())
	return local, nil
}

// Detach stops the active source, if any
func (d *Dispatcher) Detach() {
	d.mu.Lock()
	active := d.active
	d.active = nil
	d.mu.Unlock()

	if active != nil {
		active.Stop()
	}
}

// Active returns the source currently feeding the dispatcher
func (d *Dispatcher) Active() Source {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

func (d *Dispatcher) setActive(s Source) {
	d.mu.Lock()
	d.active = s
	d.mu.Unlock()
}
