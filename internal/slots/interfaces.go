package slots

import (
	"context"
	"errors"

	"github.com/ytget/solarclip/internal/model"
)

// ErrNoData is returned by a Persister when nothing usable is stored.
var ErrNoData = errors.New("no persisted slots")

// Persister reads and writes the whole slot collection.
type Persister interface {
	Load(ctx context.Context) (model.Slots, error)
	Save(ctx context.Context, slots model.Slots) error
}

// Store defines the slot operations used by the UI and hotkeys.
type Store interface {
	SetUpdateCallback(func(model.Slots))
	SetLoadCallback(func(model.Slots))
	Load(ctx context.Context) model.Slots
	Slots() model.Slots
	Slot(index int) (model.ClipboardSlot, bool)
	UpdateField(id int, field model.SlotField, value string) model.Slots
}
