package slots

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/solarclip/internal/model"
)

// Service owns the slot collection
type Service struct {
	persister Persister
	count     int

	mu       sync.RWMutex
	slots    model.Slots
	loaded   bool
	onUpdate func(model.Slots) // callback for UI updates
	onLoad   func(model.Slots)

	saves sync.WaitGroup
}

// NewService creates a slot service holding count default slots until Load
// resolves.
func NewService(persister Persister, count int) *Service {
	if count < 1 || count > model.MaxSlotCount {
		count = model.DefaultSlotCount
	}
	return &Service{
		persister: persister,
		count:     count,
		slots:     model.DefaultSlots(count),
	}
}

// SetUpdateCallback sets the callback invoked after every change
func (s *Service) SetUpdateCallback(callback func(model.Slots)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// SetLoadCallback sets the callback invoked once Load has replaced the
// in-memory collection. Editors refresh from it; echoes of their own edits
// arrive only through the update callback.
func (s *Service) SetLoadCallback(callback func(model.Slots)) {
	s.mu.Lock()
	s.onLoad = callback
	s.mu.Unlock()
}

// Load reads persisted slots, falling back to defaults when nothing usable
// is stored. The result is normalized to the configured count and saved.
func (s *Service) Load(ctx context.Context) model.Slots {
	stored, err := s.persister.Load(ctx)
	switch {
	case errors.Is(err, ErrNoData):
		slog.Info("using default slots", "reason", err)
		stored = nil
	case err != nil:
		slog.Warn("failed to load slots, using defaults", "err", err)
		stored = nil
	}

	slots := stored.Normalize(s.count)

	s.mu.Lock()
	s.slots = slots
	s.loaded = true
	s.mu.Unlock()

	s.notifyUpdate(slots)
	s.notifyLoad(slots)
	s.Save(slots)
	return slots.Clone()
}

// Save writes slots in the background. Failures are logged and the
// in-memory collection is kept.
func (s *Service) Save(slots model.Slots) {
	payload := slots.Clone()
	opID := newOperationID()

	s.saves.Add(1)
	go func() {
		defer s.saves.Done()
		if err := s.persister.Save(context.Background(), payload); err != nil {
			slog.Error("failed to save slots", "op", opID, "err", err)
			return
		}
		slog.Debug("slots saved", "op", opID, "count", len(payload))
	}()
}

// UpdateField replaces one field of the slot with id and returns the new
// collection. Unknown ids leave the collection unchanged. Changes are saved
// only once the initial Load has resolved.
func (s *Service) UpdateField(id int, field model.SlotField, value string) model.Slots {
	s.mu.Lock()
	next := s.slots.UpdateField(id, field, value)
	changed := !next.Equal(s.slots)
	s.slots = next
	loaded := s.loaded
	s.mu.Unlock()

	if !changed {
		return next.Clone()
	}

	s.notifyUpdate(next)
	if loaded {
		s.Save(next)
	}
	return next.Clone()
}

// Slots returns a copy of the current collection
func (s *Service) Slots() model.Slots {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slots.Clone()
}

// Slot returns the slot at a zero-based index
func (s *Service) Slot(index int) (model.ClipboardSlot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slots.ByIndex(index)
}

// Loaded reports whether the initial Load has resolved
func (s *Service) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Wait blocks until every pending save has finished
func (s *Service) Wait() {
	s.saves.Wait()
}

func (s *Service) notifyUpdate(slots model.Slots) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()

	if callback != nil {
		callback(slots.Clone())
	}
}

func (s *Service) notifyLoad(slots model.Slots) {
	s.mu.RLock()
	callback := s.onLoad
	s.mu.RUnlock()

	if callback != nil {
		callback(slots.Clone())
	}
}

func newOperationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
