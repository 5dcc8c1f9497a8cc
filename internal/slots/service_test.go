package slots

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/solarclip/internal/model"
)

type memoryPersister struct {
	mu      sync.Mutex
	stored  model.Slots
	loadErr error
	saveErr error
	saves   []model.Slots
}

func (m *memoryPersister) Load(context.Context) (model.Slots, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.stored.Clone(), nil
}

func (m *memoryPersister) Save(_ context.Context, slots model.Slots) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves = append(m.saves, slots.Clone())
	if m.saveErr != nil {
		return m.saveErr
	}
	m.stored = slots.Clone()
	return nil
}

func (m *memoryPersister) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.saves)
}

func TestNewServiceStartsWithDefaults(t *testing.T) {
	s := NewService(&memoryPersister{}, 5)

	assert.Equal(t, model.DefaultSlots(5), s.Slots())
	assert.False(t, s.Loaded())

	s = NewService(&memoryPersister{}, 42)
	assert.Len(t, s.Slots(), model.DefaultSlotCount)
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"no data", ErrNoData},
		{"io failure", errors.New("permission denied")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &memoryPersister{loadErr: tt.err}
			s := NewService(p, 5)

			got := s.Load(context.Background())
			s.Wait()

			assert.Equal(t, model.DefaultSlots(5), got)
			assert.True(t, s.Loaded())
			assert.Equal(t, 1, p.saveCount())
		})
	}
}

func TestLoadNormalizesStoredSlots(t *testing.T) {
	p := &memoryPersister{stored: model.Slots{
		{ID: 2, Label: "Two", Content: "b"},
		{ID: 9, Label: "Nine", Content: "z"},
	}}
	s := NewService(p, 3)

	got := s.Load(context.Background())
	s.Wait()

	want := model.Slots{
		{ID: 1, Label: "Slot 1"},
		{ID: 2, Label: "Two", Content: "b"},
		{ID: 3, Label: "Slot 3"},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, want, p.stored)
}

func TestNoSaveBeforeLoad(t *testing.T) {
	p := &memoryPersister{stored: model.DefaultSlots(5).UpdateField(2, model.SlotFieldContent, "persisted")}
	s := NewService(p, 5)

	s.UpdateField(1, model.SlotFieldContent, "early")
	s.Wait()
	assert.Equal(t, 0, p.saveCount())

	got := s.Load(context.Background())
	s.Wait()
	assert.Equal(t, "persisted", got[1].Content)
	assert.Equal(t, 1, p.saveCount())
}

func TestUpdateFieldSavesAfterLoad(t *testing.T) {
	p := &memoryPersister{loadErr: ErrNoData}
	s := NewService(p, 5)
	s.Load(context.Background())
	s.Wait()

	var notified []model.Slots
	s.SetUpdateCallback(func(slots model.Slots) { notified = append(notified, slots) })

	got := s.UpdateField(3, model.SlotFieldLabel, "X")
	s.Wait()

	want := model.DefaultSlots(5).UpdateField(3, model.SlotFieldLabel, "X")
	assert.Equal(t, want, got)
	assert.Equal(t, want, p.stored)
	assert.Equal(t, 2, p.saveCount())
	require.Len(t, notified, 1)
	assert.Equal(t, want, notified[0])
}

func TestUpdateFieldUnknownIDIsNoop(t *testing.T) {
	p := &memoryPersister{loadErr: ErrNoData}
	s := NewService(p, 5)
	s.Load(context.Background())
	s.Wait()

	got := s.UpdateField(99, model.SlotFieldContent, "nope")
	s.Wait()

	assert.Equal(t, model.DefaultSlots(5), got)
	assert.Equal(t, 1, p.saveCount())
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	p := &memoryPersister{loadErr: ErrNoData, saveErr: errors.New("disk full")}
	s := NewService(p, 5)
	s.Load(context.Background())

	s.UpdateField(1, model.SlotFieldContent, "hello")
	s.Wait()

	slot, ok := s.Slot(0)
	require.True(t, ok)
	assert.Equal(t, "hello", slot.Content)
}

func TestServiceFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.json")

	first := NewService(NewFilePersister(path), 5)
	first.Load(context.Background())
	first.Wait()
	first.UpdateField(1, model.SlotFieldContent, "hello")
	first.Wait()
	first.UpdateField(2, model.SlotFieldLabel, "Greeting")
	first.Wait()
	saved := first.Slots()

	second := NewService(NewFilePersister(path), 5)
	got := second.Load(context.Background())
	second.Wait()

	assert.Equal(t, saved, got)
}

func TestSlotByIndex(t *testing.T) {
	s := NewService(&memoryPersister{}, 5)

	slot, ok := s.Slot(4)
	require.True(t, ok)
	assert.Equal(t, 5, slot.ID)

	_, ok = s.Slot(5)
	assert.False(t, ok)
}

func TestLoadCallbackOnlyOnLoad(t *testing.T) {
	s := NewService(&memoryPersister{}, 5)
	var loads, updates int
	s.SetLoadCallback(func(model.Slots) { loads++ })
	s.SetUpdateCallback(func(model.Slots) { updates++ })

	s.UpdateField(1, model.SlotFieldContent, "before")
	s.Load(context.Background())
	s.UpdateField(1, model.SlotFieldContent, "after")
	s.Wait()

	assert.Equal(t, 1, loads)
	assert.Equal(t, 3, updates)
}
