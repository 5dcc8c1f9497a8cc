package hotkey

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/solarclip/internal/clip"
	"github.com/ytget/solarclip/internal/model"
	"github.com/ytget/solarclip/internal/slots"
)

type nopPersister struct{}

func (nopPersister) Load(context.Context) (model.Slots, error) { return nil, slots.ErrNoData }

func (nopPersister) Save(context.Context, model.Slots) error { return nil }

type memoryClipboard struct {
	mu     sync.Mutex
	writes []string
}

func (m *memoryClipboard) Name() string { return "memory" }

func (m *memoryClipboard) Available() bool { return true }

func (m *memoryClipboard) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = append(m.writes, text)
	return nil
}

func TestUpdateThenCopyFirstSlot(t *testing.T) {
	store := slots.NewService(nopPersister{}, model.DefaultSlotCount)
	store.Load(context.Background())

	board := &memoryClipboard{}
	copier := clip.NewService(board)
	vis := model.NewVisibility()
	d := NewDispatcher(store, copier, vis)

	store.UpdateField(1, model.SlotFieldContent, "hello")
	d.Dispatch(CopySlot(0))
	copier.Wait()
	store.Wait()

	require.Len(t, board.writes, 1)
	assert.Equal(t, "hello", board.writes[0])

	before := vis.Visible()
	d.Dispatch(ToggleVisibility())
	d.Dispatch(ToggleVisibility())
	assert.Equal(t, before, vis.Visible())
}
