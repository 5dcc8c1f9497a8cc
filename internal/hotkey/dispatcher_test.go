package hotkey

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/solarclip/internal/model"
)

type sliceSlots struct {
	mu    sync.Mutex
	slots model.Slots
}

func (s *sliceSlots) Slot(index int) (model.ClipboardSlot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slots.ByIndex(index)
}

func (s *sliceSlots) update(id int, field model.SlotField, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = s.slots.UpdateField(id, field, value)
}

type copyCall struct {
	id      int
	content string
}

type recordingCopier struct {
	mu    sync.Mutex
	calls []copyCall
}

func (c *recordingCopier) Copy(id int, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, copyCall{id: id, content: content})
}

type fakeSource struct {
	name     string
	startErr error
	started  int
	stopped  int
	dispatch func(Action)
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Start(dispatch func(Action)) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started++
	f.dispatch = dispatch
	return nil
}

func (f *fakeSource) Stop() { f.stopped++ }

func newTestDispatcher() (*Dispatcher, *sliceSlots, *recordingCopier, *model.Visibility) {
	slots := &sliceSlots{slots: model.DefaultSlots(model.DefaultSlotCount)}
	copier := &recordingCopier{}
	vis := model.NewVisibility()
	return NewDispatcher(slots, copier, vis), slots, copier, vis
}

func TestDispatchCopiesUpdatedContent(t *testing.T) {
	d, slots, copier, _ := newTestDispatcher()

	slots.update(1, model.SlotFieldContent, "hello")
	d.Dispatch(CopySlot(0))

	require.Len(t, copier.calls, 1)
	assert.Equal(t, copyCall{id: 1, content: "hello"}, copier.calls[0])
}

func TestDispatchCopiesEmptyContent(t *testing.T) {
	d, _, copier, _ := newTestDispatcher()

	d.Dispatch(CopySlot(2))

	require.Len(t, copier.calls, 1)
	assert.Equal(t, copyCall{id: 3, content: ""}, copier.calls[0])
}

func TestDispatchIgnoresMissingSlot(t *testing.T) {
	d, _, copier, _ := newTestDispatcher()

	d.Dispatch(CopySlot(7))
	d.Dispatch(CopySlot(-1))

	assert.Empty(t, copier.calls)
}

func TestDispatchToggleTwiceRestoresVisibility(t *testing.T) {
	d, _, _, vis := newTestDispatcher()
	require.True(t, vis.Visible())

	d.Dispatch(ToggleVisibility())
	assert.False(t, vis.Visible())

	d.Dispatch(ToggleVisibility())
	assert.True(t, vis.Visible())
}

func TestAttachPrefersGlobal(t *testing.T) {
	d, _, copier, _ := newTestDispatcher()
	global := &fakeSource{name: "global"}
	local := &fakeSource{name: "window"}

	active, err := d.Attach(global, local)
	require.NoError(t, err)
	assert.Same(t, global, active)
	assert.Equal(t, 1, global.started)
	assert.Equal(t, 0, local.started)

	global.dispatch(CopySlot(0))
	assert.Len(t, copier.calls, 1)
}

func TestAttachFallsBackToLocal(t *testing.T) {
	d, _, _, _ := newTestDispatcher()
	global := &fakeSource{name: "global", startErr: errors.New("grab failed")}
	local := &fakeSource{name: "window"}

	active, err := d.Attach(global, local)
	require.NoError(t, err)
	assert.Same(t, local, active)
	assert.Equal(t, 1, local.started)
	assert.Same(t, local, d.Active())
}

func TestAttachWithoutGlobal(t *testing.T) {
	d, _, _, _ := newTestDispatcher()
	local := &fakeSource{name: "window"}

	active, err := d.Attach(nil, local)
	require.NoError(t, err)
	assert.Same(t, local, active)
}

func TestAttachNoSource(t *testing.T) {
	d, _, _, _ := newTestDispatcher()

	_, err := d.Attach(&fakeSource{name: "global", startErr: errors.New("nope")}, nil)
	assert.Error(t, err)
	assert.Nil(t, d.Active())
}

func TestReattachStopsPrevious(t *testing.T) {
	d, _, _, _ := newTestDispatcher()
	first := &fakeSource{name: "window"}
	second := &fakeSource{name: "window"}

	_, err := d.Attach(nil, first)
	require.NoError(t, err)
	_, err = d.Attach(nil, second)
	require.NoError(t, err)

	assert.Equal(t, 1, first.stopped)
	assert.Same(t, second, d.Active())

	d.Detach()
	assert.Equal(t, 1, second.stopped)
	assert.Nil(t, d.Active())
}
