//go:build !windows && !darwin && !(linux && x11hotkey)

package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/solarclip/internal/hotkey"
	"github.com/ytget/solarclip/internal/model"
)

type nopCopier struct{}

func (nopCopier) Copy(int, string) {}

type emptySlots struct{}

func (emptySlots) Slot(int) (model.ClipboardSlot, bool) { return model.ClipboardSlot{}, false }

type windowSource struct{ started bool }

func (s *windowSource) Name() string { return "window" }

func (s *windowSource) Start(func(hotkey.Action)) error {
	s.started = true
	return nil
}

func (s *windowSource) Stop() {}

func TestStartUnsupported(t *testing.T) {
	src := NewSource([]hotkey.Modifier{hotkey.ModCtrl}, 5, hotkey.Binding{Modifiers: []hotkey.Modifier{hotkey.ModCtrl}, Key: "h"})
	assert.ErrorIs(t, src.Start(func(hotkey.Action) {}), ErrUnsupported)
	src.Stop()
}

func TestUnsupportedFallsBackToWindow(t *testing.T) {
	d := hotkey.NewDispatcher(emptySlots{}, nopCopier{}, model.NewVisibility())
	local := &windowSource{}

	active, err := d.Attach(NewSource(nil, 5, hotkey.Binding{}), local)
	require.NoError(t, err)
	assert.Same(t, local, active)
	assert.True(t, local.started)
}
