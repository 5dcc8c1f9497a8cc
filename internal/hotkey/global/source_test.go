//go:build windows || darwin || (linux && x11hotkey)

package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/solarclip/internal/hotkey"
)

func TestNewHotkeyMapsEveryBinding(t *testing.T) {
	for _, s := range []string{"ctrl+shift+1", "alt+super+z", "ctrl+space"} {
		b, err := hotkey.ParseBinding(s)
		require.NoError(t, err)

		hk, err := newHotkey(b)
		require.NoError(t, err, s)
		assert.NotNil(t, hk)
	}
}

func TestNewHotkeyRejectsUnknownKey(t *testing.T) {
	_, err := newHotkey(hotkey.Binding{Modifiers: []hotkey.Modifier{hotkey.ModCtrl}, Key: "f1"})
	assert.ErrorIs(t, err, hotkey.ErrInvalidBinding)
}
