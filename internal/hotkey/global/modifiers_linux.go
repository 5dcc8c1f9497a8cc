//go:build linux && x11hotkey

package global

import (
	gohotkey "golang.design/x/hotkey"

	"github.com/ytget/solarclip/internal/hotkey"
)

// modifierMap maps hotkey.Modifier to the native modifier on X11
var modifierMap = map[hotkey.Modifier]gohotkey.Modifier{
	hotkey.ModCtrl:  gohotkey.ModCtrl,
	hotkey.ModShift: gohotkey.ModShift,
	hotkey.ModAlt:   gohotkey.Mod1, // Alt is Mod1 on X11
	hotkey.ModSuper: gohotkey.Mod4, // Super/Win is Mod4 on X11
}
