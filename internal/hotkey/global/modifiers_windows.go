//go:build windows

package global

import (
	gohotkey "golang.design/x/hotkey"

	"github.com/ytget/solarclip/internal/hotkey"
)

// modifierMap maps hotkey.Modifier to the native modifier on Windows
var modifierMap = map[hotkey.Modifier]gohotkey.Modifier{
	hotkey.ModCtrl:  gohotkey.ModCtrl,
	hotkey.ModShift: gohotkey.ModShift,
	hotkey.ModAlt:   gohotkey.ModAlt,
	hotkey.ModSuper: gohotkey.ModWin,
}
