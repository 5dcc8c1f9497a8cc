//go:build darwin

package global

import (
	gohotkey "golang.design/x/hotkey"

	"github.com/ytget/solarclip/internal/hotkey"
)

// modifierMap maps hotkey.Modifier to the native modifier on macOS
var modifierMap = map[hotkey.Modifier]gohotkey.Modifier{
	hotkey.ModCtrl:  gohotkey.ModCtrl,
	hotkey.ModShift: gohotkey.ModShift,
	hotkey.ModAlt:   gohotkey.ModOption,
	hotkey.ModSuper: gohotkey.ModCmd,
}
