//go:build windows || darwin || (linux && x11hotkey)

package global

import (
	gohotkey "golang.design/x/hotkey"

	"github.com/ytget/solarclip/internal/hotkey"
)

// keyMap maps normalized key names to gohotkey.Key
var keyMap = map[string]gohotkey.Key{
	hotkey.KeySpace: gohotkey.KeySpace,
	"0":             gohotkey.Key0,
	"1":             gohotkey.Key1,
	"2":             gohotkey.Key2,
	"3":             gohotkey.Key3,
	"4":             gohotkey.Key4,
	"5":             gohotkey.Key5,
	"6":             gohotkey.Key6,
	"7":             gohotkey.Key7,
	"8":             gohotkey.Key8,
	"9":             gohotkey.Key9,
	"a":             gohotkey.KeyA,
	"b":             gohotkey.KeyB,
	"c":             gohotkey.KeyC,
	"d":             gohotkey.KeyD,
	"e":             gohotkey.KeyE,
	"f":             gohotkey.KeyF,
	"g":             gohotkey.KeyG,
	"h":             gohotkey.KeyH,
	"i":             gohotkey.KeyI,
	"j":             gohotkey.KeyJ,
	"k":             gohotkey.KeyK,
	"l":             gohotkey.KeyL,
	"m":             gohotkey.KeyM,
	"n":             gohotkey.KeyN,
	"o":             gohotkey.KeyO,
	"p":             gohotkey.KeyP,
	"q":             gohotkey.KeyQ,
	"r":             gohotkey.KeyR,
	"s":             gohotkey.KeyS,
	"t":             gohotkey.KeyT,
	"u":             gohotkey.KeyU,
	"v":             gohotkey.KeyV,
	"w":             gohotkey.KeyW,
	"x":             gohotkey.KeyX,
	"y":             gohotkey.KeyY,
	"z":             gohotkey.KeyZ,
}
