package hotkey

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// ShortcutRegistrar is the part of fyne.Canvas used for window shortcuts
type ShortcutRegistrar interface {
	AddShortcut(shortcut fyne.Shortcut, handler func(shortcut fyne.Shortcut))
	RemoveShortcut(shortcut fyne.Shortcut)
}

// LocalSource maps shortcuts on the overlay window to actions. It only fires
// while the window has keyboard focus. A handled shortcut is consumed by the
// canvas and never reaches the focused widget.
type LocalSource struct {
	registrar ShortcutRegistrar
	copyMods  []Modifier
	slotCount int
	toggle    Binding

	shortcuts []fyne.Shortcut
}

// NewLocalSource creates a window-shortcut source
func NewLocalSource(registrar ShortcutRegistrar, copyMods []Modifier, slotCount int, toggle Binding) *LocalSource {
	return &LocalSource{
		registrar: registrar,
		copyMods:  copyMods,
		slotCount: slotCount,
		toggle:    toggle,
	}
}

// Name identifies the source in logs
func (l *LocalSource) Name() string {
	return "window"
}

// Start registers one shortcut per slot and the toggle shortcut
func (l *LocalSource) Start(dispatch func(Action)) error {
	for i := 0; i < l.slotCount; i++ {
		action := CopySlot(i)
		l.add(CopyBinding(l.copyMods, i), func(fyne.Shortcut) { dispatch(action) })
	}
	l.add(l.toggle, func(fyne.Shortcut) { dispatch(ToggleVisibility()) })
	return nil
}

// Stop removes every registered shortcut
func (l *LocalSource) Stop() {
	for _, sc := range l.shortcuts {
		l.registrar.RemoveShortcut(sc)
	}
	l.shortcuts = nil
}

func (l *LocalSource) add(b Binding, handler func(fyne.Shortcut)) {
	sc := ToShortcut(b)
	l.registrar.AddShortcut(sc, handler)
	l.shortcuts = append(l.shortcuts, sc)
}

// ToShortcut converts a binding to a fyne desktop shortcut
func ToShortcut(b Binding) *desktop.CustomShortcut {
	var mods fyne.KeyModifier
	for _, m := range b.Modifiers {
		switch m {
		case ModCtrl:
			mods |= fyne.KeyModifierControl
		case ModShift:
			mods |= fyne.KeyModifierShift
		case ModAlt:
			mods |= fyne.KeyModifierAlt
		case ModSuper:
			mods |= fyne.KeyModifierSuper
		}
	}
	return &desktop.CustomShortcut{KeyName: fyneKeyName(b.Key), Modifier: mods}
}

func fyneKeyName(key string) fyne.KeyName {
	if key == KeySpace {
		return fyne.KeySpace
	}
	return fyne.KeyName(strings.ToUpper(key))
}
