// Package hotkey turns keyboard accelerators into widget actions. Exactly
// one event source feeds the Dispatcher: system-wide hotkeys when they can be
// registered (see the global subpackage), otherwise shortcuts on the overlay
// window.
package hotkey
