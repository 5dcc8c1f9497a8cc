// Package global registers system-wide hotkeys through golang.design/x/hotkey.
//
// On Linux the backing library opens the X11 display from a package init and
// panics when none is reachable, so the X11 implementation is only built with
// the x11hotkey tag. Without it Start reports ErrUnsupported and the
// dispatcher falls back to window shortcuts. Only the command imports this
// package; the rest of the module stays free of the native dependency.
package global

import "errors"

// ErrUnsupported is returned by Start when this build has no system-wide
// hotkey support.
var ErrUnsupported = errors.New("global hotkeys are not supported in this build")
