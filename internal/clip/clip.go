// Package clip writes slot content to the system clipboard. Build
// constraints select the backend:
//
//	clip_system.go  golang.design/x/clipboard on linux, darwin and windows
//	clip_other.go   unavailable stub for every other platform
package clip

import "errors"

// ErrUnavailable is returned when no system clipboard can be reached.
var ErrUnavailable = errors.New("clipboard unavailable")

// Backend is the clipboard-write collaborator.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// Available reports whether writes can succeed at all.
	Available() bool

	// WriteText replaces the clipboard contents with text.
	WriteText(text string) error
}

type headlessBackend struct {
	reason error
}

func (b *headlessBackend) Name() string { return "headless" }

func (b *headlessBackend) Available() bool { return false }

func (b *headlessBackend) WriteText(string) error { return b.reason }
