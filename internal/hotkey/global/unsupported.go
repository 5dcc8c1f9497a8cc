//go:build !windows && !darwin && !(linux && x11hotkey)

package global

import "github.com/ytget/solarclip/internal/hotkey"

// Source is a placeholder whose Start always fails
type Source struct{}

// NewSource creates a global hotkey source
func NewSource(_ []hotkey.Modifier, _ int, _ hotkey.Binding) *Source {
	return &Source{}
}

// Name identifies the source in logs
func (g *Source) Name() string {
	return "global"
}

// Start reports that global hotkeys are not available
func (g *Source) Start(_ func(hotkey.Action)) error {
	return ErrUnsupported
}

// Stop is a no-op
func (g *Source) Stop() {}
