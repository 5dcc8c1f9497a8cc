//go:build !windows

package platform

import "fyne.io/fyne/v2"

// fyne windows always receive pointer events here, so pass-through is not
// available and forwarding is implicit.
const cursorPollingSupported = false

func setClickThrough(_ string, _ bool) error {
	return ErrUnsupported
}

func setTopmost(_ string) error {
	return ErrUnsupported
}

func cursorPosition() (fyne.Position, bool) {
	return fyne.Position{}, false
}
