//go:build windows

package platform

import (
	"errors"
	"fmt"
	"unsafe"

	"fyne.io/fyne/v2"
	"golang.org/x/sys/windows"
)

const cursorPollingSupported = true

const (
	gwlExStyle int32 = -20

	lwaAlpha = 0x00000002

	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoActivate = 0x0010
)

// HWND_TOPMOST is (HWND)-1
const hwndTopmost = ^uintptr(0)

var (
	user32             = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW    = user32.NewProc("FindWindowW")
	procGetWindowLongW = user32.NewProc("GetWindowLongW")
	procSetWindowLongW = user32.NewProc("SetWindowLongW")
	procSetWindowPos   = user32.NewProc("SetWindowPos")
	procGetCursorPos   = user32.NewProc("GetCursorPos")

	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
)

type point struct {
	X, Y int32
}

func findWindow(title string) (uintptr, error) {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}
	hwnd, _, callErr := procFindWindowW.Call(0, uintptr(unsafe.Pointer(p)))
	if hwnd == 0 {
		return 0, fmt.Errorf("find window %q: %w", title, callErr)
	}
	return hwnd, nil
}

func styleIndex(i int32) uintptr {
	return uintptr(i)
}

func setClickThrough(title string, ignore bool) error {
	hwnd, err := findWindow(title)
	if err != nil {
		return err
	}

	style, _, callErr := procGetWindowLongW.Call(hwnd, styleIndex(gwlExStyle))
	if err := lastError(style, callErr); err != nil {
		return fmt.Errorf("get window style: %w", err)
	}

	next, layered := clickThroughStyle(style, ignore)
	if next == style {
		return nil
	}
	prev, _, callErr := procSetWindowLongW.Call(hwnd, styleIndex(gwlExStyle), next)
	if err := lastError(prev, callErr); err != nil {
		return fmt.Errorf("set window style: %w", err)
	}

	// A layered window is not drawn until its attributes are set.
	if layered {
		r, _, callErr := procSetLayeredWindowAttributes.Call(hwnd, 0, 255, lwaAlpha)
		if r == 0 {
			return fmt.Errorf("set layered attributes: %w", callErr)
		}
	}
	return nil
}

// lastError reports a failed Get/SetWindowLongW call, where zero is also a
// valid result and only a set last-error marks failure.
func lastError(r uintptr, callErr error) error {
	if r != 0 {
		return nil
	}
	var errno windows.Errno
	if errors.As(callErr, &errno) && errno == 0 {
		return nil
	}
	return callErr
}

func setTopmost(title string) error {
	hwnd, err := findWindow(title)
	if err != nil {
		return err
	}
	r, _, callErr := procSetWindowPos.Call(hwnd, hwndTopmost, 0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
	if r == 0 {
		return fmt.Errorf("set topmost: %w", callErr)
	}
	return nil
}

func cursorPosition() (fyne.Position, bool) {
	var pt point
	r, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if r == 0 {
		return fyne.Position{}, false
	}
	return fyne.NewPos(float32(pt.X), float32(pt.Y)), true
}
