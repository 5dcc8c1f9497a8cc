//go:build linux || darwin || windows

package clip

import (
	"bytes"
	"fmt"
	"log/slog"

	"golang.design/x/clipboard"
)

type systemBackend struct{}

// New returns the system clipboard backend, or a headless backend whose
// writes fail with ErrUnavailable if the clipboard can not be initialised
// (e.g. no X11 display).
func New() Backend {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard unavailable, running headless", "err", err)
		return &headlessBackend{reason: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	return &systemBackend{}
}

func (b *systemBackend) Name() string { return "system clipboard" }

func (b *systemBackend) Available() bool { return true }

func (b *systemBackend) WriteText(text string) error {
	data := []byte(text)
	clipboard.Write(clipboard.FmtText, data)

	if got := clipboard.Read(clipboard.FmtText); !bytes.Equal(got, data) {
		return fmt.Errorf("clipboard write not observed (%d bytes written, %d read back)", len(data), len(got))
	}
	return nil
}
