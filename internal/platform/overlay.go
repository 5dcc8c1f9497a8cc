package platform

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// ErrUnsupported is returned when the current platform cannot perform an
// overlay window operation.
var ErrUnsupported = errors.New("not supported on this platform")

// DefaultPointerPollInterval is how often the cursor is sampled while the
// overlay forwards pointer moves in pass-through mode.
const DefaultPointerPollInterval = 16 * time.Millisecond

// CaptureOptions tunes pass-through mode. Forward keeps pointer-move events
// flowing while clicks pass through, so hover can be detected again.
type CaptureOptions struct {
	Forward bool
}

// Overlay controls the click-through and always-on-top state of the
// transparent overlay window identified by its title.
type Overlay struct {
	title        string
	pollInterval time.Duration

	mu        sync.Mutex
	ignore    bool
	forward   bool
	onPointer func(fyne.Position)
	stopPoll  chan struct{}
	pollDone  chan struct{}
}

// NewOverlay creates an overlay controller for the window with the given title
func NewOverlay(title string) *Overlay {
	return &Overlay{
		title:        title,
		pollInterval: DefaultPointerPollInterval,
	}
}

// SetPointerCallback sets the function receiving forwarded pointer positions
// in screen pixels. It is called from a background goroutine.
func (o *Overlay) SetPointerCallback(fn func(fyne.Position)) {
	o.mu.Lock()
	o.onPointer = fn
	o.mu.Unlock()
}

// SetIgnoreMouseEvents switches the window between capturing input and
// passing it through. Platforms without click-through support report
// ErrUnsupported; the recorded state is still updated.
func (o *Overlay) SetIgnoreMouseEvents(ignore bool, opts CaptureOptions) error {
	o.mu.Lock()
	o.ignore = ignore
	o.forward = ignore && opts.Forward
	forward := o.forward
	o.mu.Unlock()

	err := setClickThrough(o.title, ignore)
	if err != nil && !errors.Is(err, ErrUnsupported) {
		slog.Warn("overlay click-through failed", "ignore", ignore, "err", err)
	}

	if forward {
		o.startForwarding()
	} else {
		o.stopForwarding()
	}
	return err
}

// IgnoringMouseEvents reports the last requested capture state
func (o *Overlay) IgnoringMouseEvents() (ignore, forward bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.ignore, o.forward
}

// PinTopmost keeps the overlay above other windows
func (o *Overlay) PinTopmost() error {
	return setTopmost(o.title)
}

// Close stops pointer forwarding
func (o *Overlay) Close() {
	o.stopForwarding()
}

func (o *Overlay) startForwarding() {
	if !cursorPollingSupported {
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stopPoll != nil {
		return
	}
	o.stopPoll = make(chan struct{})
	o.pollDone = make(chan struct{})
	go o.poll(o.stopPoll, o.pollDone)
}

func (o *Overlay) stopForwarding() {
	o.mu.Lock()
	stop, done := o.stopPoll, o.pollDone
	o.stopPoll, o.pollDone = nil, nil
	o.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
}

func (o *Overlay) poll(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	t := time.NewTicker(o.pollInterval)
	defer t.Stop()

	var last fyne.Position
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			pos, ok := cursorPosition()
			if !ok || pos == last {
				continue
			}
			last = pos

			o.mu.Lock()
			fn := o.onPointer
			o.mu.Unlock()
			if fn != nil {
				fn(pos)
			}
		}
	}
}
