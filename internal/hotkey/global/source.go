//go:build windows || darwin || (linux && x11hotkey)

package global

import (
	"fmt"
	"log/slog"
	"sync"

	gohotkey "golang.design/x/hotkey"

	"github.com/ytget/solarclip/internal/hotkey"
)

// Source registers system-wide accelerators that fire even while the
// overlay passes input through to other windows.
type Source struct {
	copyMods  []hotkey.Modifier
	slotCount int
	toggle    hotkey.Binding

	mu      sync.Mutex
	hotkeys []*gohotkey.Hotkey
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewSource creates a global hotkey source
func NewSource(copyMods []hotkey.Modifier, slotCount int, toggle hotkey.Binding) *Source {
	return &Source{
		copyMods:  copyMods,
		slotCount: slotCount,
		toggle:    toggle,
	}
}

// Name identifies the source in logs
func (g *Source) Name() string {
	return "global"
}

// Start registers every accelerator. If any registration fails, the ones
// already registered are released and the error is returned.
func (g *Source) Start(dispatch func(hotkey.Action)) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.done != nil {
		return fmt.Errorf("global hotkeys already started")
	}

	type entry struct {
		hk     *gohotkey.Hotkey
		action hotkey.Action
	}
	var entries []entry

	register := func(b hotkey.Binding, action hotkey.Action) error {
		hk, err := newHotkey(b)
		if err != nil {
			return err
		}
		if err := hk.Register(); err != nil {
			return fmt.Errorf("register %s: %w", b, err)
		}
		entries = append(entries, entry{hk: hk, action: action})
		return nil
	}

	var err error
	for i := 0; i < g.slotCount && err == nil; i++ {
		err = register(hotkey.CopyBinding(g.copyMods, i), hotkey.CopySlot(i))
	}
	if err == nil {
		err = register(g.toggle, hotkey.ToggleVisibility())
	}
	if err != nil {
		for _, e := range entries {
			if uerr := e.hk.Unregister(); uerr != nil {
				slog.Debug("unregister hotkey failed", "err", uerr)
			}
		}
		return err
	}

	g.done = make(chan struct{})
	for _, e := range entries {
		g.hotkeys = append(g.hotkeys, e.hk)
		g.wg.Add(1)
		go g.listen(e.hk, e.action, dispatch, g.done)
	}
	return nil
}

func (g *Source) listen(hk *gohotkey.Hotkey, action hotkey.Action, dispatch func(hotkey.Action), done <-chan struct{}) {
	defer g.wg.Done()
	for {
		select {
		case <-done:
			return
		case <-hk.Keydown():
			dispatch(action)
		}
	}
}

// Stop unregisters every accelerator and waits for the listeners to exit
func (g *Source) Stop() {
	g.mu.Lock()
	done := g.done
	hotkeys := g.hotkeys
	g.done = nil
	g.hotkeys = nil
	g.mu.Unlock()

	if done == nil {
		return
	}
	close(done)
	g.wg.Wait()

	for _, hk := range hotkeys {
		if err := hk.Unregister(); err != nil {
			slog.Warn("unregister hotkey failed", "err", err)
		}
	}
}

func newHotkey(b hotkey.Binding) (*gohotkey.Hotkey, error) {
	key, ok := keyMap[b.Key]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported key %q", hotkey.ErrInvalidBinding, b.Key)
	}
	mods := make([]gohotkey.Modifier, 0, len(b.Modifiers))
	for _, m := range b.Modifiers {
		mod, ok := modifierMap[m]
		if !ok {
			return nil, fmt.Errorf("%w: unsupported modifier %q", hotkey.ErrInvalidBinding, m)
		}
		mods = append(mods, mod)
	}
	return gohotkey.New(mods, key), nil
}
