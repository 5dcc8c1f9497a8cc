package hotkey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidBinding is returned for accelerators that cannot be parsed.
var ErrInvalidBinding = errors.New("invalid binding")

// Modifier is a platform-neutral modifier key
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModShift Modifier = "shift"
	ModAlt   Modifier = "alt"
	ModSuper Modifier = "super"
)

var modifierAliases = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"shift":   ModShift,
	"alt":     ModAlt,
	"option":  ModAlt,
	"super":   ModSuper,
	"cmd":     ModSuper,
	"command": ModSuper,
	"win":     ModSuper,
	"meta":    ModSuper,
}

// KeySpace is the normalized name of the space bar
const KeySpace = "space"

// Binding is a modifier set plus one key, e.g. ctrl+shift+1
type Binding struct {
	Modifiers []Modifier
	Key       string
}

// String formats the binding the way ParseBinding accepts it
func (b Binding) String() string {
	parts := make([]string, 0, len(b.Modifiers)+1)
	for _, m := range b.Modifiers {
		parts = append(parts, string(m))
	}
	parts = append(parts, b.Key)
	return strings.Join(parts, "+")
}

// ParseModifiers parses a "+"-separated modifier list such as "ctrl+shift".
func ParseModifiers(s string) ([]Modifier, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: no modifiers", ErrInvalidBinding)
	}

	var mods []Modifier
	seen := map[Modifier]bool{}
	for _, part := range strings.Split(s, "+") {
		name := strings.ToLower(strings.TrimSpace(part))
		mod, ok := modifierAliases[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown modifier %q", ErrInvalidBinding, part)
		}
		if !seen[mod] {
			seen[mod] = true
			mods = append(mods, mod)
		}
	}
	return mods, nil
}

// ParseBinding converts a binding string such as "ctrl+shift+space" into
// its modifiers and key. At least one modifier is required.
func ParseBinding(s string) (Binding, error) {
	parts := strings.Split(s, "+")
	if len(parts) < 2 {
		return Binding{}, fmt.Errorf("%w: %q (need modifier+key)", ErrInvalidBinding, s)
	}

	key, err := normalizeKey(parts[len(parts)-1])
	if err != nil {
		return Binding{}, err
	}
	mods, err := ParseModifiers(strings.Join(parts[:len(parts)-1], "+"))
	if err != nil {
		return Binding{}, err
	}
	return Binding{Modifiers: mods, Key: key}, nil
}

// CopyBinding returns the accelerator copying the slot at a zero-based index:
// the modifiers plus digit index+1.
func CopyBinding(mods []Modifier, index int) Binding {
	return Binding{Modifiers: mods, Key: strconv.Itoa(index + 1)}
}

func normalizeKey(s string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch {
	case key == KeySpace:
		return key, nil
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		return key, nil
	case len(key) == 1 && key[0] >= 'a' && key[0] <= 'z':
		return key, nil
	default:
		return "", fmt.Errorf("%w: unsupported key %q", ErrInvalidBinding, s)
	}
}
