package hotkey

import "fmt"

// ActionKind identifies what a hotkey does
type ActionKind int

const (
	ActionCopySlot ActionKind = iota
	ActionToggleVisibility
)

// Action is a dispatched hotkey event. Index is the zero-based slot
// position for ActionCopySlot.
type Action struct {
	Kind  ActionKind
	Index int
}

// CopySlot returns the action copying the slot at index
func CopySlot(index int) Action {
	return Action{Kind: ActionCopySlot, Index: index}
}

// ToggleVisibility returns the action showing or hiding the widget
func ToggleVisibility() Action {
	return Action{Kind: ActionToggleVisibility}
}

// String returns the action name used in logs
func (a Action) String() string {
	switch a.Kind {
	case ActionCopySlot:
		return fmt.Sprintf("copy-slot(%d)", a.Index)
	case ActionToggleVisibility:
		return "toggle-visibility"
	default:
		return "unknown"
	}
}
