package model

import (
	"fmt"
	"strings"
)

// DefaultSlotCount is the number of slots the widget shows out of the box.
const DefaultSlotCount = 5

// MaxSlotCount bounds the slot count so every slot maps to a digit hotkey.
const MaxSlotCount = 9

// EmptyLabelPlaceholder is displayed on a slot button whose label is empty.
const EmptyLabelPlaceholder = "Record"

// SlotField names an editable field of a ClipboardSlot
type SlotField string

const (
	// SlotFieldLabel is the button text shown in the widget
	SlotFieldLabel SlotField = "label"

	// SlotFieldContent is the payload copied to the clipboard
	SlotFieldContent SlotField = "content"
)

// String returns the string representation of SlotField
func (f SlotField) String() string {
	return string(f)
}

// ParseSlotField converts a field name to a SlotField.
func ParseSlotField(s string) (SlotField, error) {
	switch SlotField(strings.ToLower(strings.TrimSpace(s))) {
	case SlotFieldLabel:
		return SlotFieldLabel, nil
	case SlotFieldContent:
		return SlotFieldContent, nil
	default:
		return "", fmt.Errorf("unknown slot field: %q", s)
	}
}

// ClipboardSlot is a single user-defined snippet. ID is the stable 1-based
// position of the slot.
type ClipboardSlot struct {
	ID      int    `json:"id"`
	Label   string `json:"label"`
	Content string `json:"content"`
}

// DisplayLabel returns the label, or a placeholder when the label is empty
func (s ClipboardSlot) DisplayLabel() string {
	if s.Label == "" {
		return EmptyLabelPlaceholder
	}
	return s.Label
}

// DefaultLabel returns the label given to slot id in a fresh collection
func DefaultLabel(id int) string {
	return fmt.Sprintf("Slot %d", id)
}

// with returns a copy of s with field replaced by value
func (s ClipboardSlot) with(field SlotField, value string) ClipboardSlot {
	switch field {
	case SlotFieldLabel:
		s.Label = value
	case SlotFieldContent:
		s.Content = value
	}
	return s
}
