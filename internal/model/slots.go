package model

// Slots is the ordered, fixed-size collection of clipboard slots.
type Slots []ClipboardSlot

// DefaultSlots returns n slots with ids 1..n, sequential labels and empty content
func DefaultSlots(n int) Slots {
	if n < 0 {
		n = 0
	}
	slots := make(Slots, n)
	for i := range slots {
		id := i + 1
		slots[i] = ClipboardSlot{ID: id, Label: DefaultLabel(id)}
	}
	return slots
}

// Clone returns a copy that shares no backing array with s
func (s Slots) Clone() Slots {
	if s == nil {
		return nil
	}
	out := make(Slots, len(s))
	copy(out, s)
	return out
}

// UpdateField returns a new collection where only the slot with the given id
// has field replaced by value. Unknown ids yield an unchanged copy.
func (s Slots) UpdateField(id int, field SlotField, value string) Slots {
	out := s.Clone()
	for i := range out {
		if out[i].ID == id {
			out[i] = out[i].with(field, value)
			break
		}
	}
	return out
}

// Find returns the slot with the given id
func (s Slots) Find(id int) (ClipboardSlot, bool) {
	for _, slot := range s {
		if slot.ID == id {
			return slot, true
		}
	}
	return ClipboardSlot{}, false
}

// ByIndex resolves a zero-based position to a slot
func (s Slots) ByIndex(index int) (ClipboardSlot, bool) {
	if index < 0 || index >= len(s) {
		return ClipboardSlot{}, false
	}
	return s[index], true
}

// Normalize returns exactly n slots ordered by id 1..n. Slots present in s
// keep their label and content; missing ids are filled from DefaultSlots and
// ids outside 1..n are dropped. Duplicate ids keep their first occurrence.
func (s Slots) Normalize(n int) Slots {
	out := DefaultSlots(n)
	seen := make(map[int]bool, len(s))
	for _, slot := range s {
		if slot.ID < 1 || slot.ID > n || seen[slot.ID] {
			continue
		}
		seen[slot.ID] = true
		out[slot.ID-1] = slot
	}
	return out
}

// Equal reports whether both collections hold the same slots in the same order
func (s Slots) Equal(other Slots) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
