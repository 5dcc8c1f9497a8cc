package model

import "testing"

func TestDefaultSlots(t *testing.T) {
	slots := DefaultSlots(DefaultSlotCount)

	if len(slots) != 5 {
		t.Fatalf("Expected 5 default slots, got %d", len(slots))
	}

	for i, slot := range slots {
		if slot.ID != i+1 {
			t.Errorf("Slot %d: expected id %d, got %d", i, i+1, slot.ID)
		}
		if slot.Label != DefaultLabel(i+1) {
			t.Errorf("Slot %d: expected label %q, got %q", i, DefaultLabel(i+1), slot.Label)
		}
		if slot.Content != "" {
			t.Errorf("Slot %d: expected empty content, got %q", i, slot.Content)
		}
	}
}

func TestSlots_UpdateField(t *testing.T) {
	original := DefaultSlots(5)
	updated := original.UpdateField(3, SlotFieldLabel, "X")

	for i := range updated {
		want := original[i]
		if want.ID == 3 {
			want.Label = "X"
		}
		if updated[i] != want {
			t.Errorf("Slot %d: expected %+v, got %+v", want.ID, want, updated[i])
		}
	}

	if original[2].Label != DefaultLabel(3) {
		t.Errorf("UpdateField must not mutate the receiver, got label %q", original[2].Label)
	}
}

func TestSlots_UpdateFieldContent(t *testing.T) {
	updated := DefaultSlots(5).UpdateField(1, SlotFieldContent, "hello")

	slot, ok := updated.Find(1)
	if !ok {
		t.Fatal("Expected slot 1 to exist")
	}
	if slot.Content != "hello" || slot.Label != DefaultLabel(1) {
		t.Errorf("Expected only content to change, got %+v", slot)
	}
}

func TestSlots_UpdateFieldUnknownID(t *testing.T) {
	original := DefaultSlots(5)

	for _, id := range []int{0, 6, -1, 42} {
		updated := original.UpdateField(id, SlotFieldContent, "ignored")
		if !updated.Equal(original) {
			t.Errorf("UpdateField(%d) changed the collection: %+v", id, updated)
		}
	}
}

func TestSlots_ByIndex(t *testing.T) {
	slots := DefaultSlots(5)

	tests := []struct {
		index  int
		wantID int
		ok     bool
	}{
		{0, 1, true},
		{4, 5, true},
		{5, 0, false},
		{-1, 0, false},
	}

	for _, test := range tests {
		slot, ok := slots.ByIndex(test.index)
		if ok != test.ok || slot.ID != test.wantID {
			t.Errorf("ByIndex(%d) = (%d, %v), expected (%d, %v)", test.index, slot.ID, ok, test.wantID, test.ok)
		}
	}
}

func TestSlots_Normalize(t *testing.T) {
	persisted := Slots{
		{ID: 2, Label: "Email", Content: "me@example.com"},
		{ID: 9, Label: "Stray", Content: "dropped"},
		{ID: 2, Label: "Duplicate", Content: "dropped"},
	}

	slots := persisted.Normalize(3)

	if len(slots) != 3 {
		t.Fatalf("Expected 3 slots, got %d", len(slots))
	}
	if slots[1].Label != "Email" || slots[1].Content != "me@example.com" {
		t.Errorf("Expected persisted slot 2 to survive, got %+v", slots[1])
	}
	if slots[0] != (ClipboardSlot{ID: 1, Label: DefaultLabel(1)}) {
		t.Errorf("Expected slot 1 filled from defaults, got %+v", slots[0])
	}
	if slots[2].ID != 3 {
		t.Errorf("Expected slot 3 filled from defaults, got %+v", slots[2])
	}
}

func TestClipboardSlot_DisplayLabel(t *testing.T) {
	if got := (ClipboardSlot{Label: "Phone"}).DisplayLabel(); got != "Phone" {
		t.Errorf("DisplayLabel() = %q, expected %q", got, "Phone")
	}
	if got := (ClipboardSlot{}).DisplayLabel(); got != EmptyLabelPlaceholder {
		t.Errorf("DisplayLabel() = %q, expected %q", got, EmptyLabelPlaceholder)
	}
}

func TestParseSlotField(t *testing.T) {
	tests := []struct {
		input    string
		expected SlotField
		wantErr  bool
	}{
		{"label", SlotFieldLabel, false},
		{"Content", SlotFieldContent, false},
		{" label ", SlotFieldLabel, false},
		{"id", "", true},
	}

	for _, test := range tests {
		field, err := ParseSlotField(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseSlotField(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
		}
		if field != test.expected {
			t.Errorf("ParseSlotField(%q) = %q, expected %q", test.input, field, test.expected)
		}
	}
}
