package model

import "testing"

func TestThemeMode_Toggle(t *testing.T) {
	tests := []struct {
		mode     ThemeMode
		expected ThemeMode
	}{
		{ThemeLight, ThemeDark},
		{ThemeDark, ThemeLight},
	}

	for _, test := range tests {
		if got := test.mode.Toggle(); got != test.expected {
			t.Errorf("ThemeMode(%s).Toggle() = %s, expected %s", test.mode, got, test.expected)
		}
	}
}

func TestParseThemeMode(t *testing.T) {
	tests := []struct {
		input    string
		expected ThemeMode
	}{
		{"light", ThemeLight},
		{"dark", ThemeDark},
		{"", ThemeLight},
		{"solarized", ThemeLight},
	}

	for _, test := range tests {
		if got := ParseThemeMode(test.input); got != test.expected {
			t.Errorf("ParseThemeMode(%q) = %s, expected %s", test.input, got, test.expected)
		}
	}
}

func TestVisibility_ToggleTwice(t *testing.T) {
	v := NewVisibility()
	initial := v.Visible()

	var notified []bool
	v.SetChangeCallback(func(visible bool) {
		notified = append(notified, visible)
	})

	v.Toggle()
	if v.Visible() == initial {
		t.Error("Expected a single toggle to flip visibility")
	}

	v.Toggle()
	if v.Visible() != initial {
		t.Errorf("Expected two toggles to restore %v, got %v", initial, v.Visible())
	}

	if len(notified) != 2 || notified[0] != !initial || notified[1] != initial {
		t.Errorf("Unexpected change notifications: %v", notified)
	}
}

func TestVisibility_SetNotifiesOnlyOnChange(t *testing.T) {
	v := NewVisibility()
	calls := 0
	v.SetChangeCallback(func(bool) { calls++ })

	v.Set(true)
	if calls != 0 {
		t.Errorf("Expected no notification when state is unchanged, got %d", calls)
	}

	v.Set(false)
	if calls != 1 || v.Visible() {
		t.Errorf("Expected one notification and hidden state, got calls=%d visible=%v", calls, v.Visible())
	}
}
