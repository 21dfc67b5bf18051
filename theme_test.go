package acrotex

import "testing"

func TestThemeByName(t *testing.T) {
	expected := []string{
		"plain",
		"default",
		"gruvbox",
		"nord",
		"dracula",
		"solarized-dark",
		"solarized-light",
	}
	for _, name := range expected {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
	}

	available := AvailableThemes()
	if len(available) != len(expected) {
		t.Fatalf("expected %d themes, got %v", len(expected), available)
	}
	if theme, ok := ThemeByName("  NORD "); !ok || theme.Name() != "nord" {
		t.Fatalf("expected case-insensitive lookup")
	}
	if theme, ok := ThemeByName(""); !ok || theme.Name() != "default" {
		t.Fatalf("expected empty name to resolve to default")
	}
	if _, ok := ThemeByName("nope"); ok {
		t.Fatalf("unexpected theme for unknown name")
	}
}

func TestPlainThemeHasNoPrefixes(t *testing.T) {
	if PlainTheme().Styles() != (Styles{}) {
		t.Fatalf("expected empty styles for plain theme")
	}
	for _, name := range AvailableThemes() {
		if name == PlainThemeName {
			continue
		}
		theme, _ := ThemeByName(name)
		if theme.Styles().Macro.Prefix == "" {
			t.Fatalf("theme %q has no macro style", name)
		}
	}
}
