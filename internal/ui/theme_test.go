package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	for _, name := range names {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Dark"); got != "Light" {
		t.Fatalf("NextTheme(Dark) = %q, want Light", got)
	}
	if got := NextTheme("Nightfox"); got != "Dark" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Dark", got)
	}
	if got := NextTheme("Unknown"); got != "Dark" {
		t.Fatalf("NextTheme(Unknown) = %q, want Dark", got)
	}
}

func TestGetTheme_FallsBackToDark(t *testing.T) {
	th := GetTheme("Unknown")
	if th.Name != "Dark" || !th.Dark {
		t.Fatalf("GetTheme(Unknown) = %q (dark=%v), want Dark", th.Name, th.Dark)
	}
	if GetTheme("Light").Dark {
		t.Fatalf("Light theme reports dark")
	}
}
