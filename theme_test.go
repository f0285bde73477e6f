package hdoc

import "testing"

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"default", "gruvbox", "nord", "solarized-dark", "github-light"} {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
	}
	if _, ok := ThemeByName("no-such-theme"); ok {
		t.Fatal("unexpected theme resolved")
	}
	theme, ok := ThemeByName("")
	if !ok || theme.Name() != "default" {
		t.Fatalf("empty name should resolve default, got %v, %v", theme, ok)
	}
}

func TestAvailableThemesSortedAndComplete(t *testing.T) {
	names := AvailableThemes()
	if len(names) != len(builtinThemes) {
		t.Fatalf("expected %d themes, got %d", len(builtinThemes), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("themes not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestThemePrefixesDistinguishStructure(t *testing.T) {
	theme := DefaultTheme()
	h1 := theme.Prefix(StyleHeading1)
	if h1 == "" {
		t.Fatal("heading style has no prefix")
	}
	if h1 == theme.Prefix(StyleNone) {
		t.Fatal("heading style equals body style")
	}
	if theme.Prefix(StyleCode) == theme.Prefix(StyleLabel) {
		t.Fatal("code and label styles are indistinguishable")
	}
}
