package ui

import (
	"os"
	"testing"
)

func TestInitTheme(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)

	t.Run("noColor flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("theme = %q, want %q", GetCurrentTheme().Name, "none")
		}
		if ColorPrimary() != "" || ColorReset() != "" {
			t.Error("no-color theme should yield empty escape codes")
		}
	})

	t.Run("NO_COLOR env disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("theme = %q, want %q", GetCurrentTheme().Name, "none")
		}
	})

	t.Run("defaults to dark theme when NO_COLOR unset", func(t *testing.T) {
		old, had := os.LookupEnv("NO_COLOR")
		os.Unsetenv("NO_COLOR")
		defer func() {
			if had {
				os.Setenv("NO_COLOR", old)
			}
		}()

		InitTheme(false)
		if GetCurrentTheme().Name != "dark" {
			t.Errorf("theme = %q, want %q", GetCurrentTheme().Name, "dark")
		}
	})
}

func TestGetCurrentTUITheme(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)

	SetCurrentTheme(NoColorTheme)
	if GetCurrentTUITheme() != NoColorTUITheme {
		t.Error("no-color theme should map to NoColorTUITheme")
	}

	SetCurrentTheme(DarkTheme)
	if GetCurrentTUITheme() != DarkTUITheme {
		t.Error("dark theme should map to DarkTUITheme")
	}
}
