package tui

import (
	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/rgehrsitz/countdown/internal/tui/tuistyles"
)

// Styles live in tuistyles so scenes and components can share them. They
// are read through the package on every render because Apply swaps them
// when the theme changes.

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return tuistyles.StatusKeyStyle.Render(key) + " " + desc
}

// themeLabel names the active theme for the status bar
func themeLabel(mode domain.ThemeMode) string {
	if mode == domain.ThemeLight {
		return "light"
	}
	return "dark"
}
