package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/countdown/internal/copytext"
	"github.com/rgehrsitz/countdown/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderLoading()
	}

	if m.err != nil {
		return m.renderError()
	}

	// Render the current scene
	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneAssumptions:
		content = m.assumptionsModel.View()
	case SceneDetails:
		content = m.detailsModel.View()
	case SceneItem:
		content = m.itemModel.View()
	case SceneSnapshots:
		content = m.snapshotsModel.View()
	case SceneAbout:
		content = m.renderAbout()
	default:
		content = "Unknown scene"
	}

	// Wrap content with app styling and status bar
	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	// Title (2) + status (1) + padding (1)
	contentHeight := max(0, m.height-4)

	contentContainer := lipgloss.NewStyle().
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("Existential Countdown")
	breadcrumb := tuistyles.SubtitleStyle.Render(m.currentScene.String())
	if m.currentScene == SceneItem && m.itemModel.Item() != nil {
		breadcrumb = tuistyles.SubtitleStyle.Render(
			fmt.Sprintf("%s / %s", m.currentScene.String(), m.itemModel.Item().Item.Label),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		breadcrumb,
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("h", "home"),
		formatShortcut("a", "assumptions"),
		formatShortcut("s", "snapshots"),
		formatShortcut("t", "theme"),
		formatShortcut("?", "about"),
		formatShortcut("q", "quit"),
	}

	statusText := strings.Join(shortcuts, " • ")

	theme := tuistyles.SubtitleStyle.Render(themeLabel(m.settings.ThemeMode))
	width := m.width - lipgloss.Width(statusText) - lipgloss.Width(theme) - 2
	statusText = statusText + strings.Repeat(" ", max(1, width)) + theme

	return tuistyles.StatusBarStyle.Width(m.width).Render(statusText)
}

// renderLoading renders a loading message
func (m Model) renderLoading() string {
	content := tuistyles.BorderStyle.Render("⠋ Loading...")
	return m.renderApp(content)
}

// renderError renders an error message
func (m Model) renderError() string {
	content := tuistyles.ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err.Error()),
	)
	return m.renderApp(content)
}

// renderAbout renders the about screen with the keyboard reference
func (m Model) renderAbout() string {
	micro := copytext.Microcopy(m.committed.Tone)

	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render("About"))
	b.WriteString("\n\n")
	b.WriteString(copytext.About)
	b.WriteString("\n")
	b.WriteString(tuistyles.InfoStyle.Render(micro.About))
	b.WriteString("\n")
	b.WriteString(`
KEYBOARD SHORTCUTS:
  h        Home
  a        Edit assumptions
  s        Snapshots
  t        Toggle theme
  ?        About
  ESC      Go back
  q/Ctrl+C Quit

HOME:
  Arrow keys move between cards, Enter opens details
  n        New assumption set
  u        Weeks / years
  w        Save snapshot

ASSUMPTIONS:
  ↑/↓      Choose a field
  ←/→      Adjust (PgUp/PgDn by 10)
  r        Reset model
  R        Reset everything
`)
	b.WriteString("\n")
	b.WriteString(tuistyles.HelpDescStyle.Render(copytext.DetailsFooter))

	return tuistyles.BorderStyle.Render(b.String())
}
