package tui

import (
	"github.com/rgehrsitz/countdown/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneAssumptions
	SceneDetails
	SceneItem
	SceneSnapshots
	SceneAbout
)

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneAssumptions:
		return "Assumptions"
	case SceneDetails:
		return "Details"
	case SceneItem:
		return "Assumption"
	case SceneSnapshots:
		return "Snapshots"
	case SceneAbout:
		return "About"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// StateLoadedMsg carries everything read from storage at startup
type StateLoadedMsg struct {
	Assumptions domain.Assumptions
	Snapshots   []domain.Snapshot
	Settings    domain.Settings
}

// commitMsg fires when the debounce delay of edit seq has elapsed
type commitMsg struct {
	seq int
}

// flashExpiredMsg hides the status line set under seq
type flashExpiredMsg struct {
	seq int
}

// snapshotSavedMsg carries the history after a snapshot was appended
type snapshotSavedMsg struct {
	snapshot domain.Snapshot
	history  []domain.Snapshot
	err      error
}

// persistedMsg reports the outcome of a background write
type persistedMsg struct {
	what string
	err  error
}

// sensorTickMsg refreshes the sensor cards
type sensorTickMsg struct{}
