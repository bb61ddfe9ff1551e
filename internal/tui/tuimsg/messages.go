// Package tuimsg holds the messages scenes send up to the root model. It is
// separate from the tui package so scenes can emit them without an import cycle.
package tuimsg

import (
	"github.com/rgehrsitz/countdown/internal/domain"
)

// AssumptionsEditedMsg carries the draft model after an editor change. The
// root model debounces it before committing.
type AssumptionsEditedMsg struct {
	Assumptions domain.Assumptions
}

// ShowDetailsMsg opens the details panel of a headline counter
type ShowDetailsMsg struct {
	Kind domain.CounterKind
}

// ShowItemMsg opens the details of one catalog item
type ShowItemMsg struct {
	ItemID string
}

// SaveSnapshotMsg asks for a snapshot of the committed model
type SaveSnapshotMsg struct{}

// ClearSnapshotsMsg asks to forget the snapshot history
type ClearSnapshotsMsg struct{}

// NewAssumptionSetMsg asks for a fresh random sample of catalog items
type NewAssumptionSetMsg struct{}

// ResetMsg restores the default model. All also clears snapshots and settings.
type ResetMsg struct {
	All bool
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
