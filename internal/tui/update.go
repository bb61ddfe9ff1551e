package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/countdown/internal/copytext"
	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/rgehrsitz/countdown/internal/tui/tuimsg"
	"github.com/rgehrsitz/countdown/internal/tui/tuistyles"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.homeModel.SetSize(msg.Width, msg.Height)
		m.assumptionsModel.SetSize(msg.Width, msg.Height)
		m.detailsModel.SetSize(msg.Width, msg.Height)
		m.itemModel.SetSize(msg.Width, msg.Height)
		m.snapshotsModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		if msg.Scene == SceneAssumptions {
			m.assumptionsModel.SetAssumptions(m.draft)
		}
		return m, nil

	case StateLoadedMsg:
		m.loading = false
		m.draft = msg.Assumptions.Normalize()
		m.committed = m.draft
		m.snapshots = msg.Snapshots
		m.settings = msg.Settings
		tuistyles.Apply(m.settings.ThemeMode)
		m.assumptionsModel.SetAssumptions(m.draft)
		m.recompute()
		return m, nil

	case tuimsg.ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tuimsg.AssumptionsEditedMsg:
		return m.edit(msg.Assumptions)

	case commitMsg:
		if msg.seq != m.editSeq {
			// superseded by a later edit
			return m, nil
		}
		return m.commit()

	case tuimsg.ShowDetailsMsg:
		m.detailsModel.SetKind(msg.Kind)
		return m.navigate(SceneDetails)

	case tuimsg.ShowItemMsg:
		m.itemModel.SetItem(nil)
		for i := range m.result.Items {
			if m.result.Items[i].Item.ID == msg.ItemID {
				item := m.result.Items[i]
				m.itemModel.SetItem(&item)
			}
		}
		return m.navigate(SceneItem)

	case tuimsg.SaveSnapshotMsg:
		return m, m.saveSnapshotCmd()

	case snapshotSavedMsg:
		m.snapshots = msg.history
		m.recompute()
		return m, nil

	case tuimsg.ClearSnapshotsMsg:
		m.snapshots = nil
		m.recompute()
		return m, m.persistCmd("snapshots", m.clearSnapshots)

	case tuimsg.NewAssumptionSetMsg:
		m.assumptionSet = m.catalog.Sample(m.cfg.UI.CatalogSetSize, m.rng)
		cmd := m.setFlash(copytext.AssumptionsUpdated)
		m.recompute()
		return m, cmd

	case flashExpiredMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
			m.homeModel.SetFlash("")
		}
		return m, nil

	case tuimsg.ResetMsg:
		return m.reset(msg.All)

	case persistedMsg:
		if msg.err != nil {
			m.logger.Warnf("%s not persisted: %v", msg.what, msg.err)
		}
		return m, nil

	case sensorTickMsg:
		m.homeModel.SetSensors(m.sensorCards())
		if m.session.ctx.Err() != nil {
			return m, nil
		}
		return m, sensorTickCmd()
	}

	return m.updateCurrentScene(msg)
}

// edit records a new draft and schedules its commit. Every edit bumps the
// sequence, so only the tick of the latest edit commits.
func (m Model) edit(a domain.Assumptions) (tea.Model, tea.Cmd) {
	m.draft = a.Normalize()
	m.editSeq++
	seq := m.editSeq

	delay := m.cfg.UI.Debounce
	if delay <= 0 {
		return m.commit()
	}
	return m, tea.Tick(delay, func(time.Time) tea.Msg { return commitMsg{seq: seq} })
}

// commit promotes the draft, recomputes and persists it
func (m Model) commit() (tea.Model, tea.Cmd) {
	m.committed = m.draft
	m.recompute()
	committed := m.committed
	return m, m.persistCmd("assumptions", func(ctx context.Context) error {
		return m.repo.SaveAssumptions(ctx, committed)
	})
}

// reset restores the default model; all also drops snapshots and settings.
// A pending commit is cancelled by bumping the edit sequence.
func (m Model) reset(all bool) (tea.Model, tea.Cmd) {
	m.editSeq++
	defaults := m.cfg.Defaults
	if m.repo != nil {
		defaults = m.repo.Defaults()
	}
	m.draft = defaults.Normalize()
	m.committed = m.draft
	m.assumptionsModel.SetAssumptions(m.draft)

	if !all {
		m.recompute()
		return m, m.persistCmd("assumptions", func(ctx context.Context) error {
			return m.repo.ClearAssumptions(ctx)
		})
	}

	m.snapshots = nil
	m.settings = domain.DefaultSettings()
	tuistyles.Apply(m.settings.ThemeMode)
	m.recompute()
	return m, m.persistCmd("state", func(ctx context.Context) error {
		return m.repo.ResetAll(ctx)
	})
}

func (m Model) navigate(scene Scene) (tea.Model, tea.Cmd) {
	return m, func() tea.Msg { return NavigateMsg{Scene: scene} }
}

func (m *Model) setFlash(text string) tea.Cmd {
	m.flashSeq++
	seq := m.flashSeq
	m.flash = text
	m.homeModel.SetFlash(text)
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg { return flashExpiredMsg{seq: seq} })
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	m.settings.ThemeMode = m.settings.ThemeMode.Toggle()
	tuistyles.Apply(m.settings.ThemeMode)
	settings := m.settings
	return m, m.persistCmd("settings", func(ctx context.Context) error {
		return m.repo.SaveSettings(ctx, settings)
	})
}

// persistCmd runs a repository write off the update loop. Without a
// repository the state lives in memory only.
func (m Model) persistCmd(what string, write func(ctx context.Context) error) tea.Cmd {
	if m.repo == nil {
		return nil
	}
	ctx := m.session.ctx
	return func() tea.Msg {
		return persistedMsg{what: what, err: write(ctx)}
	}
}

func (m Model) clearSnapshots(ctx context.Context) error {
	return m.repo.ClearSnapshots(ctx)
}

// saveSnapshotCmd freezes the committed model and appends it to the history
func (m Model) saveSnapshotCmd() tea.Cmd {
	snap := m.compare.Snapshot(m.committed)
	if m.repo == nil {
		history := append([]domain.Snapshot{snap}, m.snapshots...)
		if limit := m.cfg.Snapshots.Limit; limit > 0 && len(history) > limit {
			history = history[:limit]
		}
		return func() tea.Msg { return snapshotSavedMsg{snapshot: snap, history: history} }
	}
	repo, ctx := m.repo, m.session.ctx
	return func() tea.Msg {
		history, err := repo.AppendSnapshot(ctx, snap)
		return snapshotSavedMsg{snapshot: snap, history: history, err: err}
	}
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		// any key dismisses the error
		m.err = nil
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.Stop()
		return m, tea.Quit

	case "?":
		if m.currentScene != SceneAbout {
			return m.navigate(SceneAbout)
		}

	case "esc":
		if m.currentScene != SceneHome {
			back := SceneHome
			if m.previousScene != SceneHome && m.previousScene != m.currentScene {
				back = m.previousScene
			}
			return m.navigate(back)
		}

	case "h":
		if m.currentScene != SceneHome {
			return m.navigate(SceneHome)
		}

	case "a":
		if m.currentScene != SceneAssumptions {
			return m.navigate(SceneAssumptions)
		}

	case "s":
		if m.currentScene != SceneSnapshots {
			return m.navigate(SceneSnapshots)
		}

	case "t":
		return m.toggleTheme()
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case SceneAssumptions:
		m.assumptionsModel, cmd = m.assumptionsModel.Update(msg)
	case SceneDetails:
		m.detailsModel, cmd = m.detailsModel.Update(msg)
	case SceneItem:
		m.itemModel, cmd = m.itemModel.Update(msg)
	case SceneSnapshots:
		m.snapshotsModel, cmd = m.snapshotsModel.Update(msg)
	}
	return m, cmd
}
