package tui

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/countdown/internal/catalog"
	"github.com/rgehrsitz/countdown/internal/copytext"
	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/rgehrsitz/countdown/internal/sensor"
	"github.com/rgehrsitz/countdown/internal/storage"
	"github.com/rgehrsitz/countdown/internal/tui/tuimsg"
	"github.com/rgehrsitz/countdown/internal/tui/tuistyles"
)

func newTestModel(t *testing.T) (Model, *storage.Repository) {
	t.Helper()
	repo := storage.NewRepository(storage.NewMemoryStore())
	m := NewModel(Options{
		Repository: repo,
		Rand:       rand.New(rand.NewPCG(1, 2)),
		Now:        func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	})
	t.Cleanup(func() {
		m.Stop()
		tuistyles.Apply(domain.ThemeDark)
	})

	m = send(t, m, StateLoadedMsg{
		Assumptions: domain.DefaultAssumptions(),
		Settings:    domain.DefaultSettings(),
	})
	return m, repo
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func sendCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// run executes cmd and feeds its message back into the model
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	return send(t, m, cmd())
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func TestNewModel_StartsLoading(t *testing.T) {
	m := NewModel(Options{})
	defer m.Stop()

	assert.Equal(t, SceneHome, m.CurrentScene())
	assert.Contains(t, m.View(), "Loading")
	require.NotNil(t, m.Result())
	assert.Equal(t, 2600, m.Result().Headline.SundaysRemaining)
	assert.Len(t, m.AssumptionSet(), catalog.DefaultSampleSize)
}

func TestStateLoaded_AppliesStoredState(t *testing.T) {
	m, _ := newTestModel(t)

	stored := domain.DefaultAssumptions()
	stored.Age = 50
	m = send(t, m, StateLoadedMsg{
		Assumptions: stored,
		Snapshots:   []domain.Snapshot{{Date: "5/1/2025", Sundays: 2000}},
		Settings:    domain.Settings{ThemeMode: domain.ThemeLight},
	})

	assert.Equal(t, 50, m.Committed().Age)
	assert.Equal(t, 50, m.Draft().Age)
	assert.Len(t, m.Snapshots(), 1)
	assert.Equal(t, domain.ThemeLight, tuistyles.Current())
	assert.Equal(t, 1560, m.Result().Headline.SundaysRemaining)
	assert.Contains(t, m.View(), "Existential Countdown")
}

func TestEdit_DebouncesCommit(t *testing.T) {
	m, repo := newTestModel(t)
	ctx := context.Background()

	first := domain.DefaultAssumptions()
	first.Age = 40
	m, cmd := sendCmd(t, m, tuimsg.AssumptionsEditedMsg{Assumptions: first})
	assert.NotNil(t, cmd)
	assert.Equal(t, 40, m.Draft().Age)
	assert.Equal(t, 30, m.Committed().Age, "commit waits for the debounce")

	second := first
	second.Age = 50
	m = send(t, m, tuimsg.AssumptionsEditedMsg{Assumptions: second})

	// the tick of the superseded edit is ignored
	m, cmd = sendCmd(t, m, commitMsg{seq: 1})
	assert.Nil(t, cmd)
	assert.Equal(t, 30, m.Committed().Age)

	m, cmd = sendCmd(t, m, commitMsg{seq: 2})
	assert.Equal(t, 50, m.Committed().Age)
	assert.Equal(t, 1560, m.Result().Headline.SundaysRemaining)

	m = run(t, m, cmd)
	assert.Equal(t, 50, repo.LoadAssumptions(ctx).Age)
}

func TestEdit_NormalizesDraft(t *testing.T) {
	m, _ := newTestModel(t)

	a := domain.DefaultAssumptions()
	a.Age = 500
	a.CoffeesPerDay = -3
	m = send(t, m, tuimsg.AssumptionsEditedMsg{Assumptions: a})

	assert.Equal(t, domain.MaxAge, m.Draft().Age)
	assert.Equal(t, domain.MinCoffeesPerDay, m.Draft().CoffeesPerDay)
}

func TestEdit_ZeroDebounceCommitsImmediately(t *testing.T) {
	m, _ := newTestModel(t)
	m.cfg.UI.Debounce = 0

	a := domain.DefaultAssumptions()
	a.CoffeesPerDay = 4
	m = send(t, m, tuimsg.AssumptionsEditedMsg{Assumptions: a})

	assert.Equal(t, 4, m.Committed().CoffeesPerDay)
	assert.Equal(t, 72800, m.Result().Headline.CoffeesLeft)
}

func TestReset_RestoresDefaultsAndKeepsSnapshots(t *testing.T) {
	m, repo := newTestModel(t)
	ctx := context.Background()

	a := domain.DefaultAssumptions()
	a.Age = 60
	m = send(t, m, tuimsg.AssumptionsEditedMsg{Assumptions: a})
	m, cmd := sendCmd(t, m, commitMsg{seq: m.editSeq})
	m = run(t, m, cmd)
	m = run(t, m, m.saveSnapshotCmd())
	require.Len(t, m.Snapshots(), 1)

	m, cmd = sendCmd(t, m, tuimsg.ResetMsg{})
	assert.Equal(t, domain.DefaultAssumptions(), m.Committed())
	assert.Equal(t, domain.DefaultAssumptions(), m.Draft())
	assert.Len(t, m.Snapshots(), 1)

	m = run(t, m, cmd)
	assert.Equal(t, domain.DefaultAssumptions(), repo.LoadAssumptions(ctx))
	assert.Len(t, repo.LoadSnapshots(ctx), 1)
}

func TestReset_CancelsPendingCommit(t *testing.T) {
	m, _ := newTestModel(t)

	a := domain.DefaultAssumptions()
	a.Age = 70
	m = send(t, m, tuimsg.AssumptionsEditedMsg{Assumptions: a})
	pending := m.editSeq

	m = send(t, m, tuimsg.ResetMsg{})
	m = send(t, m, commitMsg{seq: pending})

	assert.Equal(t, 30, m.Committed().Age)
}

func TestResetAll_ClearsEverything(t *testing.T) {
	m, repo := newTestModel(t)
	ctx := context.Background()

	m = run(t, m, m.saveSnapshotCmd())
	m, cmd := sendCmd(t, m, keyMsg("t"))
	m = run(t, m, cmd)
	require.Equal(t, domain.ThemeLight, repo.LoadSettings(ctx).ThemeMode)

	m, cmd = sendCmd(t, m, tuimsg.ResetMsg{All: true})
	assert.Empty(t, m.Snapshots())
	assert.Equal(t, domain.ThemeDark, m.Settings().ThemeMode)
	assert.Equal(t, domain.ThemeDark, tuistyles.Current())

	m = run(t, m, cmd)
	assert.Empty(t, repo.LoadSnapshots(ctx))
	assert.Equal(t, domain.ThemeDark, repo.LoadSettings(ctx).ThemeMode)
}

func TestThemeToggle_PersistsSetting(t *testing.T) {
	m, repo := newTestModel(t)

	m, cmd := sendCmd(t, m, keyMsg("t"))
	assert.Equal(t, domain.ThemeLight, m.Settings().ThemeMode)
	assert.Equal(t, domain.ThemeLight, tuistyles.Current())
	assert.Contains(t, m.View(), "light")

	m = run(t, m, cmd)
	assert.Equal(t, domain.ThemeLight, repo.LoadSettings(context.Background()).ThemeMode)

	m = send(t, m, keyMsg("t"))
	assert.Equal(t, domain.ThemeDark, m.Settings().ThemeMode)
}

func TestSaveSnapshot_AppendsNewestFirstWithLimit(t *testing.T) {
	m, repo := newTestModel(t)

	for age := 30; age < 35; age++ {
		a := domain.DefaultAssumptions()
		a.Age = age
		m.cfg.UI.Debounce = 0
		m = send(t, m, tuimsg.AssumptionsEditedMsg{Assumptions: a})

		var cmd tea.Cmd
		m, cmd = sendCmd(t, m, tuimsg.SaveSnapshotMsg{})
		m = run(t, m, cmd)
	}

	history := m.Snapshots()
	require.Len(t, history, 3)
	assert.Equal(t, "6/1/2025", history[0].Date)
	assert.Equal(t, (80-34)*52, history[0].Sundays)
	assert.Equal(t, (80-32)*52, history[2].Sundays)

	stored := repo.LoadSnapshots(context.Background())
	require.Len(t, stored, 3)
	assert.Equal(t, history[0].ID, stored[0].ID)
}

func TestSaveSnapshot_WithoutRepositoryStaysInMemory(t *testing.T) {
	m := NewModel(Options{Now: func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }})
	defer m.Stop()
	m = run(t, m, loadStateCmd(context.Background(), nil))

	m, cmd := sendCmd(t, m, tuimsg.SaveSnapshotMsg{})
	m = run(t, m, cmd)
	assert.Len(t, m.Snapshots(), 1)

	// persistence is skipped without a repository
	_, cmd = sendCmd(t, m, keyMsg("t"))
	assert.Nil(t, cmd)
}

func TestClearSnapshots(t *testing.T) {
	m, repo := newTestModel(t)

	m = run(t, m, m.saveSnapshotCmd())
	require.Len(t, m.Snapshots(), 1)

	m, cmd := sendCmd(t, m, tuimsg.ClearSnapshotsMsg{})
	assert.Empty(t, m.Snapshots())
	m = run(t, m, cmd)
	assert.Empty(t, repo.LoadSnapshots(context.Background()))
}

func TestNewAssumptionSet_FlashesAndExpires(t *testing.T) {
	m, _ := newTestModel(t)
	before := m.AssumptionSet()

	m = send(t, m, tuimsg.NewAssumptionSetMsg{})
	assert.Equal(t, copytext.AssumptionsUpdated, m.Flash())
	assert.Len(t, m.AssumptionSet(), len(before))
	assert.Len(t, m.Result().Items, len(before))

	first := m.flashSeq
	m = send(t, m, tuimsg.NewAssumptionSetMsg{})

	// an older expiry does not hide the newer flash
	m = send(t, m, flashExpiredMsg{seq: first})
	assert.Equal(t, copytext.AssumptionsUpdated, m.Flash())

	m = send(t, m, flashExpiredMsg{seq: m.flashSeq})
	assert.Empty(t, m.Flash())
}

func TestNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := sendCmd(t, m, keyMsg("a"))
	m = run(t, m, cmd)
	assert.Equal(t, SceneAssumptions, m.CurrentScene())
	assert.Contains(t, m.View(), "Assumptions")

	m, cmd = sendCmd(t, m, keyMsg("s"))
	m = run(t, m, cmd)
	assert.Equal(t, SceneSnapshots, m.CurrentScene())
	assert.Contains(t, m.View(), copytext.NoSnapshots)

	m, cmd = sendCmd(t, m, keyMsg("esc"))
	m = run(t, m, cmd)
	assert.Equal(t, SceneAssumptions, m.CurrentScene())

	m, cmd = sendCmd(t, m, keyMsg("?"))
	m = run(t, m, cmd)
	assert.Equal(t, SceneAbout, m.CurrentScene())
	assert.Contains(t, m.View(), "KEYBOARD SHORTCUTS")

	m, cmd = sendCmd(t, m, keyMsg("h"))
	m = run(t, m, cmd)
	assert.Equal(t, SceneHome, m.CurrentScene())
}

func TestShowDetailsAndItem(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := sendCmd(t, m, tuimsg.ShowDetailsMsg{Kind: domain.CounterCoffees})
	m = run(t, m, cmd)
	assert.Equal(t, SceneDetails, m.CurrentScene())
	assert.Contains(t, m.View(), "Coffees left")

	id := m.Result().Items[0].Item.ID
	m, cmd = sendCmd(t, m, tuimsg.ShowItemMsg{ItemID: id})
	m = run(t, m, cmd)
	assert.Equal(t, SceneItem, m.CurrentScene())
	require.NotNil(t, m.itemModel.Item())
	assert.Equal(t, id, m.itemModel.Item().Item.ID)
}

func TestErrorDismissedByAnyKey(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, tuimsg.ErrorMsg{Err: errors.New("disk full")})
	assert.Contains(t, m.View(), "disk full")

	m = send(t, m, keyMsg("x"))
	assert.NotContains(t, m.View(), "disk full")
}

func TestSensorCards_UnavailableWithoutSources(t *testing.T) {
	m, _ := newTestModel(t)

	cards := m.sensorCards()
	require.Len(t, cards, 3)
	for _, c := range cards {
		assert.Equal(t, sensor.NotAvailable, c.Display.Value)
	}
	assert.Nil(t, cards[1].Progress)
}

func TestQuit_StopsSession(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := sendCmd(t, m, keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Error(t, m.session.ctx.Err())
}
