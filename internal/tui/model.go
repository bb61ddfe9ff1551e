package tui

import (
	"context"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/countdown/internal/calculation"
	"github.com/rgehrsitz/countdown/internal/catalog"
	"github.com/rgehrsitz/countdown/internal/compare"
	"github.com/rgehrsitz/countdown/internal/config"
	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/rgehrsitz/countdown/internal/logging"
	"github.com/rgehrsitz/countdown/internal/sensor"
	"github.com/rgehrsitz/countdown/internal/storage"
	"github.com/rgehrsitz/countdown/internal/tui/components"
	"github.com/rgehrsitz/countdown/internal/tui/scenes"
)

// FlashDuration is how long transient status lines stay visible
const FlashDuration = 2 * time.Second

// SensorRefresh is the redraw interval of the sensor cards
const SensorRefresh = time.Second

// Options wires the model to its collaborators. Only Repository is
// required; nil sources read as unavailable. Each counter consumes its own
// source, so a pedometer feeding both step counters needs two subscriptions.
type Options struct {
	Config     *config.Configuration
	Repository *storage.Repository
	Catalog    *catalog.Catalog
	StepSource sensor.Source
	LampSource sensor.Source
	BulbSource sensor.Source
	Rand       *rand.Rand
	Logger     logging.Logger
	Now        func() time.Time
}

// session holds what must not be copied with the model value
type session struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	cfg     *config.Configuration
	repo    *storage.Repository
	catalog *catalog.Catalog
	calc    *calculation.CalculationEngine
	compare *compare.CompareEngine
	rng     *rand.Rand
	logger  logging.Logger
	session *session

	// draft follows every edit; committed trails it by the debounce delay
	draft     domain.Assumptions
	committed domain.Assumptions
	editSeq   int

	result        *calculation.Result
	assumptionSet []domain.LifeAssumption
	snapshots     []domain.Snapshot
	settings      domain.Settings

	flash    string
	flashSeq int

	steps *sensor.StepCounter
	lamps *sensor.LampStepsCounter
	bulbs *sensor.BulbCounter

	homeModel        *scenes.HomeModel
	assumptionsModel *scenes.AssumptionsModel
	detailsModel     *scenes.DetailsModel
	itemModel        *scenes.ItemModel
	snapshotsModel   *scenes.SnapshotsModel

	err     error
	loading bool
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfiguration()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	logger := logging.OrNop(opts.Logger)

	calc := calculation.NewCalculationEngineWithCatalog(cat)
	calc.SetLogger(logger)
	cmp := compare.NewCompareEngine(calc)
	if opts.Now != nil {
		cmp.Now = opts.Now
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		currentScene:     SceneHome,
		width:            80,
		height:           24,
		cfg:              cfg,
		repo:             opts.Repository,
		catalog:          cat,
		calc:             calc,
		compare:          cmp,
		rng:              rng,
		logger:           logger,
		session:          &session{ctx: ctx, cancel: cancel},
		draft:            cfg.Defaults,
		committed:        cfg.Defaults,
		settings:         domain.Settings{ThemeMode: cfg.UI.Theme},
		steps:            sensor.NewStepCounter(opts.StepSource),
		lamps:            sensor.NewLampStepsCounter(opts.LampSource),
		bulbs:            sensor.NewBulbCounter(opts.BulbSource),
		homeModel:        scenes.NewHomeModel(),
		assumptionsModel: scenes.NewAssumptionsModel(),
		detailsModel:     scenes.NewDetailsModel(),
		itemModel:        scenes.NewItemModel(),
		snapshotsModel:   scenes.NewSnapshotsModel(),
		loading:          true,
	}
	m.steps.SetLogger(logger)
	m.lamps.SetLogger(logger)
	m.bulbs.SetLogger(logger)
	m.assumptionSet = cat.Sample(cfg.UI.CatalogSetSize, rng)
	m.recompute()
	return m
}

// Init loads the stored state and starts the sensor feeds
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadStateCmd(m.session.ctx, m.repo),
		m.startSensorsCmd(),
		sensorTickCmd(),
	)
}

// Stop cancels the sensor feeds and any pending background work
func (m Model) Stop() {
	m.session.cancel()
}

// Committed returns the committed assumption model
func (m Model) Committed() domain.Assumptions { return m.committed }

// Draft returns the model being edited
func (m Model) Draft() domain.Assumptions { return m.draft }

// Result returns the evaluation of the committed model
func (m Model) Result() *calculation.Result { return m.result }

// Snapshots returns the in-memory snapshot history
func (m Model) Snapshots() []domain.Snapshot { return m.snapshots }

// Settings returns the UI settings
func (m Model) Settings() domain.Settings { return m.settings }

// CurrentScene returns the scene on screen
func (m Model) CurrentScene() Scene { return m.currentScene }

// AssumptionSet returns the catalog items currently on the dashboard
func (m Model) AssumptionSet() []domain.LifeAssumption { return m.assumptionSet }

// Flash returns the transient status line
func (m Model) Flash() string { return m.flash }

// recompute evaluates the committed model and pushes it to every scene
func (m *Model) recompute() {
	m.result = m.calc.EvaluateItems(m.committed, m.assumptionSet)
	m.homeModel.SetResult(m.result)
	m.homeModel.SetFlash(m.flash)
	m.detailsModel.SetResult(m.result)

	var comparison *compare.ComparisonSet
	if len(m.snapshots) > 0 {
		c, err := m.compare.Compare(m.session.ctx, m.committed, m.snapshots)
		if err != nil {
			m.logger.Debugf("snapshot comparison skipped: %v", err)
		} else {
			comparison = c
		}
	}
	m.snapshotsModel.SetData(m.snapshots, comparison)
}

// loadStateCmd reads the model, snapshots and settings from storage
func loadStateCmd(ctx context.Context, repo *storage.Repository) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return StateLoadedMsg{Assumptions: domain.DefaultAssumptions(), Settings: domain.DefaultSettings()}
		}
		return StateLoadedMsg{
			Assumptions: repo.LoadAssumptions(ctx),
			Snapshots:   repo.LoadSnapshots(ctx),
			Settings:    repo.LoadSettings(ctx),
		}
	}
}

// startSensorsCmd runs every sensor counter until the session ends
func (m Model) startSensorsCmd() tea.Cmd {
	counters := []sensor.Counter{m.steps, m.lamps, m.bulbs}
	ctx, logger := m.session.ctx, m.logger
	return func() tea.Msg {
		for _, c := range counters {
			go func(c sensor.Counter) {
				if err := c.Run(ctx); err != nil && ctx.Err() == nil {
					logger.Warnf("sensor feed stopped: %v", err)
				}
			}(c)
		}
		return nil
	}
}

func sensorTickCmd() tea.Cmd {
	return tea.Tick(SensorRefresh, func(time.Time) tea.Msg { return sensorTickMsg{} })
}

// sensorCards builds the dashboard cards from the live counters
func (m Model) sensorCards() []scenes.SensorCard {
	cards := []scenes.SensorCard{
		{Display: m.steps.Display()},
		{Display: m.lamps.Display()},
		{Display: m.bulbs.Display()},
	}
	if m.lamps.Available() {
		walked := sensor.LampSpacing - m.lamps.StepsToLamp()
		cards[1].Progress = components.NewProgressBar(walked, sensor.LampSpacing).WithWidth(16)
	}
	return cards
}
