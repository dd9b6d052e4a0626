package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"omnisite/internal/constants"
	"omnisite/internal/models"
	"omnisite/internal/rotation"
	"omnisite/internal/storage"
	"omnisite/internal/streak"
	"omnisite/internal/utils"
)

// LogFormModel backs the interactive placement form.
type LogFormModel struct {
	Site string
	Note string
}

type Model struct {
	store         storage.Provider
	settings      models.Settings
	cfg           rotation.Config
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	sites           []models.Site
	statuses        []rotation.SiteStatus
	placements      []models.Placement
	todayPlacements []models.Placement
	summary         streak.Summary
	suggestion      *models.Site

	form    *huh.Form
	logForm *LogFormModel

	cursor              int
	placementToDeleteID string
	statusMessage       string
	quitting            bool
	width               int
	height              int
}

func NewModel(store storage.Provider) Model {
	settings, err := store.GetSettings()
	if err != nil {
		settings = models.Settings{}
	}

	m := Model{
		store:    store,
		settings: settings,
		cfg:      rotation.ConfigFromSettings(settings),
		state:    constants.StateSites,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// now resolves the reference clock in the configured timezone, falling back
// to the system clock when the timezone cannot be loaded.
func (m Model) now() time.Time {
	t, err := utils.NowInTimezone(m.settings.Timezone)
	if err != nil {
		return time.Now()
	}
	return t
}

func (m Model) today() string {
	return m.now().Format(constants.DateFormat)
}

// refresh reloads all displayed data from the store and recomputes the
// derived rotation and streak figures.
func (m *Model) refresh() {
	sites, err := m.store.GetAllSites(false, false)
	if err != nil {
		sites = []models.Site{}
	}
	m.sites = sites

	placements, err := m.store.GetAllPlacements()
	if err != nil {
		placements = []models.Placement{}
	}
	m.placements = placements

	now := m.now()
	today := now.Format(constants.DateFormat)
	m.statuses = rotation.Overview(placements, sites, now, m.cfg)
	m.summary = streak.Compute(placements, today)

	m.suggestion = nil
	if site, ok := rotation.Suggest(placements, sites, now, m.cfg); ok {
		m.suggestion = &site
	}

	m.todayPlacements = nil
	for _, p := range placements {
		if p.Day == today {
			m.todayPlacements = append(m.todayPlacements, p)
		}
	}

	if m.cursor >= len(m.placements) {
		m.cursor = 0
	}
}

// newLogForm builds a huh form for logging a placement to one of the known
// sites. Labels are presented for selection so typos cannot produce records
// for unknown sites.
func (m *Model) newLogForm() *huh.Form {
	options := make([]huh.Option[string], 0, len(m.sites))
	for _, s := range m.sites {
		options = append(options, huh.NewOption(s.Label, s.Label))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Site").
				Options(options...).
				Value(&m.logForm.Site),
			huh.NewInput().
				Title("Note").
				Description("Optional").
				Value(&m.logForm.Note),
		),
	)
}

// historyPlacements returns live placements ordered newest first for the
// history view. The cursor indexes into this ordering.
func (m Model) historyPlacements() []models.Placement {
	out := make([]models.Placement, len(m.placements))
	for i, p := range m.placements {
		out[len(m.placements)-1-i] = p
	}
	return out
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateSites, constants.StateToday:
		keys = append(keys, m.keys.Log)
	case constants.StateHistory:
		keys = append(keys, m.keys.Log, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	switch m.state {
	case constants.StateSites, constants.StateToday, constants.StateStats:
		actions = []key.Binding{m.keys.Log}
	case constants.StateHistory:
		actions = []key.Binding{m.keys.Log, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}
