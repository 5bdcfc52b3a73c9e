package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skimtui/skim/internal/feed"
	"github.com/skimtui/skim/internal/prefs"
	"github.com/skimtui/skim/internal/window"
)

// Options configure the UI runtime.
type Options struct {
	Store     *feed.Store
	Source    feed.Source
	Engine    window.Config
	PageSize  int
	Prefs     prefs.Prefs
	PrefsPath string
}

const (
	// frameInterval paces the render loop; the engine's own throttle decides
	// whether a frame actually republishes.
	frameInterval = 50 * time.Millisecond

	fetchTimeout = 10 * time.Second

	// chromeHeight is the header, command bar, and footer rows around the
	// scrolling surface.
	chromeHeight = 3
)

// engineSignals collects callback firings from the windowing engine so the
// update loop can consume them after the mutating call returns.
type engineSignals struct {
	window   bool
	extent   bool
	nearTail bool
}

func (s *engineSignals) takeWindow() bool {
	v := s.window
	s.window = false
	return v
}

func (s *engineSignals) takeNearTail() bool {
	v := s.nearTail
	s.nearTail = false
	return v
}

// Model is the bubbletea model for the feed reader.
type Model struct {
	ctx    context.Context
	store  *feed.Store
	source feed.Source

	engine  *window.Manager[feed.Entry]
	signals *engineSignals

	theme  Theme
	styles Styles
	keys   keyMap

	viewport viewport.Model
	width    int
	height   int
	ready    bool

	// offsets[i] is the first content line of visible card i. It covers
	// exactly the current window.
	offsets []int

	filterInput textinput.Model
	filtering   bool
	filterQuery string

	snapshot      feed.Snapshot
	appliedOnce   bool
	appliedFilter string
	fetching      bool
	pageSize      int

	prefs     prefs.Prefs
	prefsPath string

	showHelp     bool
	showDebug    bool
	lastMutation window.Mutation
}

// New builds the model and wires the windowing engine callbacks.
func New(opts Options) Model {
	engine := window.NewManager[feed.Entry](opts.Engine)
	signals := &engineSignals{}
	engine.OnWindowChanged(func(window.Window, []feed.Entry) { signals.window = true })
	engine.OnExtentChanged(func(int) { signals.extent = true })
	engine.OnNearTail(func() { signals.nearTail = true })

	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "filter author, title, or body"
	input.CharLimit = 80

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = window.DefaultPageSize
	}

	theme := GetTheme(opts.Prefs.Theme)
	return Model{
		ctx:         context.Background(),
		store:       opts.Store,
		source:      opts.Source,
		engine:      engine,
		signals:     signals,
		theme:       theme,
		styles:      theme.Styles(),
		keys:        DefaultKeyMap(),
		filterInput: input,
		pageSize:    pageSize,
		prefs:       opts.Prefs,
		prefsPath:   opts.PrefsPath,
		showDebug:   opts.Prefs.ShowDebug,
	}
}

// Run wires up the bubbletea program and blocks until ctx is cancelled or
// the user quits.
func Run(ctx context.Context, opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a feed store")
	}
	model := New(opts)
	model.ctx = ctx

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return frameTick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case frameMsg:
		m.engine.Flush()
		m.applySnapshot(m.store.Snapshot())
		cmd := m.consumeSignals()
		return m, tea.Batch(cmd, frameTick())

	case pageFetchedMsg:
		m.fetching = false
		m.applySnapshot(m.store.Snapshot())
		return m, m.consumeSignals()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading feed..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderHeader() + "\n" +
		m.renderCommandBar() + "\n" +
		m.viewport.View() + "\n" +
		m.renderFooter()
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	surfaceHeight := max(1, msg.Height-chromeHeight)
	if !m.ready {
		m.viewport = viewport.New(msg.Width, surfaceHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = surfaceHeight
	}
	m.filterInput.Width = max(10, msg.Width-4)

	m.engine.SetViewportHeight(surfaceHeight)
	m.refreshContent()
	return m, m.consumeSignals()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Filter entry mode captures everything except its own exits.
	if m.filtering {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.filtering = false
			m.filterInput.Blur()
			m.filterQuery = m.filterInput.Value()
			m.applySnapshot(m.store.Snapshot())
			m.viewport.GotoTop()
			return m, m.consumeSignals()
		case key.Matches(msg, m.keys.Escape):
			m.filtering = false
			m.filterInput.Blur()
			m.filterInput.SetValue(m.filterQuery)
			return m, nil
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}

	if m.showHelp {
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(NextTheme(m.theme.Name))
		m.refreshContent()
		return m, m.consumeSignals()

	case key.Matches(msg, m.keys.ToggleDebug):
		m.showDebug = !m.showDebug
		m.prefs.ShowDebug = m.showDebug
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filterInput.SetValue(m.filterQuery)
		m.filterInput.CursorEnd()
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.filterQuery != "" {
			m.filterQuery = ""
			m.filterInput.SetValue("")
			m.applySnapshot(m.store.Snapshot())
			m.viewport.GotoTop()
			return m, m.consumeSignals()
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		m.afterScroll()
		return m, m.consumeSignals()
	}

	// Everything else is viewport navigation.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.afterScroll()
	return m, tea.Batch(cmd, m.consumeSignals())
}

// setTheme switches the active theme and persists the choice.
func (m *Model) setTheme(name string) {
	m.theme = GetTheme(name)
	m.styles = m.theme.Styles()
	m.prefs.Theme = m.theme.Name
	m.savePrefs()
}

// savePrefs persists preferences. Failures are cosmetic and ignored.
func (m *Model) savePrefs() {
	_ = prefs.Save(m.prefsPath, m.prefs)
}

// applySnapshot feeds the latest store snapshot through the active filter
// into the windowing engine. Identity-equal sequences short-circuit so the
// frame loop stays cheap when nothing changed.
func (m *Model) applySnapshot(snap feed.Snapshot) {
	if m.appliedOnce &&
		snap.LastUpdated.Equal(m.snapshot.LastUpdated) &&
		snap.ConsecutiveFailures == m.snapshot.ConsecutiveFailures &&
		m.filterQuery == m.appliedFilter {
		return
	}
	m.snapshot = snap
	m.appliedOnce = true
	m.appliedFilter = m.filterQuery

	entries := filterEntries(snap.Entries, m.filterQuery)
	if kind := m.engine.SetItems(entries); kind != window.MutationNone {
		m.lastMutation = kind
	}
}

// consumeSignals reacts to engine callbacks queued since the last mutating
// call: a window change rebuilds the surface, a near-tail signal starts a
// page fetch.
func (m *Model) consumeSignals() tea.Cmd {
	if m.signals.takeWindow() {
		m.refreshContent()
	}
	m.signals.extent = false

	if m.signals.takeNearTail() && m.source != nil && !m.fetching && !m.snapshot.Exhausted {
		m.fetching = true
		return fetchPageCmd(m.ctx, m.source, m.store, m.pageSize)
	}
	return nil
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// fetchPageCmd pulls the next page from the source into the store. The
// offset is read inside the command so a fetch queued behind appends still
// targets the real tail.
func fetchPageCmd(ctx context.Context, source feed.Source, store *feed.Store, limit int) tea.Cmd {
	return func() tea.Msg {
		fctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()

		offset := store.Len()
		entries, err := source.Page(fctx, offset, limit)
		if err != nil {
			store.Fail(err)
			return pageFetchedMsg{err: err}
		}
		if !store.AppendPage(offset, entries, len(entries) < limit) {
			// Another fetcher moved the tail first; the snapshot loop will
			// re-request if the window is still near it.
			return pageFetchedMsg{}
		}
		return pageFetchedMsg{appended: len(entries)}
	}
}

type frameMsg time.Time

type pageFetchedMsg struct {
	appended int
	err      error
}
