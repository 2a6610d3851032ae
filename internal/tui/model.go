package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/tinytelemetry/launchboard/internal/board"
	"github.com/tinytelemetry/launchboard/internal/logging"
	"github.com/tinytelemetry/launchboard/internal/model"
)

// Options configures a DashboardModel.
type Options struct {
	Source             model.LaunchSource
	FetchLimit         int
	PageSize           int
	ReverseScrollWheel bool
	APIBaseURL         string // shown in the header
	Logger             *zap.Logger
}

// SearchState holds the inline mission search input.
type SearchState struct {
	searchInput  textinput.Model
	searchActive bool
}

// ModalStackState holds the modal stack.
type ModalStackState struct {
	modalStack []Modal
}

// TableState holds the row cursor within the visible page.
type TableState struct {
	cursor int
}

// DashboardModel is the single launch list view.
// Sub-state is organized into embedded structs for readability.
type DashboardModel struct {
	SearchState
	ModalStackState
	TableState

	store      *board.Store
	source     model.LaunchSource
	fetchLimit int

	// ctx bounds every load; cancel runs when the dashboard goes away.
	ctx    context.Context
	cancel context.CancelFunc

	spinner spinner.Model
	help    help.Model
	keys    KeyMap

	width  int
	height int

	reverseScrollWheel bool
	apiBaseURL         string
	loadStarted        time.Time

	log *zap.Logger

	inlineHandlers []inlineHandlerEntry
}

// NewDashboardModel creates the dashboard. Loads run under parent until
// Close is called.
func NewDashboardModel(parent context.Context, opts Options) *DashboardModel {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	searchInput := textinput.New()
	searchInput.Placeholder = "Search by mission name..."
	searchInput.Prompt = ""
	searchInput.CharLimit = 120

	pageSize := opts.PageSize
	if !model.ValidPageSize(pageSize) {
		pageSize = model.DefaultPageSize
	}
	limit := opts.FetchLimit
	if limit <= 0 {
		limit = model.DefaultLaunchLimit
	}

	m := &DashboardModel{
		SearchState: SearchState{
			searchInput: searchInput,
		},
		store:              board.NewStore(pageSize),
		source:             opts.Source,
		fetchLimit:         limit,
		ctx:                ctx,
		cancel:             cancel,
		spinner:            spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorBlue))),
		help:               help.New(),
		keys:               DefaultKeyMap(),
		reverseScrollWheel: opts.ReverseScrollWheel,
		apiBaseURL:         opts.APIBaseURL,
		log:                logging.Component(opts.Logger, "tui"),
	}

	m.inlineHandlers = []inlineHandlerEntry{
		{isActive: func(m *DashboardModel) bool { return m.searchActive }, handler: searchInputHandler{}},
	}
	return m
}

// Init starts the first load session.
func (m *DashboardModel) Init() tea.Cmd {
	return m.startLoad()
}

// Close retires the current load session and cancels requests in flight.
func (m *DashboardModel) Close() {
	m.store.Close()
	m.cancel()
}

// State returns the current view state.
func (m *DashboardModel) State() board.State {
	return m.store.State()
}

// startLoad begins a new session and returns the command that fetches it.
func (m *DashboardModel) startLoad() tea.Cmd {
	gen := m.store.Begin()
	m.cursor = 0
	m.searchActive = false
	m.searchInput.Blur()
	m.searchInput.SetValue("")
	m.modalStack = nil
	m.loadStarted = time.Now()

	m.log.Info("loading launches", zap.Uint64("generation", gen), zap.Int("limit", m.fetchLimit))

	if m.source == nil {
		return nil
	}
	ctx, src, limit := m.ctx, m.source, m.fetchLimit
	load := func() tea.Msg {
		return loadResultMsg{event: board.Load(ctx, src, limit, gen)}
	}
	return tea.Batch(load, m.spinner.Tick)
}

// dispatch applies ev and keeps the cursor on the visible page.
func (m *DashboardModel) dispatch(ev board.Event) {
	before := m.store.State()
	after := m.store.Dispatch(ev)
	if before.Page != after.Page || before.Status != after.Status ||
		before.Search != after.Search || before.PageSize != after.PageSize {
		m.cursor = 0
	}
	m.clampCursor()
}

func (m *DashboardModel) clampCursor() {
	n := len(m.store.CurrentPage().Records)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selectedRow returns the launch under the cursor.
func (m *DashboardModel) selectedRow() (model.Launch, bool) {
	records := m.store.CurrentPage().Records
	if m.cursor < 0 || m.cursor >= len(records) {
		return model.Launch{}, false
	}
	return records[m.cursor], true
}

func (m *DashboardModel) modalContext() ModalContext {
	return ModalContext{ReverseScrollWheel: m.reverseScrollWheel}
}

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (m *DashboardModel) PushModal(modal Modal) {
	for _, existing := range m.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	m.modalStack = append(m.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (m *DashboardModel) PopModal() {
	if len(m.modalStack) > 0 {
		m.modalStack = m.modalStack[:len(m.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (m *DashboardModel) TopModal() Modal {
	if len(m.modalStack) == 0 {
		return nil
	}
	return m.modalStack[len(m.modalStack)-1]
}

// HasModal returns true if any modal is on the stack.
func (m *DashboardModel) HasModal() bool {
	return len(m.modalStack) > 0
}

// DashboardPage adapts DashboardModel to the Page interface.
type DashboardPage struct {
	Model *DashboardModel
}

// NewDashboardPage wraps a DashboardModel as a Page.
func NewDashboardPage(m *DashboardModel) *DashboardPage {
	return &DashboardPage{Model: m}
}

func (p *DashboardPage) ID() string { return "dashboard" }

func (p *DashboardPage) Init() tea.Cmd {
	return p.Model.Init()
}

func (p *DashboardPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	_, cmd := p.Model.Update(msg)
	return cmd, nil
}

func (p *DashboardPage) View(width, height int) string {
	p.Model.width = width
	p.Model.height = height
	return p.Model.View()
}

func (p *DashboardPage) Close() {
	p.Model.Close()
}
