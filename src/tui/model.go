package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"staffline-agent/src/coordinate"
)

// RefreshInterval is how often an in-progress report is reloaded.
const RefreshInterval = time.Second

// Status is the loading state of the viewer.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusError
)

// Loader fetches the latest report, typically from the request store.
type Loader func() (Report, error)

// ReportMsg delivers a freshly loaded report.
type ReportMsg struct {
	Report Report
}

// LoadErrMsg reports a failed load.
type LoadErrMsg struct {
	Err error
}

type refreshMsg struct{}

// MainModel is the report viewer: a filterable list on the left and the
// selected item's details on the right.
type MainModel struct {
	report Report
	items  []Item
	loader Loader
	status Status
	err    error

	listView       ReportList
	detailViewport viewport.Model
	header         Header
	progress       ProgressModel
	help           help.Model
	keys           keyMap
	styles         *StyleConfig

	searchMode    bool
	searchQuery   string
	detailFocused bool

	ready  bool
	width  int
	height int
}

// NewMainModel creates a viewer for an already complete report.
func NewMainModel(report Report) MainModel {
	m := newModel(nil)
	m.setReport(report)
	return m
}

// NewLoadingModel creates a viewer that fetches its report with loader and
// keeps refreshing while the request is still running.
func NewLoadingModel(loader Loader) MainModel {
	return newModel(loader)
}

func newModel(loader Loader) MainModel {
	styles := DefaultStyles()
	h := help.New()
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(styles.PrimaryBlue).Bold(true)
	h.Styles.ShortDesc = h.Styles.ShortDesc.Foreground(styles.TextSecondary)

	return MainModel{
		loader:         loader,
		status:         StatusLoading,
		listView:       NewReportList(styles),
		detailViewport: viewport.New(0, 0),
		header:         NewHeaderWithStyles("Loading...", nil, styles),
		progress:       NewProgressModel(),
		help:           h,
		keys:           defaultKeyMap(),
		styles:         styles,
	}
}

func (m MainModel) load() tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		report, err := loader()
		if err != nil {
			return LoadErrMsg{Err: err}
		}
		return ReportMsg{Report: report}
	}
}

// Init starts loading when the model has a loader.
func (m MainModel) Init() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	return tea.Batch(m.load(), SpinnerTick())
}

func (m *MainModel) setReport(report Report) {
	m.report = report
	m.items = report.Items()
	m.status = StatusReady
	m.err = nil

	m.header.SetStatus(summarize(report))
	m.header.SetAgents(report.Agents())
	m.applyFilter()
}

// progressFor counts the agent steps the pipeline stage has finished.
func progressFor(r Report) ProgressMsg {
	stage, ok := coordinate.ParseStage(r.Stage)
	if !ok {
		return ProgressMsg{Stage: r.Status}
	}
	return ProgressMsg{Stage: r.Stage, Current: min(int(stage), len(pipelineSteps)), Total: len(pipelineSteps)}
}

func summarize(r Report) string {
	s := r.SessionID
	if s == "" {
		s = "workflow"
	}
	if r.Source != "" {
		s += " • " + r.Source
	}
	if r.Stage != "" {
		s += " • " + r.Stage
	}
	if r.Status != "" {
		s += " (" + r.Status + ")"
	}
	return s
}

// Update handles messages and key presses
func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.resizeComponents()
		return m, nil

	case ReportMsg:
		m.setReport(msg.Report)
		var cmd tea.Cmd
		if msg.Report.InProgress() {
			m.progress, cmd = m.progress.Update(progressFor(msg.Report))
			cmds = append(cmds, cmd, tea.Tick(RefreshInterval, func(time.Time) tea.Msg { return refreshMsg{} }))
		} else {
			m.progress, cmd = m.progress.Update(ProgressMsg{Stage: StageComplete})
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case refreshMsg:
		if m.loader != nil {
			return m, m.load()
		}
		return m, nil

	case LoadErrMsg:
		m.status = StatusError
		m.err = msg.Err
		m.header.SetStatus(fmt.Sprintf("Error: %v", msg.Err))
		return m, nil

	case SpinnerTickMsg:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.searchMode {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m MainModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchMode = false
		m.searchQuery = ""
	case tea.KeyEnter:
		m.searchMode = false
	case tea.KeyBackspace:
		if r := []rune(m.searchQuery); len(r) > 0 {
			m.searchQuery = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.searchQuery += " "
	case tea.KeyRunes:
		m.searchQuery += string(msg.Runes)
	case tea.KeyCtrlC:
		return m, tea.Quit
	default:
		return m, nil
	}
	m.header.SetSearch(m.searchQuery, m.searchMode)
	m.applyFilter()
	return m, nil
}

func (m MainModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.detailFocused = false
		return m, nil

	case m.detailFocused:
		var cmd tea.Cmd
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.header.SetSearch(m.searchQuery, true)
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.header.CycleFilter()
		m.applyFilter()
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		if _, ok := m.listView.Selected(); ok {
			m.detailFocused = true
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.loader != nil {
			m.status = StatusLoading
			return m, tea.Batch(m.load(), SpinnerTick())
		}
		return m, nil
	}

	before, _ := m.listView.Selected()
	var cmd tea.Cmd
	m.listView, cmd = m.listView.Update(msg)
	if after, ok := m.listView.Selected(); ok && after.Rank != before.Rank {
		m.updateDetailContent(after)
	}
	return m, cmd
}

// Start opens the viewer on a complete report.
func Start(report Report) error {
	_, err := tea.NewProgram(NewMainModel(report), tea.WithAltScreen()).Run()
	return err
}

// StartWithLoader opens the viewer and loads the report with loader.
func StartWithLoader(loader Loader) error {
	_, err := tea.NewProgram(NewLoadingModel(loader), tea.WithAltScreen()).Run()
	return err
}
