package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StageComplete marks the end of a workflow in ProgressMsg.
const StageComplete = "complete"

// pipelineSteps are the agent stages a request passes through, in order.
var pipelineSteps = []string{
	"Contract compliance",
	"Candidate matching",
	"Capacity planning",
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var (
	stepDoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	stepActiveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	stepPendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	progressTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3498DB"))
)

// ProgressMsg reports how many pipeline steps have finished.
// Total is zero while the stage is still unknown.
type ProgressMsg struct {
	Stage   string
	Current int
	Total   int
}

// SpinnerTickMsg advances the spinner on the active step.
type SpinnerTickMsg time.Time

// ProgressModel renders the pipeline as a checklist while agents work.
type ProgressModel struct {
	stage   string
	current int
	total   int
	done    bool
	frame   int
}

func NewProgressModel() ProgressModel {
	return ProgressModel{}
}

func SpinnerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return SpinnerTickMsg(t)
	})
}

func (m ProgressModel) Update(msg tea.Msg) (ProgressModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ProgressMsg:
		m.stage = msg.Stage
		m.current = msg.Current
		m.total = msg.Total
		m.done = msg.Stage == StageComplete
	case SpinnerTickMsg:
		if m.done {
			return m, nil
		}
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, SpinnerTick()
	}
	return m, nil
}

func (m ProgressModel) View() string {
	title := progressTitleStyle.Render("Staffing request")

	if m.done {
		return lipgloss.JoinVertical(lipgloss.Left, title, "",
			m.checklist(len(pipelineSteps)), "",
			stepDoneStyle.Render("✓ Complete! Press (r) to refresh"))
	}

	spinner := stepActiveStyle.Render(spinnerFrames[m.frame])
	if m.total == 0 {
		status := spinner + " Loading report..."
		if m.stage != "" {
			status = fmt.Sprintf("%s Waiting for agents (%s)...", spinner, m.stage)
		}
		return lipgloss.JoinVertical(lipgloss.Left, title, "", m.checklist(0), "", status)
	}

	pct := float64(m.current) / float64(m.total) * 100
	status := fmt.Sprintf("%s %s (%d/%d, %.0f%%)", spinner, m.stage, m.current, m.total, pct)
	return lipgloss.JoinVertical(lipgloss.Left, title, "", m.checklist(m.current), "", status)
}

// checklist marks the first finished steps as done and the next one as active.
func (m ProgressModel) checklist(finished int) string {
	lines := make([]string, len(pipelineSteps))
	for i, step := range pipelineSteps {
		switch {
		case i < finished:
			lines[i] = stepDoneStyle.Render("✓ " + step)
		case i == finished && !m.done && m.total > 0:
			lines[i] = stepActiveStyle.Render(spinnerFrames[m.frame] + " " + step)
		default:
			lines[i] = stepPendingStyle.Render("· " + step)
		}
	}
	return strings.Join(lines, "\n")
}
