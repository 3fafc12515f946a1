package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// listRenderingOverhead accounts for padding added by bubbles/list and panel borders.
	listRenderingOverhead = 10

	agentColumnWidth = 10
)

// agentAbbrev shortens agent roles for the narrow list column.
var agentAbbrev = map[string]string{
	"contract_compliance": "compliance",
	"recruiting":          "recruiting",
	"project_management":  "planning",
}

// Delegate renders report items as table rows.
type Delegate struct {
	RankWidth int
	styles    *StyleConfig
}

// NewDelegate creates a new report table delegate with default styles
func NewDelegate() Delegate {
	return NewDelegateWithStyles(DefaultStyles())
}

// NewDelegateWithStyles creates a new delegate with custom styles
func NewDelegateWithStyles(styles *StyleConfig) Delegate {
	return Delegate{
		RankWidth: 2,
		styles:    styles,
	}
}

// SetColumnWidths sizes the rank column for the largest rank.
func (d *Delegate) SetColumnWidths(maxRank int) {
	d.RankWidth = len(fmt.Sprintf("%d", maxRank))
	if d.RankWidth < 2 {
		d.RankWidth = 2
	}
}

// ColumnHeader is the title row drawn above the list, aligned with Render.
func (d Delegate) ColumnHeader() string {
	return fmt.Sprintf("%*s │ Conf │ %s │ Title", d.RankWidth, "#", TruncateAndPad("Agent", agentColumnWidth, false))
}

// Height returns the height of a list item
func (d Delegate) Height() int {
	return 1
}

// Spacing returns spacing between items
func (d Delegate) Spacing() int {
	return 0
}

// Update handles item updates
func (d Delegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func agentLabel(agent string) string {
	if short, ok := agentAbbrev[agent]; ok {
		return short
	}
	return agent
}

// confidenceLabel is "NN%" for recommendations and an arrow for coordination events.
func confidenceLabel(entry Item) string {
	if c := entry.Confidence(); c >= 0 {
		return fmt.Sprintf("%3d%%", c)
	}
	return "  ⇢ "
}

// Render renders a list item
func (d Delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(Item)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	rankCol := fmt.Sprintf("%*d", d.RankWidth, entry.Rank)
	confCol := confidenceLabel(entry)
	agentCol := TruncateAndPad(agentLabel(entry.Agent()), agentColumnWidth, false)

	// Fixed columns: rank + conf (4) + agent + separators (9)
	fixedWidth := d.RankWidth + 4 + agentColumnWidth + 9
	availableWidth := m.Width() - fixedWidth - listRenderingOverhead

	var snippet string
	if availableWidth > 0 {
		snippet = TruncateAndPad(strings.TrimSpace(entry.Title()), availableWidth, true)
	}

	style := lipgloss.NewStyle().Foreground(d.styles.TextSecondary)
	agentStyle := lipgloss.NewStyle().Foreground(d.styles.AgentColor(entry.Agent()))
	confStyle := lipgloss.NewStyle().Foreground(d.styles.EventColor)
	if c := entry.Confidence(); c >= 0 {
		confStyle = confStyle.Foreground(d.styles.ConfidenceColor(c))
	}
	if isSelected {
		style = style.Bold(true).Foreground(d.styles.PrimaryBlue).Background(d.styles.SelectedColor)
		agentStyle = agentStyle.Bold(true).Background(d.styles.SelectedColor)
		confStyle = confStyle.Bold(true).Background(d.styles.SelectedColor)
	}

	sep := style.Render(" │ ")
	fmt.Fprint(w, style.Render(rankCol)+sep+confStyle.Render(confCol)+sep+agentStyle.Render(agentCol)+sep+style.Render(snippet))
}
