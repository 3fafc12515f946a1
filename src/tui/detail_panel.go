package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDetail renders the detail content for a report item
func (m MainModel) renderDetail(item Item, maxWidth int) string {
	if item.Rec != nil {
		return m.renderRecommendation(item, maxWidth)
	}
	if item.Event != nil {
		return m.renderCoordination(item, maxWidth)
	}
	return ""
}

func (m MainModel) sectionTitle(title string) string {
	return lipgloss.NewStyle().Foreground(m.styles.TextSecondary).Bold(true).Render(title)
}

func (m MainModel) renderRecommendation(item Item, maxWidth int) string {
	rec := item.Rec
	var content strings.Builder

	header := m.styles.TitleStyle().
		Foreground(m.styles.AgentColor(string(rec.Agent))).
		Render(Wrap(rec.Title, maxWidth))
	fmt.Fprintf(&content, "%s\n\n", header)

	confidence := lipgloss.NewStyle().
		Foreground(m.styles.ConfidenceColor(rec.Confidence)).
		Bold(true).
		Render(fmt.Sprintf("%d%%", rec.Confidence))
	fmt.Fprintf(&content, "Agent: %s | Type: %s | Confidence: %s\n", rec.Agent, rec.Type, confidence)
	if rec.Timestamp != "" {
		fmt.Fprintf(&content, "Recorded: %s\n", rec.Timestamp)
	}
	fmt.Fprintln(&content)

	fmt.Fprintln(&content, m.sectionTitle("Message:"))
	for _, line := range SplitLines(rec.Message) {
		fmt.Fprintln(&content, lipgloss.NewStyle().Foreground(m.styles.TextPrimary).Render(Wrap(line, maxWidth)))
	}

	if len(rec.Data) > 0 {
		fmt.Fprintln(&content)
		fmt.Fprintln(&content, m.sectionTitle("Data:"))
		keys := make([]string, 0, len(rec.Data))
		for k := range rec.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			line := fmt.Sprintf("%s: %s", k, formatValue(rec.Data[k]))
			fmt.Fprintln(&content, lipgloss.NewStyle().Foreground(m.styles.TextSecondary).Render(Wrap(line, maxWidth)))
		}
	}

	return content.String()
}

func (m MainModel) renderCoordination(item Item, maxWidth int) string {
	ev := item.Event
	var content strings.Builder

	header := m.styles.TitleStyle().
		Foreground(m.styles.EventColor).
		Render(Wrap(item.Title(), maxWidth))
	fmt.Fprintf(&content, "%s\n\n", header)

	fmt.Fprintf(&content, "From: %s\n", lipgloss.NewStyle().Foreground(m.styles.AgentColor(string(ev.TriggerAgent))).Render(string(ev.TriggerAgent)))
	fmt.Fprintf(&content, "To: %s\n", lipgloss.NewStyle().Foreground(m.styles.AgentColor(string(ev.TargetAgent))).Render(string(ev.TargetAgent)))
	fmt.Fprintf(&content, "Action: %s\n", ev.Action)
	if ev.Timestamp != "" {
		fmt.Fprintf(&content, "Sent: %s\n", ev.Timestamp)
	}

	if len(ev.Data) > 0 {
		fmt.Fprintln(&content)
		fmt.Fprintln(&content, m.sectionTitle("Payload:"))
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, ev.Data, "", "  "); err != nil {
			pretty.Reset()
			pretty.Write(ev.Data)
		}
		for _, line := range SplitLines(pretty.String()) {
			fmt.Fprintln(&content, lipgloss.NewStyle().Foreground(m.styles.TextSecondary).Render(Wrap(line, maxWidth)))
		}
	}

	return content.String()
}

// formatValue renders a recommendation data value on one line.
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// updateDetailContent updates the viewport with content from the selected item
func (m *MainModel) updateDetailContent(item Item) {
	maxWidth := m.detailViewport.Width - 2
	content := m.renderDetail(item, maxWidth)
	m.detailViewport.SetContent(ClampWidth(content, m.detailViewport.Width))
	m.detailViewport.GotoTop()
}

// renderDetailPanel renders the right panel with detail viewport
func (m MainModel) renderDetailPanel(width, height int) string {
	if selectedItem, ok := m.listView.Selected(); ok {
		label := "Recommendation"
		if selectedItem.Kind == KindCoordination {
			label = "Coordination"
		}
		headerRow := lipgloss.NewStyle().
			Foreground(m.styles.PrimaryBlue).
			Bold(true).
			Padding(0, 1).
			Render(Truncate(fmt.Sprintf("%s #%d", label, selectedItem.Rank), width-2, true))

		borderStyle := m.styles.BorderColor
		if m.detailFocused {
			borderStyle = m.styles.AccentBlue
		}

		return lipgloss.JoinVertical(lipgloss.Left, headerRow,
			lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(borderStyle).
				Width(width-2).
				Height(height).
				Render(m.detailViewport.View()))
	}

	placeholderRow := lipgloss.NewStyle().
		Foreground(m.styles.TextSecondary).
		Padding(0, 1).
		Render(" ")

	emptyStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.BorderColor).
		Width(width-2).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(m.styles.TextSecondary).
		Faint(true)

	return lipgloss.JoinVertical(lipgloss.Left, placeholderRow, emptyStyle.Render("Nothing to show for this filter"))
}
