package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// panelDimensions holds calculated layout dimensions
type panelDimensions struct {
	availableHeight int
	leftPanelWidth  int
	rightPanelWidth int
}

// calculateDimensions computes panel sizes based on terminal dimensions.
func (m MainModel) calculateDimensions() panelDimensions {
	headerHeight := lipgloss.Height(m.header.Render(m.width))
	// header + help line (1) + panel column header row (1) + panel borders (2)
	availableHeight := max(0, m.height-headerHeight-1-1-2)

	// Report list (45%) | Detail (55%)
	leftPanelWidth := int(float64(m.width) * 0.45)
	rightPanelWidth := m.width - leftPanelWidth

	return panelDimensions{
		availableHeight: availableHeight,
		leftPanelWidth:  leftPanelWidth,
		rightPanelWidth: rightPanelWidth,
	}
}

// View renders the complete TUI layout
func (m MainModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	header := m.header.Render(m.width)

	if m.status == StatusError && len(m.items) == 0 {
		msg := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EA4335")).
			Padding(2, 2).
			Render(Wrap(m.err.Error(), max(10, m.width-4)))
		return lipgloss.JoinVertical(lipgloss.Left, header, msg, m.renderHelpText())
	}

	if m.status == StatusLoading && len(m.items) == 0 {
		centeredProgress := lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			PaddingTop(2).
			Render(m.progress.View())
		return lipgloss.JoinVertical(lipgloss.Left, header, ClampWidth(centeredProgress, m.width))
	}

	dims := m.calculateDimensions()

	leftPanel := m.renderListPanel(dims.leftPanelWidth, dims.availableHeight)
	rightPanel := m.renderDetailPanel(dims.rightPanelWidth, dims.availableHeight)
	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)

	return ClampWidth(lipgloss.JoinVertical(lipgloss.Left, header, mainContent, m.renderHelpText()), m.width)
}

// renderHelpText renders context-aware help text at the bottom
func (m MainModel) renderHelpText() string {
	var view string
	if m.detailFocused {
		view = m.help.View(detailKeys{m.keys})
	} else {
		view = m.help.View(listKeys{m.keys})
	}
	return m.styles.HelpStyle().Render(view)
}

// resizeComponents handles window resize events
func (m *MainModel) resizeComponents() {
	dims := m.calculateDimensions()

	m.listView.SetSize(dims.leftPanelWidth-2, dims.availableHeight)

	m.detailViewport.Width = dims.rightPanelWidth - 2
	m.detailViewport.Height = dims.availableHeight

	if selectedItem, ok := m.listView.Selected(); ok {
		m.updateDetailContent(selectedItem)
	}
}
