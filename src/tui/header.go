package tui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Built-in filters; agent roles are appended after these.
const (
	FilterAll             = "ALL"
	FilterRecommendations = "RECOMMENDATIONS"
	FilterCoordinations   = "COORDINATIONS"
)

// Header represents the top status bar component.
type Header struct {
	sessionStatus  string
	selectedFilter string
	filters        []string
	searchQuery    string
	searchMode     bool
	styles         *StyleConfig
}

// NewHeader creates a new header with default styles
func NewHeader(sessionStatus string, agents []string) Header {
	return NewHeaderWithStyles(sessionStatus, agents, DefaultStyles())
}

// NewHeaderWithStyles creates a new header with custom styles
func NewHeaderWithStyles(sessionStatus string, agents []string, styles *StyleConfig) Header {
	h := Header{
		sessionStatus:  sessionStatus,
		selectedFilter: FilterAll,
		styles:         styles,
	}
	h.SetAgents(agents)
	return h
}

// SetStatus replaces the session summary shown on the left.
func (h *Header) SetStatus(status string) {
	h.sessionStatus = status
}

// SetAgents rebuilds the filter cycle, keeping the current filter when it still exists.
func (h *Header) SetAgents(agents []string) {
	h.filters = append([]string{FilterAll, FilterRecommendations, FilterCoordinations}, agents...)
	if !slices.Contains(h.filters, h.selectedFilter) {
		h.selectedFilter = FilterAll
	}
}

// SetFilter sets the current filter
func (h *Header) SetFilter(filter string) {
	h.selectedFilter = filter
}

// GetFilter returns the current filter
func (h Header) GetFilter() string {
	return h.selectedFilter
}

// CycleFilter moves to the next filter, wrapping back to ALL.
func (h *Header) CycleFilter() {
	next := slices.Index(h.filters, h.selectedFilter) + 1
	h.selectedFilter = h.filters[next%len(h.filters)]
}

// SetSearch updates the search state
func (h *Header) SetSearch(query string, mode bool) {
	h.searchQuery = query
	h.searchMode = mode
}

// Render renders the header
func (h Header) Render(width int) string {
	statusStyle := lipgloss.NewStyle().
		Foreground(h.styles.PrimaryBlue).
		Bold(true).
		Padding(0, 2)
	status := statusStyle.Render(fmt.Sprintf("📋 %s", h.sessionStatus))

	filterStyle := statusStyle
	if color, ok := h.styles.AgentColors[h.selectedFilter]; ok {
		filterStyle = filterStyle.Foreground(color)
	}
	filter := filterStyle.Render(fmt.Sprintf("⚙️ Show: %s", h.selectedFilter))

	var searchText string
	if h.searchMode {
		searchText = fmt.Sprintf("🔍 Search: %s█", h.searchQuery)
	} else if h.searchQuery != "" {
		searchText = fmt.Sprintf("🔍 Search: %s", h.searchQuery)
	} else {
		searchText = "🔍 [/] to search"
	}

	searchStyle := lipgloss.NewStyle().
		Foreground(h.styles.TextSecondary).
		Padding(0, 2)
	if h.searchMode {
		searchStyle = searchStyle.Foreground(h.styles.PrimaryBlue)
	}
	search := searchStyle.Render(searchText)

	leftSection := lipgloss.JoinHorizontal(lipgloss.Left, status, filter, search)
	leftSection = ClampWidth(leftSection, width)

	headerStyle := lipgloss.NewStyle().
		Background(h.styles.DarkBackground).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(h.styles.BorderColor).
		Width(width)

	spacer := lipgloss.NewStyle().Width(max(0, width-lipgloss.Width(leftSection))).Render("")

	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Left, leftSection, spacer))
}
