package tui

import "github.com/charmbracelet/lipgloss"

// StyleConfig holds all customizable style colors for the report viewer.
type StyleConfig struct {
	// Primary colors
	PrimaryBlue    lipgloss.Color
	AccentBlue     lipgloss.Color
	DarkBackground lipgloss.Color
	CardBackground lipgloss.Color
	TextPrimary    lipgloss.Color
	TextSecondary  lipgloss.Color
	BorderColor    lipgloss.Color
	SelectedColor  lipgloss.Color

	// Accent colors, one per agent role
	AgentColors map[string]lipgloss.Color
	EventColor  lipgloss.Color
}

// DefaultStyles returns the default color palette
func DefaultStyles() *StyleConfig {
	return &StyleConfig{
		PrimaryBlue:    lipgloss.Color("#8AB4F8"),
		AccentBlue:     lipgloss.Color("#4285F4"),
		DarkBackground: lipgloss.Color("#1E1E1E"),
		CardBackground: lipgloss.Color("#2D2D2D"),
		TextPrimary:    lipgloss.Color("#E8EAED"),
		TextSecondary:  lipgloss.Color("#9AA0A6"),
		BorderColor:    lipgloss.Color("#5F6368"),
		SelectedColor:  lipgloss.Color("#303134"),
		AgentColors: map[string]lipgloss.Color{
			"contract_compliance": lipgloss.Color("#34A853"), // Green
			"recruiting":          lipgloss.Color("#FBBC04"), // Yellow
			"project_management":  lipgloss.Color("#A142F4"), // Purple
		},
		EventColor: lipgloss.Color("#24C1E0"), // Cyan
	}
}

// AgentColor returns the accent color for an agent role.
func (s *StyleConfig) AgentColor(agent string) lipgloss.Color {
	if c, ok := s.AgentColors[agent]; ok {
		return c
	}
	return s.TextSecondary
}

// ConfidenceColor grades a confidence percentage.
func (s *StyleConfig) ConfidenceColor(confidence int) lipgloss.Color {
	switch {
	case confidence >= 90:
		return lipgloss.Color("#34A853")
	case confidence >= 75:
		return lipgloss.Color("#FBBC04")
	default:
		return lipgloss.Color("#EA4335")
	}
}

// TitleStyle returns a title lipgloss style using this config
func (s *StyleConfig) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.PrimaryBlue).
		Bold(true).
		Padding(0, 1)
}

// HelpStyle returns a help text lipgloss style using this config
func (s *StyleConfig) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.TextSecondary).
		Padding(0, 2)
}
