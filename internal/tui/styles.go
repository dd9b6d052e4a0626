package tui

import (
	"github.com/charmbracelet/lipgloss"

	"omnisite/internal/constants"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	docStyle = lipgloss.NewStyle().Padding(1, 2)

	stageStyles = map[constants.RecoveryStage]lipgloss.Style{
		constants.StageActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		constants.StageHealing:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		constants.StageRecovered: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		constants.StageReady:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	}
)

func renderStage(stage constants.RecoveryStage) string {
	if style, ok := stageStyles[stage]; ok {
		return style.Render(string(stage))
	}
	return string(stage)
}
