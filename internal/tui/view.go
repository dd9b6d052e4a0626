package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"omnisite/internal/constants"
	"omnisite/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateSites:
		content = docStyle.Render(m.viewSites())
	case constants.StateToday:
		content = docStyle.Render(m.viewToday())
	case constants.StateHistory:
		content = docStyle.Render(m.viewHistory())
	case constants.StateStats:
		content = docStyle.Render(m.viewStats())
	case constants.StateLogForm:
		content = docStyle.Render(m.form.View())
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	sections := []string{m.viewTabs(), content}
	if m.statusMessage != "" {
		sections = append(sections, docStyle.Render(m.statusMessage))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Sites", "Today", "History", "Stats"} {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewSites() string {
	if len(m.statuses) == 0 {
		return "No sites in the catalogue yet.\n\nAdd one with 'omnisite sites add'."
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-24s %-10s %-12s %s\n", "SITE", "STAGE", "LAST USED", "USES"))
	for i, status := range m.statuses {
		last := status.LastUsedDay
		if status.DaysSinceUse == constants.NeverUsedSentinelDays {
			last = "never"
		}
		line := fmt.Sprintf("%-24s %-10s %-12s %d",
			status.Site.Label, renderStage(status.Stage), last, status.UseCount)
		if m.state == constants.StateSites && i == m.cursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if m.suggestion != nil {
		b.WriteString("\nNext up: " + selectedStyle.Render(m.suggestion.Label))
	} else {
		b.WriteString("\n" + warningStyle.Render("No site is fully rested yet."))
	}
	return b.String()
}

func (m Model) viewToday() string {
	var b strings.Builder
	b.WriteString("Today: " + m.today() + "\n\n")

	if len(m.todayPlacements) == 0 {
		b.WriteString("Nothing logged today. Press 'l' to log a placement.\n")
	} else {
		for _, p := range m.todayPlacements {
			b.WriteString("  • " + p.Site)
			if p.Note != "" {
				b.WriteString(mutedStyle.Render("  " + p.Note))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(fmt.Sprintf("\nStreak: %d current, %d longest", m.summary.Current, m.summary.Longest))
	if m.summary.LastLogged != "" {
		b.WriteString(mutedStyle.Render("  (last logged " + m.summary.LastLogged + ")"))
	}
	b.WriteString("\n")

	if m.suggestion != nil {
		b.WriteString("\nSuggested next site: " + selectedStyle.Render(m.suggestion.Label))
	}
	return b.String()
}

func (m Model) viewHistory() string {
	history := m.historyPlacements()
	if len(history) == 0 {
		return "No placements logged yet."
	}

	// Cap the listing to what fits on screen, keeping the cursor visible.
	visible := len(history)
	if m.height > 10 && visible > m.height-8 {
		visible = m.height - 8
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d placements, newest first\n\n", len(history)))
	for i := start; i < start+visible && i < len(history); i++ {
		p := history[i]
		line := fmt.Sprintf("%-12s %-24s", p.Day, p.Site)
		if p.Note != "" {
			line += mutedStyle.Render(" " + p.Note)
		}
		if i == m.cursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewStats() string {
	var b strings.Builder

	usage := stats.UsageDistribution(m.placements)
	if len(usage) == 0 {
		return "No placements logged yet."
	}

	b.WriteString("Usage distribution\n\n")
	for _, u := range usage {
		b.WriteString(fmt.Sprintf("  %-24s %4d  %5.1f%%\n", u.Site, u.Count, u.Percent))
	}

	buckets := stats.RecencyBuckets(m.placements, m.today())
	b.WriteString(fmt.Sprintf("\nRecency: %d today, %d this week, %d this month, %d older\n",
		buckets[stats.BucketToday], buckets[stats.BucketThisWeek],
		buckets[stats.BucketThisMonth], buckets[stats.BucketOlder]))

	b.WriteString(fmt.Sprintf("\nStreak: %d current, %d longest over %d logged days\n",
		m.summary.Current, m.summary.Longest, m.summary.DistinctDays))
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this placement?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
