package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"omnisite/internal/constants"
	"omnisite/internal/models"
)

const tabCount = 4

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	// Handle the placement form before general key dispatch so its key
	// handling is not shadowed by the global bindings.
	if m.state == constants.StateLogForm {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = m.previousState
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			placement := models.Placement{
				ID:        uuid.New().String(),
				Site:      m.logForm.Site,
				Day:       m.today(),
				Note:      strings.TrimSpace(m.logForm.Note),
				CreatedAt: time.Now(),
			}
			if err := m.store.AddPlacement(placement); err != nil {
				m.statusMessage = dangerStyle.Render(fmt.Sprintf("Failed to log placement: %v", err))
			} else {
				m.statusMessage = fmt.Sprintf("Logged %s for %s", placement.Site, placement.Day)
				m.refresh()
			}
			m.state = constants.StateToday
		case huh.StateAborted:
			m.state = m.previousState
		}
		return m, tea.Batch(cmds...)
	}

	if m.state == constants.StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.store.DeletePlacement(m.placementToDeleteID); err != nil {
					m.statusMessage = dangerStyle.Render(fmt.Sprintf("Failed to delete placement: %v", err))
				} else {
					m.statusMessage = "Placement deleted"
					m.refresh()
				}
				m.placementToDeleteID = ""
				m.state = constants.StateHistory
			case "n", "N", "esc":
				m.placementToDeleteID = ""
				m.state = constants.StateHistory
			}
		}
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.cursor = 0
			m.statusMessage = ""

		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.cursor = 0
			m.statusMessage = ""

		case key.Matches(msg, m.keys.Refresh):
			m.refresh()
			m.statusMessage = ""

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.historyLen()-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Log):
			if len(m.sites) == 0 {
				m.statusMessage = warningStyle.Render("No sites in the catalogue, add one with 'omnisite sites add'")
				return m, nil
			}
			m.previousState = m.state
			m.logForm = &LogFormModel{}
			if m.suggestion != nil {
				m.logForm.Site = m.suggestion.Label
			}
			m.form = m.newLogForm()
			m.state = constants.StateLogForm
			return m, m.form.Init()

		case key.Matches(msg, m.keys.Delete):
			if m.state == constants.StateHistory {
				history := m.historyPlacements()
				if m.cursor < len(history) {
					m.placementToDeleteID = history[m.cursor].ID
					m.state = constants.StateConfirmDelete
				}
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) historyLen() int {
	if m.state == constants.StateHistory {
		return len(m.placements)
	}
	return len(m.statuses)
}
