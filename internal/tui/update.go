package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchResultMsg:
		return m.handleSearchResult(msg)

	case departuresResultMsg:
		return m.handleDeparturesResult(msg)

	case autoRefreshTickMsg:
		return m.handleAutoRefreshTick()

	case countdownTickMsg:
		return m.handleCountdownTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Pass remaining messages to textinput when focused
	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results
	if msg.seq != m.searchSeq {
		return m, nil
	}
	m.stopsLoading = false
	m.stopsErr = msg.err
	if msg.err != nil {
		return m, nil
	}

	m.stops = msg.locations
	m.stopCursor = 0

	// Auto-select the best match and fetch its departures
	if len(m.stops) > 0 {
		m.focus = focusStops
		m.searchInput.Blur()
		stop := m.stops[0]
		m.selectedStop = &stop
		m.departuresLoading = true
		m.departuresErr = nil
		m.departures = nil
		m.departureCursor = 0
		return m, fetchDepartures(m.client, stop)
	}

	return m, nil
}

func (m Model) handleDeparturesResult(msg departuresResultMsg) (tea.Model, tea.Cmd) {
	// Ignore if the stop changed since the fetch was issued
	if m.selectedStop == nil || msg.stopID != m.selectedStop.ID {
		return m, nil
	}
	m.departuresLoading = false
	m.departuresErr = msg.err
	if msg.err == nil {
		m.departures = msg.departures
		// Clamp cursor if list shrank
		if visible := m.visibleDepartures(); m.departureCursor >= len(visible) && len(visible) > 0 {
			m.departureCursor = len(visible) - 1
		}
		m.lastUpdate = time.Now()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKeys(msg)
	case focusFilters:
		return m.handleFilterKeys(msg)
	case focusAutoRefresh:
		return m.handleAutoRefreshKeys(msg)
	case focusStops:
		return m.handleStopKeys(msg)
	case focusDepartures:
		return m.handleDepartureKeys(msg)
	}

	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := strings.TrimSpace(m.searchInput.Value())
		if query == "" {
			return m, nil
		}
		m.searchSeq++
		m.stopsLoading = true
		m.stopsErr = nil
		return m, searchStops(m.client, query, m.searchSeq)

	case "esc":
		m.searchInput.SetValue("")
		return m, nil

	case "tab":
		m.focus = focusFilters
		m.searchInput.Blur()
		return m, nil

	case "shift+tab":
		// Navigate backward to last available panel
		if len(m.departures) > 0 {
			m.focus = focusDepartures
		} else if len(m.stops) > 0 {
			m.focus = focusStops
		} else {
			m.focus = focusAutoRefresh
		}
		m.searchInput.Blur()
		return m, nil
	}

	// Forward to textinput
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) handleStopKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clamp at start of handler to prevent out-of-bounds scroll
	if len(m.stops) > 0 {
		if m.stopCursor < 0 {
			m.stopCursor = 0
		}
		if m.stopCursor >= len(m.stops) {
			m.stopCursor = len(m.stops) - 1
		}
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab":
		if len(m.departures) > 0 {
			m.focus = focusDepartures
			return m, nil
		}
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "shift+tab":
		m.focus = focusAutoRefresh
		return m, nil

	case "esc", "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "j", "down":
		if m.stopCursor < len(m.stops)-1 {
			m.stopCursor++
		}
		return m, nil

	case "k", "up":
		if m.stopCursor > 0 {
			m.stopCursor--
		}
		return m, nil

	case "pgdown":
		if len(m.stops) > 0 {
			pageSize := m.height - 10 // minus header, filter bar, status
			if pageSize < 1 {
				pageSize = 10
			}
			m.stopCursor += pageSize
			if m.stopCursor >= len(m.stops) {
				m.stopCursor = len(m.stops) - 1
			}
		}
		return m, nil

	case "pgup":
		if len(m.stops) > 0 {
			pageSize := m.height - 10
			if pageSize < 1 {
				pageSize = 10
			}
			m.stopCursor -= pageSize
			if m.stopCursor < 0 {
				m.stopCursor = 0
			}
		}
		return m, nil

	case "home":
		m.stopCursor = 0
		return m, nil

	case "end":
		if len(m.stops) > 0 {
			m.stopCursor = len(m.stops) - 1
		}
		return m, nil

	case "enter":
		if len(m.stops) > 0 {
			stop := m.stops[m.stopCursor]
			m.selectedStop = &stop
			m.departuresLoading = true
			m.departuresErr = nil
			m.departures = nil
			m.departureCursor = 0
			return m, fetchDepartures(m.client, stop)
		}
	}

	return m, nil
}

func (m Model) handleDepartureKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleDepartures()

	// Clamp at start of handler to prevent out-of-bounds scroll
	if len(visible) > 0 {
		if m.departureCursor < 0 {
			m.departureCursor = 0
		}
		if m.departureCursor >= len(visible) {
			m.departureCursor = len(visible) - 1
		}
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "shift+tab":
		m.focus = focusStops
		return m, nil

	case "esc":
		m.focus = focusStops
		return m, nil

	case "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "j", "down":
		if m.departureCursor < len(visible)-1 {
			m.departureCursor++
		}
		return m, nil

	case "k", "up":
		if m.departureCursor > 0 {
			m.departureCursor--
		}
		return m, nil

	case "pgdown":
		if len(visible) > 0 {
			pageSize := m.height - 10
			if pageSize < 1 {
				pageSize = 10
			}
			m.departureCursor += pageSize
			if m.departureCursor >= len(visible) {
				m.departureCursor = len(visible) - 1
			}
		}
		return m, nil

	case "pgup":
		if len(visible) > 0 {
			pageSize := m.height - 10
			if pageSize < 1 {
				pageSize = 10
			}
			m.departureCursor -= pageSize
			if m.departureCursor < 0 {
				m.departureCursor = 0
			}
		}
		return m, nil

	case "home":
		m.departureCursor = 0
		return m, nil

	case "end":
		if len(visible) > 0 {
			m.departureCursor = len(visible) - 1
		}
		return m, nil

	case "r":
		// Manual refresh
		if m.selectedStop != nil {
			m.departuresLoading = true
			return m, fetchDepartures(m.client, *m.selectedStop)
		}
	}

	return m, nil
}

func (m Model) handleAutoRefreshKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ", "enter":
		m.autoRefresh = !m.autoRefresh
		if m.autoRefresh {
			// Do immediate update when enabling auto-refresh
			cmds := []tea.Cmd{autoRefreshTick(), countdownTick()}
			if m.selectedStop != nil {
				cmds = append(cmds, fetchDepartures(m.client, *m.selectedStop))
			}
			return m, tea.Batch(cmds...)
		}
		return m, nil

	case "tab":
		if len(m.stops) > 0 {
			m.focus = focusStops
			return m, nil
		}
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "shift+tab":
		m.focus = focusFilters
		return m, nil

	case "esc", "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "q":
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleAutoRefreshTick() (tea.Model, tea.Cmd) {
	if !m.autoRefresh {
		return m, nil
	}

	cmds := []tea.Cmd{autoRefreshTick()}

	// Silent refresh, existing data stays visible until new data arrives
	if m.selectedStop != nil {
		cmds = append(cmds, fetchDepartures(m.client, *m.selectedStop))
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleCountdownTick() (tea.Model, tea.Cmd) {
	if !m.autoRefresh {
		return m, nil
	}
	// Schedule next countdown tick
	return m, countdownTick()
}
