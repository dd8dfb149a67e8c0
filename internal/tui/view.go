package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mobil-koeln/efa-go/models"
)

// View renders the entire monitor.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Layout: header + search bar + filter bar + panels + status bar
	header := renderHeader()
	searchBar := m.renderSearchBar()
	filterBar := m.renderFilterBar()
	statusBar := m.renderStatusBar()

	headerHeight := lipgloss.Height(header)
	searchHeight := lipgloss.Height(searchBar)
	filterHeight := lipgloss.Height(filterBar)
	statusHeight := lipgloss.Height(statusBar)
	panelHeight := m.height - headerHeight - searchHeight - filterHeight - statusHeight
	if panelHeight < 3 {
		panelHeight = 3
	}

	// Panel widths: ~35% left, ~65% right
	leftWidth := m.width*35/100 - 2 // subtract border
	rightWidth := m.width - leftWidth - 4
	if leftWidth < 20 {
		leftWidth = 20
	}
	if rightWidth < 20 {
		rightWidth = 20
	}

	leftPanel := m.renderStopList(leftWidth, panelHeight-2)
	rightPanel := m.renderDepartureList(rightWidth, panelHeight-2)

	// Apply borders
	leftBorder := stylePanelNormal
	if m.focus == focusStops {
		leftBorder = stylePanelFocused
	}
	leftPanel = leftBorder.
		Width(leftWidth).
		Height(panelHeight - 2).
		Render(leftPanel)

	rightBorder := stylePanelNormal
	if m.focus == focusDepartures {
		rightBorder = stylePanelFocused
	}
	rightPanel = rightBorder.
		Width(rightWidth).
		Height(panelHeight - 2).
		Render(rightPanel)

	panels := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)

	return lipgloss.JoinVertical(lipgloss.Left, header, searchBar, filterBar, panels, statusBar)
}

// renderHeader renders the brand line.
func renderHeader() string {
	return styleLogo.Render(" efa ") + styleMuted.Render("live departure monitor")
}

// renderSearchBar renders the search input at the top.
func (m Model) renderSearchBar() string {
	border := stylePanelNormal
	if m.focus == focusSearch {
		border = stylePanelFocused
	}

	label := styleHeader.Render("Search: ")
	input := m.searchInput.View()
	content := label + input

	return border.Width(m.width - 2).Render(content)
}

// renderStopList renders the left stop panel.
func (m Model) renderStopList(width, height int) string {
	title := styleHeader.Render("STOPS")

	if m.stopsLoading {
		return title + "\n" + styleLoading.Render(" Searching...")
	}
	if m.stopsErr != nil {
		return title + "\n" + styleError.Render(" Error: "+m.stopsErr.Error())
	}
	if len(m.stops) == 0 {
		return title + "\n" + styleMuted.Render(" Type a stop name and press Enter")
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")

	// Calculate visible range to keep cursor in view
	maxVisible := height - 2 // account for title + spacing
	if maxVisible < 1 {
		maxVisible = 1
	}
	start, end := visibleRange(m.stopCursor, len(m.stops), maxVisible)

	for i := start; i < end; i++ {
		stop := m.stops[i]
		name := truncate(stop.Name, width-4)
		if i == m.stopCursor {
			b.WriteString(styleSelected.Render(" > " + name))
		} else {
			b.WriteString("   " + name)
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderDepartureList renders the departure table.
func (m Model) renderDepartureList(width, height int) string {
	title := "DEPARTURES"
	if m.selectedStop != nil {
		title += " for " + truncate(m.selectedStop.Name, width-18)
	}
	titleStr := styleHeader.Render(title)

	if m.departuresLoading {
		return titleStr + "\n" + styleLoading.Render(" Loading departures...")
	}
	if m.departuresErr != nil {
		return titleStr + "\n" + styleError.Render(" Error: "+m.departuresErr.Error())
	}
	if m.selectedStop == nil {
		return titleStr + "\n" + styleMuted.Render(" Select a stop to view departures")
	}

	visible := m.visibleDepartures()
	if len(visible) == 0 {
		return titleStr + "\n" + styleMuted.Render(" No departures found")
	}

	var b strings.Builder
	b.WriteString(titleStr)
	b.WriteString("\n")

	maxVisible := height - 2
	if maxVisible < 1 {
		maxVisible = 1
	}
	start, end := visibleRange(m.departureCursor, len(visible), maxVisible)

	for i := start; i < end; i++ {
		dep := visible[i]
		line := renderDepartureLine(dep, width, i == m.departureCursor && m.focus == focusDepartures)
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderDepartureLine renders a single departure entry.
func renderDepartureLine(dep models.Departure, width int, selected bool) string {
	// Time
	timeStr := "??:??"
	if !dep.PlannedTime.IsZero() {
		timeStr = dep.PlannedTime.Local().Format("15:04")
	}

	// Delay
	delayStr := formatDelay(dep.Delay())

	// Line number (truncate to 8)
	line := dep.Line.Number
	if line == "" {
		line = dep.Line.Name
	}
	if len(line) > 8 {
		line = line[:8]
	}
	lineStr := fmt.Sprintf("%-8s", line)

	// Platform
	platform := dep.Platform
	platformStr := "       "
	if platform != "" {
		if len(platform) > 3 {
			platform = platform[:3]
		}
		platformStr = fmt.Sprintf("Pl.%-3s ", platform)
	}

	// Destination
	dest := dep.Line.Destination.Name
	fixedWidth := 5 + 1 + 4 + 2 + 8 + 2 + 7 // time+sp+delay+sp+line+sp+platform
	maxDest := width - fixedWidth - 4       // 4 for cursor indicator + padding
	if maxDest > 0 && len(dest) > maxDest {
		dest = dest[:maxDest]
	}

	entry := fmt.Sprintf("%s %s  %s  %s %s",
		styleTime.Render(timeStr),
		delayStr,
		styleLine.Render(lineStr),
		stylePlatform.Render(platformStr),
		dest,
	)

	if len(dep.Infos) > 0 {
		entry += " " + styleAlert.Render("!")
	}

	if selected {
		return styleSelected.Render(">") + entry
	}
	return " " + entry
}

// renderStatusBar renders context-aware keyboard hints at the bottom.
func (m Model) renderStatusBar() string {
	var hints string
	switch m.focus {
	case focusSearch:
		hints = "Enter:search  Tab:filters  Esc:clear  Ctrl+C:quit"
	case focusFilters:
		hints = "h/l:move  Space:toggle  a:all  Tab:auto-refresh  Esc:search  q:quit"
	case focusAutoRefresh:
		hints = "Space:toggle  Tab:stops  Esc:search  q:quit"
	case focusStops:
		hints = "j/k:navigate  Enter:select  Tab:departures  Esc:search  /:search  q:quit"
	case focusDepartures:
		hints = "j/k:navigate  r:refresh  Tab:search  Esc:back  /:search  q:quit"
	}

	return styleStatusBar.Width(m.width).Render(" " + hints)
}

// visibleRange calculates the start and end indices for a scrollable list.
func visibleRange(cursor, total, maxVisible int) (int, int) {
	if total <= maxVisible {
		return 0, total
	}

	start := cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > total {
		end = total
		start = end - maxVisible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

// truncate truncates a string to the given width.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-1] + "~"
}
