package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/efa-go"
	"github.com/mobil-koeln/efa-go/models"
)

const (
	apiTimeout          = 5 * time.Second
	autoRefreshInterval = 30 * time.Second
	searchLimit         = 15
	departureLimit      = 60
)

// autoRefreshTick returns a tea.Cmd that sends a tick after the refresh interval.
func autoRefreshTick() tea.Cmd {
	return tea.Tick(autoRefreshInterval, func(t time.Time) tea.Msg {
		return autoRefreshTickMsg(t)
	})
}

// countdownTick returns a tea.Cmd that sends a tick every second for countdown display.
func countdownTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}

// searchStops returns a tea.Cmd that searches for stops by name.
func searchStops(client *efa.Client, query string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		locations, err := client.LocationsByName(ctx, efa.StopSearchRequest{
			Name:    query,
			Filters: []models.LocationFilter{models.FilterStops},
			Limit:   searchLimit,
		})
		return searchResultMsg{
			seq:       seq,
			locations: locations,
			err:       err,
		}
	}
}

// fetchDepartures returns a tea.Cmd that fetches the departure monitor for a stop.
func fetchDepartures(client *efa.Client, stop models.Location) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		departures, err := client.Departures(ctx, efa.DeparturesRequest{
			Stop:  stop.ID,
			Limit: departureLimit,
		})
		return departuresResultMsg{
			stopID:     stop.ID,
			departures: departures,
			err:        err,
		}
	}
}
