package tui

import (
	"time"

	"github.com/mobil-koeln/efa-go/models"
)

// autoRefreshTickMsg is sent every 30 seconds when auto-refresh is enabled.
type autoRefreshTickMsg time.Time

// countdownTickMsg is sent every second when auto-refresh is enabled to update countdown display.
type countdownTickMsg time.Time

// searchResultMsg carries stop search results back to the model.
// seq is used for stale-result detection.
type searchResultMsg struct {
	seq       int
	locations []models.Location
	err       error
}

// departuresResultMsg carries departure results for a specific stop.
type departuresResultMsg struct {
	stopID     string
	departures []models.Departure
	err        error
}
