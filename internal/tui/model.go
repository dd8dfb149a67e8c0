// Package tui implements an interactive live departure monitor on top
// of the client: search a stop on the left, watch its departures on the
// right, optionally auto-refreshing every 30 seconds.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/efa-go"
	"github.com/mobil-koeln/efa-go/models"
)

type focusPanel int

const (
	focusSearch focusPanel = iota
	focusFilters
	focusAutoRefresh
	focusStops
	focusDepartures
)

// modeLabels maps the product classes to the chip labels of the filter
// bar. Order defines the chip order.
var modeLabels = []struct {
	class models.TransportType
	label string
}{
	{models.TransportRail, "Rail"},
	{models.TransportSuburban, "S"},
	{models.TransportSubway, "U"},
	{models.TransportCityRail, "StB"},
	{models.TransportTram, "Tram"},
	{models.TransportCityBus, "Bus"},
	{models.TransportRegionalBus, "RBus"},
	{models.TransportExpressBus, "XBus"},
	{models.TransportCableTram, "Cable"},
	{models.TransportFerry, "Ferry"},
	{models.TransportOnDemand, "AST"},
}

// Model is the root Bubble Tea model for the departure monitor.
type Model struct {
	client *efa.Client
	width  int
	height int

	searchInput textinput.Model
	focus       focusPanel

	// Filter bar - transport modes, applied client-side
	modeFilters  []bool
	filterCursor int

	// Auto-refresh
	autoRefresh bool
	lastUpdate  time.Time

	// Left panel - stops
	stops        []models.Location
	stopCursor   int
	stopsLoading bool
	stopsErr     error
	searchSeq    int

	// Right panel - departures
	selectedStop      *models.Location
	departures        []models.Departure
	departureCursor   int
	departuresLoading bool
	departuresErr     error
}

// New creates a new monitor model.
func New(client *efa.Client) Model {
	ti := textinput.New()
	ti.Placeholder = "Search stop..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	filters := make([]bool, len(modeLabels))
	for i := range filters {
		filters[i] = true
	}

	return Model{
		client:      client,
		searchInput: ti,
		focus:       focusSearch,
		modeFilters: filters,
	}
}

// visibleDepartures filters the fetched departures down to the active
// transport modes. Unknown product classes always stay visible.
func (m Model) visibleDepartures() []models.Departure {
	allActive := true
	for _, active := range m.modeFilters {
		if !active {
			allActive = false
			break
		}
	}
	if allActive {
		return m.departures
	}

	active := make(map[models.TransportType]bool, len(modeLabels))
	for i, ml := range modeLabels {
		active[ml.class] = m.modeFilters[i]
	}

	var out []models.Departure
	for _, dep := range m.departures {
		if keep, known := active[dep.Line.Product.Class]; !known || keep {
			out = append(out, dep)
		}
	}
	return out
}

// Init returns the initial command (textinput blink).
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
