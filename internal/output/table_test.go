package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/mobil-koeln/efa-go/internal/testutil"
	"github.com/mobil-koeln/efa-go/models"
)

func noColorOpts() TableOptions {
	return TableOptions{Colors: NewColors(ColorNever)}
}

func sampleDeparture() models.Departure {
	return models.Departure{
		StopID:        "de:09564:704:2:3",
		StopName:      "Nürnberg, Hauptbahnhof",
		Platform:      "3",
		PlannedTime:   time.Date(2025, 8, 25, 14, 30, 0, 0, time.UTC),
		EstimatedTime: time.Date(2025, 8, 25, 14, 33, 0, 0, time.UTC),
		Line: models.Line{
			Number:      "U2",
			Name:        "U-Bahn U2",
			Destination: models.Destination{Name: "Flughafen"},
		},
		Infos: []models.Info{{Title: "Aufzug außer Betrieb"}},
	}
}

func TestRenderDepartures(t *testing.T) {
	var buf bytes.Buffer
	RenderDepartures(&buf, []models.Departure{sampleDeparture()}, noColorOpts())

	out := buf.String()
	testutil.AssertContains(t, out, "U2")
	testutil.AssertContains(t, out, "Pl.3")
	testutil.AssertContains(t, out, "Flughafen")
	testutil.AssertContains(t, out, "+3")
	testutil.AssertNotContains(t, out, "Aufzug")
}

func TestRenderDeparturesWithInfos(t *testing.T) {
	var buf bytes.Buffer
	opts := noColorOpts()
	opts.ShowInfos = true
	RenderDepartures(&buf, []models.Departure{sampleDeparture()}, opts)

	testutil.AssertContains(t, buf.String(), "! Aufzug außer Betrieb")
}

func TestRenderDeparturesEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderDepartures(&buf, nil, noColorOpts())

	testutil.AssertContains(t, buf.String(), "No departures found.")
}

func TestRenderLocations(t *testing.T) {
	var buf bytes.Buffer
	locations := []models.Location{
		{
			ID:         "de:09564:704",
			Name:       "Nürnberg, Hauptbahnhof",
			Type:       models.LocationTypeStop,
			Transports: []models.TransportType{models.TransportSubway, models.TransportTram},
		},
	}
	RenderLocations(&buf, locations, noColorOpts())

	out := buf.String()
	testutil.AssertContains(t, out, "Nürnberg, Hauptbahnhof")
	testutil.AssertContains(t, out, "(stop)")
	testutil.AssertContains(t, out, "de:09564:704")
	testutil.AssertContains(t, out, "Subway, Tram")
}

func TestRenderLocationsEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderLocations(&buf, nil, noColorOpts())

	testutil.AssertContains(t, buf.String(), "No locations found.")
}

func TestRenderLines(t *testing.T) {
	var buf bytes.Buffer
	lines := []models.Line{
		{
			ID:          "vgn:11002: :H:j25",
			Number:      "U2",
			Destination: models.Destination{Name: "Flughafen"},
			Operator:    models.Operator{Name: "VAG Verkehrs-AG"},
			Product:     models.Product{Name: "U-Bahn"},
		},
	}

	opts := noColorOpts()
	opts.ShowIDs = true
	RenderLines(&buf, lines, opts)

	out := buf.String()
	testutil.AssertContains(t, out, "U2")
	testutil.AssertContains(t, out, "Flughafen")
	testutil.AssertContains(t, out, "vgn:11002: :H:j25")
	testutil.AssertContains(t, out, "VAG Verkehrs-AG")
}

func TestRenderSystemInfo(t *testing.T) {
	var buf bytes.Buffer
	RenderSystemInfo(&buf, models.SystemInfo{
		Version:    "10.6.21.17",
		DataFormat: "EFA10_04_00",
		ValidFrom:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:    time.Date(2025, 12, 13, 0, 0, 0, 0, time.UTC),
	}, noColorOpts())

	out := buf.String()
	testutil.AssertContains(t, out, "10.6.21.17")
	testutil.AssertContains(t, out, "EFA10_04_00")
	testutil.AssertContains(t, out, "2025-01-01 - 2025-12-13")
}

func TestRenderInfos(t *testing.T) {
	var buf bytes.Buffer
	RenderInfos(&buf, models.Infos{
		Current: []models.Info{
			{
				Title:     "Schienenersatzverkehr U1",
				Priority:  models.PriorityHigh,
				URL:       "https://www.vag.de/meldungen/41354",
				ValidFrom: time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
				ValidTo:   time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC),
			},
		},
		Historic: []models.Info{
			{Title: "Aufzug wieder in Betrieb", Priority: models.PriorityLow},
		},
	}, noColorOpts())

	out := buf.String()
	testutil.AssertContains(t, out, "Current messages:")
	testutil.AssertContains(t, out, "! Schienenersatzverkehr U1")
	testutil.AssertContains(t, out, "Historic messages:")
	testutil.AssertContains(t, out, "Aufzug wieder in Betrieb")
	testutil.AssertContains(t, out, "https://www.vag.de/meldungen/41354")
}

func TestRenderInfosEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderInfos(&buf, models.Infos{}, noColorOpts())

	testutil.AssertContains(t, buf.String(), "No messages found.")
}
