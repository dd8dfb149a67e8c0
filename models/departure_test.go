package models

import (
	"testing"
	"time"

	"github.com/mobil-koeln/efa-go/internal/testutil"
)

func TestDepartureFromMap(t *testing.T) {
	d := DepartureFromMap(map[string]any{
		"location": map[string]any{
			"id":         "de:09564:704:2:3",
			"isGlobalId": true,
			"name":       "Nürnberg, Hauptbahnhof",
			"properties": map[string]any{"platform": "3"},
		},
		"departureTimePlanned":   "2025-08-25T14:30:00Z",
		"departureTimeEstimated": "2025-08-25T14:33:00Z",
		"transportation": map[string]any{
			"id":     "vgn:11002: :H:j25",
			"name":   "U-Bahn U2",
			"number": "U2",
		},
	})

	testutil.AssertEqual(t, d.StopID, "de:09564:704:2:3")
	testutil.AssertEqual(t, d.Platform, "3")
	testutil.AssertEqual(t, d.Line.Number, "U2")
	testutil.AssertEqual(t, d.Delay(), 3)
	testutil.AssertTimeEqual(t, d.EffectiveTime(),
		time.Date(2025, 8, 25, 14, 33, 0, 0, time.UTC))
}

func TestDepartureFromMapLocalStopID(t *testing.T) {
	d := DepartureFromMap(map[string]any{
		"location": map[string]any{
			"id":         "20001571:1",
			"isGlobalId": false,
			"properties": map[string]any{"stopId": "20001571"},
		},
		"departureTimePlanned": "2025-08-25T14:30:00Z",
	})

	testutil.AssertEqual(t, d.StopID, "20001571")
}

func TestDepartureNoRealtime(t *testing.T) {
	d := Departure{PlannedTime: time.Date(2025, 8, 25, 14, 30, 0, 0, time.UTC)}

	testutil.AssertEqual(t, d.Delay(), 0)
	testutil.AssertTimeEqual(t, d.EffectiveTime(), d.PlannedTime)
}

func TestDepartureNegativeDelay(t *testing.T) {
	d := Departure{
		PlannedTime:   time.Date(2025, 8, 25, 14, 30, 0, 0, time.UTC),
		EstimatedTime: time.Date(2025, 8, 25, 14, 28, 0, 0, time.UTC),
	}

	// Early departures report a negative delay.
	testutil.AssertEqual(t, d.Delay(), -2)
}
