package tui

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/mobil-koeln/efa-go/internal/testutil"
	"github.com/mobil-koeln/efa-go/models"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderDepartureLine(t *testing.T) {
	dep := testDepartures()[0]
	line := stripANSI(renderDepartureLine(dep, 80, false))

	testutil.AssertContains(t, line, dep.PlannedTime.Local().Format("15:04"))
	testutil.AssertContains(t, line, "U2")
	testutil.AssertContains(t, line, "Flughafen")
	testutil.AssertNotContains(t, line, "!")
}

func TestRenderDepartureLinePlatformAndDelay(t *testing.T) {
	dep := testDepartures()[0]
	dep.Platform = "3"
	dep.EstimatedTime = dep.PlannedTime.Add(3 * time.Minute)

	line := stripANSI(renderDepartureLine(dep, 80, false))
	testutil.AssertContains(t, line, "Pl.3")
	testutil.AssertContains(t, line, "+3")
}

func TestRenderDepartureLineAlertMarker(t *testing.T) {
	dep := testDepartures()[0]
	dep.Infos = []models.Info{{Title: "Aufzug außer Betrieb"}}

	line := stripANSI(renderDepartureLine(dep, 80, false))
	testutil.AssertContains(t, line, "!")
}

func TestRenderDepartureLineSelected(t *testing.T) {
	dep := testDepartures()[0]

	selected := stripANSI(renderDepartureLine(dep, 80, true))
	testutil.AssertTrue(t, strings.HasPrefix(selected, ">"))

	plain := stripANSI(renderDepartureLine(dep, 80, false))
	testutil.AssertTrue(t, strings.HasPrefix(plain, " "))
}

func TestRenderStopListEmptyStates(t *testing.T) {
	m := New(nil)

	out := stripANSI(m.renderStopList(40, 10))
	testutil.AssertContains(t, out, "Type a stop name")

	m.stopsLoading = true
	out = stripANSI(m.renderStopList(40, 10))
	testutil.AssertContains(t, out, "Searching...")
}

func TestRenderDepartureListStates(t *testing.T) {
	m := New(nil)

	out := stripANSI(m.renderDepartureList(60, 10))
	testutil.AssertContains(t, out, "Select a stop")

	stop := testStops()[0]
	m.selectedStop = &stop
	out = stripANSI(m.renderDepartureList(60, 10))
	testutil.AssertContains(t, out, "No departures found")

	m.departures = testDepartures()
	out = stripANSI(m.renderDepartureList(60, 10))
	testutil.AssertContains(t, out, "Hauptbahnhof")
	testutil.AssertContains(t, out, "U2")
	testutil.AssertContains(t, out, "36")
}

func TestVisibleRange(t *testing.T) {
	// Everything fits: full range.
	start, end := visibleRange(0, 5, 10)
	testutil.AssertEqual(t, start, 0)
	testutil.AssertEqual(t, end, 5)

	// Cursor at the top keeps the window at the start.
	start, end = visibleRange(0, 20, 5)
	testutil.AssertEqual(t, start, 0)
	testutil.AssertEqual(t, end, 5)

	// Cursor in the middle centers the window.
	start, end = visibleRange(10, 20, 5)
	testutil.AssertEqual(t, start, 8)
	testutil.AssertEqual(t, end, 13)

	// Cursor at the bottom pins the window to the end.
	start, end = visibleRange(19, 20, 5)
	testutil.AssertEqual(t, start, 15)
	testutil.AssertEqual(t, end, 20)
}

func TestTruncate(t *testing.T) {
	testutil.AssertEqual(t, truncate("short", 10), "short")
	testutil.AssertEqual(t, truncate("Hauptbahnhof", 8), "Hauptba~")
	testutil.AssertEqual(t, truncate("abc", 2), "ab")
	testutil.AssertEqual(t, truncate("abc", 0), "")
}
