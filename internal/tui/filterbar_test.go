package tui

import (
	"testing"
	"time"

	"github.com/mobil-koeln/efa-go/internal/testutil"
)

func TestRenderChipStates(t *testing.T) {
	m := New(nil)

	active := stripANSI(m.renderChip("Bus", true, false))
	testutil.AssertEqual(t, active, "[Bus]")

	inactive := stripANSI(m.renderChip("Bus", false, false))
	testutil.AssertEqual(t, inactive, " Bus ")

	// The cursor highlight keeps the bracket state visible.
	focused := stripANSI(m.renderChip("Bus", true, true))
	testutil.AssertEqual(t, focused, "[Bus]")
}

func TestRenderFilterBarShowsAllChips(t *testing.T) {
	m := New(nil)
	m.width = 120

	bar := stripANSI(m.renderFilterBar())
	for _, ml := range modeLabels {
		testutil.AssertContains(t, bar, ml.label)
	}
	testutil.AssertContains(t, bar, "Auto-refresh 30s")
}

func TestRenderFilterBarCountdown(t *testing.T) {
	m := New(nil)
	m.width = 120
	m.lastUpdate = time.Now()

	bar := stripANSI(m.renderFilterBar())
	testutil.AssertContains(t, bar, "Last update:")
	testutil.AssertNotContains(t, bar, "refresh in")

	m.autoRefresh = true
	bar = stripANSI(m.renderFilterBar())
	testutil.AssertContains(t, bar, "refresh in")
}
