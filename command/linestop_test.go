package command

import (
	"testing"

	"github.com/mobil-koeln/efa-go/internal/testutil"
	"github.com/mobil-koeln/efa-go/models"
)

func TestLineStopParse(t *testing.T) {
	cmd, err := NewLineStop(FormatRapidJSON)
	testutil.AssertNil(t, err)

	stops, err := cmd.Parse(testutil.LineStopsResponse)
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, stops, 3)

	// The sequence is the travel order of the line; it must never be
	// re-sorted.
	testutil.AssertEqual(t, stops[0].Name, "Nürnberg, Röthenbach")
	testutil.AssertEqual(t, stops[1].Name, "Nürnberg, Plärrer")
	testutil.AssertEqual(t, stops[2].Name, "Nürnberg, Hauptbahnhof")
	testutil.AssertEqual(t, stops[0].Type, models.LocationTypeStop)
}

func TestLineStopParseMissingSequence(t *testing.T) {
	cmd, err := NewLineStop(FormatRapidJSON)
	testutil.AssertNil(t, err)

	_, err = cmd.Parse(testutil.EmptyObjectResponse)
	testutil.AssertErrorIs(t, err, ErrResponseInvalid)
}

func TestLineStopParams(t *testing.T) {
	cmd, err := NewLineStop(FormatRapidJSON)
	testutil.AssertNil(t, err)

	testutil.AssertNil(t, cmd.AddParam("line", "vgn:11002: :H:j25"))
	testutil.AssertNil(t, cmd.AddParam("allStopInfo", true))
	testutil.AssertError(t, cmd.AddParam("line", 42))
}
