package command

import (
	"sort"

	"github.com/mobil-koeln/efa-go/models"
)

var stopFinderSchema = schema{
	"outputFormat":           oneOf(FormatRapidJSON),
	"coordOutputFormat":      oneOf(string(models.CoordWGS84)),
	"locationServerActive":   flag01(),
	"type_sf":                oneOf("any", "coord"),
	"name_sf":                isString(),
	"anyObjFilter_sf":        intRange(0, models.FilterMax),
	"doNotSearchForStops_sf": flag01(),
}

var stopFinderShape = shape{
	"version":        {kind: kindString, required: true},
	"systemMessages": {kind: kindList},
	"locations":      {kind: kindList, required: true},
}

// StopFinder searches locations by name, stop id or coordinate.
type StopFinder struct {
	*request
}

func NewStopFinder(format string) (*StopFinder, error) {
	r, err := newRequest(OpStopFinder, format, stopFinderSchema)
	if err != nil {
		return nil, err
	}
	return &StopFinder{request: r}, nil
}

// Parse returns the found locations sorted by descending match quality,
// best match first. The sort is stable so equally-ranked results keep
// the server's order.
func (c *StopFinder) Parse(data any) ([]models.Location, error) {
	m, err := decodeBody(c.name, data)
	if err != nil {
		return nil, err
	}
	if err := checkShape(c.name, m, stopFinderShape); err != nil {
		return nil, err
	}

	items := objects(m["locations"].([]any))
	locations := make([]models.Location, 0, len(items))
	for _, item := range items {
		locations = append(locations, models.LocationFromMap(item))
	}

	sort.SliceStable(locations, func(i, j int) bool {
		return locations[i].MatchQuality > locations[j].MatchQuality
	})

	return locations, nil
}
