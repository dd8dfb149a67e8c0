package command

import (
	"github.com/mobil-koeln/efa-go/models"
)

var departuresSchema = schema{
	"outputFormat":         oneOf(FormatRapidJSON),
	"coordOutputFormat":    oneOf(string(models.CoordWGS84)),
	"locationServerActive": flag01(),
	"name_dm":              isString(),
	"type_dm":              oneOf("any", "coord", "stop"),
	"mode":                 oneOf("direct", "any"),
	"useAllStops":          flag01(),
	"lsShowTrainsExplicit": flag01(),
	"useProxFootSearch":    flag01(),
	"useRealtime":          flag01(),
	"limit":                isInt(),
	"itdDate":              digits(8),
	"itdTime":              digits(4),
}

var departuresShape = shape{
	"version":    {kind: kindString, required: true},
	"locations":  {kind: kindList},
	"stopEvents": {kind: kindList, required: true},
}

// Departures requests the departure monitor for one stop.
type Departures struct {
	*request
}

func NewDepartures(format, stop string) (*Departures, error) {
	r, err := newRequest(OpDepartures, format, departuresSchema)
	if err != nil {
		return nil, err
	}
	if err := r.AddParam("name_dm", stop); err != nil {
		return nil, err
	}
	return &Departures{request: r}, nil
}

// Parse returns the departure events in server order.
func (c *Departures) Parse(data any) ([]models.Departure, error) {
	m, err := decodeBody(c.name, data)
	if err != nil {
		return nil, err
	}
	if err := checkShape(c.name, m, departuresShape); err != nil {
		return nil, err
	}

	items := objects(m["stopEvents"].([]any))
	departures := make([]models.Departure, 0, len(items))
	for _, item := range items {
		departures = append(departures, models.DepartureFromMap(item))
	}
	return departures, nil
}
