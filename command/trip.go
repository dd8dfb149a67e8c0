package command

import (
	"github.com/mobil-koeln/efa-go/models"
)

// The trip parameter schema is known from observed queries, but no
// response schema is available yet, so Parse refuses to guess.
var tripSchema = schema{
	"outputFormat":      oneOf(FormatRapidJSON),
	"coordOutputFormat": oneOf(string(models.CoordWGS84)),
	"type_origin":       oneOf("any", "coord"),
	"name_origin":       isString(),
	"type_destination":  oneOf("any", "coord"),
	"name_destination":  isString(),
	"type_via":          oneOf("any", "coord"),
	"name_via":          isString(),
	"useUT":             flag01(),
	"useRealtime":       flag01(),
}

// Trip is the journey-planning operation. Building and serializing the
// request works; parsing the response does not exist yet.
type Trip struct {
	*request
}

func NewTrip(format string) (*Trip, error) {
	r, err := newRequest(OpTrip, format, tripSchema)
	if err != nil {
		return nil, err
	}
	return &Trip{request: r}, nil
}

// Parse always fails with ErrNotImplemented.
func (c *Trip) Parse(any) (any, error) {
	return nil, ErrNotImplemented
}
