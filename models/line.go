package models

import "time"

// LineRequestType selects which timetable products a serving-lines query
// covers. Bit flags, sent as the sum of the selected values (lineReqType).
type LineRequestType int

const (
	LineRequestDepartureMonitor LineRequestType = 1
	LineRequestTimetable        LineRequestType = 2
	LineRequestMap              LineRequestType = 4
	LineRequestStopTimetable    LineRequestType = 8
)

// LineRequestMax is the largest legal lineReqType value: all flags set.
const LineRequestMax = int(LineRequestDepartureMonitor |
	LineRequestTimetable | LineRequestMap | LineRequestStopTimetable)

// SumLineRequestTypes folds a request-type list into the wire value.
func SumLineRequestTypes(types []LineRequestType) int {
	sum := 0
	for _, t := range types {
		sum += int(t)
	}
	return sum
}

// Product is the mode classification of a line.
type Product struct {
	ID     int           `json:"id"`
	Class  TransportType `json:"class"`
	Name   string        `json:"name"`
	IconID int           `json:"iconId"`
}

// Operator identifies the company running a line.
type Operator struct {
	ID   string `json:"id"`
	Code string `json:"code,omitempty"`
	Name string `json:"name"`
}

// Destination is the terminus a line is headed for.
type Destination struct {
	ID   string       `json:"id,omitempty"`
	Name string       `json:"name"`
	Type LocationType `json:"type"`
}

// Line is one serving line / transportation as reported by the server.
// Instances are read-only snapshots built per response.
type Line struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Number      string      `json:"number,omitempty"`
	Description string      `json:"description,omitempty"`
	Product     Product     `json:"product"`
	Operator    Operator    `json:"operator"`
	Destination Destination `json:"destination"`

	// Validity of the timetable the line entry belongs to. Calendar
	// dates, no time component; zero when the server omits them.
	ValidFrom       time.Time `json:"validFrom,omitzero"`
	ValidTo         time.Time `json:"validTo,omitzero"`
	TimetablePeriod string    `json:"timetablePeriod,omitempty"`
	GlobalID        string    `json:"globalId,omitempty"`
}

// LineFromMap builds a Line from one decoded response element of a
// serving-lines or line-list response.
func LineFromMap(m map[string]any) Line {
	name := getString(m, "", "name")
	if name == "" {
		name = getString(m, "", "disassembledName")
	}

	return Line{
		ID:          getString(m, "", "id"),
		Name:        name,
		Number:      getString(m, "", "number"),
		Description: getString(m, "", "description"),
		Product: Product{
			ID:     getInt(m, 0, "product", "id"),
			Class:  ParseTransportType(getInt(m, int(TransportUnknown), "product", "class")),
			Name:   getString(m, "", "product", "name"),
			IconID: getInt(m, 0, "product", "iconId"),
		},
		Operator: Operator{
			ID:   getString(m, "", "operator", "id"),
			Code: getString(m, "", "operator", "code"),
			Name: getString(m, "", "operator", "name"),
		},
		Destination: Destination{
			ID:   getString(m, "", "destination", "id"),
			Name: getString(m, "", "destination", "name"),
			Type: ParseLocationType(getString(m, "", "destination", "type")),
		},
		ValidFrom:       getDate(m, "properties", "validity", "from"),
		ValidTo:         getDate(m, "properties", "validity", "to"),
		TimetablePeriod: getString(m, "", "properties", "timetablePeriod"),
		GlobalID:        getString(m, "", "properties", "globalId"),
	}
}
