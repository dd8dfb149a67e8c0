package models

import "time"

// Departure is a single scheduled or real-time departure event at a stop.
// Instances are read-only snapshots built per response.
type Departure struct {
	StopID   string `json:"stopId"`
	StopName string `json:"stopName"`
	Platform string `json:"platform,omitempty"`

	PlannedTime time.Time `json:"plannedTime"`
	// EstimatedTime is the real-time prediction; zero when the server
	// sent none.
	EstimatedTime time.Time `json:"estimatedTime,omitzero"`

	Line  Line   `json:"line"`
	Infos []Info `json:"infos,omitempty"`
}

// DepartureFromMap builds a Departure from one decoded stopEvents element.
func DepartureFromMap(m map[string]any) Departure {
	stopID := getString(m, "", "location", "id")
	if loc := getMap(m, "location"); loc != nil && !getBool(loc, false, "isGlobalId") {
		if props := getMap(loc, "properties"); props != nil {
			stopID = getString(props, "", "stopId")
		}
	}

	var infos []Info
	for _, raw := range getList(m, "infos") {
		if im, ok := raw.(map[string]any); ok {
			infos = append(infos, InfoFromMap(im))
		}
	}

	return Departure{
		StopID:        stopID,
		StopName:      getString(m, "", "location", "name"),
		Platform:      getString(m, "", "location", "properties", "platform"),
		PlannedTime:   getTime(m, "departureTimePlanned"),
		EstimatedTime: getTime(m, "departureTimeEstimated"),
		Line:          LineFromMap(getMap(m, "transportation")),
		Infos:         infos,
	}
}

// EffectiveTime returns the real-time departure when one is known,
// otherwise the planned one.
func (d Departure) EffectiveTime() time.Time {
	if !d.EstimatedTime.IsZero() {
		return d.EstimatedTime
	}
	return d.PlannedTime
}

// Delay returns the current delay in minutes, zero when no real-time
// prediction is available.
func (d Departure) Delay() int {
	if d.EstimatedTime.IsZero() || d.PlannedTime.IsZero() {
		return 0
	}
	return int(d.EstimatedTime.Sub(d.PlannedTime).Minutes())
}
