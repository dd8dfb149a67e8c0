package models

import "time"

// SystemInfo is the metadata an EFA endpoint reports about itself.
type SystemInfo struct {
	Version    string `json:"version"`
	DataFormat string `json:"dataFormat"`

	// Validity of the currently loaded timetable data. Calendar dates,
	// no time component.
	ValidFrom time.Time `json:"validFrom"`
	ValidTo   time.Time `json:"validTo"`
}

// SystemInfoFromMap builds a SystemInfo from a decoded system-info
// response body.
func SystemInfoFromMap(m map[string]any) SystemInfo {
	return SystemInfo{
		Version:    getString(m, "", "version"),
		DataFormat: getString(m, "", "ptKernel", "dataFormat"),
		ValidFrom:  getDate(m, "validity", "from"),
		ValidTo:    getDate(m, "validity", "to"),
	}
}
