package models

// CoordFormat selects the coordinate reference system the server uses for
// input and output coordinates. The bracket notation is sent verbatim and
// must not be URL-escaped.
type CoordFormat string

const CoordWGS84 CoordFormat = "WGS84[dd.ddddd]"

// LocationType classifies a location record returned by the server.
type LocationType string

const (
	LocationTypeStop     LocationType = "stop"
	LocationTypeAddress  LocationType = "address"
	LocationTypePOI      LocationType = "poi"
	LocationTypeStreet   LocationType = "street"
	LocationTypeLocality LocationType = "locality"
	LocationTypeSuburb   LocationType = "suburb"
	LocationTypePlatform LocationType = "platform"
	LocationTypeCrossing LocationType = "crossing"
	LocationTypeUnknown  LocationType = "unknown"
)

var locationTypes = map[LocationType]struct{}{
	LocationTypeStop:     {},
	LocationTypeAddress:  {},
	LocationTypePOI:      {},
	LocationTypeStreet:   {},
	LocationTypeLocality: {},
	LocationTypeSuburb:   {},
	LocationTypePlatform: {},
	LocationTypeCrossing: {},
}

// ParseLocationType maps a raw type string to a LocationType, degrading
// to LocationTypeUnknown for values this client does not know.
func ParseLocationType(s string) LocationType {
	t := LocationType(s)
	if _, ok := locationTypes[t]; !ok {
		return LocationTypeUnknown
	}
	return t
}

// LocationFilter restricts a stop-finder search to certain object
// classes. Filters are bit flags; a set of them is sent as the sum of the
// selected values (anyObjFilter_sf).
type LocationFilter int

const (
	FilterNone          LocationFilter = 0
	FilterPlaces        LocationFilter = 1
	FilterStops         LocationFilter = 2
	FilterStreets       LocationFilter = 4
	FilterAddresses     LocationFilter = 8
	FilterIntersections LocationFilter = 16
	FilterPOIs          LocationFilter = 32
	FilterPostcodes     LocationFilter = 64
)

// FilterMax is the largest legal anyObjFilter_sf value: all flags set.
const FilterMax = int(FilterPlaces | FilterStops | FilterStreets |
	FilterAddresses | FilterIntersections | FilterPOIs | FilterPostcodes)

// SumFilters folds a filter list into the wire value the server expects.
func SumFilters(filters []LocationFilter) int {
	sum := 0
	for _, f := range filters {
		sum += int(f)
	}
	return sum
}

// Location is a stop, address, POI or other point the server can resolve.
// Instances are read-only snapshots built per response.
type Location struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	DisassembledName string          `json:"disassembledName,omitempty"`
	Coord            []float64       `json:"coord,omitempty"`
	Type             LocationType    `json:"type"`
	Transports       []TransportType `json:"transports,omitempty"`
	// MatchQuality is the server-assigned relevance rank for search
	// results; higher is better. Meaningless outside sorting.
	MatchQuality int `json:"matchQuality"`
}

// LocationFromMap builds a Location from one decoded response element.
//
// Identifier resolution follows the server's convention: when the record
// is not marked globally identified, the locally-scoped id nested under
// properties wins over the top-level one. The fallback is applied per
// item, never globally.
func LocationFromMap(m map[string]any) Location {
	id := getString(m, "", "id")
	if !getBool(m, false, "isGlobalId") {
		if props := getMap(m, "properties"); props != nil {
			id = getString(props, "", "stopId")
		}
	}

	var transports []TransportType
	for _, raw := range getList(m, "productClasses") {
		if code, ok := raw.(float64); ok {
			transports = append(transports, ParseTransportType(int(code)))
		}
	}

	return Location{
		ID:               id,
		Name:             getString(m, "", "name"),
		DisassembledName: getString(m, "", "disassembledName"),
		Coord:            getFloats(m, "coord"),
		Type:             ParseLocationType(getString(m, "", "type")),
		Transports:       transports,
		MatchQuality:     getInt(m, 0, "matchQuality"),
	}
}
