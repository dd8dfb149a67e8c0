// Package efa is a typed client for the EFA family of public-transport
// information endpoints. It builds schema-validated query URLs for the
// supported remote operations, issues plain HTTP GETs and maps the
// rapidJSON responses into the domain objects of the models package.
package efa

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mobil-koeln/efa-go/command"
	"github.com/mobil-koeln/efa-go/models"
)

// DefaultLocationLimit bounds location searches when the caller does
// not ask for a specific count.
const DefaultLocationLimit = 30

// DefaultDepartureLimit is the server-side result cap for departure
// queries when the caller does not ask for a specific count.
const DefaultDepartureLimit = 40

// Client is a façade over one EFA endpoint. It owns the underlying HTTP
// session; concurrent calls are safe because every call builds its own
// command and parameter set. Release the session with Close.
type Client struct {
	httpClient *http.Client
	baseURL    string
	format     string
	debug      bool
	log        zerolog.Logger

	closeOnce sync.Once
}

// ClientOption configures the Client
type ClientOption func(*Client, *Config)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(_ *Client, cfg *Config) {
		cfg.Timeout = d
	}
}

// WithFormat requests a response format. Only rapidJSON is supported;
// anything else fails client construction.
func WithFormat(format string) ClientOption {
	return func(_ *Client, cfg *Config) {
		cfg.Format = format
	}
}

// WithDebug makes the client log full response bodies.
func WithDebug() ClientOption {
	return func(_ *Client, cfg *Config) {
		cfg.Debug = true
	}
}

// WithInsecureTLS disables TLS certificate verification for endpoints
// with broken certificate chains. Explicit opt-out, never a default.
func WithInsecureTLS() ClientOption {
	return func(_ *Client, cfg *Config) {
		cfg.InsecureSkipVerify = true
	}
}

// WithLogger sets the structured logger. The default discards
// everything.
func WithLogger(log zerolog.Logger) ClientOption {
	return func(c *Client, _ *Config) {
		c.log = log
	}
}

// WithHTTPClient sets a custom HTTP client. Timeout and TLS options are
// then the caller's responsibility.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client, _ *Config) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the EFA endpoint at baseURL. The
// configuration is validated here, before any network activity.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	cfg := Config{BaseURL: baseURL}

	c := &Client{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c, &cfg)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	if c.httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if cfg.InsecureSkipVerify {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 -- explicit opt-out, see Config
		}
		c.httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		}
	}

	c.baseURL = cfg.BaseURL
	c.format = cfg.Format
	c.debug = cfg.Debug

	return c, nil
}

// Close releases the underlying transport session. Safe to call more
// than once; the release happens exactly once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
	})
}

// Info fetches the endpoint's system metadata.
func (c *Client) Info(ctx context.Context) (models.SystemInfo, error) {
	cmd, err := command.NewSystemInfo(c.format)
	if err != nil {
		return models.SystemInfo{}, err
	}
	if err := cmd.AddParam("coordOutputFormat", string(models.CoordWGS84)); err != nil {
		return models.SystemInfo{}, err
	}

	body, err := c.runQuery(ctx, cmd)
	if err != nil {
		return models.SystemInfo{}, err
	}
	return cmd.Parse(body)
}

// StopSearchRequest contains parameters for a location search by name.
type StopSearchRequest struct {
	Name              string                  // Name, stop id or coordinate string (required)
	Filters           []models.LocationFilter // Restrict the result to object classes (default: no filter)
	Limit             int                     // Maximum number of results (default: 30)
	SearchNearbyStops bool                    // Also search stops near non-stop matches
}

// LocationsByName searches locations matching a name or stop id. The
// result is sorted by descending match quality and truncated to the
// requested limit.
func (c *Client) LocationsByName(ctx context.Context, req StopSearchRequest) ([]models.Location, error) {
	if req.Name == "" {
		return nil, ErrMissingField("name")
	}

	c.log.Info().Str("name", req.Name).Msg("request location search by name")

	cmd, err := c.stopFinder("any", req.Name, req.SearchNearbyStops)
	if err != nil {
		return nil, err
	}
	if len(req.Filters) > 0 {
		if err := cmd.AddParam("anyObjFilter_sf", models.SumFilters(req.Filters)); err != nil {
			return nil, err
		}
	}

	body, err := c.runQuery(ctx, cmd)
	if err != nil {
		return nil, err
	}
	locations, err := cmd.Parse(body)
	if err != nil {
		return nil, err
	}
	return truncate(locations, req.Limit, DefaultLocationLimit), nil
}

// CoordSearchRequest contains parameters for a location search around a
// coordinate.
type CoordSearchRequest struct {
	X                 float64            // Longitude in the chosen coordinate format
	Y                 float64            // Latitude in the chosen coordinate format
	Format            models.CoordFormat // Coordinate format (default: WGS84)
	Limit             int                // Maximum number of results (default: 30)
	SearchNearbyStops bool               // Also search stops near non-stop matches
}

// LocationsByCoord searches locations around the given coordinate.
func (c *Client) LocationsByCoord(ctx context.Context, req CoordSearchRequest) ([]models.Location, error) {
	format := req.Format
	if format == "" {
		format = models.CoordWGS84
	}

	name := strconv.FormatFloat(req.X, 'f', -1, 64) + ":" +
		strconv.FormatFloat(req.Y, 'f', -1, 64) + ":" + string(format)

	c.log.Info().Str("coord", name).Msg("request location search by coordinate")

	cmd, err := c.stopFinder("coord", name, req.SearchNearbyStops)
	if err != nil {
		return nil, err
	}

	body, err := c.runQuery(ctx, cmd)
	if err != nil {
		return nil, err
	}
	locations, err := cmd.Parse(body)
	if err != nil {
		return nil, err
	}
	return truncate(locations, req.Limit, DefaultLocationLimit), nil
}

// stopFinder builds the stop-finder command shared by the two location
// searches.
func (c *Client) stopFinder(typ, name string, searchNearbyStops bool) (*command.StopFinder, error) {
	cmd, err := command.NewStopFinder(c.format)
	if err != nil {
		return nil, err
	}
	for _, p := range []struct {
		key   string
		value any
	}{
		{"coordOutputFormat", string(models.CoordWGS84)},
		{"locationServerActive", 1},
		{"type_sf", typ},
		{"name_sf", name},
		{"doNotSearchForStops_sf", !searchNearbyStops},
	} {
		if err := cmd.AddParam(p.key, p.value); err != nil {
			return nil, err
		}
	}
	return cmd, nil
}

// DeparturesRequest contains parameters for a departure monitor query.
type DeparturesRequest struct {
	Stop  string    // Stop id or name (required)
	Limit int       // Server-side result cap (default: 40)
	When  time.Time // Query time (default: now, decided by the server)
}

// Departures fetches the departure monitor for a stop.
func (c *Client) Departures(ctx context.Context, req DeparturesRequest) ([]models.Departure, error) {
	if req.Stop == "" {
		return nil, ErrMissingField("stop")
	}

	c.log.Info().Str("stop", req.Stop).Msg("request departures")

	cmd, err := command.NewDepartures(c.format, req.Stop)
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultDepartureLimit
	}

	for _, p := range []struct {
		key   string
		value any
	}{
		{"coordOutputFormat", string(models.CoordWGS84)},
		{"locationServerActive", 1},
		// mode=direct is the rapidJSON spelling of "this exact stop".
		{"mode", "direct"},
		{"useAllStops", "1"},
		{"lsShowTrainsExplicit", "1"},
		{"useProxFootSearch", "0"},
		{"useRealtime", true},
		{"limit", limit},
	} {
		if err := cmd.AddParam(p.key, p.value); err != nil {
			return nil, err
		}
	}
	if err := cmd.AddDateTime(req.When); err != nil {
		return nil, err
	}

	body, err := c.runQuery(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return cmd.Parse(body)
}

// LineSearchRequest contains parameters for a line search by name.
type LineSearchRequest struct {
	Name               string // Line name, e.g. "U1" or "67" (required)
	MergeDirections    bool   // Merge both directions of a line into one entry
	ShowTrainsExplicit bool   // List individual trains instead of line summaries
}

// LinesByName searches serving lines by line name.
func (c *Client) LinesByName(ctx context.Context, req LineSearchRequest) ([]models.Line, error) {
	if req.Name == "" {
		return nil, ErrMissingField("name")
	}

	c.log.Info().Str("line", req.Name).Msg("request lines by name")

	cmd, err := c.servingLines("line")
	if err != nil {
		return nil, err
	}
	if err := cmd.AddParam("lineName", req.Name); err != nil {
		return nil, err
	}
	if err := addLineOptions(cmd, req.MergeDirections, req.ShowTrainsExplicit); err != nil {
		return nil, err
	}

	body, err := c.runQuery(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return cmd.Parse(body)
}

// LocationLinesRequest contains parameters for listing the lines serving
// a stop.
type LocationLinesRequest struct {
	StopID             string                   // Stop id (required unless Location is set)
	Location           *models.Location         // Alternative to StopID; must be of type stop
	ReqTypes           []models.LineRequestType // Restrict to timetable products (bit flags, summed)
	MergeDirections    bool                     // Merge both directions of a line into one entry
	ShowTrainsExplicit bool                     // List individual trains instead of line summaries
}

// LinesByLocation lists the lines serving a stop.
func (c *Client) LinesByLocation(ctx context.Context, req LocationLinesRequest) ([]models.Line, error) {
	stopID := req.StopID
	if req.Location != nil {
		if req.Location.Type != models.LocationTypeStop {
			return nil, ErrInvalidValue("location", req.Location.Type)
		}
		stopID = req.Location.ID
	}
	if stopID == "" {
		return nil, ErrMissingField("stop")
	}

	c.log.Info().Str("stop", stopID).Msg("request lines by location")

	cmd, err := c.servingLines("odv")
	if err != nil {
		return nil, err
	}
	if err := cmd.AddParam("type_sl", "stopID"); err != nil {
		return nil, err
	}
	if err := cmd.AddParam("name_sl", stopID); err != nil {
		return nil, err
	}
	if len(req.ReqTypes) > 0 {
		if err := cmd.AddParam("lineReqType", models.SumLineRequestTypes(req.ReqTypes)); err != nil {
			return nil, err
		}
	}
	if err := addLineOptions(cmd, req.MergeDirections, req.ShowTrainsExplicit); err != nil {
		return nil, err
	}

	body, err := c.runQuery(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return cmd.Parse(body)
}

// servingLines builds the serving-lines command shared by the two line
// searches.
func (c *Client) servingLines(mode string) (*command.ServingLines, error) {
	cmd, err := command.NewServingLines(c.format)
	if err != nil {
		return nil, err
	}
	if err := cmd.AddParam("coordOutputFormat", string(models.CoordWGS84)); err != nil {
		return nil, err
	}
	if err := cmd.AddParam("locationServerActive", 1); err != nil {
		return nil, err
	}
	if err := cmd.AddParam("mode", mode); err != nil {
		return nil, err
	}
	return cmd, nil
}

func addLineOptions(cmd *command.ServingLines, mergeDirections, showTrainsExplicit bool) error {
	if err := cmd.AddParam("mergeDir", mergeDirections); err != nil {
		return err
	}
	return cmd.AddParam("lsShowTrainsExplicit", showTrainsExplicit)
}

// LineListRequest contains the operator codes selecting a subnetwork
// for the line-list operation. All fields are optional.
type LineListRequest struct {
	BranchCode    string
	NetBranchCode string
	Subnetwork    string
	OMC           string
	MixedLines    bool
	MergeDir      bool
}

// LineList fetches the complete list of lines known to the endpoint.
func (c *Client) LineList(ctx context.Context, req LineListRequest) ([]models.Line, error) {
	c.log.Info().Msg("request line list")

	cmd, err := command.NewLineList(c.format)
	if err != nil {
		return nil, err
	}
	for _, p := range []struct {
		key   string
		value string
	}{
		{"lineListBranchCode", req.BranchCode},
		{"lineListNetBranchCode", req.NetBranchCode},
		{"lineListSubnetwork", req.Subnetwork},
		{"lineListOMC", req.OMC},
	} {
		if p.value == "" {
			continue
		}
		if err := cmd.AddParam(p.key, p.value); err != nil {
			return nil, err
		}
	}
	if req.MixedLines {
		if err := cmd.AddParam("lineListMixedLines", true); err != nil {
			return nil, err
		}
	}
	if req.MergeDir {
		if err := cmd.AddParam("mergeDir", true); err != nil {
			return nil, err
		}
	}

	body, err := c.runQuery(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return cmd.Parse(body)
}

// LineStopsRequest contains parameters for the line-stop operation.
type LineStopsRequest struct {
	Line        string // Line id as reported by the line search (required)
	AllStopInfo bool   // Include full stop details per sequence entry
}

// LineStops fetches the ordered stop sequence of a line.
func (c *Client) LineStops(ctx context.Context, req LineStopsRequest) ([]models.Location, error) {
	if req.Line == "" {
		return nil, ErrMissingField("line")
	}

	c.log.Info().Str("line", req.Line).Msg("request line stops")

	cmd, err := command.NewLineStop(c.format)
	if err != nil {
		return nil, err
	}
	if err := cmd.AddParam("line", req.Line); err != nil {
		return nil, err
	}
	if req.AllStopInfo {
		if err := cmd.AddParam("allStopInfo", true); err != nil {
			return nil, err
		}
	}

	body, err := c.runQuery(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return cmd.Parse(body)
}

// InfoRequest contains filters for the additional-info operation. All
// fields are optional.
type InfoRequest struct {
	Line              string              // Restrict to one line id
	PublicationStatus string              // "current" or "historic"
	Type              models.InfoType     // Restrict to one message type
	Priority          models.InfoPriority // Restrict to one priority
	ValidOn           time.Time           // Restrict to messages valid on this date
}

// InfosByLine fetches line-level info messages (disruptions,
// construction notices, announcements).
func (c *Client) InfosByLine(ctx context.Context, req InfoRequest) (models.Infos, error) {
	c.log.Info().Msg("request additional info")

	cmd, err := command.NewAdditionalInfo(c.format)
	if err != nil {
		return models.Infos{}, err
	}
	if err := cmd.AddParam("coordOutputFormat", string(models.CoordWGS84)); err != nil {
		return models.Infos{}, err
	}
	if req.Line != "" {
		if err := cmd.AddParam("line", req.Line); err != nil {
			return models.Infos{}, err
		}
	}
	if req.PublicationStatus != "" {
		if err := cmd.AddParam("filterPublicationStatus", req.PublicationStatus); err != nil {
			return models.Infos{}, err
		}
	}
	if req.Type != "" {
		if err := cmd.AddParam("filterInfoType", string(req.Type)); err != nil {
			return models.Infos{}, err
		}
	}
	if req.Priority != "" {
		if err := cmd.AddParam("filterPriority", string(req.Priority)); err != nil {
			return models.Infos{}, err
		}
	}
	if !req.ValidOn.IsZero() {
		if err := cmd.AddParam("filterDateValid", req.ValidOn.Format("02.01.2006")); err != nil {
			return models.Infos{}, err
		}
	}

	body, err := c.runQuery(ctx, cmd)
	if err != nil {
		return models.Infos{}, err
	}
	return cmd.Parse(body)
}

// InfosByStop is a stop-level variant of InfosByLine. The response
// schema is not known yet.
func (c *Client) InfosByStop(context.Context, string) (models.Infos, error) {
	return models.Infos{}, ErrNotImplemented
}

// Trip plans a journey between two locations. The response schema is
// not known yet.
func (c *Client) Trip(context.Context) error {
	return ErrNotImplemented
}

// LocationsByLine lists the locations served by a line. The response
// schema is not known yet.
func (c *Client) LocationsByLine(context.Context, string) ([]models.Location, error) {
	return nil, ErrNotImplemented
}

// runQuery performs the single HTTP GET for a built command and returns
// the textual payload. One attempt, no retry; a non-200 status becomes
// an APIError carrying the code.
func (c *Client) runQuery(ctx context.Context, cmd command.Command) (string, error) {
	reqURL := c.baseURL + cmd.Query()

	c.log.Info().Str("url", reqURL).Msg("run query")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", NewAPIError(resp.StatusCode, resp.Status, cmd.Name())
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if c.debug {
		c.log.Debug().Str("body", string(body)).Msg("response")
	}

	return string(body), nil
}

// truncate slices the first limit items, preserving relative order.
func truncate[T any](items []T, limit, def int) []T {
	if limit <= 0 {
		limit = def
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
