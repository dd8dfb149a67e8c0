package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mobil-koeln/efa-go"
	"github.com/mobil-koeln/efa-go/internal/output"
	"github.com/mobil-koeln/efa-go/internal/tui"
	"github.com/mobil-koeln/efa-go/models"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "efa",
	Short: "CLI for querying EFA public-transport information",
	Long: `efa is a command-line interface for EFA public-transport
information endpoints (departure monitors, stop search, line data).

Features:
  - Stop and address search by name or geographic coordinates
  - Live departure board for any stop
  - Serving lines, network line list and line stop sequences
  - Disruption and construction messages
  - JSON output for scripting
  - Interactive full-screen monitor

Quick Start:
  1. Check the endpoint:       efa --endpoint https://efa.vgn.de/vgnExt_oeffi/ info
  2. Search for a stop:        efa stops "Plärrer"
  3. Show departures:          efa departures de:09564:704
  4. Launch the monitor:       efa monitor

Endpoints can be stored as named presets in ~/.config/efa/config.yaml
and selected with --endpoint <name>; see 'efa info --help'.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, launch the monitor
		if len(args) == 0 {
			return runMonitor(cmd, args)
		}
		return cmd.Help()
	},
}

// Global flags
var (
	flagEndpoint string
	flagConfig   string
	flagDate     string
	flagTime     string
	flagJSON     bool
	flagColor    string
	flagDebug    bool
)

// Command-specific flags
var (
	flagLimit       int
	flagNearby      bool
	flagFilters     []string
	flagInfos       bool
	flagIDs         bool
	flagWatch       bool
	flagMerge       bool
	flagTrains      bool
	flagStop        string
	flagOMC         string
	flagBranch      string
	flagNetBranch   string
	flagSubnetwork  string
	flagMixed       bool
	flagAllStopInfo bool
	flagLine        string
	flagStatus      string
	flagInfoType    string
	flagPriority    string
	flagValidOn     string
)

func init() {
	// Add subcommands
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(stopsCmd)
	rootCmd.AddCommand(coordCmd)
	rootCmd.AddCommand(departuresCmd)
	rootCmd.AddCommand(linesCmd)
	rootCmd.AddCommand(linelistCmd)
	rootCmd.AddCommand(linestopsCmd)
	rootCmd.AddCommand(messagesCmd)
	rootCmd.AddCommand(monitorCmd)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagEndpoint, "endpoint", "e", "", "EFA endpoint URL or preset name from the config file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to the config file (default ~/.config/efa/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flagDate, "date", "d", "", "Date (DD.MM.YYYY or YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVarP(&flagTime, "time", "t", "", "Time (HH:MM)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log queries and response bodies to stderr")

	// Stops-specific flags
	stopsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 0, "Maximum number of results (0 = endpoint default)")
	stopsCmd.Flags().BoolVar(&flagNearby, "nearby", false, "Also search stops near non-stop matches")
	stopsCmd.Flags().StringSliceVarP(&flagFilters, "filter", "f", nil, "Restrict result classes (stops,places,streets,addresses,intersections,pois,postcodes)")

	// Coord-specific flags
	coordCmd.Flags().IntVarP(&flagLimit, "limit", "n", 0, "Maximum number of results (0 = endpoint default)")

	// Departures-specific flags
	departuresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 0, "Maximum number of departures (0 = endpoint default)")
	departuresCmd.Flags().BoolVarP(&flagInfos, "infos", "i", false, "Show disruption messages attached to each departure")
	departuresCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Watch mode: refresh every 30 seconds")

	// Lines-specific flags
	linesCmd.Flags().StringVarP(&flagStop, "stop", "s", "", "List lines serving this stop id instead of searching by name")
	linesCmd.Flags().BoolVar(&flagMerge, "merge", false, "Merge both directions of a line into one entry")
	linesCmd.Flags().BoolVar(&flagTrains, "trains", false, "List individual trains instead of line summaries")
	linesCmd.Flags().BoolVar(&flagIDs, "ids", false, "Show line ids (usable with 'efa linestops')")

	// Linelist-specific flags
	linelistCmd.Flags().StringVar(&flagOMC, "omc", "", "Restrict to one municipality code")
	linelistCmd.Flags().StringVar(&flagBranch, "branch", "", "Restrict to one branch code")
	linelistCmd.Flags().StringVar(&flagNetBranch, "net-branch", "", "Restrict to one network branch code")
	linelistCmd.Flags().StringVar(&flagSubnetwork, "subnetwork", "", "Restrict to one subnetwork")
	linelistCmd.Flags().BoolVar(&flagMixed, "mixed", false, "Include mixed lines")
	linelistCmd.Flags().BoolVar(&flagMerge, "merge", false, "Merge both directions of a line into one entry")
	linelistCmd.Flags().BoolVar(&flagIDs, "ids", false, "Show line ids (usable with 'efa linestops')")

	// Linestops-specific flags
	linestopsCmd.Flags().BoolVar(&flagAllStopInfo, "all-stop-info", false, "Include full stop details per sequence entry")

	// Messages-specific flags
	messagesCmd.Flags().StringVarP(&flagLine, "line", "l", "", "Restrict to one line id")
	messagesCmd.Flags().StringVar(&flagStatus, "status", "", "Publication status: current or historic")
	messagesCmd.Flags().StringVar(&flagInfoType, "type", "", "Message type (e.g. lineInfo, stopInfo, areaInfo)")
	messagesCmd.Flags().StringVar(&flagPriority, "priority", "", "Priority: veryLow, low, normal, high, veryHigh")
	messagesCmd.Flags().StringVar(&flagValidOn, "valid-on", "", "Only messages valid on this date (DD.MM.YYYY or YYYY-MM-DD)")
}

// createClient creates an API client for the selected endpoint
func createClient() (*efa.Client, error) {
	endpoint, err := resolveEndpoint(flagEndpoint, flagConfig)
	if err != nil {
		return nil, err
	}

	opts := []efa.ClientOption{}
	if flagDebug {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger()
		opts = append(opts, efa.WithLogger(log), efa.WithDebug())
	}

	return efa.NewClient(endpoint, opts...)
}

// getColors returns the color palette based on the --color flag
func getColors() *output.Colors {
	return output.NewColors(output.ParseColorMode(flagColor))
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show endpoint system information",
	Long: `Show version, data format and timetable validity of an endpoint.

Useful as a connectivity check for a new endpoint URL.

Example:
  efa --endpoint https://efa.vgn.de/vgnExt_oeffi/ info
  efa --endpoint vgn info     # preset from the config file`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

var stopsCmd = &cobra.Command{
	Use:   "stops <name>",
	Short: "Search for stops by name",
	Long: `Search for stops, addresses and points of interest by name.

Results are sorted by match quality, best match first.

Result classes for the --filter flag:
  stops          - Public transport stops
  places         - Localities
  streets        - Streets
  addresses      - House-number addresses
  intersections  - Street crossings
  pois           - Points of interest
  postcodes      - Postcode areas

Examples:
  efa stops "Plärrer"
  efa stops Hauptbahnhof --filter stops
  efa stops "Königstraße 2" --filter addresses --nearby`,
	Args: cobra.ExactArgs(1),
	RunE: runStops,
}

var coordCmd = &cobra.Command{
	Use:   "coord <lat>:<lon>",
	Short: "Search for stops near a location",
	Long: `Search for stops near a geographic location.

The location must be specified as latitude:longitude in decimal degrees.

Example:
  efa coord 49.446:11.082
  efa coord 48.137:11.575 --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runCoord,
}

var departuresCmd = &cobra.Command{
	Use:   "departures <stop_id>",
	Short: "Show departures at a stop",
	Long: `Show upcoming departures at a stop.

The stop is identified by its global id, e.g. de:09564:704.
Use 'efa stops <name>' to find stop ids.

Additional Output:
  --infos, -i            Show disruption messages per departure
  --watch, -w            Refresh every 30 seconds (full-screen mode)

Examples:
  efa departures de:09564:704                  # Next departures now
  efa departures de:09564:704 -n 10            # At most 10 results
  efa departures de:09564:704 -d 24.12.2026 -t 18:00
  efa departures de:09564:704 --watch          # Watch mode with 30s refresh`,
	Args: cobra.ExactArgs(1),
	RunE: runDepartures,
}

var linesCmd = &cobra.Command{
	Use:   "lines [name]",
	Short: "Search serving lines",
	Long: `Search serving lines by line name, or list the lines serving a stop.

Examples:
  efa lines U2                     # All lines named U2
  efa lines 36 --merge             # Line 36, one entry per direction pair
  efa lines --stop de:09564:704    # Everything serving the main station
  efa lines U2 --ids               # Include ids for 'efa linestops'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLines,
}

var linelistCmd = &cobra.Command{
	Use:   "linelist",
	Short: "List all lines of the network",
	Long: `List every line the endpoint knows about, optionally restricted
to a subnetwork or municipality.

Examples:
  efa linelist
  efa linelist --omc 9564          # One municipality
  efa linelist --mixed --merge`,
	Args: cobra.NoArgs,
	RunE: runLineList,
}

var linestopsCmd = &cobra.Command{
	Use:   "linestops <line_id>",
	Short: "Show the stop sequence of a line",
	Long: `Show the ordered stop sequence of a line.

The line is identified by its id as reported by 'efa lines --ids',
e.g. "vgn:11002: :H:j25".

Example:
  efa linestops "vgn:11002: :H:j25"
  efa linestops "vgn:11002: :H:j25" --all-stop-info`,
	Args: cobra.ExactArgs(1),
	RunE: runLineStops,
}

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Show disruption and construction messages",
	Long: `Show additional-info messages (disruptions, construction work,
general announcements), grouped into current and historic.

Examples:
  efa messages
  efa messages --status current --priority high
  efa messages --line "vgn:11002: :H:j25"
  efa messages --valid-on 24.12.2026`,
	Args: cobra.NoArgs,
	RunE: runMessages,
}

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Launch the interactive departure monitor",
	Long: `Launch an interactive full-screen departure monitor with stop
search, transport-mode filters and auto-refresh.

Keyboard:
  Tab          Cycle focus between panels
  j/k or arrows  Navigate lists
  Enter        Select / confirm
  Esc          Go back
  /            Jump to search
  r            Refresh departures
  q            Quit`,
	Args: cobra.NoArgs,
	RunE: runMonitor,
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, err := createClient()
	if err != nil {
		return err
	}
	defer client.Close()

	info, err := client.Info(ctx)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(info)
	}

	output.RenderSystemInfo(os.Stdout, info, output.TableOptions{Colors: getColors()})
	return nil
}

func runStops(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	filters, err := parseFilters(flagFilters)
	if err != nil {
		return err
	}

	client, err := createClient()
	if err != nil {
		return err
	}
	defer client.Close()

	locations, err := client.LocationsByName(ctx, efa.StopSearchRequest{
		Name:              args[0],
		Filters:           filters,
		Limit:             flagLimit,
		SearchNearbyStops: flagNearby,
	})
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(locations)
	}

	output.RenderLocations(os.Stdout, locations, output.TableOptions{Colors: getColors()})
	return nil
}

func runCoord(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Parse coordinates (format: lat:lon)
	parts := strings.SplitN(args[0], ":", 2)
	if len(parts) != 2 {
		return fmt.Errorf("coordinates must be in format LAT:LON (e.g., 49.446:11.082)")
	}

	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return fmt.Errorf("invalid latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return fmt.Errorf("invalid longitude: %w", err)
	}

	client, err := createClient()
	if err != nil {
		return err
	}
	defer client.Close()

	locations, err := client.LocationsByCoord(ctx, efa.CoordSearchRequest{
		X:     lon,
		Y:     lat,
		Limit: flagLimit,
	})
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(locations)
	}

	output.RenderLocations(os.Stdout, locations, output.TableOptions{Colors: getColors()})
	return nil
}

func runDepartures(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, err := createClient()
	if err != nil {
		return err
	}
	defer client.Close()

	req := efa.DeparturesRequest{
		Stop:  args[0],
		Limit: flagLimit,
	}
	if flagDate != "" || flagTime != "" {
		req.When = parseDateTime(flagDate, flagTime)
	}

	// Watch mode
	if flagWatch {
		return runWatch(func() error {
			departures, err := client.Departures(ctx, req)
			if err != nil {
				return err
			}
			output.RenderDepartures(os.Stdout, departures, output.TableOptions{
				Colors:    getColors(),
				ShowInfos: flagInfos,
			})
			return nil
		})
	}

	departures, err := client.Departures(ctx, req)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(departures)
	}

	output.RenderDepartures(os.Stdout, departures, output.TableOptions{
		Colors:    getColors(),
		ShowInfos: flagInfos,
	})
	return nil
}

func runLines(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 0 && flagStop == "" {
		return fmt.Errorf("either a line name or --stop is required\nUse 'efa lines U2' or 'efa lines --stop <stop_id>'")
	}

	client, err := createClient()
	if err != nil {
		return err
	}
	defer client.Close()

	var lines []models.Line
	if flagStop != "" {
		lines, err = client.LinesByLocation(ctx, efa.LocationLinesRequest{
			StopID:             flagStop,
			MergeDirections:    flagMerge,
			ShowTrainsExplicit: flagTrains,
		})
	} else {
		lines, err = client.LinesByName(ctx, efa.LineSearchRequest{
			Name:               args[0],
			MergeDirections:    flagMerge,
			ShowTrainsExplicit: flagTrains,
		})
	}
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(lines)
	}

	output.RenderLines(os.Stdout, lines, output.TableOptions{
		Colors:  getColors(),
		ShowIDs: flagIDs,
	})
	return nil
}

func runLineList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, err := createClient()
	if err != nil {
		return err
	}
	defer client.Close()

	lines, err := client.LineList(ctx, efa.LineListRequest{
		BranchCode:    flagBranch,
		NetBranchCode: flagNetBranch,
		Subnetwork:    flagSubnetwork,
		OMC:           flagOMC,
		MixedLines:    flagMixed,
		MergeDir:      flagMerge,
	})
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(lines)
	}

	output.RenderLines(os.Stdout, lines, output.TableOptions{
		Colors:  getColors(),
		ShowIDs: flagIDs,
	})
	return nil
}

func runLineStops(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, err := createClient()
	if err != nil {
		return err
	}
	defer client.Close()

	stops, err := client.LineStops(ctx, efa.LineStopsRequest{
		Line:        args[0],
		AllStopInfo: flagAllStopInfo,
	})
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(stops)
	}

	output.RenderLocations(os.Stdout, stops, output.TableOptions{Colors: getColors()})
	return nil
}

func runMessages(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	req := efa.InfoRequest{
		Line:              flagLine,
		PublicationStatus: flagStatus,
		Type:              models.InfoType(flagInfoType),
		Priority:          models.InfoPriority(flagPriority),
	}
	if flagValidOn != "" {
		req.ValidOn = parseDateTime(flagValidOn, "")
	}

	client, err := createClient()
	if err != nil {
		return err
	}
	defer client.Close()

	infos, err := client.InfosByLine(ctx, req)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(infos)
	}

	output.RenderInfos(os.Stdout, infos, output.TableOptions{Colors: getColors()})
	return nil
}

func runMonitor(cmd *cobra.Command, args []string) error {
	client, err := createClient()
	if err != nil {
		return err
	}
	defer client.Close()

	model := tui.New(client)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// runWatch runs a continuous refresh loop for watch mode
func runWatch(fetchAndRender func() error) error {
	const refreshInterval = 30 * time.Second

	sigChan := output.SetupSignalHandler()
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	// Hide cursor during watch mode
	output.HideCursor(os.Stdout)
	defer output.ShowCursor(os.Stdout)

	for {
		output.ClearScreen(os.Stdout)

		// Show header with timestamp
		now := time.Now()
		fmt.Printf("Last update: %s | Next refresh in 30s | Press Ctrl+C to exit\n\n",
			now.Format("15:04:05"))

		// Fetch and render data
		if err := fetchAndRender(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		// Wait for next tick or interrupt
		select {
		case <-ticker.C:
			continue
		case <-sigChan:
			output.ClearScreen(os.Stdout)
			fmt.Println("Watch mode ended.")
			return nil
		}
	}
}

// parseFilters maps --filter names to location filter flags
func parseFilters(names []string) ([]models.LocationFilter, error) {
	byName := map[string]models.LocationFilter{
		"places":        models.FilterPlaces,
		"stops":         models.FilterStops,
		"streets":       models.FilterStreets,
		"addresses":     models.FilterAddresses,
		"intersections": models.FilterIntersections,
		"pois":          models.FilterPOIs,
		"postcodes":     models.FilterPostcodes,
	}

	var filters []models.LocationFilter
	for _, name := range names {
		f, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown filter %q (want one of: stops, places, streets, addresses, intersections, pois, postcodes)", name)
		}
		filters = append(filters, f)
	}
	return filters, nil
}

func parseDateTime(dateStr, timeStr string) time.Time {
	now := time.Now()

	year := now.Year()
	month := now.Month()
	day := now.Day()
	hour := now.Hour()
	minute := now.Minute()

	// Parse date
	if dateStr != "" {
		// Try DD.MM.YYYY format
		if strings.Contains(dateStr, ".") {
			parts := strings.Split(dateStr, ".")
			if len(parts) >= 2 {
				if d, err := strconv.Atoi(parts[0]); err == nil {
					day = d
				}
				if m, err := strconv.Atoi(parts[1]); err == nil {
					month = time.Month(m)
				}
				if len(parts) == 3 {
					if y, err := strconv.Atoi(parts[2]); err == nil {
						if y < 100 {
							y += 2000
						}
						year = y
					}
				}
			}
		} else if strings.Contains(dateStr, "-") {
			// Try YYYY-MM-DD format
			t, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
			if err == nil {
				year = t.Year()
				month = t.Month()
				day = t.Day()
			}
		}
	}

	// Parse time
	if timeStr != "" {
		parts := strings.Split(timeStr, ":")
		if len(parts) >= 2 {
			if h, err := strconv.Atoi(parts[0]); err == nil {
				hour = h
			}
			if m, err := strconv.Atoi(parts[1]); err == nil {
				minute = m
			}
		}
	}

	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
