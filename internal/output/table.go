package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mobil-koeln/efa-go/models"
)

// TableOptions configures the table output
type TableOptions struct {
	Colors    *Colors
	ShowInfos bool
	ShowIDs   bool
}

// RenderDepartures renders departures as a formatted table
func RenderDepartures(w io.Writer, departures []models.Departure, opts TableOptions) {
	if len(departures) == 0 {
		_, _ = fmt.Fprintln(w, "No departures found.")
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	for _, dep := range departures {
		timeStr := "??:??"
		if !dep.PlannedTime.IsZero() {
			timeStr = dep.PlannedTime.Local().Format("15:04")
		}

		delayStr := c.FormatDelay(dep.Delay())

		// Line number, truncated/padded to 8 chars
		line := dep.Line.Number
		if line == "" {
			line = dep.Line.Name
		}
		if len(line) > 8 {
			line = line[:8]
		}
		lineStr := fmt.Sprintf("%-8s", line)

		// Platform (fixed 7-char width: "Pl.XXX" or spaces)
		platformStr := "       "
		if p := dep.Platform; p != "" {
			if len(p) > 3 {
				p = p[:3]
			}
			platformStr = fmt.Sprintf("Pl.%-3s ", p)
		}

		_, _ = fmt.Fprintf(w, "%s %s  %s  %s %s\n",
			c.Time(timeStr),
			delayStr,
			c.Line(lineStr),
			c.Platform(platformStr),
			c.Dest(dep.Line.Destination.Name),
		)

		if opts.ShowInfos {
			for _, info := range dep.Infos {
				_, _ = fmt.Fprintf(w, "                           %s\n", c.Alert("! %s", info.Title))
			}
		}
	}
}

// RenderLocations renders locations as a formatted list
func RenderLocations(w io.Writer, locations []models.Location, opts TableOptions) {
	if len(locations) == 0 {
		_, _ = fmt.Fprintln(w, "No locations found.")
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	_, _ = fmt.Fprintln(w, c.Header("Found locations:"))
	_, _ = fmt.Fprintln(w)

	for _, loc := range locations {
		_, _ = fmt.Fprintf(w, "  %s %s\n", c.Line(loc.Name), c.Muted("(%s)", loc.Type))
		if loc.ID != "" {
			_, _ = fmt.Fprintf(w, "    %s %s\n", c.Muted("ID:"), loc.ID)
		}
		if len(loc.Transports) > 0 {
			names := make([]string, 0, len(loc.Transports))
			for _, tr := range loc.Transports {
				names = append(names, tr.String())
			}
			_, _ = fmt.Fprintf(w, "    %s %s\n", c.Muted("Modes:"), strings.Join(names, ", "))
		}
		_, _ = fmt.Fprintln(w)
	}
}

// RenderLines renders serving lines as a formatted table
func RenderLines(w io.Writer, lines []models.Line, opts TableOptions) {
	if len(lines) == 0 {
		_, _ = fmt.Fprintln(w, "No lines found.")
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	for _, line := range lines {
		number := line.Number
		if number == "" {
			number = line.Name
		}
		if len(number) > 8 {
			number = number[:8]
		}

		_, _ = fmt.Fprintf(w, "%s  %s %s\n",
			c.Line("%-8s", number),
			c.Muted("→"),
			c.Dest(line.Destination.Name),
		)
		if opts.ShowIDs && line.ID != "" {
			_, _ = fmt.Fprintf(w, "          %s %s\n", c.Muted("ID:"), line.ID)
		}
		if line.Operator.Name != "" {
			_, _ = fmt.Fprintf(w, "          %s %s (%s)\n",
				c.Muted("Operator:"), line.Operator.Name, line.Product.Name)
		}
	}
}

// RenderSystemInfo renders endpoint metadata
func RenderSystemInfo(w io.Writer, info models.SystemInfo, opts TableOptions) {
	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", c.Header("Version:"), info.Version)
	_, _ = fmt.Fprintf(w, "%s %s\n", c.Header("Data format:"), info.DataFormat)
	if !info.ValidFrom.IsZero() && !info.ValidTo.IsZero() {
		_, _ = fmt.Fprintf(w, "%s %s - %s\n",
			c.Header("Timetable:"),
			info.ValidFrom.Format("2006-01-02"),
			info.ValidTo.Format("2006-01-02"),
		)
	}
}

// RenderInfos renders info messages grouped by publication status
func RenderInfos(w io.Writer, infos models.Infos, opts TableOptions) {
	if len(infos.Current) == 0 && len(infos.Historic) == 0 {
		_, _ = fmt.Fprintln(w, "No messages found.")
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	renderGroup := func(header string, group []models.Info) {
		if len(group) == 0 {
			return
		}
		_, _ = fmt.Fprintln(w, c.Header(header))
		for _, info := range group {
			title := info.Title
			if title == "" {
				title = string(info.Type)
			}
			if info.Priority == models.PriorityHigh || info.Priority == models.PriorityVeryHigh {
				_, _ = fmt.Fprintf(w, "  %s\n", c.Alert("! %s", title))
			} else {
				_, _ = fmt.Fprintf(w, "  %s\n", title)
			}
			if !info.ValidFrom.IsZero() && !info.ValidTo.IsZero() {
				_, _ = fmt.Fprintf(w, "    %s %s - %s\n",
					c.Muted("Valid:"),
					info.ValidFrom.Format("2006-01-02"),
					info.ValidTo.Format("2006-01-02"),
				)
			}
			if info.URL != "" {
				_, _ = fmt.Fprintf(w, "    %s\n", c.Muted(info.URL))
			}
		}
		_, _ = fmt.Fprintln(w)
	}

	renderGroup("Current messages:", infos.Current)
	renderGroup("Historic messages:", infos.Historic)
}
