package convert

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/tracktools/trackconv/gpx"
	"github.com/tracktools/trackconv/table"
	"github.com/tracktools/trackconv/telemetry"
)

// ValidateColumns verifies that every configured source column exists in the
// table schema. The error lists the missing columns and the available ones,
// both sorted, so a mapping typo is diagnosable from the message alone.
func ValidateColumns(t *table.Table, opts TrackOptions) error {
	var missing []string
	for _, col := range opts.configuredColumns() {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	available := append([]string(nil), t.Columns...)
	sort.Strings(available)
	return fmt.Errorf("input table is missing required columns:\n- %s\n\navailable columns:\n- %s",
		strings.Join(missing, "\n- "), strings.Join(available, "\n- "))
}

// BuildTrack converts a table into a document with a single track and
// segment. Rows without a usable latitude or longitude are dropped; rows
// with an unparsable timestamp keep their point but lose the time. Row order
// is preserved.
func BuildTrack(t *table.Table, opts TrackOptions) (*gpx.Document, error) {
	if opts.LatitudeColumn == "" || opts.LongitudeColumn == "" {
		return nil, errors.New("build track: latitude and longitude column names are required")
	}
	if err := ValidateColumns(t, opts); err != nil {
		return nil, err
	}

	times, err := parseTimeColumn(t, opts)
	if err != nil {
		return nil, err
	}

	doc := gpx.NewDocument()
	doc.RegisterNamespace(telemetry.NamespacePrefix, telemetry.Namespace)
	seg := gpx.Segment{}
	warn := NewWarningAggregator()

	for i, row := range t.Rows {
		lat, latOK := table.Float(row[opts.LatitudeColumn])
		lon, lonOK := table.Float(row[opts.LongitudeColumn])
		if !latOK || !lonOK {
			// Deliberate drop-invalid-rows policy: noisy logs still
			// produce a usable track.
			warn.Add(WarningMissingPosition, "row "+strconv.Itoa(i))
			continue
		}

		p := gpx.Point{Latitude: lat, Longitude: lon}
		if times != nil && times[i] != nil {
			p.Time = times[i]
		}

		var elevation any
		if opts.ElevationColumn != "" {
			if ele, ok := table.Float(row[opts.ElevationColumn]); ok {
				p.Elevation = &ele
				elevation = ele
			}
		}
		setPointFloat(&p.Speed, row, opts.SpeedColumn)
		setPointFloat(&p.HorizontalDilution, row, opts.HorizontalDilutionColumn)
		setPointFloat(&p.VerticalDilution, row, opts.VerticalDilutionColumn)
		setPointFloat(&p.PositionDilution, row, opts.PositionDilutionColumn)
		p.Symbol = cellString(row, opts.SymbolColumn)
		p.Comment = cellString(row, opts.CommentColumn)
		p.Name = cellString(row, opts.NameColumn)

		AppendTelemetry(&p, row, opts, elevation)
		seg.Points = append(seg.Points, p)
	}
	warn.LogAll()

	doc.Tracks = []gpx.Track{{Name: opts.TrackName, Segments: []gpx.Segment{seg}}}
	return doc, nil
}

// parseTimeColumn parses the whole time column once. An unparsable value
// becomes nil rather than an error unless strict mode is on.
func parseTimeColumn(t *table.Table, opts TrackOptions) ([]*time.Time, error) {
	if opts.TimeColumn == "" || !t.HasColumn(opts.TimeColumn) {
		return nil, nil
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	warn := NewWarningAggregator()
	out := make([]*time.Time, t.Len())
	for i, row := range t.Rows {
		v := row[opts.TimeColumn]
		if ts, ok := table.Time(v); ok {
			out[i] = normalizeTime(ts, opts.TimeUTC)
			continue
		}
		s := table.String(v)
		if s == "" {
			continue
		}

		var ts time.Time
		var err error
		if opts.TimeLayout != "" {
			ts, err = time.ParseInLocation(opts.TimeLayout, s, loc)
		} else {
			ts, err = dateparse.ParseIn(s, loc)
		}
		if err != nil {
			if opts.StrictTime {
				return nil, fmt.Errorf("parse time column %q row %d: %w", opts.TimeColumn, i, err)
			}
			warn.Add(WarningBadTimestamp, fmt.Sprintf("row %d: %q", i, s))
			continue
		}
		out[i] = normalizeTime(ts, opts.TimeUTC)
	}
	warn.LogAll()
	return out, nil
}

func normalizeTime(ts time.Time, utc bool) *time.Time {
	if utc {
		ts = ts.UTC()
	}
	return &ts
}

func setPointFloat(dst **float64, row table.Row, col string) {
	if col == "" {
		return
	}
	if v, ok := table.Float(row[col]); ok {
		*dst = &v
	}
}

func cellString(row table.Row, col string) string {
	if col == "" {
		return ""
	}
	return table.String(row[col])
}
