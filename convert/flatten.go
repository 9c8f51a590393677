package convert

import (
	"errors"

	"github.com/tracktools/trackconv/gpx"
	"github.com/tracktools/trackconv/table"
)

// Fixed standard attributes beyond the five renameable semantic columns.
// Enumerated explicitly so the schema never depends on introspection.
var standardAttributes = []string{
	"speed",
	"name",
	"comment",
	"symbol",
	"type",
	"source",
	"horizontal_dilution",
	"vertical_dilution",
	"position_dilution",
}

// Flatten converts a parsed document into a table with one row per point.
// Standard columns are present for every point; when extensions are
// exported, one column per tag in the document-wide tag set is added, with
// the last matching entry on each point winning. The native elevation
// attribute always surfaces under the altitude column name.
func Flatten(doc *gpx.Document, opts TableOptions) (*table.Table, error) {
	if doc == nil {
		return nil, errors.New("flatten: nil document")
	}
	if opts.LatitudeColumn == "" || opts.LongitudeColumn == "" {
		return nil, errors.New("flatten: latitude and longitude column names are required")
	}
	opts.fillDefaults()

	var tags []string
	if opts.ExportExtensions {
		tags = CollectExtensionTags(doc)
	}
	tagSet := map[string]bool{}
	for _, tag := range tags {
		tagSet[tag] = true
	}

	cols := []string{
		opts.TimeColumn,
		opts.LongitudeColumn,
		opts.LatitudeColumn,
		opts.AltitudeColumn,
		opts.SatellitesColumn,
	}
	cols = append(cols, standardAttributes...)
	cols = append(cols, tags...)
	t := table.New(cols...)

	doc.EachPoint(func(p *gpx.Point) {
		row := table.Row{
			opts.LatitudeColumn:  p.Latitude,
			opts.LongitudeColumn: p.Longitude,
		}
		if p.Time != nil {
			row[opts.TimeColumn] = *p.Time
		}
		if p.Elevation != nil {
			row[opts.AltitudeColumn] = *p.Elevation
		}
		if p.Satellites != nil {
			row[opts.SatellitesColumn] = *p.Satellites
		}
		setFloat(row, "speed", p.Speed)
		setString(row, "name", p.Name)
		setString(row, "comment", p.Comment)
		setString(row, "symbol", p.Symbol)
		setString(row, "type", p.Type)
		setString(row, "source", p.Source)
		setFloat(row, "horizontal_dilution", p.HorizontalDilution)
		setFloat(row, "vertical_dilution", p.VerticalDilution)
		setFloat(row, "position_dilution", p.PositionDilution)

		// Walk entries in order so a repeated tag resolves to its last
		// occurrence on the point.
		for _, e := range p.Extensions {
			if tagSet[e.Tag] {
				row[e.Tag] = e.Text
			}
		}
		t.Append(row)
	})
	return t, nil
}

func setFloat(row table.Row, col string, v *float64) {
	if v != nil {
		row[col] = *v
	}
}

func setString(row table.Row, col, v string) {
	if v != "" {
		row[col] = v
	}
}
