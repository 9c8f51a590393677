package convert

import "time"

// Default column names for the document→table direction.
const (
	DefaultLatitudeColumn   = "latitude"
	DefaultLongitudeColumn  = "longitude"
	DefaultTimeColumn       = "time"
	DefaultAltitudeColumn   = "altitude"
	DefaultSatellitesColumn = "satellites"
)

// TableOptions configures flattening a document into a table. The five
// semantic columns can be renamed; extensions are exported unless switched
// off.
type TableOptions struct {
	LatitudeColumn   string
	LongitudeColumn  string
	TimeColumn       string
	AltitudeColumn   string
	SatellitesColumn string
	ExportExtensions bool
}

// DefaultTableOptions returns the canonical column names with extensions
// exported.
func DefaultTableOptions() TableOptions {
	return TableOptions{
		LatitudeColumn:   DefaultLatitudeColumn,
		LongitudeColumn:  DefaultLongitudeColumn,
		TimeColumn:       DefaultTimeColumn,
		AltitudeColumn:   DefaultAltitudeColumn,
		SatellitesColumn: DefaultSatellitesColumn,
		ExportExtensions: true,
	}
}

func (o *TableOptions) fillDefaults() {
	if o.TimeColumn == "" {
		o.TimeColumn = DefaultTimeColumn
	}
	if o.AltitudeColumn == "" {
		o.AltitudeColumn = DefaultAltitudeColumn
	}
	if o.SatellitesColumn == "" {
		o.SatellitesColumn = DefaultSatellitesColumn
	}
}

// TrackOptions configures building a document from a table. Latitude and
// longitude source columns are mandatory; everything else contributes only
// when configured.
type TrackOptions struct {
	LatitudeColumn  string
	LongitudeColumn string
	TimeColumn      string
	ElevationColumn string

	// Native point attributes beyond position/elevation/time.
	SpeedColumn              string
	SymbolColumn             string
	CommentColumn            string
	NameColumn               string
	HorizontalDilutionColumn string
	VerticalDilutionColumn   string
	PositionDilutionColumn   string

	// FieldColumns maps telemetry catalogue field names to source columns.
	// Unconfigured fields emit no extension entry.
	FieldColumns map[string]string

	// TimeLayout is an explicit Go time layout for the bulk parse. Empty
	// means a permissive, inferred parse.
	TimeLayout string
	// TimeUTC renders parsed instants as UTC.
	TimeUTC bool
	// Location interprets zone-less timestamps. Nil means UTC.
	Location *time.Location
	// StrictTime turns an unparsable timestamp into a conversion error
	// instead of a nulled time.
	StrictTime bool

	// TrackName names the single output track. Optional.
	TrackName string
}

// fieldColumn resolves the source column for a catalogue field. The speed
// field doubles as the native speed attribute, so it falls back to
// SpeedColumn when not mapped explicitly.
func (o TrackOptions) fieldColumn(name string) string {
	if col, ok := o.FieldColumns[name]; ok && col != "" {
		return col
	}
	if name == "speed" {
		return o.SpeedColumn
	}
	return ""
}

// configuredColumns returns every non-empty source column name, used for the
// schema preflight.
func (o TrackOptions) configuredColumns() []string {
	cols := []string{
		o.LatitudeColumn, o.LongitudeColumn, o.TimeColumn, o.ElevationColumn,
		o.SpeedColumn, o.SymbolColumn, o.CommentColumn, o.NameColumn,
		o.HorizontalDilutionColumn, o.VerticalDilutionColumn, o.PositionDilutionColumn,
	}
	for _, col := range o.FieldColumns {
		cols = append(cols, col)
	}
	out := cols[:0]
	for _, c := range cols {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
