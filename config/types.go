package config

// ColumnsConfig names the source columns for a table→document conversion.
// Latitude and longitude are mandatory; everything else contributes only
// when set. Fields maps telemetry catalogue field names to source columns.
type ColumnsConfig struct {
	Latitude  string `yaml:"latitude" validate:"required"`
	Longitude string `yaml:"longitude" validate:"required"`
	Time      string `yaml:"time"`
	Elevation string `yaml:"elevation"`

	Speed              string `yaml:"speed"`
	Symbol             string `yaml:"symbol"`
	Comment            string `yaml:"comment"`
	Name               string `yaml:"name"`
	HorizontalDilution string `yaml:"horizontal_dilution"`
	VerticalDilution   string `yaml:"vertical_dilution"`
	PositionDilution   string `yaml:"position_dilution"`

	Fields map[string]string `yaml:"fields"`
}

// TimeConfig controls the bulk time parse.
type TimeConfig struct {
	// Layout is a Go time layout. Empty means a permissive, inferred parse.
	Layout string `yaml:"layout"`
	// UTC renders parsed instants as UTC.
	UTC bool `yaml:"utc"`
	// Location is an IANA zone name for interpreting zone-less timestamps.
	Location string `yaml:"location"`
	// Strict turns unparsable timestamps into conversion errors.
	Strict bool `yaml:"strict"`
}

// TableConfig renames the semantic columns of a document→table conversion.
type TableConfig struct {
	Latitude   string `yaml:"latitude"`
	Longitude  string `yaml:"longitude"`
	Time       string `yaml:"time"`
	Altitude   string `yaml:"altitude"`
	Satellites string `yaml:"satellites"`
	// Extensions defaults to true when omitted.
	Extensions *bool `yaml:"extensions"`
}

// SmoothConfig enables B-spline resampling of the output track.
type SmoothConfig struct {
	Samples int  `yaml:"samples" validate:"gte=0"`
	Degree  int  `yaml:"degree" validate:"gte=0"`
	Closed  bool `yaml:"closed"`
}

// Profile is one complete conversion configuration.
type Profile struct {
	Columns   ColumnsConfig `yaml:"columns" validate:"required"`
	Time      TimeConfig    `yaml:"time"`
	Table     TableConfig   `yaml:"table"`
	Smooth    SmoothConfig  `yaml:"smooth"`
	TrackName string        `yaml:"trackName"`
}
