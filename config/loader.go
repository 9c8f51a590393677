package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tracktools/trackconv/convert"
	"github.com/tracktools/trackconv/telemetry"
)

// LoadProfile reads a conversion profile from a YAML file and validates it.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile %s: %w", path, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if err := Validate(p); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Validate checks struct constraints and that every telemetry field name is
// a known catalogue entry.
func Validate(p Profile) error {
	v := validator.New()
	if err := v.Struct(p); err != nil {
		return err
	}
	for name := range p.Columns.Fields {
		if _, ok := telemetry.FieldByName(name); !ok {
			return fmt.Errorf("unknown telemetry field %q in columns.fields", name)
		}
	}
	return nil
}

// TrackOptions resolves the profile into table→document options. The IANA
// zone name, if any, is looked up here so a bad zone fails before row
// processing starts.
func (p Profile) TrackOptions() (convert.TrackOptions, error) {
	opts := convert.TrackOptions{
		LatitudeColumn:           p.Columns.Latitude,
		LongitudeColumn:          p.Columns.Longitude,
		TimeColumn:               p.Columns.Time,
		ElevationColumn:          p.Columns.Elevation,
		SpeedColumn:              p.Columns.Speed,
		SymbolColumn:             p.Columns.Symbol,
		CommentColumn:            p.Columns.Comment,
		NameColumn:               p.Columns.Name,
		HorizontalDilutionColumn: p.Columns.HorizontalDilution,
		VerticalDilutionColumn:   p.Columns.VerticalDilution,
		PositionDilutionColumn:   p.Columns.PositionDilution,
		FieldColumns:             p.Columns.Fields,
		TimeLayout:               p.Time.Layout,
		TimeUTC:                  p.Time.UTC,
		StrictTime:               p.Time.Strict,
		TrackName:                p.TrackName,
	}
	if p.Time.Location != "" {
		loc, err := time.LoadLocation(p.Time.Location)
		if err != nil {
			return convert.TrackOptions{}, fmt.Errorf("unknown timezone %q (use IANA names like Asia/Nicosia): %w",
				p.Time.Location, err)
		}
		opts.Location = loc
	}
	return opts, nil
}

// TableOptions resolves the profile into document→table options.
func (p Profile) TableOptions() convert.TableOptions {
	opts := convert.DefaultTableOptions()
	if p.Table.Latitude != "" {
		opts.LatitudeColumn = p.Table.Latitude
	}
	if p.Table.Longitude != "" {
		opts.LongitudeColumn = p.Table.Longitude
	}
	if p.Table.Time != "" {
		opts.TimeColumn = p.Table.Time
	}
	if p.Table.Altitude != "" {
		opts.AltitudeColumn = p.Table.Altitude
	}
	if p.Table.Satellites != "" {
		opts.SatellitesColumn = p.Table.Satellites
	}
	if p.Table.Extensions != nil {
		opts.ExportExtensions = *p.Table.Extensions
	}
	return opts
}
