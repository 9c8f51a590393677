package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `
columns:
  latitude: Latitude
  longitude: Longitude
  time: "Time (yyyyMMdd-HH:mm:ss.SSS)"
  elevation: "Elevation (m)"
  fields:
    rpm: RPM
    gear: Gear
time:
  layout: "20060102-15:04:05.000"
  utc: true
  location: Asia/Nicosia
smooth:
  samples: 200
  degree: 3
`)
	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "Latitude", p.Columns.Latitude)
	assert.Equal(t, "RPM", p.Columns.Fields["rpm"])
	assert.True(t, p.Time.UTC)
	assert.Equal(t, 200, p.Smooth.Samples)

	opts, err := p.TrackOptions()
	require.NoError(t, err)
	assert.Equal(t, "Latitude", opts.LatitudeColumn)
	require.NotNil(t, opts.Location)
	assert.Equal(t, "Asia/Nicosia", opts.Location.String())
}

func TestLoadProfileMissingLatitude(t *testing.T) {
	path := writeProfile(t, `
columns:
  longitude: Longitude
`)
	_, err := LoadProfile(path)
	assert.Error(t, err)
}

func TestLoadProfileUnknownTelemetryField(t *testing.T) {
	path := writeProfile(t, `
columns:
  latitude: Latitude
  longitude: Longitude
  fields:
    flux_capacitor: FC
`)
	_, err := LoadProfile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flux_capacitor")
}

func TestTrackOptionsBadTimezone(t *testing.T) {
	p := WunderLINQ()
	p.Time.Location = "Nowhere/Atlantis"
	_, err := p.TrackOptions()
	assert.Error(t, err)
}

func TestWunderLINQProfileIsValid(t *testing.T) {
	p := WunderLINQ()
	require.NoError(t, Validate(p))

	opts, err := p.TrackOptions()
	require.NoError(t, err)
	assert.Equal(t, "Latitude", opts.LatitudeColumn)
	assert.Equal(t, "20060102-15:04:05.000", opts.TimeLayout)
	// Every catalogue field except the altitude mirror has a source column.
	assert.Len(t, p.Columns.Fields, 31)
}

func TestTableOptionsDefaults(t *testing.T) {
	p := Profile{}
	opts := p.TableOptions()
	assert.Equal(t, "latitude", opts.LatitudeColumn)
	assert.True(t, opts.ExportExtensions)

	off := false
	p.Table.Extensions = &off
	p.Table.Latitude = "lat"
	opts = p.TableOptions()
	assert.Equal(t, "lat", opts.LatitudeColumn)
	assert.False(t, opts.ExportExtensions)
}
