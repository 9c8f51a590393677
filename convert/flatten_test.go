package convert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracktools/trackconv/gpx"
)

func TestFlattenStandardColumns(t *testing.T) {
	ele := 12.5
	ts := time.Date(2025, 6, 15, 18, 24, 20, 0, time.UTC)
	sats := 9
	p := gpx.Point{Latitude: 34.707, Longitude: 33.022, Elevation: &ele, Time: &ts, Satellites: &sats}

	tbl, err := Flatten(docFromPoints(p), DefaultTableOptions())
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())

	row := tbl.Rows[0]
	assert.Equal(t, 34.707, row["latitude"])
	assert.Equal(t, 33.022, row["longitude"])
	assert.Equal(t, ts, row["time"])
	assert.Equal(t, 9, row["satellites"])

	// Elevation is always surfaced as altitude, never as elevation.
	assert.Equal(t, 12.5, row["altitude"])
	assert.False(t, tbl.HasColumn("elevation"))
}

func TestFlattenRenamedColumns(t *testing.T) {
	opts := DefaultTableOptions()
	opts.LatitudeColumn = "lat"
	opts.LongitudeColumn = "lon"
	opts.AltitudeColumn = "alt_m"

	ele := 7.0
	tbl, err := Flatten(docFromPoints(gpx.Point{Latitude: 1, Longitude: 2, Elevation: &ele}), opts)
	require.NoError(t, err)
	row := tbl.Rows[0]
	assert.Equal(t, 1.0, row["lat"])
	assert.Equal(t, 2.0, row["lon"])
	assert.Equal(t, 7.0, row["alt_m"])
}

func TestFlattenLastWriteWins(t *testing.T) {
	p := gpx.Point{Latitude: 1, Longitude: 2}
	p.AddExtension("rpm", "1")
	p.AddExtension("rpm", "2")

	tbl, err := Flatten(docFromPoints(p), DefaultTableOptions())
	require.NoError(t, err)
	assert.Equal(t, "2", tbl.Rows[0]["rpm"])
}

func TestFlattenMissingExtensionIsNull(t *testing.T) {
	p1 := gpx.Point{Latitude: 1, Longitude: 2}
	p1.AddExtension("gear", "3")
	p2 := gpx.Point{Latitude: 3, Longitude: 4}

	tbl, err := Flatten(docFromPoints(p1, p2), DefaultTableOptions())
	require.NoError(t, err)
	require.True(t, tbl.HasColumn("gear"))
	assert.Equal(t, "3", tbl.Rows[0]["gear"])
	assert.Nil(t, tbl.Rows[1]["gear"])
}

func TestFlattenWithoutExtensions(t *testing.T) {
	p := gpx.Point{Latitude: 1, Longitude: 2}
	p.AddExtension("rpm", "4000")

	opts := DefaultTableOptions()
	opts.ExportExtensions = false
	tbl, err := Flatten(docFromPoints(p), opts)
	require.NoError(t, err)
	assert.False(t, tbl.HasColumn("rpm"))
}

func TestFlattenEmptyDocument(t *testing.T) {
	tbl, err := Flatten(gpx.NewDocument(), DefaultTableOptions())
	require.NoError(t, err)
	assert.Zero(t, tbl.Len())
	assert.Contains(t, tbl.Columns, "latitude")
	assert.Contains(t, tbl.Columns, "longitude")
	assert.Contains(t, tbl.Columns, "time")
	assert.Contains(t, tbl.Columns, "altitude")
}

func TestFlattenRequiresPositionColumns(t *testing.T) {
	opts := DefaultTableOptions()
	opts.LatitudeColumn = ""
	_, err := Flatten(gpx.NewDocument(), opts)
	assert.Error(t, err)

	_, err = Flatten(nil, DefaultTableOptions())
	assert.Error(t, err)
}
