package table

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNull(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"zero float", 0.0, false},
		{"false", false, false},
		{"string", "x", false},
		{"nil float ptr", (*float64)(nil), true},
		{"nil time ptr", (*time.Time)(nil), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNull(tt.v))
		})
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want float64
		ok   bool
	}{
		{"float64", 1.5, 1.5, true},
		{"int", 3, 3, true},
		{"numeric string", "87.5", 87.5, true},
		{"empty string", "", 0, false},
		{"junk string", "n/a", 0, false},
		{"nil", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Float(tt.v)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDropColumn(t *testing.T) {
	tbl := New("a", "b", "c")
	tbl.Append(Row{"a": "1", "b": "2", "c": "3"})
	tbl.DropColumn("b")

	assert.Equal(t, []string{"a", "c"}, tbl.Columns)
	_, present := tbl.Rows[0]["b"]
	assert.False(t, present)
}

func TestCSVRoundTrip(t *testing.T) {
	tbl := New("latitude", "longitude", "gear")
	tbl.Append(Row{"latitude": 34.707, "longitude": 33.022, "gear": "3"})
	tbl.Append(Row{"latitude": 34.708, "longitude": 33.023})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tbl))

	back, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"latitude", "longitude", "gear"}, back.Columns)
	require.Equal(t, 2, back.Len())
	assert.Equal(t, "34.707", back.Rows[0]["latitude"])
	assert.Equal(t, "3", back.Rows[0]["gear"])
	// Empty cell reads back as absent, not empty string.
	assert.Nil(t, back.Rows[1]["gear"])
}

func TestReadCSVEmptyInput(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, tbl.Len())
	assert.Empty(t, tbl.Columns)
}

func TestJSONRoundTrip(t *testing.T) {
	ts := time.Date(2025, 6, 15, 18, 24, 20, 0, time.UTC)
	tbl := New("time", "latitude")
	tbl.Append(Row{"time": ts, "latitude": 34.707})

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, tbl))
	assert.Contains(t, buf.String(), "2025-06-15T18:24:20Z")

	back, err := ReadJSON(&buf)
	require.NoError(t, err)
	require.Equal(t, 1, back.Len())
	lat, ok := Float(back.Rows[0]["latitude"])
	require.True(t, ok)
	assert.InDelta(t, 34.707, lat, 1e-9)
}

func TestXLSXRoundTrip(t *testing.T) {
	path := t.TempDir() + "/out.xlsx"
	ts := time.Date(2025, 6, 15, 18, 24, 20, 306000000, time.UTC)
	tbl := New("time", "latitude")
	tbl.Append(Row{"time": ts, "latitude": 34.707})

	require.NoError(t, WriteXLSXFile(path, tbl))

	back, err := ReadXLSXFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"time", "latitude"}, back.Columns)
	require.Equal(t, 1, back.Len())
	// Zone suffix is stripped on export.
	assert.Equal(t, "2025-06-15 18:24:20.306", back.Rows[0]["time"])
}
