package table

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// ReadJSON decodes a row-oriented JSON array into a table. Column order
// follows first appearance across rows, since JSON objects carry no order of
// their own.
func ReadJSON(r io.Reader) (*Table, error) {
	var rows []map[string]any
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}

	t := New()
	for _, raw := range rows {
		row := Row{}
		for k, v := range raw {
			if v == nil {
				continue
			}
			t.AddColumn(k)
			row[k] = v
		}
		t.Append(row)
	}
	return t, nil
}

// ReadJSONFile decodes a row-oriented JSON file into a table.
func ReadJSONFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open json %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes a table as a row-oriented JSON array. Timestamps are
// rendered as ISO-8601 strings.
func WriteJSON(w io.Writer, t *Table) error {
	rows := make([]map[string]any, 0, t.Len())
	for _, row := range t.Rows {
		obj := map[string]any{}
		for _, col := range t.Columns {
			v := row[col]
			if ts, ok := Time(v); ok {
				obj[col] = ts.Format(time.RFC3339Nano)
				continue
			}
			if v == nil {
				obj[col] = nil
				continue
			}
			obj[col] = v
		}
		rows = append(rows, obj)
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// WriteJSONFile encodes a table to a row-oriented JSON file.
func WriteJSONFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(f, t)
}
