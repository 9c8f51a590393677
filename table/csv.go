package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadCSV decodes a table from CSV. The first record is the header row; all
// cell values come back as strings, empty cells as nil.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("csv read header: %w", err)
	}

	t := New(header...)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv read row %d: %w", t.Len()+1, err)
		}
		row := Row{}
		for i, col := range header {
			if i < len(rec) && rec[i] != "" {
				row[col] = rec[i]
			}
		}
		t.Append(row)
	}
	return t, nil
}

// ReadCSVFile decodes a table from a CSV file on disk.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// WriteCSV encodes a table as CSV with one header row.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("csv write header: %w", err)
	}
	rec := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			rec[i] = String(row[col])
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("csv write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile encodes a table to a CSV file on disk.
func WriteCSVFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv %s: %w", path, err)
	}
	defer f.Close()
	return WriteCSV(f, t)
}
