package table

import (
	"fmt"
	"strconv"
	"time"
)

// Row maps column name to cell value. A missing key and an explicit nil both
// mean "absent".
type Row map[string]any

// Table is an ordered sequence of rows sharing one column schema.
type Table struct {
	Columns []string
	Rows    []Row
}

// New returns an empty table with the given column schema.
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// HasColumn reports whether the schema contains the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column to the schema unless it is already present.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// DropColumn removes a column from the schema and from every row.
func (t *Table) DropColumn(name string) {
	cols := t.Columns[:0]
	for _, c := range t.Columns {
		if c != name {
			cols = append(cols, c)
		}
	}
	t.Columns = cols
	for _, r := range t.Rows {
		delete(r, name)
	}
}

// Append adds one row.
func (t *Table) Append(r Row) {
	t.Rows = append(t.Rows, r)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// IsNull reports whether a cell value carries no data: nil or the empty
// string. Numeric zero and boolean false are data.
func IsNull(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case *float64:
		return x == nil
	case *time.Time:
		return x == nil
	}
	return false
}

// Float coerces a cell value to float64. Strings are parsed; absent or
// unparsable values report false.
func Float(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		if x == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// String renders a cell value the way it is written to files: floats without
// trailing zeros, times in RFC 3339, absent values as the empty string.
func String(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case *time.Time:
		if x == nil {
			return ""
		}
		return x.Format(time.RFC3339Nano)
	}
	return fmt.Sprintf("%v", v)
}

// Time returns a cell value as a time.Time when it holds one.
func Time(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case *time.Time:
		if x != nil {
			return *x, true
		}
	}
	return time.Time{}, false
}
