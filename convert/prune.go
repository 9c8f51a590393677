package convert

import "github.com/tracktools/trackconv/table"

// PruneEmptyColumns drops every column whose value is null in all rows.
//
// Null means nil or the empty string. Numeric zero and boolean false are
// kept: a throttle column that reads 0 the whole ride is data, not absence.
// This is deliberately stricter than treating all falsy values as empty,
// which would silently drop such columns.
func PruneEmptyColumns(t *table.Table) {
	for _, col := range append([]string(nil), t.Columns...) {
		hasData := false
		for _, row := range t.Rows {
			if !table.IsNull(row[col]) {
				hasData = true
				break
			}
		}
		if !hasData {
			t.DropColumn(col)
		}
	}
}
