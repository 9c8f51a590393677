package convert

import (
	"github.com/tracktools/trackconv/gpx"
	"github.com/tracktools/trackconv/table"
	"github.com/tracktools/trackconv/telemetry"
)

// AppendTelemetry emits one extension entry per catalogue field whose source
// column is configured and holds a non-null value in the row. Entries carry
// the telemetry namespace and are appended in catalogue declaration order,
// after any native attributes. The
// altitude field mirrors the native elevation so extension-only consumers
// get a unit-explicit copy.
func AppendTelemetry(p *gpx.Point, row table.Row, opts TrackOptions, elevation any) {
	for _, f := range telemetry.Catalogue {
		var v any
		if f.Name == telemetry.FieldAltitude {
			v = elevation
		} else {
			col := opts.fieldColumn(f.Name)
			if col == "" {
				continue
			}
			v = row[col]
		}
		if table.IsNull(v) {
			continue
		}
		p.AddNamespacedExtension(telemetry.Namespace, f.Tag, table.String(v))
	}
}
