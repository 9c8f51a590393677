// Package convert is the core point/row conversion engine.
//
// The document→table path flattens a parsed GPX document into one row per
// point. The column schema is the union of the standard point attributes and
// every vendor extension tag observed anywhere in the document, discovered
// with an explicit two-pass scan; columns that carry no data are pruned
// afterwards. The table→document path filters invalid rows, normalizes
// timestamps, and maps the telemetry catalogue onto namespaced extension
// entries per output point.
//
// Per-row problems are never fatal: a row without a position is dropped and
// an unparsable timestamp is nulled, with consolidated warnings logged once
// per conversion. Configuration and schema problems fail fast before any row
// is processed.
package convert
