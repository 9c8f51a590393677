// Package table holds the tabular interchange form used between GPX
// documents and flat files.
//
// A Table is an ordered sequence of rows sharing one column schema. Cell
// values are held as any of string, float64, int, bool, time.Time, or nil
// for absent. The CSV, XLSX, and JSON codecs in this package only provide
// read-row/write-row semantics; all conversion logic lives in the convert
// package.
package table
