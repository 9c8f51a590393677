// Package trackconv converts GPX track documents with vendor telemetry
// extensions to and from flat tabular files, in both directions.
//
// # Overview
//
// The document→table path flattens every track point into one row whose
// columns are the standard point attributes plus every extension tag found
// anywhere in the document; columns that carry no data are pruned. The
// table→document path maps a fixed telemetry catalogue of source columns
// onto namespaced extension elements, dropping rows without a usable
// position and nulling unparsable timestamps.
//
// # Usage
//
// File to file:
//
//	conv, err := trackconv.New("ride.gpx")
//	if err != nil { ... }
//	err = conv.GPXToCSV("ride.csv", convert.DefaultTableOptions())
//
// The reverse direction with the built-in WunderLINQ TripLog profile:
//
//	profile := config.WunderLINQ()
//	opts, _ := profile.TrackOptions()
//	conv, _ := trackconv.New("triplog.csv")
//	err = conv.CSVToGPX("triplog.gpx", opts)
//
// In-memory conversion lives in the convert package; the gpx and table
// packages hold the document and tabular codecs.
package trackconv
