// Package gpx reads and writes GPX 1.1 track documents.
//
// The document model is a tree of tracks, segments, and points. Each point
// carries the standard GPX attributes (position, elevation, time, dilution
// values, and so on) plus an ordered list of vendor extension entries, each
// a (tag, text) pair. Extension tags are kept as local names; the namespace
// they belong to is registered once per document.
//
// Parsing uses encoding/xml. Serialization writes elements directly in
// document order, which keeps extension entry order exactly as appended.
package gpx
