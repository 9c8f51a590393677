package gpx

import "time"

// Creator identifies generated documents in the gpx root element.
const Creator = "trackconv"

// XMLNS is the GPX 1.1 default namespace.
const XMLNS = "http://www.topografix.com/GPX/1/1"

// Extension is one vendor extension entry on a point. Tag is the element's
// local name; Text is its character data; Namespace is the element's
// namespace URI, empty for elements in the GPX default namespace. A tag may
// repeat within a point.
type Extension struct {
	Tag       string
	Text      string
	Namespace string
}

// Point is a single track point.
type Point struct {
	Latitude  float64
	Longitude float64

	Elevation *float64
	Time      *time.Time

	Speed              *float64
	HorizontalDilution *float64
	VerticalDilution   *float64
	PositionDilution   *float64
	Satellites         *int

	Name    string
	Comment string
	Symbol  string
	Type    string
	Source  string

	Extensions []Extension
}

// Segment is an ordered run of points.
type Segment struct {
	Points []Point
}

// Track is a named sequence of segments.
type Track struct {
	Name     string
	Segments []Segment
}

// Document is a parsed GPX file. Namespaces maps prefix to URI for any
// non-default namespaces registered on the root element.
type Document struct {
	Creator    string
	Namespaces map[string]string
	Tracks     []Track
}

// NewDocument returns an empty document with the trackconv creator string.
func NewDocument() *Document {
	return &Document{Creator: Creator, Namespaces: map[string]string{}}
}

// RegisterNamespace records a prefix/URI pair for emission on the root
// element.
func (d *Document) RegisterNamespace(prefix, uri string) {
	if d.Namespaces == nil {
		d.Namespaces = map[string]string{}
	}
	d.Namespaces[prefix] = uri
}

// EachPoint visits every point of every segment of every track, in document
// order.
func (d *Document) EachPoint(fn func(p *Point)) {
	for ti := range d.Tracks {
		for si := range d.Tracks[ti].Segments {
			seg := &d.Tracks[ti].Segments[si]
			for pi := range seg.Points {
				fn(&seg.Points[pi])
			}
		}
	}
}

// PointCount returns the total number of points across all tracks.
func (d *Document) PointCount() int {
	n := 0
	d.EachPoint(func(*Point) { n++ })
	return n
}

// LastExtension returns the text of the last extension entry with the given
// tag, or false when the point has none. Later entries win over earlier ones
// with the same tag.
func (p *Point) LastExtension(tag string) (string, bool) {
	for i := len(p.Extensions) - 1; i >= 0; i-- {
		if p.Extensions[i].Tag == tag {
			return p.Extensions[i].Text, true
		}
	}
	return "", false
}

// AddExtension appends one extension entry in the default namespace.
func (p *Point) AddExtension(tag, text string) {
	p.Extensions = append(p.Extensions, Extension{Tag: tag, Text: text})
}

// AddNamespacedExtension appends one extension entry carrying a namespace
// URI. The document must register a prefix for the URI for the entry to be
// emitted in prefixed form.
func (p *Point) AddNamespacedExtension(ns, tag, text string) {
	p.Extensions = append(p.Extensions, Extension{Tag: tag, Text: text, Namespace: ns})
}
