package gpx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"time"
)

type xmlGPX struct {
	XMLName xml.Name   `xml:"gpx"`
	Creator string     `xml:"creator,attr"`
	Attrs   []xml.Attr `xml:",any,attr"`
	Tracks  []xmlTrk   `xml:"trk"`
}

type xmlTrk struct {
	Name     string      `xml:"name"`
	Segments []xmlTrkseg `xml:"trkseg"`
}

type xmlTrkseg struct {
	Points []xmlTrkpt `xml:"trkpt"`
}

type xmlTrkpt struct {
	Lat  float64  `xml:"lat,attr"`
	Lon  float64  `xml:"lon,attr"`
	Ele  *float64 `xml:"ele"`
	Time string   `xml:"time"`

	Speed *float64 `xml:"speed"`
	Hdop  *float64 `xml:"hdop"`
	Vdop  *float64 `xml:"vdop"`
	Pdop  *float64 `xml:"pdop"`
	Sat   *int     `xml:"sat"`

	Name    string `xml:"name"`
	Comment string `xml:"cmt"`
	Symbol  string `xml:"sym"`
	Type    string `xml:"type"`
	Source  string `xml:"src"`

	Extensions *xmlExtensions `xml:"extensions"`
}

type xmlExtensions struct {
	Elements []xmlAnyElement `xml:",any"`
}

type xmlAnyElement struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

// Point times in the wild are not always strict RFC 3339; some writers emit
// zone-less stamps. A time that matches no layout is dropped from the point
// rather than failing the document.
var pointTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func parsePointTime(s string) (time.Time, bool) {
	for _, layout := range pointTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Parse decodes a GPX document from r.
func Parse(r io.Reader) (*Document, error) {
	var raw xmlGPX
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse gpx: %w", err)
	}

	doc := &Document{Creator: raw.Creator, Namespaces: map[string]string{}}
	for _, a := range raw.Attrs {
		if a.Name.Space == "xmlns" {
			doc.Namespaces[a.Name.Local] = a.Value
		}
	}

	for _, t := range raw.Tracks {
		track := Track{Name: t.Name}
		for _, s := range t.Segments {
			seg := Segment{Points: make([]Point, 0, len(s.Points))}
			for _, rp := range s.Points {
				p := Point{
					Latitude:           rp.Lat,
					Longitude:          rp.Lon,
					Elevation:          rp.Ele,
					Speed:              rp.Speed,
					HorizontalDilution: rp.Hdop,
					VerticalDilution:   rp.Vdop,
					PositionDilution:   rp.Pdop,
					Satellites:         rp.Sat,
					Name:               rp.Name,
					Comment:            rp.Comment,
					Symbol:             rp.Symbol,
					Type:               rp.Type,
					Source:             rp.Source,
				}
				if rp.Time != "" {
					if ts, ok := parsePointTime(rp.Time); ok {
						p.Time = &ts
					}
				}
				if rp.Extensions != nil {
					for _, el := range rp.Extensions.Elements {
						ext := Extension{Tag: el.XMLName.Local, Text: el.Text}
						if el.XMLName.Space != "" && el.XMLName.Space != XMLNS {
							ext.Namespace = el.XMLName.Space
						}
						p.Extensions = append(p.Extensions, ext)
					}
				}
				seg.Points = append(seg.Points, p)
			}
			track.Segments = append(track.Segments, seg)
		}
		doc.Tracks = append(doc.Tracks, track)
	}
	return doc, nil
}

// ParseFile decodes a GPX document from a file on disk.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gpx %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}
