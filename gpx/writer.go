package gpx

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

const timeLayout = "2006-01-02T15:04:05.000Z"

// Marshal serializes a document to GPX 1.1 XML. Extension entries are
// written in the order they appear on each point.
func Marshal(d *Document) []byte {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<gpx version=\"1.1\" creator=\"")
	b.WriteString(xmlEscape(creatorOrDefault(d)))
	b.WriteString("\" xmlns=\"")
	b.WriteString(XMLNS)
	b.WriteString("\"")
	// Deterministic namespace order keeps output byte-stable across runs.
	prefixes := make([]string, 0, len(d.Namespaces))
	for p := range d.Namespaces {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	for _, p := range prefixes {
		b.WriteString(" xmlns:")
		b.WriteString(p)
		b.WriteString("=\"")
		b.WriteString(xmlEscape(d.Namespaces[p]))
		b.WriteString("\"")
	}
	b.WriteString(">\n")

	// Prefix lookup for namespaced extension entries. With two prefixes on
	// one URI the alphabetically first wins, matching the attribute order.
	prefixByURI := make(map[string]string, len(prefixes))
	for _, p := range prefixes {
		if _, ok := prefixByURI[d.Namespaces[p]]; !ok {
			prefixByURI[d.Namespaces[p]] = p
		}
	}

	for _, t := range d.Tracks {
		writeTrackXML(&b, t, prefixByURI)
	}

	b.WriteString("</gpx>\n")
	return []byte(b.String())
}

func writeTrackXML(b *strings.Builder, t Track, prefixByURI map[string]string) {
	b.WriteString("<trk>")
	if t.Name != "" {
		b.WriteString("<name>")
		b.WriteString(xmlEscape(t.Name))
		b.WriteString("</name>")
	}
	b.WriteString("\n")
	for _, s := range t.Segments {
		b.WriteString("<trkseg>\n")
		for _, p := range s.Points {
			writePointXML(b, p, prefixByURI)
		}
		b.WriteString("</trkseg>\n")
	}
	b.WriteString("</trk>\n")
}

func writePointXML(b *strings.Builder, p Point, prefixByURI map[string]string) {
	fmt.Fprintf(b, "<trkpt lat=\"%s\" lon=\"%s\">",
		formatFloat(p.Latitude), formatFloat(p.Longitude))
	if p.Elevation != nil {
		b.WriteString("<ele>")
		b.WriteString(formatFloat(*p.Elevation))
		b.WriteString("</ele>")
	}
	if p.Time != nil {
		b.WriteString("<time>")
		b.WriteString(p.Time.UTC().Format(timeLayout))
		b.WriteString("</time>")
	}
	if p.Speed != nil {
		b.WriteString("<speed>")
		b.WriteString(formatFloat(*p.Speed))
		b.WriteString("</speed>")
	}
	if p.HorizontalDilution != nil {
		b.WriteString("<hdop>")
		b.WriteString(formatFloat(*p.HorizontalDilution))
		b.WriteString("</hdop>")
	}
	if p.VerticalDilution != nil {
		b.WriteString("<vdop>")
		b.WriteString(formatFloat(*p.VerticalDilution))
		b.WriteString("</vdop>")
	}
	if p.PositionDilution != nil {
		b.WriteString("<pdop>")
		b.WriteString(formatFloat(*p.PositionDilution))
		b.WriteString("</pdop>")
	}
	if p.Satellites != nil {
		b.WriteString("<sat>")
		b.WriteString(strconv.Itoa(*p.Satellites))
		b.WriteString("</sat>")
	}
	writeOptionalXML(b, "name", p.Name)
	writeOptionalXML(b, "cmt", p.Comment)
	writeOptionalXML(b, "sym", p.Symbol)
	writeOptionalXML(b, "type", p.Type)
	writeOptionalXML(b, "src", p.Source)
	if len(p.Extensions) > 0 {
		b.WriteString("<extensions>")
		for _, e := range p.Extensions {
			name := e.Tag
			var xmlnsAttr string
			if e.Namespace != "" {
				if prefix, ok := prefixByURI[e.Namespace]; ok {
					name = prefix + ":" + e.Tag
				} else {
					// Unregistered URI: declare it inline so the
					// element still lands in the right namespace.
					xmlnsAttr = " xmlns=\"" + xmlEscape(e.Namespace) + "\""
				}
			}
			b.WriteString("<")
			b.WriteString(name)
			b.WriteString(xmlnsAttr)
			b.WriteString(">")
			b.WriteString(xmlEscape(e.Text))
			b.WriteString("</")
			b.WriteString(name)
			b.WriteString(">")
		}
		b.WriteString("</extensions>")
	}
	b.WriteString("</trkpt>\n")
}

func writeOptionalXML(b *strings.Builder, tag, val string) {
	if val == "" {
		return
	}
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(">")
	b.WriteString(xmlEscape(val))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
}

// Write serializes a document to w.
func Write(w io.Writer, d *Document) error {
	_, err := w.Write(Marshal(d))
	return err
}

// WriteFile serializes a document to a file on disk.
func WriteFile(path string, d *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gpx %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, d)
}

func creatorOrDefault(d *Document) string {
	if d.Creator != "" {
		return d.Creator
	}
	return Creator
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func xmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}
