package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tracktools/trackconv/gpx"
)

func docFromPoints(points ...gpx.Point) *gpx.Document {
	doc := gpx.NewDocument()
	doc.Tracks = []gpx.Track{{Segments: []gpx.Segment{{Points: points}}}}
	return doc
}

func TestCollectExtensionTags(t *testing.T) {
	p1 := gpx.Point{Latitude: 1, Longitude: 2}
	p1.AddExtension("rpm", "4000")
	p1.AddExtension("gear", "3")
	p2 := gpx.Point{Latitude: 1, Longitude: 2}
	p2.AddExtension("gear", "4")
	p2.AddExtension("engine_temp_c", "87")

	tags := CollectExtensionTags(docFromPoints(p1, p2))
	assert.Equal(t, []string{"rpm", "gear", "engine_temp_c"}, tags,
		"distinct tags in first-seen order")
}

func TestCollectExtensionTagsAcrossTracks(t *testing.T) {
	p1 := gpx.Point{}
	p1.AddExtension("rpm", "1")
	p2 := gpx.Point{}
	p2.AddExtension("vin", "WB10123")

	doc := gpx.NewDocument()
	doc.Tracks = []gpx.Track{
		{Segments: []gpx.Segment{{Points: []gpx.Point{p1}}}},
		{Segments: []gpx.Segment{{Points: []gpx.Point{p2}}}},
	}
	assert.Equal(t, []string{"rpm", "vin"}, CollectExtensionTags(doc))
}

func TestCollectExtensionTagsEmptyDocument(t *testing.T) {
	assert.Empty(t, CollectExtensionTags(gpx.NewDocument()))
}
