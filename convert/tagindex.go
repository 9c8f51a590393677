package convert

import "github.com/tracktools/trackconv/gpx"

// CollectExtensionTags scans every extension entry of every point and
// returns the distinct tags in first-seen order. First-seen order makes the
// derived column schema deterministic for a given document.
func CollectExtensionTags(doc *gpx.Document) []string {
	seen := map[string]bool{}
	var tags []string
	doc.EachPoint(func(p *gpx.Point) {
		for _, e := range p.Extensions {
			if !seen[e.Tag] {
				seen[e.Tag] = true
				tags = append(tags, e.Tag)
			}
		}
	})
	return tags
}
