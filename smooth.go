package trackconv

import (
	"github.com/tracktools/trackconv/gpx"
	"github.com/tracktools/trackconv/spline"
)

// SmoothTrack resamples every segment with at least two points into samples
// evenly spaced points on a B-spline through the original positions.
// Elevation joins the control vector only when every point in the segment
// has one. Point times and telemetry do not survive resampling; the result
// is a pure geometry track.
func SmoothTrack(doc *gpx.Document, samples, degree int, closed bool) error {
	for ti := range doc.Tracks {
		for si := range doc.Tracks[ti].Segments {
			seg := &doc.Tracks[ti].Segments[si]
			if len(seg.Points) < 2 {
				continue
			}
			if err := smoothSegment(seg, samples, degree, closed); err != nil {
				return err
			}
		}
	}
	return nil
}

func smoothSegment(seg *gpx.Segment, samples, degree int, closed bool) error {
	withEle := true
	for _, p := range seg.Points {
		if p.Elevation == nil {
			withEle = false
			break
		}
	}

	cv := make([][]float64, len(seg.Points))
	for i, p := range seg.Points {
		if withEle {
			cv[i] = []float64{p.Longitude, p.Latitude, *p.Elevation}
		} else {
			cv[i] = []float64{p.Longitude, p.Latitude}
		}
	}

	out, err := spline.Resample(cv, samples, degree, closed)
	if err != nil {
		return err
	}

	points := make([]gpx.Point, len(out))
	for i, s := range out {
		points[i] = gpx.Point{Longitude: s[0], Latitude: s[1]}
		if withEle {
			ele := s[2]
			points[i].Elevation = &ele
		}
	}
	seg.Points = points
	return nil
}
