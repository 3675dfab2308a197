package timeline

// Geometry converts between pixel coordinates and timeline seconds for one
// rendered timeline view. The scale is shared by every track row so clips on
// different tracks line up vertically when they share a timeline position.
type Geometry struct {
	ContainerWidth   int     // Measured width of the timeline area, pixels
	LabelColumnWidth int     // Fixed track-label gutter on the left, pixels
	SceneDuration    float64 // Seconds
}

// PixelsPerSecond returns the horizontal scale. The duration is floored at
// one second so an empty scene still renders with a finite scale.
func (g Geometry) PixelsPerSecond() float64 {
	dur := g.SceneDuration
	if dur < 1 {
		dur = 1
	}
	return float64(g.ContainerWidth-g.LabelColumnWidth) / dur
}

// TimeToPixels converts a timeline position to a pixel offset
func (g Geometry) TimeToPixels(t float64) float64 {
	return t * g.PixelsPerSecond()
}

// PixelsToTime converts a pixel offset to a timeline position
func (g Geometry) PixelsToTime(px float64) float64 {
	pps := g.PixelsPerSecond()
	if pps <= 0 {
		return 0
	}
	return px / pps
}

// GridInterval picks the time-axis marker spacing for a scene duration
func GridInterval(sceneDuration float64) float64 {
	switch {
	case sceneDuration > 60:
		return 15
	case sceneDuration > 30:
		return 10
	case sceneDuration > 10:
		return 5
	default:
		return 2
	}
}

// GridMarkers returns marker positions from 0 to sceneDuration inclusive at
// the bucketed interval.
func GridMarkers(sceneDuration float64) []float64 {
	interval := GridInterval(sceneDuration)
	var marks []float64
	for i := 0; ; i++ {
		t := float64(i) * interval
		if t > sceneDuration {
			break
		}
		marks = append(marks, t)
	}
	return marks
}
