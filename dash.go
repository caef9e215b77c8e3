package curvekit

import "math"

// Dash describes the periodic dash effect applied to the sampled curve.
// A fragment at arc-length d is kept when mod(d, Period) falls in the
// trailing (1−Duty) share of the period, and discarded otherwise; the
// editor's fragment shader applies the same rule on the GPU.
type Dash struct {
	// Period is the length of one dash/gap cycle in curve units.
	Period float64

	// Duty is the fraction of each period that is a gap, in (0, 1).
	Duty float64
}

// DefaultDash is the editor's dash pattern: 40-unit period, half gap.
var DefaultDash = Dash{Period: 40, Duty: 0.5}

// Visible reports whether a point at cumulative arc-length dist is drawn
// under the dash pattern. A zero or negative Period means a solid line.
func (d Dash) Visible(dist float64) bool {
	if d.Period <= 0 {
		return true
	}
	return math.Mod(dist, d.Period) >= d.Period*d.Duty
}

// Segments splits a sample sequence into maximal visible runs, for
// renderers that draw dashes as separate polylines instead of discarding
// fragments. Each returned run is a subslice of samples; runs of length 1
// still carry a drawable point.
func (d Dash) Segments(samples []Sample) [][]Sample {
	var runs [][]Sample
	start := -1
	for i, s := range samples {
		if d.Visible(s.Dist) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, samples[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, samples[start:])
	}
	return runs
}
