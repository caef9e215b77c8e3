package curvekit

// Sample is one derived point on the approximated curve. Dist is the
// cumulative arc-length along the sampled polyline from the first sample to
// this one; the first sample's Dist is always 0. Samples have no identity
// of their own: every rebuild replaces the whole sequence.
type Sample struct {
	Pos   Point
	Color Color
	Dist  float64
}

// Builder derives a renderable sample sequence from an ordered control-point
// sequence and a subdivision quality. Control points are appended by user
// "add" actions and removed strictly last-in-first-out; quality is a
// positive sample-count multiplier (N = quality × len(points)).
//
// Builder is a pure function of its two inputs: any mutation triggers a
// full recompute of the samples, with no incremental state carried between
// rebuilds. It is not safe for concurrent use.
type Builder struct {
	points  []Point
	quality int
	samples []Sample
	color   Color
}

// DefaultQuality is the initial subdivision quality of a new Builder,
// matching the editor demo's startup value.
const DefaultQuality = 4

// NewBuilder returns a Builder with no control points and DefaultQuality.
func NewBuilder() *Builder {
	return &Builder{
		quality: DefaultQuality,
		color:   SampleColor,
	}
}

// Append adds a control point to the end of the sequence and rebuilds the
// samples.
func (b *Builder) Append(p Point) {
	b.points = append(b.points, p)
	b.rebuild()
}

// RemoveLast removes the most recently added control point and rebuilds.
// It is a no-op when the sequence is empty.
func (b *Builder) RemoveLast() {
	if len(b.points) == 0 {
		return
	}
	b.points = b.points[:len(b.points)-1]
	b.rebuild()
}

// Quality returns the current subdivision quality.
func (b *Builder) Quality() int {
	return b.quality
}

// SetQuality sets the subdivision quality and rebuilds. Values below 1 are
// rejected: the quality keeps its current value and no rebuild happens.
func (b *Builder) SetQuality(q int) {
	if q < 1 || q == b.quality {
		return
	}
	b.quality = q
	b.rebuild()
}

// IncQuality raises the quality by one. There is no upper bound; callers
// are expected to guard against runaway sample counts.
func (b *Builder) IncQuality() {
	b.SetQuality(b.quality + 1)
}

// DecQuality lowers the quality by one, down to a floor of 1.
func (b *Builder) DecQuality() {
	b.SetQuality(b.quality - 1)
}

// Points returns the control-point sequence. The slice is owned by the
// Builder; callers must not mutate it.
func (b *Builder) Points() []Point {
	return b.points
}

// Samples returns the current sample sequence: quality × len(points)
// samples whenever that product exceeds one, empty otherwise. The slice is
// owned by the Builder and replaced wholesale on every rebuild.
func (b *Builder) Samples() []Sample {
	return b.samples
}

// rebuild recomputes the sample sequence from scratch. N = quality ×
// len(points) samples at parameters i/(N-1), each annotated with the
// cumulative polyline arc-length. N <= 1 yields empty output: a single
// sample has no segment to draw and its parameter would divide by zero.
func (b *Builder) rebuild() {
	n := b.quality * len(b.points)
	if n <= 1 {
		b.samples = b.samples[:0]
		return
	}

	samples := b.samples[:0]
	if cap(samples) < n {
		samples = make([]Sample, 0, n)
	}

	var dist float64
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		pos := Evaluate(b.points, t)
		if i > 0 {
			dist += samples[i-1].Pos.Distance(pos)
		}
		samples = append(samples, Sample{Pos: pos, Color: b.color, Dist: dist})
	}
	b.samples = samples

	Logger().Debug("curve rebuilt",
		"points", len(b.points),
		"quality", b.quality,
		"samples", n,
		"arclen", dist)
}
