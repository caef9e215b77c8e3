package curvekit

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"
)

// BackgroundColor is the clear color shared by the editor demo and the
// software snapshot.
var BackgroundColor = RGB(0.3, 0.3, 0.3)

// Stroke widths matching the editor's glLineWidth(5) / glPointSize(10).
const (
	snapshotLineWidth = 5
	snapshotPointSize = 10
)

// Snapshot renders the editor scene headlessly: the control polygon and
// its points in the control-point color, and the dashed curve split into
// visible runs via dash.Segments. It needs no GPU and is what the editor's
// screenshot key writes out.
func Snapshot(b *Builder, dash Dash, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(BackgroundColor.Color()), image.Point{}, draw.Src)

	pts := b.Points()
	if len(pts) > 0 {
		r := vector.NewRasterizer(width, height)
		for i := 0; i+1 < len(pts); i++ {
			strokeSegment(r, pts[i], pts[i+1], snapshotLineWidth)
		}
		for _, p := range pts {
			fillSquare(r, p, snapshotPointSize)
		}
		r.Draw(img, img.Bounds(), image.NewUniform(ControlColor.Color()), image.Point{})
	}

	if samples := b.Samples(); len(samples) > 1 {
		r := vector.NewRasterizer(width, height)
		for _, run := range dash.Segments(samples) {
			for i := 0; i+1 < len(run); i++ {
				strokeSegment(r, run[i].Pos, run[i+1].Pos, snapshotLineWidth)
			}
		}
		r.Draw(img, img.Bounds(), image.NewUniform(SampleColor.Color()), image.Point{})
	}

	return img
}

// SavePNG writes an image to a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("curvekit: save png: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("curvekit: encode png: %w", err)
	}
	return f.Close()
}

// strokeSegment appends the quad covering a line segment of the given
// width to the rasterizer's path.
func strokeSegment(r *vector.Rasterizer, p0, p1 Point, width float64) {
	d := p1.Sub(p0)
	l := d.Length()
	if l == 0 {
		return
	}
	// Perpendicular half-width offset.
	n := Pt(-d.Y/l, d.X/l).Mul(width / 2)

	a := p0.Add(n)
	b := p1.Add(n)
	c := p1.Sub(n)
	e := p0.Sub(n)
	r.MoveTo(float32(a.X), float32(a.Y))
	r.LineTo(float32(b.X), float32(b.Y))
	r.LineTo(float32(c.X), float32(c.Y))
	r.LineTo(float32(e.X), float32(e.Y))
	r.ClosePath()
}

// fillSquare appends an axis-aligned square centered on p, matching how GL
// renders an unrounded point sprite.
func fillSquare(r *vector.Rasterizer, p Point, size float64) {
	h := size / 2
	r.MoveTo(float32(p.X-h), float32(p.Y-h))
	r.LineTo(float32(p.X+h), float32(p.Y-h))
	r.LineTo(float32(p.X+h), float32(p.Y+h))
	r.LineTo(float32(p.X-h), float32(p.Y+h))
	r.ClosePath()
}
