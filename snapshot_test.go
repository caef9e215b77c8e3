package curvekit

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestSnapshot_Empty(t *testing.T) {
	b := NewBuilder()
	img := Snapshot(b, DefaultDash, 64, 64)

	if got := img.Bounds(); got != image.Rect(0, 0, 64, 64) {
		t.Fatalf("Bounds = %v, want 64x64", got)
	}
	// Everything is the clear color.
	bg := BackgroundColor.Color()
	wr, wg, wb, _ := bg.RGBA()
	for _, p := range []image.Point{{X: 0, Y: 0}, {X: 32, Y: 32}, {X: 63, Y: 63}} {
		r, g, bl, _ := img.At(p.X, p.Y).RGBA()
		if r != wr || g != wg || bl != wb {
			t.Fatalf("pixel %v = (%d,%d,%d), want clear color (%d,%d,%d)", p, r, g, bl, wr, wg, wb)
		}
	}
}

func TestSnapshot_DrawsControlPoints(t *testing.T) {
	b := NewBuilder()
	b.Append(Pt(32, 32))
	img := Snapshot(b, DefaultDash, 64, 64)

	r, g, bl, _ := img.At(32, 32).RGBA()
	cr, cg, cb, _ := ControlColor.Color().RGBA()
	if r != cr || g != cg || bl != cb {
		t.Fatalf("center pixel = (%d,%d,%d), want control color (%d,%d,%d)", r, g, bl, cr, cg, cb)
	}
}

func TestSnapshot_DrawsCurve(t *testing.T) {
	b := NewBuilder()
	b.SetQuality(16)
	b.Append(Pt(4, 50))
	b.Append(Pt(60, 50))

	img := Snapshot(b, Dash{}, 64, 64) // zero period: solid line

	// Somewhere along y≈50, away from the two control-point squares, the
	// curve color must appear.
	sr, sg, sb, _ := SampleColor.Color().RGBA()
	found := false
	for x := 16; x <= 48; x++ {
		r, g, bl, _ := img.At(x, 50).RGBA()
		if r == sr && g == sg && bl == sb {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("no curve-colored pixel found along the segment")
	}
}

func TestSavePNG(t *testing.T) {
	b := NewBuilder()
	b.Append(Pt(10, 10))
	b.Append(Pt(50, 30))
	img := Snapshot(b, DefaultDash, 64, 64)

	path := filepath.Join(t.TempDir(), "snap.png")
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("wrote empty PNG")
	}
}
