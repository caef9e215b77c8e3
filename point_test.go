package curvekit

import (
	"math"
	"testing"
)

const epsilon = 1e-12

func pointsEqual(p, q Point, eps float64) bool {
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps
}

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)

	if got := p.Add(q); !pointsEqual(got, Pt(4, 2), epsilon) {
		t.Errorf("Add = %v, want (4,2)", got)
	}
	if got := p.Sub(q); !pointsEqual(got, Pt(2, 6), epsilon) {
		t.Errorf("Sub = %v, want (2,6)", got)
	}
	if got := p.Mul(2); !pointsEqual(got, Pt(6, 8), epsilon) {
		t.Errorf("Mul = %v, want (6,8)", got)
	}
	if got := p.Div(2); !pointsEqual(got, Pt(1.5, 2), epsilon) {
		t.Errorf("Div = %v, want (1.5,2)", got)
	}
}

func TestPoint_Lerp(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		t    float64
		want Point
	}{
		{name: "t=0 is start", p: Pt(1, 2), q: Pt(5, 6), t: 0, want: Pt(1, 2)},
		{name: "t=1 is end", p: Pt(1, 2), q: Pt(5, 6), t: 1, want: Pt(5, 6)},
		{name: "midpoint", p: Pt(0, 0), q: Pt(10, 20), t: 0.5, want: Pt(5, 10)},
		{name: "quarter", p: Pt(0, 0), q: Pt(8, 4), t: 0.25, want: Pt(2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Lerp(tt.q, tt.t); !pointsEqual(got, tt.want, epsilon) {
				t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestPoint_LengthDistance(t *testing.T) {
	if got := Pt(3, 4).Length(); math.Abs(got-5) > epsilon {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := Pt(1, 1).Distance(Pt(4, 5)); math.Abs(got-5) > epsilon {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPoint_DotCross(t *testing.T) {
	p := Pt(2, 3)
	q := Pt(4, -1)
	if got := p.Dot(q); got != 5 {
		t.Errorf("Dot = %v, want 5", got)
	}
	if got := p.Cross(q); got != -14 {
		t.Errorf("Cross = %v, want -14", got)
	}
}
