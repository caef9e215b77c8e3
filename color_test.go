package curvekit

import "testing"

func TestColor_RGBA8(t *testing.T) {
	tests := []struct {
		name       string
		c          Color
		r, g, b, a uint8
	}{
		{name: "white", c: RGB(1, 1, 1), r: 255, g: 255, b: 255, a: 255},
		{name: "black", c: RGB(0, 0, 0), a: 255},
		{name: "sample green", c: SampleColor, r: 180, g: 255, b: 180, a: 255},
		{name: "clamps above one", c: RGB(2, 0, 0), r: 255, a: 255},
		{name: "clamps below zero", c: RGB(-1, 0, 0), a: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA8()
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("RGBA8() = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}
