package husl

import (
	"math"
	"testing"
)

func TestMaxChromaPositiveFinite(t *testing.T) {
	for l := 1.0; l < 100; l += 7 {
		for h := 0.0; h < 360; h += 15 {
			c := maxChroma(l, h)
			if !(c > 0) || math.IsInf(c, 1) {
				t.Fatalf("maxChroma(%v, %v) = %v, want positive finite", l, h, c)
			}
			if c > 1000 {
				t.Errorf("maxChroma(%v, %v) = %v, implausibly large", l, h, c)
			}
		}
	}
}

// TestMaxChromaOnBoundary checks that a colour with chroma equal to
// maxChroma sits on a face of the RGB cube: all linear channels are in
// range and at least one of them is at a limit.
func TestMaxChromaOnBoundary(t *testing.T) {
	// the folded boundary constants are published with five decimals,
	// which limits how exactly the face is hit
	const eps = 0.01
	for l := 5.0; l < 100; l += 10 {
		for h := 0.0; h < 360; h += 30 {
			lch := LCh{L: l, C: maxChroma(l, h), H: h}
			lin := lch.Luv().XYZ().LinearRGB()

			onFace := false
			for _, ch := range []float64{lin.R, lin.G, lin.B} {
				if ch < -eps || ch > 1+eps {
					t.Errorf("L=%v H=%v: channel %v outside [0, 1]", l, h, ch)
				}
				if math.Abs(ch) < eps || math.Abs(ch-1) < eps {
					onFace = true
				}
			}
			if !onFace {
				t.Errorf("L=%v H=%v: %+v not on a cube face", l, h, lin)
			}
		}
	}
}

func TestMaxChromaHuePeriodic(t *testing.T) {
	for l := 10.0; l < 100; l += 20 {
		a := maxChroma(l, 0)
		b := maxChroma(l, 360)
		if math.Abs(a-b) > 1e-9*a {
			t.Errorf("L=%v: maxChroma differs at 0 and 360 degrees: %v vs %v", l, a, b)
		}
	}
}

func TestLChExtremesGuarded(t *testing.T) {
	tests := []struct {
		name string
		in   LCh
	}{
		{"black", LCh{L: 0, C: math.NaN(), H: math.NaN()}},
		{"white", LCh{L: 100, C: 0.04, H: 271}},
		{"overshoot", LCh{L: 100.0000001, C: 1, H: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := tt.in.HUSL()
			if h != 0 || s != 0 {
				t.Errorf("hue, saturation = %v, %v, want 0, 0", h, s)
			}
			if l < 0 || l > 1 {
				t.Errorf("lightness = %v, want in [0, 1]", l)
			}
			if math.IsNaN(l) {
				t.Errorf("lightness is NaN")
			}
		})
	}
}

func TestColorLChExtremes(t *testing.T) {
	// at the lightness extremes the forward direction must not call
	// into the degenerate chroma scale
	for _, l := range []float64{0, 1} {
		lch := New(0.5, 1, l, 1).LCh()
		if lch.C != 0 {
			t.Errorf("lightness %v: C = %v, want 0", l, lch.C)
		}
		if math.IsNaN(lch.L) {
			t.Errorf("lightness %v: L is NaN", l)
		}
	}
}
