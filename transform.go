// seehuhn.de/go/husl - convert colours between sRGB and HUSL
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package husl

import "math"

// Reference white used by the HUSL pipeline. refU and refV are the
// u'v' chromaticity of the D65-ish white point; together with the
// matrices below and the gamut constants in gamut.go they form a fixed
// numeric contract and must not be re-derived.
const (
	refY = 1.0
	refU = 0.19784
	refV = 0.46834

	// CIE L* switchover point and near-black slope
	labEpsilon = 0.008856
	labKappa   = 903.3
)

// rgbToXYZ converts linear sRGB to CIE XYZ.
var rgbToXYZ = [3][3]float64{
	{0.4124, 0.3576, 0.1805},
	{0.2126, 0.7152, 0.0722},
	{0.0193, 0.1192, 0.9505},
}

// xyzToRGB converts CIE XYZ to linear sRGB. Its rows also drive the
// gamut boundary search in maxChroma.
var xyzToRGB = [3][3]float64{
	{3.2406, -1.5372, -0.4986},
	{-0.9689, 1.8758, 0.0415},
	{0.0557, -0.2040, 1.0570},
}

// LinearRGB is a colour in gamma-expanded (linear light) sRGB
// coordinates. Channel values may leave [0, 1] transiently during
// conversion; they are clamped when packing to bytes.
type LinearRGB struct {
	R, G, B float64
}

// XYZ is a colour in CIE 1931 XYZ coordinates.
type XYZ struct {
	X, Y, Z float64
}

// Luv is a colour in CIE 1976 L*u*v* coordinates, with L in [0, 100].
type Luv struct {
	L, U, V float64
}

// LCh is [Luv] in polar coordinates: chroma C and hue angle H in
// degrees within [0, 360).
type LCh struct {
	L, C, H float64
}

func dot(m [3]float64, a, b, c float64) float64 {
	return m[0]*a + m[1]*b + m[2]*c
}

// XYZ converts linear sRGB to CIE XYZ.
func (c LinearRGB) XYZ() XYZ {
	return XYZ{
		X: dot(rgbToXYZ[0], c.R, c.G, c.B),
		Y: dot(rgbToXYZ[1], c.R, c.G, c.B),
		Z: dot(rgbToXYZ[2], c.R, c.G, c.B),
	}
}

// LinearRGB converts CIE XYZ to linear sRGB.
func (c XYZ) LinearRGB() LinearRGB {
	return LinearRGB{
		R: dot(xyzToRGB[0], c.X, c.Y, c.Z),
		G: dot(xyzToRGB[1], c.X, c.Y, c.Z),
		B: dot(xyzToRGB[2], c.X, c.Y, c.Z),
	}
}

// Luv converts CIE XYZ to CIE L*u*v*.
//
// For pure black the u'v' chromaticity is undefined (0/0) and U and V
// come out as NaN; [FromRGB] sanitises this at the pipeline boundary.
func (c XYZ) Luv() Luv {
	denom := c.X + 15*c.Y + 3*c.Z
	varU := 4 * c.X / denom
	varV := 9 * c.Y / denom
	l := 116*labF(c.Y/refY) - 16
	return Luv{
		L: l,
		U: 13 * l * (varU - refU),
		V: 13 * l * (varV - refV),
	}
}

// XYZ converts CIE L*u*v* back to CIE XYZ.
func (c Luv) XYZ() XYZ {
	if c.L == 0 {
		return XYZ{}
	}
	varY := labFInv((c.L + 16) / 116)
	varU := c.U/(13*c.L) + refU
	varV := c.V/(13*c.L) + refV
	y := varY * refY
	// The expression forms below match the published HUSL algorithm;
	// keeping them verbatim preserves bit-level fidelity.
	x := 0 - (9*y*varU)/((varU-4)*varV-varU*varV)
	z := (9*y - 15*varV*y - varV*x) / (3 * varV)
	return XYZ{X: x, Y: y, Z: z}
}

// LCh converts the chrominance axes to polar chroma/hue coordinates.
func (c Luv) LCh() LCh {
	ch := math.Sqrt(c.U*c.U + c.V*c.V)
	h := math.Atan2(c.V, c.U) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return LCh{L: c.L, C: ch, H: h}
}

// Luv converts polar chroma/hue coordinates back to Cartesian.
func (c LCh) Luv() Luv {
	hRad := c.H / 360 * 2 * math.Pi
	return Luv{
		L: c.L,
		U: math.Cos(hRad) * c.C,
		V: math.Sin(hRad) * c.C,
	}
}

// labF is the CIE lightness transfer function.
func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// labFInv is the inverse of [labF].
func labFInv(t float64) float64 {
	if t3 := t * t * t; t3 > labEpsilon {
		return t3
	}
	return (116*t - 16) / labKappa
}

// FromRGB converts an sRGB colour to HUSL. The channel values are
// fractions which are clamped to [0, 1] before conversion.
//
// For achromatic inputs (pure black and pure white) hue and saturation
// are not well defined; they are reported as 0.
func FromRGB(r, g, b, a float64) Color {
	lin := LinearRGB{
		R: toLinear(clamp(r, 0, 1)),
		G: toLinear(clamp(g, 0, 1)),
		B: toLinear(clamp(b, 0, 1)),
	}
	h, s, l := lin.XYZ().Luv().LCh().HUSL()
	return Color{
		Hue:        sanitise(h),
		Saturation: sanitise(s),
		Lightness:  sanitise(l),
		Alpha:      clamp(a, 0, 1),
	}
}

// FromBytes converts an sRGB colour with byte channels to HUSL.
func FromBytes(r, g, b, a uint8) Color {
	return FromRGB(
		float64(r)/255,
		float64(g)/255,
		float64(b)/255,
		float64(a)/255)
}

// RGB converts the colour to sRGB channel fractions in [0, 1]. Each
// output channel is rounded to three decimal places and clamped.
//
// Input channels are clamped to [0, 1], except that saturation keeps
// values above 1: [FromRGB] reports saturation marginally above 1 for
// colours on the gamut boundary (the folded gamut constants are
// truncated), and clamping that residue away would lose real chroma.
// Excess chroma is caught by the output clamp instead.
func (c Color) RGB() (r, g, b, a float64) {
	n := Color{
		Hue:        clamp(c.Hue, 0, 1),
		Saturation: math.Max(c.Saturation, 0),
		Lightness:  clamp(c.Lightness, 0, 1),
		Alpha:      clamp(c.Alpha, 0, 1),
	}
	lin := n.LCh().Luv().XYZ().LinearRGB()
	r = clamp(round3(fromLinear(lin.R)), 0, 1)
	g = clamp(round3(fromLinear(lin.G)), 0, 1)
	b = clamp(round3(fromLinear(lin.B)), 0, 1)
	return r, g, b, n.Alpha
}

// RGB255 converts the colour to sRGB bytes.
func (c Color) RGB255() (r, g, b uint8) {
	rf, gf, bf, _ := c.RGB()
	return byte255(rf), byte255(gf), byte255(bf)
}

func sanitise(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
