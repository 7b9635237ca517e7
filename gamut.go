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

// Outside these lightness bounds the gamut boundary degenerates and
// chroma has no usable scale, so hue and saturation are pinned to 0.
const (
	minLightness = 1e-8
	maxLightness = 99.9999999
)

// maxChroma returns the largest chroma that keeps a colour with the
// given lightness (0-100) and hue (degrees) inside the sRGB gamut.
//
// Each row of the XYZ-to-RGB matrix bounds one RGB channel. Along the
// ray of constant lightness and hue, a channel is a linear function of
// chroma, so intersecting it with its two limits 0 and 1 gives six
// candidate chromas. The smallest positive candidate is the distance to
// the nearest face of the RGB cube.
//
// The numeric constants fold the matrix rows together with the LUV
// reference white; they are part of the published HUSL contract and
// must be kept bit-for-bit.
func maxChroma(l, h float64) float64 {
	hRad := h / 360 * 2 * math.Pi
	sinH := math.Sin(hRad)
	cosH := math.Cos(hRad)

	sub := math.Pow(l+16, 3) / 1560896
	if sub <= labEpsilon {
		sub = l / labKappa
	}

	result := math.Inf(1)
	for _, row := range xyzToRGB {
		m1, m2, m3 := row[0], row[1], row[2]
		top := (0.99915*m1 + 1.05122*m2 + 1.14460*m3) * sub
		rbottom := 0.86330*m3 - 0.17266*m2
		lbottom := 0.12949*m3 - 0.38848*m1
		bottom := (rbottom*sinH + lbottom*cosH) * sub

		for _, limit := range [2]float64{0, 1} {
			c := l * (top - 1.05122*limit) / (bottom + 0.17266*sinH*limit)
			if c > 0 && c < result {
				result = c
			}
		}
	}
	return result
}

// LCh converts the colour to CIE LCh, rescaling saturation to absolute
// chroma against the gamut boundary.
func (c Color) LCh() LCh {
	l := c.Lightness * 100
	if l < minLightness || l > maxLightness {
		return LCh{L: l}
	}
	h := c.Hue * 360
	s := c.Saturation * 100
	return LCh{L: l, C: maxChroma(l, h) / 100 * s, H: h}
}

// HUSL rescales chroma into a saturation fraction relative to the gamut
// boundary at the colour's lightness and hue. All three results are
// fractions in [0, 1].
func (c LCh) HUSL() (h, s, l float64) {
	if c.L < minLightness || c.L > maxLightness {
		// black and white carry no usable hue or chroma
		return 0, 0, clamp(c.L/100, 0, 1)
	}
	s = c.C / maxChroma(c.L, c.H) * 100
	return c.H / 360, s / 100, c.L / 100
}
