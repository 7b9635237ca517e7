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

// Package husl converts colours between sRGB and HUSL.
//
// HUSL (human-friendly hue, saturation, lightness) is a perceptually
// uniform colour model built on CIE LUV. Unlike plain HSL, its saturation
// axis is rescaled against the sRGB gamut boundary, so changing hue or
// lightness at constant saturation never leaves the displayable range.
//
// # Converting Colours
//
// Use [FromRGB] or [FromBytes] to convert an sRGB colour to HUSL, and
// [Color.RGB] or [Color.RGB255] for the reverse direction:
//
//	c := husl.FromRGB(1, 0, 0, 1) // pure red
//	darker := c.WithLightness(c.Lightness / 2)
//	r, g, b := darker.RGB255()
//
// All channels are fractions in [0, 1]: hue is degrees/360, saturation
// and lightness are percentages/100.
//
// # Conversion Pipeline
//
// Conversion runs through five stages, each with its own type:
// gamma-encoded sRGB, [LinearRGB], [XYZ], [Luv] and [LCh]. The stage
// types expose the intermediate spaces for callers that need them:
//
//	lch := husl.New(h, s, l, 1).LCh()
//
// Every conversion is a pure function of its inputs; values may be used
// from any number of goroutines without synchronisation.
package husl

import (
	"fmt"
	"image/color"
	"strconv"
)

// Color is a colour in HUSL coordinates, with an alpha channel.
//
// All four channels are nominally in [0, 1]. Values are never clamped on
// construction or modification; use [Color.Normalize] to clamp explicitly.
// Conversions to RGB clamp out-of-range channels internally (see
// [Color.RGB] for the saturation exception).
//
// The zero value is fully transparent black.
type Color struct {
	Hue        float64 // hue angle, degrees/360
	Saturation float64 // saturation relative to the gamut boundary
	Lightness  float64 // CIE L*/100
	Alpha      float64
}

// New returns the HUSL colour with the given channel values.
// The values are stored as given, without clamping.
func New(h, s, l, a float64) Color {
	return Color{Hue: h, Saturation: s, Lightness: l, Alpha: a}
}

// WithHue returns a copy of the colour with the hue replaced.
func (c Color) WithHue(h float64) Color {
	c.Hue = h
	return c
}

// WithSaturation returns a copy of the colour with the saturation replaced.
func (c Color) WithSaturation(s float64) Color {
	c.Saturation = s
	return c
}

// WithLightness returns a copy of the colour with the lightness replaced.
func (c Color) WithLightness(l float64) Color {
	c.Lightness = l
	return c
}

// WithAlpha returns a copy of the colour with the alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.Alpha = a
	return c
}

// Normalize clamps all four channels to [0, 1].
func (c Color) Normalize() Color {
	return Color{
		Hue:        clamp(c.Hue, 0, 1),
		Saturation: clamp(c.Saturation, 0, 1),
		Lightness:  clamp(c.Lightness, 0, 1),
		Alpha:      clamp(c.Alpha, 0, 1),
	}
}

// Equal reports whether two colours have exactly equal channel values.
// This is exact floating-point comparison, not a perceptual test.
func (c Color) Equal(other Color) bool {
	return c == other
}

// String formats the colour as a hex string "#rrggbb" if it is fully
// opaque, and as "rgba(R, G, B, A)" with byte channels and a decimal
// alpha otherwise.
func (c Color) String() string {
	r, g, b := c.RGB255()
	a := clamp(c.Alpha, 0, 1)
	if a == 1 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		r, g, b, strconv.FormatFloat(a, 'f', -1, 64))
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	rf, gf, bf, af := c.RGB()
	r = uint32(rf*af*65535 + 0.5)
	g = uint32(gf*af*65535 + 0.5)
	b = uint32(bf*af*65535 + 0.5)
	a = uint32(af*65535 + 0.5)
	return r, g, b, a
}

// Model converts arbitrary colours to HUSL.
var Model color.Model = color.ModelFunc(huslModel)

func huslModel(c color.Color) color.Color {
	if h, ok := c.(Color); ok {
		return h
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	return FromRGB(
		float64(r)/float64(a),
		float64(g)/float64(a),
		float64(b)/float64(a),
		float64(a)/65535)
}
