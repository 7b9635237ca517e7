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

// Blend linearly interpolates between c and other, channel by channel,
// in HUSL space. t is clamped to [0, 1]; t=0 returns c, t=1 returns
// other. Because lightness and saturation are perceptually uniform,
// blends stay visually even along the whole range.
func (c Color) Blend(other Color, t float64) Color {
	t = clamp(t, 0, 1)
	return Color{
		Hue:        lerp(c.Hue, other.Hue, t),
		Saturation: lerp(c.Saturation, other.Saturation, t),
		Lightness:  lerp(c.Lightness, other.Lightness, t),
		Alpha:      lerp(c.Alpha, other.Alpha, t),
	}
}

func lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}
