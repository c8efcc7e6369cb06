package types

import (
	"image/color"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Color stores linear RGB channels. Channels may exceed 1 while light
// contributions are being accumulated; Clamp brings them back to [0, 1].
type Color f32.Vec3

// Define a color from its RGB channels.
func RGB(r, g, b float32) Color {
	return Color{r, g, b}
}

func (c Color) R() float32 { return c[0] }
func (c Color) G() float32 { return c[1] }
func (c Color) B() float32 { return c[2] }

// Add a color.
func (c Color) Add(c2 Color) Color {
	return Color{c[0] + c2[0], c[1] + c2[1], c[2] + c2[2]}
}

// Scale all channels.
func (c Color) Mul(s float32) Color {
	return Color{c[0] * s, c[1] * s, c[2] * s}
}

// Component-wise multiplication.
func (c Color) MulColor(c2 Color) Color {
	return Color{c[0] * c2[0], c[1] * c2[1], c[2] * c2[2]}
}

// Clamp each channel into [0, 1]. NaN channels clamp to 0.
func (c Color) Clamp() Color {
	var out Color
	for i, ch := range c {
		switch {
		case math32.IsNaN(ch) || ch < 0:
			out[i] = 0
		case ch > 1:
			out[i] = 1
		default:
			out[i] = ch
		}
	}
	return out
}

// Get the max channel value.
func (c Color) MaxComponent() float32 {
	return math32.Max(c[0], math32.Max(c[1], c[2]))
}

// Convert to an opaque 8-bit RGBA value.
func (c Color) ToRGBA() color.RGBA {
	c = c.Clamp()
	return color.RGBA{
		R: uint8(c[0]*255 + 0.5),
		G: uint8(c[1]*255 + 0.5),
		B: uint8(c[2]*255 + 0.5),
		A: 255,
	}
}
