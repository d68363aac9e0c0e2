package wiresphere

import (
	"image/color"
	"math"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
// Color satisfies image/color's Color interface, so it can be handed straight to image drawing functions.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromHex returns a new, opaque Color from a 0xRRGGBB hexadecimal value (i.e. 0x00aaff).
func NewColorFromHex(hex uint32) Color {
	return Color{
		R: float32((hex>>16)&0xff) / 255,
		G: float32((hex>>8)&0xff) / 255,
		B: float32(hex&0xff) / 255,
		A: 1,
	}
}

// NewColorFromRGBA8 returns a new Color from 8-bit components (0 to 255).
func NewColorFromRGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// Set sets the RGBA components of the Color to the values provided.
func (c *Color) Set(r, g, b, a float32) {
	c.R = r
	c.G = g
	c.B = b
	c.A = a
}

// RGBA8 returns the Color's components as 8-bit values (0 to 255), rounded to the nearest step.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8Bit(c.R), to8Bit(c.G), to8Bit(c.B), to8Bit(c.A)
}

// ToNRGBA64 returns the Color as a non-alpha-premultiplied color.NRGBA64.
func (c Color) ToNRGBA64() color.NRGBA64 {
	return color.NRGBA64{to16Bit(c.R), to16Bit(c.G), to16Bit(c.B), to16Bit(c.A)}
}

// ToRGBA returns the Color as an alpha-premultiplied 8-bit color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBAModel.Convert(c.ToNRGBA64()).(color.RGBA)
}

// RGBA implements image/color's Color interface, returning alpha-premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.ToNRGBA64().RGBA()
}

// Equals returns if the two Colors match to within one 8-bit step.
func (c Color) Equals(other Color) bool {
	eps := float32(1.0 / 255)
	return absF32(c.R-other.R) < eps &&
		absF32(c.G-other.G) < eps &&
		absF32(c.B-other.B) < eps &&
		absF32(c.A-other.A) < eps
}

func to8Bit(v float32) uint8 {
	return uint8(math.Round(float64(clamp(v, 0, 1)) * 0xff))
}

func to16Bit(v float32) uint16 {
	return uint16(math.Round(float64(clamp(v, 0, 1)) * 0xffff))
}

func absF32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
