package wiresphere

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFromHex(t *testing.T) {

	c := NewColorFromHex(0x00aaff)

	r, g, b, a := c.RGBA8()
	assert.Equal(t, [4]uint8{0, 170, 255, 255}, [4]uint8{r, g, b, a})
	assert.Equal(t, color.RGBA{0, 170, 255, 255}, c.ToRGBA())
	assert.True(t, c.Equals(NewColorFromRGBA8(0, 170, 255, 255)))

}

func TestColorPremultiplies(t *testing.T) {

	c := NewColor(1, 0.5, 0, 0.5)

	assert.Equal(t, color.NRGBA64{0xffff, 0x8000, 0, 0x8000}, c.ToNRGBA64())

	r, _, _, a := c.RGBA()
	assert.Equal(t, a, r, "color.Color values are alpha-premultiplied")

}

func TestColorClamps(t *testing.T) {

	c := NewColor(2, -1, 0.5, 1)
	r, g, _, _ := c.RGBA8()
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(0), g)

	c.Set(0, 0, 0, 0)
	assert.Equal(t, Color{}, c)

}
