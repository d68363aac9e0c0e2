// Package colors contains functions to quickly create wiresphere.Color values by name (i.e. "Black()", "SkyBlue()", etc).
package colors

import "github.com/solarlune/wiresphere"

// Transparent returns a fully transparent black.
func Transparent() wiresphere.Color {
	return wiresphere.NewColor(0, 0, 0, 0)
}

// White returns opaque white.
func White() wiresphere.Color {
	return wiresphere.NewColor(1, 1, 1, 1)
}

// Black returns opaque black. This is a Renderer's default clear color.
func Black() wiresphere.Color {
	return wiresphere.NewColor(0, 0, 0, 1)
}

// Gray returns a middle gray.
func Gray() wiresphere.Color {
	return wiresphere.NewColor(0.5, 0.5, 0.5, 1)
}

// Red returns opaque red.
func Red() wiresphere.Color {
	return wiresphere.NewColor(1, 0, 0, 1)
}

// Green returns opaque green.
func Green() wiresphere.Color {
	return wiresphere.NewColor(0, 1, 0, 1)
}

// Blue returns opaque blue.
func Blue() wiresphere.Color {
	return wiresphere.NewColor(0, 0, 1, 1)
}

// SkyBlue returns the azure 0x00aaff, or (0, 170, 255) in 8-bit components.
func SkyBlue() wiresphere.Color {
	return wiresphere.NewColorFromHex(0x00aaff)
}
