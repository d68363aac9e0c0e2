package wiresphere

import "image"

// Container represents a display surface that a Renderer's Canvas can be appended to, like a DOM element or a window.
type Container interface {
	// AppendChild attaches the Canvas to the Container. From then on, the Container shows whatever the Canvas presents.
	AppendChild(canvas *Canvas)
}

// Canvas is the drawing surface a Renderer draws into. A Canvas has a logical size (in CSS pixels or window units) and a
// physical size, which is the logical size multiplied by the pixel ratio; the backing image always has the physical size.
type Canvas struct {
	image         *image.RGBA
	width, height int // Logical size
	pixelRatio    float64
	presentFuncs  []func(img *image.RGBA)
}

func newCanvas(width, height int, pixelRatio float64) *Canvas {
	canvas := &Canvas{}
	canvas.resize(width, height, pixelRatio)
	return canvas
}

func (canvas *Canvas) resize(width, height int, pixelRatio float64) {

	canvas.width = width
	canvas.height = height
	canvas.pixelRatio = pixelRatio

	pw, ph := canvas.PhysicalSize()

	if canvas.image != nil && canvas.image.Rect.Dx() == pw && canvas.image.Rect.Dy() == ph {
		return
	}

	canvas.image = image.NewRGBA(image.Rect(0, 0, pw, ph))

}

// Size returns the logical size of the Canvas.
func (canvas *Canvas) Size() (width, height int) {
	return canvas.width, canvas.height
}

// PhysicalSize returns the size of the Canvas's backing image in device pixels (the logical size multiplied by the pixel ratio, rounded down).
func (canvas *Canvas) PhysicalSize() (width, height int) {
	return int(float64(canvas.width) * canvas.pixelRatio), int(float64(canvas.height) * canvas.pixelRatio)
}

// PixelRatio returns the number of device pixels per logical pixel.
func (canvas *Canvas) PixelRatio() float64 {
	return canvas.pixelRatio
}

// Image returns the Canvas's backing image. Note that the image is replaced if the Canvas's Renderer changes size.
func (canvas *Canvas) Image() *image.RGBA {
	return canvas.image
}

// At returns the color of the physical pixel at x, y as a Color.
func (canvas *Canvas) At(x, y int) Color {
	c := canvas.image.RGBAAt(x, y)
	if c.A == 0 {
		return Color{}
	}
	// Un-premultiply
	a := float32(c.A) / 255
	return Color{float32(c.R) / 255 / a, float32(c.G) / 255 / a, float32(c.B) / 255 / a, a}
}

// OnPresent registers a function to be called with the Canvas's image each time a frame finishes rendering to it.
// Containers use this to show the Canvas's contents.
func (canvas *Canvas) OnPresent(presentFunc func(img *image.RGBA)) {
	canvas.presentFuncs = append(canvas.presentFuncs, presentFunc)
}

func (canvas *Canvas) present() {
	for _, fn := range canvas.presentFuncs {
		fn(canvas.image)
	}
}
