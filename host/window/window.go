// Package window presents a wiresphere.Canvas in a desktop window using Ebitengine.
package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/wiresphere"
)

// Window is a desktop Container. It shows the last frame presented to the Canvas appended to it; the frame's pixels are
// only uploaded again when a new frame is presented.
type Window struct {
	Title string

	frame         *image.RGBA
	frameImage    *ebiten.Image
	dirty         bool
	width, height int // Logical size
	physW, physH  int
}

// New returns a new Window with the title given.
func New(title string) *Window {
	return &Window{Title: title}
}

// AppendChild attaches the Canvas to the Window, sizing the Window to match.
func (window *Window) AppendChild(canvas *wiresphere.Canvas) {
	window.width, window.height = canvas.Size()
	window.physW, window.physH = canvas.PhysicalSize()
	canvas.OnPresent(func(img *image.RGBA) {
		window.frame = img
		window.dirty = true
	})
}

// Update implements ebiten.Game. Nothing in the scene changes after its frame is rendered, so there's nothing to do.
func (window *Window) Update() error {
	return nil
}

// Draw implements ebiten.Game.
func (window *Window) Draw(screen *ebiten.Image) {

	if window.frame == nil {
		return
	}

	w, h := window.frame.Rect.Dx(), window.frame.Rect.Dy()

	if window.frameImage == nil || window.frameImage.Bounds().Dx() != w || window.frameImage.Bounds().Dy() != h {
		if window.frameImage != nil {
			window.frameImage.Deallocate()
		}
		window.frameImage = ebiten.NewImage(w, h)
		window.dirty = true
	}

	if window.dirty {
		window.frameImage.WritePixels(window.frame.Pix)
		window.dirty = false
	}

	screen.DrawImage(window.frameImage, nil)

}

// Layout implements ebiten.Game; the screen has the Canvas's physical size.
func (window *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if window.physW <= 0 || window.physH <= 0 {
		return outsideWidth, outsideHeight
	}
	return window.physW, window.physH
}

// Run opens the Window and blocks until it's closed.
func (window *Window) Run() error {
	if window.width > 0 && window.height > 0 {
		ebiten.SetWindowSize(window.width, window.height)
	}
	ebiten.SetWindowTitle(window.Title)
	return ebiten.RunGame(window)
}

// DeviceScaleFactor returns the device scale factor of the monitor the Window opens on (the desktop's device pixel ratio).
func DeviceScaleFactor() float64 {
	if monitor := ebiten.Monitor(); monitor != nil {
		return monitor.DeviceScaleFactor()
	}
	return 1
}
