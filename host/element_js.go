//go:build js && wasm

package host

import (
	"image"
	"image/draw"
	"strconv"
	"syscall/js"

	"github.com/solarlune/wiresphere"
)

// Element is a DOM element that Canvases can be appended to. Each appended Canvas gets its own <canvas> element.
type Element struct {
	value js.Value
}

// QuerySelector returns the first element in the document matching the CSS selector, or nil if there's no match.
func QuerySelector(selector string) wiresphere.Container {
	el := js.Global().Get("document").Call("querySelector", selector)
	if el.IsNull() || el.IsUndefined() {
		return nil
	}
	return &Element{value: el}
}

// AppendChild creates a <canvas> element sized to the Canvas and appends it to the Element. The <canvas> holds the
// Canvas's physical pixels, while its CSS size is the Canvas's logical size.
func (el *Element) AppendChild(canvas *wiresphere.Canvas) {

	node := js.Global().Get("document").Call("createElement", "canvas")

	pw, ph := canvas.PhysicalSize()
	w, h := canvas.Size()

	node.Set("width", pw)
	node.Set("height", ph)
	node.Get("style").Set("width", strconv.Itoa(w)+"px")
	node.Get("style").Set("height", strconv.Itoa(h)+"px")

	el.value.Call("appendChild", node)

	ctx := node.Call("getContext", "2d")

	canvas.OnPresent(func(img *image.RGBA) {
		putImageData(ctx, img)
	})

}

func putImageData(ctx js.Value, img *image.RGBA) {

	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}

	// ImageData wants non-premultiplied pixels.
	nrgba := image.NewNRGBA(img.Rect)
	draw.Draw(nrgba, nrgba.Rect, img, img.Rect.Min, draw.Src)

	data := js.Global().Get("Uint8ClampedArray").New(len(nrgba.Pix))
	js.CopyBytesToJS(data, nrgba.Pix)

	ctx.Call("putImageData", js.Global().Get("ImageData").New(data, w, h), 0, 0)

}

// WindowViewport returns the browser window's inner size and its device pixel ratio.
func WindowViewport() (width, height int, devicePixelRatio float64) {
	window := js.Global()
	return window.Get("innerWidth").Int(), window.Get("innerHeight").Int(), window.Get("devicePixelRatio").Float()
}
