// Package host provides the display surfaces a wiresphere.Canvas can be appended to, and the signal that tells a program
// its host has finished loading.
package host

import (
	"image"
	"image/draw"
	"image/png"
	"os"
	"sync"

	"github.com/solarlune/wiresphere"
)

// LoadTrigger runs a function the first time the host signals that it has finished loading. Any further signals are ignored.
type LoadTrigger struct {
	once sync.Once
	fn   func()
}

// NewLoadTrigger returns a LoadTrigger that runs fn on its first signal.
func NewLoadTrigger(fn func()) *LoadTrigger {
	return &LoadTrigger{fn: fn}
}

// Signal runs the LoadTrigger's function if this is the first call to Signal; otherwise, it does nothing.
func (trigger *LoadTrigger) Signal() {
	trigger.once.Do(trigger.fn)
}

// Snapshot is a headless Container; it keeps a copy of each frame presented to the Canvas appended to it, and can
// write it out as a PNG file.
type Snapshot struct {
	// Path is the PNG file each presented frame is written to. If it's empty, frames are only kept in memory.
	Path string

	image *image.RGBA
	err   error
}

// NewSnapshot returns a Snapshot that writes frames to the PNG file at path (or nowhere, if path is empty).
func NewSnapshot(path string) *Snapshot {
	return &Snapshot{Path: path}
}

// AppendChild attaches the Canvas to the Snapshot.
func (snapshot *Snapshot) AppendChild(canvas *wiresphere.Canvas) {
	canvas.OnPresent(snapshot.capture)
}

func (snapshot *Snapshot) capture(img *image.RGBA) {

	frame := image.NewRGBA(img.Rect)
	draw.Draw(frame, frame.Rect, img, img.Rect.Min, draw.Src)
	snapshot.image = frame

	if snapshot.Path != "" {
		snapshot.err = writePNG(snapshot.Path, frame)
	}

}

// Image returns the last frame captured, or nil if nothing has been presented yet.
func (snapshot *Snapshot) Image() *image.RGBA {
	return snapshot.image
}

// Err returns the error from writing the last frame to disk, if there was one.
func (snapshot *Snapshot) Err() error {
	return snapshot.err
}

func writePNG(path string, img image.Image) error {

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return err
	}

	return file.Close()

}

// Group is a Container that appends Canvases to each of the Containers it holds, in order.
type Group []wiresphere.Container

// AppendChild appends the Canvas to every Container in the Group.
func (group Group) AppendChild(canvas *wiresphere.Canvas) {
	for _, container := range group {
		container.AppendChild(canvas)
	}
}
