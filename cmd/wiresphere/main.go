// Command wiresphere renders a wireframe sphere, once, into a window, a web page, or a PNG file.
package main

import (
	"log/slog"
	"os"

	"github.com/solarlune/wiresphere"
	"github.com/solarlune/wiresphere/initializer"
)

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// initialize runs the initializer once the host has loaded, returning what it built.
func initialize(logger *slog.Logger, target func() wiresphere.Container, viewport func() initializer.Viewport) (frame *initializer.Frame, err error) {
	onLoad(func() {
		frame, err = (&initializer.Initializer{Logger: logger}).Initialize(target(), viewport())
	})
	return frame, err
}
