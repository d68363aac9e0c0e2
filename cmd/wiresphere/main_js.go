//go:build js && wasm

package main

import (
	"log/slog"

	"github.com/solarlune/wiresphere"
	"github.com/solarlune/wiresphere/host"
	"github.com/solarlune/wiresphere/initializer"
)

// onLoad waits for the page's load event; main blocks until the scene has been initialized.
func onLoad(fn func()) {
	done := make(chan struct{})
	host.OnLoad(func() {
		defer close(done)
		fn()
	})
	<-done
}

func main() {

	logger := newLogger(slog.LevelInfo)

	_, err := initialize(logger,
		func() wiresphere.Container { return host.QuerySelector(initializer.OutputSelector) },
		func() initializer.Viewport {
			w, h, ratio := host.WindowViewport()
			return initializer.Viewport{Width: w, Height: h, DevicePixelRatio: ratio}
		},
	)

	if err != nil {
		logger.Error("couldn't initialize the scene", slog.Any("err", err))
	}

}
