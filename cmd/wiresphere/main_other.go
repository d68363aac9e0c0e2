//go:build !js

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/solarlune/wiresphere"
	"github.com/solarlune/wiresphere/config"
	"github.com/solarlune/wiresphere/host"
	"github.com/solarlune/wiresphere/host/window"
	"github.com/solarlune/wiresphere/initializer"
)

var onLoad = host.OnLoad

func main() {

	configPath := flag.String("config", "", "Path to a TOML configuration file.")
	pngPath := flag.String("png", "", "Write the rendered frame to this PNG file.")
	gltfPath := flag.String("gltf", "", "Export the scene to this binary glTF file.")
	width := flag.Int("width", 0, "Viewport width (overrides the configuration).")
	height := flag.Int("height", 0, "Viewport height (overrides the configuration).")
	ratio := flag.Float64("ratio", 0, "Device pixel ratio (overrides the configuration and the monitor).")
	headless := flag.Bool("headless", false, "Render without opening a window.")
	verbose := flag.Bool("v", false, "Log every stage of setup.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *width > 0 {
		cfg.Viewport.Width = *width
	}
	if *height > 0 {
		cfg.Viewport.Height = *height
	}
	if *ratio > 0 {
		cfg.Viewport.DevicePixelRatio = *ratio
	}
	if *pngPath != "" {
		cfg.Output.PNG = *pngPath
	}
	if *gltfPath != "" {
		cfg.Output.GLTF = *gltfPath
	}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *verbose {
		level = slog.LevelDebug
	}
	logger := newLogger(level)

	if *headless && cfg.Output.PNG == "" && cfg.Output.GLTF == "" {
		logger.Warn("running headless without any output file; the frame won't be saved anywhere")
	}

	var win *window.Window
	var snapshot *host.Snapshot
	containers := host.Group{}

	if !*headless {
		win = window.New(cfg.Title)
		containers = append(containers, win)
	}
	if cfg.Output.PNG != "" {
		snapshot = host.NewSnapshot(cfg.Output.PNG)
		containers = append(containers, snapshot)
	}

	frame, err := initialize(logger,
		func() wiresphere.Container { return containers },
		func() initializer.Viewport {
			vp := initializer.Viewport{
				Width:            cfg.Viewport.Width,
				Height:           cfg.Viewport.Height,
				DevicePixelRatio: cfg.Viewport.DevicePixelRatio,
			}
			if vp.DevicePixelRatio == 0 {
				if *headless {
					vp.DevicePixelRatio = 1
				} else {
					vp.DevicePixelRatio = window.DeviceScaleFactor()
				}
			}
			return vp
		},
	)

	if err != nil {
		logger.Error("couldn't initialize the scene", slog.Any("err", err))
		os.Exit(1)
	}

	if snapshot != nil {
		if err := snapshot.Err(); err != nil {
			logger.Error("couldn't write the snapshot", slog.String("path", cfg.Output.PNG), slog.Any("err", err))
			os.Exit(1)
		}
		logger.Info("snapshot written", slog.String("path", cfg.Output.PNG))
	}

	if cfg.Output.GLTF != "" {
		if err := wiresphere.ExportGLTFFile(cfg.Output.GLTF, frame.Scene, frame.Camera); err != nil {
			logger.Error("couldn't export the scene", slog.String("path", cfg.Output.GLTF), slog.Any("err", err))
			os.Exit(1)
		}
		logger.Info("scene exported", slog.String("path", cfg.Output.GLTF))
	}

	if win != nil {
		if err := win.Run(); err != nil {
			logger.Error("window closed with an error", slog.Any("err", err))
			os.Exit(1)
		}
	}

}
