// Package initializer builds the wireframe sphere scene and renders it, once, into a container.
package initializer

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/solarlune/wiresphere"
	"github.com/solarlune/wiresphere/colors"
)

// The scene's fixed parameters.
const (
	FieldOfView = 45.0   // Vertical field of view of the camera, in degrees
	NearPlane   = 0.1    // Distance to the camera's near clipping plane
	FarPlane    = 1000.0 // Distance to the camera's far clipping plane

	SphereRadius         = 10.0
	SphereWidthSegments  = 20
	SphereHeightSegments = 20
	SphereColor          = 0x00aaff // (0, 170, 255)

	// OutputSelector is the selector of the page element the canvas is appended to.
	OutputSelector = "#output"
)

var (
	// SpherePosition is where the sphere is placed in the scene.
	SpherePosition = wiresphere.NewVector(0, 10, 1)
	// CameraPosition is where the camera is placed in the scene; it looks at the scene's origin from there.
	CameraPosition = wiresphere.NewVector(-30, 40, 90)
)

var (
	// ErrMissingTarget is returned when there's no container to append the rendered canvas to.
	ErrMissingTarget = errors.New("initializer: output container not found")
	// ErrInvalidViewport is returned when the viewport's width, height, or device pixel ratio isn't positive.
	ErrInvalidViewport = errors.New("initializer: invalid viewport")
)

// Viewport holds the display dimensions the scene is rendered at. It's read once by the host before initialization.
type Viewport struct {
	Width, Height    int     // Logical size of the display area
	DevicePixelRatio float64 // Number of device pixels per logical pixel
}

// Aspect returns the viewport's width divided by its height.
func (vp Viewport) Aspect() float64 {
	return float64(vp.Width) / float64(vp.Height)
}

func (vp Viewport) validate() error {
	if vp.Width <= 0 || vp.Height <= 0 || !(vp.DevicePixelRatio > 0) {
		return fmt.Errorf("%w: %dx%d at a pixel ratio of %g", ErrInvalidViewport, vp.Width, vp.Height, vp.DevicePixelRatio)
	}
	return nil
}

func missingTarget(target wiresphere.Container) bool {
	if target == nil {
		return true
	}
	switch value := reflect.ValueOf(target); value.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return value.IsNil()
	}
	return false
}

// Frame holds everything Initialize created.
type Frame struct {
	Scene    *wiresphere.Scene
	Camera   *wiresphere.Camera
	Sphere   *wiresphere.Model
	Renderer *wiresphere.Renderer
}

// Initializer builds and renders the scene. The zero value is ready to use.
type Initializer struct {
	// Logger receives a record for each stage of setup. If nil, slog.Default() is used.
	Logger *slog.Logger

	// NewRenderer creates the Renderer. If nil, wiresphere.NewRenderer is used.
	NewRenderer func() *wiresphere.Renderer
}

// Initialize builds the scene with the default Initializer; see Initializer.Initialize.
func Initialize(target wiresphere.Container, viewport Viewport) (*Frame, error) {
	return (&Initializer{}).Initialize(target, viewport)
}

// Initialize builds the scene (a wireframe sphere viewed by a perspective camera), appends the renderer's canvas to target,
// and renders a single frame into it.
//
// If target is nil (including a nil pointer, slice, or map held in the Container interface), ErrMissingTarget is returned
// before anything is created. If the viewport isn't usable, an error
// wrapping ErrInvalidViewport is returned.
func (initializer *Initializer) Initialize(target wiresphere.Container, viewport Viewport) (*Frame, error) {

	log := initializer.Logger
	if log == nil {
		log = slog.Default()
	}

	if missingTarget(target) {
		return nil, ErrMissingTarget
	}

	if err := viewport.validate(); err != nil {
		return nil, err
	}

	scene := wiresphere.NewScene("Scene")

	camera := wiresphere.NewCamera(FieldOfView, viewport.Aspect(), NearPlane, FarPlane)

	newRenderer := initializer.NewRenderer
	if newRenderer == nil {
		newRenderer = wiresphere.NewRenderer
	}

	renderer := newRenderer()
	renderer.SetClearColor(colors.Black())
	renderer.SetSize(viewport.Width, viewport.Height)
	renderer.SetPixelRatio(viewport.DevicePixelRatio)

	log.Debug("renderer created",
		slog.Int("width", viewport.Width),
		slog.Int("height", viewport.Height),
		slog.Float64("pixelRatio", viewport.DevicePixelRatio),
	)

	mesh := wiresphere.NewSphereMesh(SphereRadius, SphereWidthSegments, SphereHeightSegments)

	material := wiresphere.NewMaterial("SphereMaterial")
	material.Shadeless = true
	material.Color = wiresphere.NewColorFromHex(SphereColor)
	material.Wireframe = true

	sphere := wiresphere.NewModel(mesh, material, "Sphere")
	sphere.SetLocalPositionVec(SpherePosition)
	scene.Root.AddChildren(sphere)

	log.Debug("sphere added",
		slog.Int("vertices", len(mesh.Vertices)),
		slog.Int("edges", len(mesh.Edges())),
		slog.String("position", SpherePosition.String()),
	)

	camera.SetLocalPositionVec(CameraPosition)
	camera.LookAt(scene.Position())

	log.Debug("camera placed",
		slog.String("position", CameraPosition.String()),
		slog.String("forward", camera.Forward().String()),
	)

	target.AppendChild(renderer.Canvas())

	renderer.Render(scene, camera)

	log.Info("frame rendered",
		slog.Int("edges", renderer.DebugInfo.DrawnEdges),
		slog.Duration("frameTime", renderer.DebugInfo.FrameTime),
	)

	return &Frame{
		Scene:    scene,
		Camera:   camera,
		Sphere:   sphere,
		Renderer: renderer,
	}, nil

}
