package wiresphere

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuadScene(material *Material, windings ...int) (*Scene, *Camera) {

	mesh := NewMesh("Quad",
		NewVector(-1, -1, 0),
		NewVector(1, -1, 0),
		NewVector(1, 1, 0),
		NewVector(-1, 1, 0),
	)
	mesh.AddTriangles(windings...)

	scene := NewScene("Quad Scene")
	scene.Root.AddChildren(NewModel(mesh, material, "Quad"))

	// The camera looks down -Z by default.
	camera := NewCamera(45, 1, 0.1, 100)
	camera.SetLocalPosition(0, 0, 10)

	return scene, camera

}

func BenchmarkRenderWireframeSphere(b *testing.B) {

	material := NewMaterial("Wire")
	material.Wireframe = true

	model := NewModel(NewSphereMesh(10, 20, 20), material, "Sphere")
	scene := NewScene("Bench")
	scene.Root.AddChildren(model)

	camera := NewCamera(45, 800.0/600.0, 0.1, 1000)
	camera.SetLocalPosition(-30, 40, 90)
	camera.LookAt(NewVectorZero())

	renderer := NewRenderer()
	renderer.SetSize(800, 600)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		renderer.Render(scene, camera)
	}

}

func TestNewRenderer(t *testing.T) {

	renderer := NewRenderer()

	w, h := renderer.Size()
	assert.Equal(t, 300, w)
	assert.Equal(t, 150, h)
	assert.Equal(t, 1.0, renderer.PixelRatio())
	assert.Equal(t, NewColor(0, 0, 0, 1), renderer.ClearColor())
	assert.Equal(t, image.Rect(0, 0, 300, 150), renderer.Canvas().Image().Bounds())

}

func TestRendererSizeAndPixelRatio(t *testing.T) {

	renderer := NewRenderer()
	renderer.SetSize(800, 600)
	renderer.SetPixelRatio(2)

	canvas := renderer.Canvas()

	w, h := canvas.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	pw, ph := canvas.PhysicalSize()
	assert.Equal(t, 1600, pw)
	assert.Equal(t, 1200, ph)
	assert.Equal(t, image.Rect(0, 0, 1600, 1200), canvas.Image().Bounds())
	assert.Equal(t, 2.0, canvas.PixelRatio())

	// Fractional ratios round the backing image down.
	renderer.SetPixelRatio(1.5)
	renderer.SetSize(101, 51)
	pw, ph = canvas.PhysicalSize()
	assert.Equal(t, 151, pw)
	assert.Equal(t, 76, ph)

	renderer.SetSize(-5, 10)
	w, _ = renderer.Size()
	assert.Equal(t, 0, w)

}

func TestRenderClearsAndPresents(t *testing.T) {

	renderer := NewRenderer()
	renderer.SetSize(40, 30)
	renderer.SetClearColor(NewColorFromRGBA8(10, 20, 30, 255))

	presented := 0
	renderer.Canvas().OnPresent(func(img *image.RGBA) {
		presented++
		assert.Same(t, renderer.Canvas().Image(), img)
	})

	renderer.Render(NewScene("Empty"), NewCamera(45, 40.0/30.0, 0.1, 100))

	assert.Equal(t, 1, presented)
	assert.Equal(t, 1, renderer.DebugInfo.Frames)
	assert.Equal(t, 0, renderer.DebugInfo.TotalModels)

	img := renderer.Canvas().Image()
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			require.Equal(t, [4]uint8{10, 20, 30, 255}, rgbaAt(img, x, y), "pixel %d, %d wasn't cleared", x, y)
		}
	}

	assert.True(t, renderer.Canvas().At(0, 0).Equals(NewColorFromRGBA8(10, 20, 30, 255)))

}

func TestRenderFilled(t *testing.T) {

	material := NewMaterial("Red")
	material.Color = NewColor(1, 0, 0, 1)
	material.Shadeless = true

	scene, camera := newQuadScene(material, 0, 1, 2, 0, 2, 3)

	renderer := NewRenderer()
	renderer.SetSize(100, 100)
	renderer.Render(scene, camera)

	img := renderer.Canvas().Image()

	assert.Equal(t, [4]uint8{255, 0, 0, 255}, rgbaAt(img, 50, 50), "the quad should cover the middle of the view")
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, rgbaAt(img, 2, 2), "the corners of the view should be left clear")
	assert.Equal(t, 2, renderer.DebugInfo.DrawnTris)
	assert.Equal(t, 2, renderer.DebugInfo.TotalTris)
	assert.Equal(t, 1, renderer.DebugInfo.DrawnModels)

}

func TestRenderBackfaceCulling(t *testing.T) {

	material := NewMaterial("Red")
	material.Color = NewColor(1, 0, 0, 1)
	material.Shadeless = true

	// Wound clockwise, so the quad faces away from the camera.
	scene, camera := newQuadScene(material, 0, 2, 1, 0, 3, 2)

	renderer := NewRenderer()
	renderer.SetSize(100, 100)
	renderer.Render(scene, camera)

	assert.Equal(t, [4]uint8{0, 0, 0, 255}, rgbaAt(renderer.Canvas().Image(), 50, 50))
	assert.Equal(t, 0, renderer.DebugInfo.DrawnTris)

	material.BackfaceCulling = false
	renderer.Render(scene, camera)

	assert.Equal(t, [4]uint8{255, 0, 0, 255}, rgbaAt(renderer.Canvas().Image(), 50, 50))
	assert.Equal(t, 2, renderer.DebugInfo.DrawnTris)
	assert.Equal(t, 2, renderer.DebugInfo.Frames)

}

func TestRenderWireframe(t *testing.T) {

	material := NewMaterial("Green")
	material.Color = NewColor(0, 1, 0, 1)
	material.Wireframe = true

	scene, camera := newQuadScene(material, 0, 1, 2, 0, 2, 3)

	renderer := NewRenderer()
	renderer.SetSize(100, 100)
	renderer.Render(scene, camera)

	img := renderer.Canvas().Image()

	assert.Equal(t, 5, renderer.DebugInfo.DrawnEdges)
	assert.Equal(t, 0, renderer.DebugInfo.DrawnTris)
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, rgbaAt(img, 60, 45), "a wireframe shouldn't fill its faces in")

	// The diagonal edge runs through the middle of the view.
	found := false
	for y := 48; y <= 52 && !found; y++ {
		for x := 48; x <= 52; x++ {
			if rgbaAt(img, x, y) == [4]uint8{0, 255, 0, 255} {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "the diagonal edge should be drawn through the middle of the view")

}

func TestRenderHiddenModels(t *testing.T) {

	material := NewMaterial("Red")
	material.Shadeless = true

	scene, camera := newQuadScene(material, 0, 1, 2, 0, 2, 3)
	scene.Root.SetVisible(false, false)

	renderer := NewRenderer()
	renderer.SetSize(100, 100)
	renderer.Render(scene, camera)

	assert.Equal(t, 1, renderer.DebugInfo.TotalModels)
	assert.Equal(t, 0, renderer.DebugInfo.DrawnModels)
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, rgbaAt(renderer.Canvas().Image(), 50, 50))

}

func TestRenderNearPlaneClipping(t *testing.T) {

	// A floor that runs from in front of the camera to well behind it.
	mesh := NewMesh("Floor",
		NewVector(-100, -1, 20),
		NewVector(100, -1, 20),
		NewVector(0, -1, -100),
	)
	mesh.AddTriangles(0, 1, 2)

	material := NewMaterial("Floor")
	material.Color = NewColor(0, 0, 1, 1)
	material.Shadeless = true
	material.BackfaceCulling = false

	scene := NewScene("Floor Scene")
	scene.Root.AddChildren(NewModel(mesh, material, "Floor"))

	camera := NewCamera(45, 1, 0.1, 1000)
	camera.SetLocalPosition(0, 0, 10)

	renderer := NewRenderer()
	renderer.SetSize(100, 100)
	renderer.Render(scene, camera)

	img := renderer.Canvas().Image()

	assert.Equal(t, 1, renderer.DebugInfo.DrawnTris)
	assert.Equal(t, [4]uint8{0, 0, 255, 255}, rgbaAt(img, 50, 90), "the floor should fill the bottom of the view")
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, rgbaAt(img, 50, 10), "the floor shouldn't show up above the horizon")

}

func TestRenderShading(t *testing.T) {

	material := NewMaterial("White")

	// A quad seen at a steep angle is darker than one seen head-on.
	scene, camera := newQuadScene(material, 0, 1, 2, 0, 2, 3)
	model := scene.Models()[0]
	model.SetLocalRotation(NewMatrix4Rotate(0, 1, 0, 1.2))

	renderer := NewRenderer()
	renderer.SetSize(100, 100)
	renderer.Render(scene, camera)

	c := rgbaAt(renderer.Canvas().Image(), 50, 50)
	assert.Less(t, c[0], uint8(255))
	assert.Greater(t, c[0], uint8(0))

	material.Shadeless = true
	renderer.Render(scene, camera)
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, rgbaAt(renderer.Canvas().Image(), 50, 50))

}

func TestClipLine2D(t *testing.T) {

	x0, y0, x1, y1, ok := clipLine2D(-10, 5, 20, 5, 0, 0, 10, 10)
	require.True(t, ok)
	assert.InDelta(t, 0, x0, 1e-9)
	assert.InDelta(t, 10, x1, 1e-9)
	assert.Equal(t, 5.0, y0)
	assert.Equal(t, 5.0, y1)

	_, _, _, _, ok = clipLine2D(-10, -5, 20, -5, 0, 0, 10, 10)
	assert.False(t, ok, "a line entirely above the rectangle should be rejected")

	x0, y0, x1, y1, ok = clipLine2D(2, 2, 8, 8, 0, 0, 10, 10)
	require.True(t, ok)
	assert.Equal(t, [4]float64{2, 2, 8, 8}, [4]float64{x0, y0, x1, y1})

}

func TestClipSegment(t *testing.T) {

	camera := NewCamera(90, 1, 1, 100)
	vp := camera.ViewProjection()

	// From in front of the near plane to behind the camera.
	a := vp.MultVecW(NewVector(0, 0, -10))
	b := vp.MultVecW(NewVector(0, 0, 10))

	ca, cb, ok := clipSegment(a, b)
	require.True(t, ok)
	assert.Equal(t, a, ca)
	assert.InDelta(t, 0, nearPlaneDistance(cb), 1e-9, "the segment should end on the near plane")
	assert.InDelta(t, 1, cb.W, 1e-9)

	_, _, ok = clipSegment(b, vp.MultVecW(NewVector(0, 0, 5)))
	assert.False(t, ok, "a segment entirely behind the camera should be rejected")

	_, _, ok = clipSegment(vp.MultVecW(NewVector(0, 0, -200)), vp.MultVecW(NewVector(0, 0, -300)))
	assert.False(t, ok, "a segment entirely past the far plane should be rejected")

}

func rgbaAt(img *image.RGBA, x, y int) [4]uint8 {
	c := img.RGBAAt(x, y)
	return [4]uint8{c.R, c.G, c.B, c.A}
}
