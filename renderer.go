package wiresphere

import (
	"image"
	"image/draw"
	"math"
	"time"

	"golang.org/x/image/vector"
)

// DebugInfo is a struct that holds debugging information for a Renderer's render pass. Aside from Frames, these values are reset
// at the start of each Render() call.
type DebugInfo struct {
	Frames      int           // Total number of frames rendered
	FrameTime   time.Duration // Amount of CPU time spent rendering the last frame
	DrawnModels int           // Number of Models drawn, excluding those invisible or without a Mesh
	TotalModels int           // Total number of Models in the rendered Scene
	DrawnEdges  int           // Number of wireframe edges drawn, excluding those clipped away
	DrawnTris   int           // Number of filled triangles drawn, excluding those clipped away or hidden from backface culling
	TotalTris   int           // Total number of triangles in visible Models
}

// Renderer draws Scenes from the point of view of a Camera into a Canvas. A Renderer has a logical size and a pixel ratio;
// its Canvas is backed by an image of the logical size multiplied by the pixel ratio.
type Renderer struct {
	DebugInfo DebugInfo

	// Antialias smooths the edges of drawn lines and triangles. When it's false (the default), primitives are drawn with hard
	// edges, so every covered pixel takes the Material's exact color.
	Antialias bool

	clearColor    Color
	width, height int
	pixelRatio    float64
	canvas        *Canvas

	rasterizer *vector.Rasterizer
	maskPix    []uint8
	clipVerts  []Vector
	worldVerts []Vector
	polygon    []Vector
	points     [][2]float64
	triangles  sortingTriangleBucket
}

// NewRenderer creates a new Renderer with a default size of 300x150, a pixel ratio of 1, and an opaque black clear color.
func NewRenderer() *Renderer {
	return &Renderer{
		clearColor: NewColor(0, 0, 0, 1),
		width:      300,
		height:     150,
		pixelRatio: 1,
		canvas:     newCanvas(300, 150, 1),
		rasterizer: &vector.Rasterizer{},
	}
}

// SetClearColor sets the color the Canvas is filled with at the start of each Render() call.
func (renderer *Renderer) SetClearColor(color Color) {
	renderer.clearColor = color
}

// ClearColor returns the color the Canvas is filled with at the start of each Render() call.
func (renderer *Renderer) ClearColor() Color {
	return renderer.clearColor
}

// SetSize sets the logical size of the Renderer (and so its Canvas). Negative values are treated as 0.
func (renderer *Renderer) SetSize(width, height int) {
	renderer.width = max(0, width)
	renderer.height = max(0, height)
	renderer.canvas.resize(renderer.width, renderer.height, renderer.pixelRatio)
}

// Size returns the logical size of the Renderer.
func (renderer *Renderer) Size() (width, height int) {
	return renderer.width, renderer.height
}

// SetPixelRatio sets the number of device pixels per logical pixel. A ratio of 2 renders at double resolution, for example,
// which is what high-density displays want. Negative values are treated as 0.
func (renderer *Renderer) SetPixelRatio(ratio float64) {
	renderer.pixelRatio = math.Max(0, ratio)
	renderer.canvas.resize(renderer.width, renderer.height, renderer.pixelRatio)
}

// PixelRatio returns the number of device pixels per logical pixel.
func (renderer *Renderer) PixelRatio() float64 {
	return renderer.pixelRatio
}

// Canvas returns the Canvas the Renderer draws into.
func (renderer *Renderer) Canvas() *Canvas {
	return renderer.canvas
}

// Render clears the Canvas and draws every visible Model in the Scene from the Camera's point of view. Once the frame
// is complete, the Canvas presents it to any Containers it has been appended to.
func (renderer *Renderer) Render(scene *Scene, camera *Camera) {

	start := time.Now()

	renderer.DebugInfo.DrawnModels = 0
	renderer.DebugInfo.TotalModels = 0
	renderer.DebugInfo.DrawnEdges = 0
	renderer.DebugInfo.DrawnTris = 0
	renderer.DebugInfo.TotalTris = 0

	img := renderer.canvas.image
	draw.Draw(img, img.Bounds(), image.NewUniform(renderer.clearColor), image.Point{}, draw.Src)

	if !img.Bounds().Empty() {

		viewProjection := camera.ViewProjection()
		cameraPos := camera.WorldPosition()

		for _, model := range scene.Models() {

			renderer.DebugInfo.TotalModels++

			if !visibleInTree(model) || model.Mesh == nil || model.Material == nil {
				continue
			}

			renderer.DebugInfo.DrawnModels++
			renderer.DebugInfo.TotalTris += len(model.Mesh.Triangles)

			transform := model.Transform()
			mvp := transform.Mult(viewProjection)

			renderer.clipVerts = renderer.clipVerts[:0]
			for _, v := range model.Mesh.Vertices {
				renderer.clipVerts = append(renderer.clipVerts, mvp.MultVecW(v))
			}

			if model.Material.Wireframe {
				renderer.drawWireframe(model)
			} else {
				renderer.worldVerts = renderer.worldVerts[:0]
				for _, v := range model.Mesh.Vertices {
					renderer.worldVerts = append(renderer.worldVerts, transform.MultVec(v))
				}
				renderer.drawFilled(model, cameraPos)
			}

		}

	}

	renderer.DebugInfo.Frames++
	renderer.DebugInfo.FrameTime = time.Since(start)

	renderer.canvas.present()

}

func visibleInTree(node INode) bool {
	for n := node; n != nil; n = n.Parent() {
		if !n.Visible() {
			return false
		}
	}
	return true
}

func (renderer *Renderer) drawWireframe(model *Model) {

	img := renderer.canvas.image
	w, h := float64(img.Rect.Dx()), float64(img.Rect.Dy())

	halfWidth := model.Material.LineWidth * renderer.pixelRatio / 2
	if halfWidth <= 0 {
		return
	}

	// Lines are clipped to slightly past the canvas so their caps don't show at its edges.
	pad := halfWidth + 1

	for _, edge := range model.Mesh.Edges() {

		a, b, ok := clipSegment(renderer.clipVerts[edge[0]], renderer.clipVerts[edge[1]])
		if !ok {
			continue
		}

		sa := ClipToScreen(a, w, h)
		sb := ClipToScreen(b, w, h)

		x0, y0, x1, y1, ok := clipLine2D(sa.X, sa.Y, sb.X, sb.Y, -pad, -pad, w+pad, h+pad)
		if !ok {
			continue
		}

		dx, dy := x1-x0, y1-y0
		length := math.Hypot(dx, dy)
		if length > 0 {
			dx, dy = dx/length*halfWidth, dy/length*halfWidth
		} else {
			dx, dy = halfWidth, 0
		}

		// The line's a quad, extended past both end points by half of its width.
		quad := [][2]float64{
			{x0 - dx - dy, y0 - dy + dx},
			{x1 + dx - dy, y1 + dy + dx},
			{x1 + dx + dy, y1 + dy - dx},
			{x0 - dx + dy, y0 - dy - dx},
		}

		if renderer.fillPolygon(quad, model.Material.Color) {
			renderer.DebugInfo.DrawnEdges++
		}

	}

}

func (renderer *Renderer) drawFilled(model *Model, cameraPos Vector) {

	img := renderer.canvas.image
	w, h := float64(img.Rect.Dx()), float64(img.Rect.Dy())
	mat := model.Material

	renderer.triangles.Clear()

	for _, tri := range model.Mesh.Triangles {

		renderer.polygon = append(renderer.polygon[:0], renderer.clipVerts[tri[0]], renderer.clipVerts[tri[1]], renderer.clipVerts[tri[2]])
		renderer.polygon = clipPolygonToPlane(renderer.polygon, nearPlaneDistance)
		renderer.polygon = clipPolygonToPlane(renderer.polygon, farPlaneDistance)

		if len(renderer.polygon) < 3 {
			continue
		}

		renderer.points = renderer.points[:0]
		depth := 0.0

		for _, v := range renderer.polygon {
			s := ClipToScreen(v, w, h)
			renderer.points = append(renderer.points, [2]float64{s.X, s.Y})
			depth += v.W
		}

		// Counter-clockwise triangles end up clockwise once Y points downwards, so front faces have a negative area.
		area := polygonArea(renderer.points)
		if area == 0 || (mat.BackfaceCulling && area > 0) {
			continue
		}

		color := mat.Color

		if !mat.Shadeless {
			a, b, c := renderer.worldVerts[tri[0]], renderer.worldVerts[tri[1]], renderer.worldVerts[tri[2]]
			normal := b.Sub(a).Cross(c.Sub(a)).Unit()
			center := a.Add(b).Add(c).Scale(1.0 / 3)
			facing := math.Abs(normal.Dot(cameraPos.Sub(center).Unit()))
			shade := float32(0.25 + 0.75*facing)
			color.R *= shade
			color.G *= shade
			color.B *= shade
		}

		renderer.triangles.AddTriangle(renderer.points, depth/float64(len(renderer.polygon)), color)

	}

	if renderer.triangles.IsEmpty() {
		return
	}

	// Painter's algorithm; the furthest triangles are drawn first.
	renderer.triangles.Sort()

	renderer.triangles.ForEach(func(points [][2]float64, color Color) {
		if renderer.fillPolygon(points, color) {
			renderer.DebugInfo.DrawnTris++
		}
	})

}

// fillPolygon rasterizes the polygon (in canvas pixel coordinates) and blends it onto the canvas in the color given.
// It returns false if the polygon doesn't touch the canvas.
func (renderer *Renderer) fillPolygon(points [][2]float64, color Color) bool {

	img := renderer.canvas.image
	bounds := img.Bounds()

	minX, minY, maxX, maxY := polygonBounds(points)

	// Polygons that hang off of the canvas get clipped down to size first.
	if minX < -1 || minY < -1 || maxX > float64(bounds.Max.X+1) || maxY > float64(bounds.Max.Y+1) {
		points = clipPolygon2D(points, -1, -1, float64(bounds.Max.X+1), float64(bounds.Max.Y+1))
		if len(points) < 3 {
			return false
		}
		minX, minY, maxX, maxY = polygonBounds(points)
	}

	rect := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	if rect.Empty() || !rect.Overlaps(bounds) {
		return false
	}

	w, h := rect.Dx(), rect.Dy()
	ox, oy := float64(rect.Min.X), float64(rect.Min.Y)

	raster := renderer.rasterizer
	raster.Reset(w, h)
	raster.DrawOp = draw.Src
	raster.MoveTo(float32(points[0][0]-ox), float32(points[0][1]-oy))
	for _, p := range points[1:] {
		raster.LineTo(float32(p[0]-ox), float32(p[1]-oy))
	}
	raster.ClosePath()

	if cap(renderer.maskPix) < w*h {
		renderer.maskPix = make([]uint8, w*h)
	}
	mask := &image.Alpha{
		Pix:    renderer.maskPix[:w*h],
		Stride: w,
		Rect:   image.Rect(0, 0, w, h),
	}

	raster.Draw(mask, mask.Rect, image.Opaque, image.Point{})

	if !renderer.Antialias {
		for i, a := range mask.Pix {
			if a >= 0x80 {
				mask.Pix[i] = 0xff
			} else {
				mask.Pix[i] = 0
			}
		}
	}

	draw.DrawMask(img, rect, image.NewUniform(color), image.Point{}, mask, image.Point{}, draw.Over)

	return true

}

// polygonArea returns twice the signed area of the polygon.
func polygonArea(points [][2]float64) float64 {
	area := 0.0
	for i, p := range points {
		next := points[(i+1)%len(points)]
		area += p[0]*next[1] - next[0]*p[1]
	}
	return area
}

func polygonBounds(points [][2]float64) (minX, minY, maxX, maxY float64) {
	minX, minY = points[0][0], points[0][1]
	maxX, maxY = minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p[0])
		minY = math.Min(minY, p[1])
		maxX = math.Max(maxX, p[0])
		maxY = math.Max(maxY, p[1])
	}
	return
}

func nearPlaneDistance(v Vector) float64 { return v.Z + v.W }

func farPlaneDistance(v Vector) float64 { return v.W - v.Z }

func lerpClip(a, b Vector, t float64) Vector {
	return Vector{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
		W: a.W + (b.W-a.W)*t,
	}
}

// clipSegment clips a clip-space line segment to the near and far planes. It returns false if nothing of the segment remains.
func clipSegment(a, b Vector) (Vector, Vector, bool) {

	for _, distance := range []func(Vector) float64{nearPlaneDistance, farPlaneDistance} {

		da, db := distance(a), distance(b)

		if da < 0 && db < 0 {
			return a, b, false
		}

		if da < 0 {
			a = lerpClip(a, b, da/(da-db))
		} else if db < 0 {
			b = lerpClip(b, a, db/(db-da))
		}

	}

	return a, b, true

}

// clipPolygonToPlane clips a clip-space polygon to one plane using the Sutherland-Hodgman algorithm. The polygon slice is reused.
func clipPolygonToPlane(polygon []Vector, distance func(Vector) float64) []Vector {

	if len(polygon) == 0 {
		return polygon
	}

	input := append(make([]Vector, 0, len(polygon)), polygon...)
	out := polygon[:0]

	prev := input[len(input)-1]
	prevDist := distance(prev)

	for _, current := range input {

		currentDist := distance(current)

		if currentDist >= 0 {
			if prevDist < 0 {
				out = append(out, lerpClip(prev, current, prevDist/(prevDist-currentDist)))
			}
			out = append(out, current)
		} else if prevDist >= 0 {
			out = append(out, lerpClip(prev, current, prevDist/(prevDist-currentDist)))
		}

		prev, prevDist = current, currentDist

	}

	return out

}

// clipPolygon2D clips a screen-space polygon to the rectangle given.
func clipPolygon2D(points [][2]float64, minX, minY, maxX, maxY float64) [][2]float64 {

	edges := []func(p [2]float64) float64{
		func(p [2]float64) float64 { return p[0] - minX },
		func(p [2]float64) float64 { return maxX - p[0] },
		func(p [2]float64) float64 { return p[1] - minY },
		func(p [2]float64) float64 { return maxY - p[1] },
	}

	lerp := func(a, b [2]float64, t float64) [2]float64 {
		return [2]float64{a[0] + (b[0]-a[0])*t, a[1] + (b[1]-a[1])*t}
	}

	for _, distance := range edges {

		if len(points) == 0 {
			break
		}

		out := make([][2]float64, 0, len(points)+1)
		prev := points[len(points)-1]
		prevDist := distance(prev)

		for _, current := range points {
			currentDist := distance(current)
			if currentDist >= 0 {
				if prevDist < 0 {
					out = append(out, lerp(prev, current, prevDist/(prevDist-currentDist)))
				}
				out = append(out, current)
			} else if prevDist >= 0 {
				out = append(out, lerp(prev, current, prevDist/(prevDist-currentDist)))
			}
			prev, prevDist = current, currentDist
		}

		points = out

	}

	return points

}

// clipLine2D clips a screen-space line to the rectangle given using the Liang-Barsky algorithm.
func clipLine2D(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {

	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0

	for _, edge := range [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	} {

		p, q := edge[0], edge[1]

		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}

		r := q / p

		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}

	}

	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true

}
