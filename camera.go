package wiresphere

// Camera represents a perspective camera (where you look from) in wiresphere. A Camera looks down its local -Z axis.
type Camera struct {
	*Node

	fieldOfView float64 // Vertical field of view in degrees
	aspect      float64 // Width of the view divided by its height
	near, far   float64 // The near and far clipping planes

	updateProjectionMatrix bool
	cachedProjectionMatrix Matrix4
}

// NewCamera creates a new perspective Camera. fovY is the vertical field of view in degrees, aspect is the view's width divided by its
// height, and near and far are the distances to the near and far clipping planes.
func NewCamera(fovY, aspect, near, far float64) *Camera {
	return &Camera{
		Node:                   NewNode("Camera"),
		fieldOfView:            fovY,
		aspect:                 aspect,
		near:                   near,
		far:                    far,
		updateProjectionMatrix: true,
	}
}

// Projection returns the Camera's projection matrix.
func (camera *Camera) Projection() Matrix4 {

	if !camera.updateProjectionMatrix {
		return camera.cachedProjectionMatrix
	}

	camera.cachedProjectionMatrix = NewProjectionPerspective(camera.fieldOfView, camera.aspect, camera.near, camera.far)
	camera.updateProjectionMatrix = false

	return camera.cachedProjectionMatrix

}

// ViewMatrix returns the Camera's view matrix, which moves world-space points into the Camera's view space.
func (camera *Camera) ViewMatrix() Matrix4 {

	camPos := camera.WorldPosition().Invert()
	transform := NewMatrix4Translate(camPos.X, camPos.Y, camPos.Z)

	// The rotation is orthonormal, so the transpose undoes it.
	return transform.Mult(camera.WorldRotation().Transposed())

}

// ViewProjection returns the combined view and projection matrices, moving world-space points straight into clip space.
func (camera *Camera) ViewProjection() Matrix4 {
	return camera.ViewMatrix().Mult(camera.Projection())
}

// Forward returns the unit direction the Camera is facing in world space.
func (camera *Camera) Forward() Vector {
	// We invert the forward vector because the Camera looks down -Z
	return camera.WorldRotation().Forward().Invert()
}

// WorldToClip transforms a 3D position in the world into clip space, with W holding the point's depth in front of the Camera.
func (camera *Camera) WorldToClip(vert Vector) Vector {
	return camera.ViewProjection().MultVecW(vert)
}

// ClipToScreen remaps a clip-space vertex to pixel coordinates on a surface of the given width and height (with 0, 0 in the top-left).
// The returned Z holds the normalized device depth (-1 at the near plane, 1 at the far plane).
// Vertices behind the camera (with a W <= 0) can't be meaningfully projected and should be clipped before calling this.
func ClipToScreen(vert Vector, width, height float64) Vector {
	return Vector{
		X: (vert.X/vert.W + 1) / 2 * width,
		Y: (1 - vert.Y/vert.W) / 2 * height,
		Z: vert.Z / vert.W,
		W: 1,
	}
}

// WorldToScreenPixels transforms a 3D position in the world to a position on a surface of the given size, with X and Y representing the pixels.
// The boolean return value is false if the point is behind the Camera.
func (camera *Camera) WorldToScreenPixels(vert Vector, width, height float64) (Vector, bool) {
	clip := camera.WorldToClip(vert)
	if clip.W <= 0 {
		return Vector{}, false
	}
	return ClipToScreen(clip, width, height), true
}

// SetFieldOfView sets the vertical field of the view of the camera in degrees.
func (camera *Camera) SetFieldOfView(fovY float64) {
	if camera.fieldOfView == fovY {
		return
	}
	camera.fieldOfView = fovY
	camera.updateProjectionMatrix = true
}

// FieldOfView returns the vertical field of view in degrees.
func (camera *Camera) FieldOfView() float64 {
	return camera.fieldOfView
}

// SetAspectRatio sets the Camera's aspect ratio (width divided by height).
func (camera *Camera) SetAspectRatio(aspect float64) {
	if camera.aspect == aspect {
		return
	}
	camera.aspect = aspect
	camera.updateProjectionMatrix = true
}

// AspectRatio returns the Camera's aspect ratio (width divided by height).
func (camera *Camera) AspectRatio() float64 {
	return camera.aspect
}

// Near returns the near plane of a camera.
func (camera *Camera) Near() float64 {
	return camera.near
}

// SetNear sets the near plane of a camera.
func (camera *Camera) SetNear(near float64) {
	if camera.near == near {
		return
	}
	camera.near = near
	camera.updateProjectionMatrix = true
}

// Far returns the far plane of a camera.
func (camera *Camera) Far() float64 {
	return camera.far
}

// SetFar sets the far plane of the camera.
func (camera *Camera) SetFar(far float64) {
	if camera.far == far {
		return
	}
	camera.far = far
	camera.updateProjectionMatrix = true
}

// AddChildren parents the provided children Nodes to the Camera.
func (camera *Camera) AddChildren(children ...INode) {
	camera.addChildren(camera, children...)
}

// Unparent unparents the Camera from its parent, removing it from the scenegraph.
func (camera *Camera) Unparent() {
	if camera.parent != nil {
		camera.parent.RemoveChildren(camera)
	}
}

// Root returns the root node in this tree by recursively traversing this node's hierarchy of parents upwards.
func (camera *Camera) Root() INode {
	if camera.parent == nil {
		return camera
	}
	return camera.parent.Root()
}

// Type returns the NodeType for this object.
func (camera *Camera) Type() NodeType {
	return NodeTypeCamera
}
