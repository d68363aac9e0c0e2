package wiresphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraLookAt(t *testing.T) {

	camera := NewCamera(45, 800.0/600.0, 0.1, 1000)
	camera.SetLocalPosition(-30, 40, 90)
	camera.LookAt(NewVectorZero())

	assert.True(t, camera.WorldPosition().Equals(NewVector(-30, 40, 90)), "looking at something shouldn't move the camera")

	expected := NewVector(30, -40, -90).Unit()
	assert.True(t, camera.Forward().Equals(expected), "forward was %s, not %s", camera.Forward(), expected)

	// The look target lands in the middle of the view.
	center, ok := camera.WorldToScreenPixels(NewVectorZero(), 800, 600)
	require.True(t, ok)
	assert.InDelta(t, 400, center.X, 1e-6)
	assert.InDelta(t, 300, center.Y, 1e-6)

	// Something above the target shows up higher on the screen.
	above, ok := camera.WorldToScreenPixels(NewVector(0, 10, 0), 800, 600)
	require.True(t, ok)
	assert.Less(t, above.Y, center.Y)

	// And something behind the camera can't be seen at all.
	_, ok = camera.WorldToScreenPixels(NewVector(-60, 80, 180), 800, 600)
	assert.False(t, ok)

}

func TestCameraLookAtWithParent(t *testing.T) {

	parent := NewNode("Parent")
	parent.SetLocalRotation(NewMatrix4Rotate(0, 1, 0, 1.2))
	parent.SetLocalPosition(5, 0, 0)

	camera := NewCamera(60, 1, 0.1, 100)
	parent.AddChildren(camera)
	camera.SetLocalPosition(0, 0, 10)

	target := NewVector(3, -2, 1)
	camera.LookAt(target)

	expected := target.Sub(camera.WorldPosition()).Unit()
	assert.True(t, camera.Forward().Equals(expected), "forward was %s, not %s", camera.Forward(), expected)
	assert.Equal(t, NodeTypeCamera, camera.Type())
	assert.Equal(t, INode(parent), camera.Root())

}

func TestCameraProjectionCache(t *testing.T) {

	camera := NewCamera(45, 1, 0.1, 1000)
	before := camera.Projection()

	camera.SetAspectRatio(2)
	after := camera.Projection()

	assert.InDelta(t, before[0][0]/2, after[0][0], 1e-9, "changing the aspect ratio should update the projection")
	assert.Equal(t, before[1][1], after[1][1])

	camera.SetFieldOfView(90)
	assert.InDelta(t, 1, camera.Projection()[1][1], 1e-9)

	camera.SetNear(1)
	camera.SetFar(10)
	assert.Equal(t, 1.0, camera.Near())
	assert.Equal(t, 10.0, camera.Far())
	assert.Equal(t, 90.0, camera.FieldOfView())
	assert.Equal(t, 2.0, camera.AspectRatio())

}
