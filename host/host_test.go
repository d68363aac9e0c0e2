package host

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/solarlune/wiresphere"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTriggerRunsOnce(t *testing.T) {

	calls := 0
	trigger := NewLoadTrigger(func() { calls++ })

	trigger.Signal()
	trigger.Signal()

	assert.Equal(t, 1, calls, "signalling the trigger twice shouldn't run its function twice")

}

func TestSnapshot(t *testing.T) {

	path := filepath.Join(t.TempDir(), "frame.png")
	snapshot := NewSnapshot(path)

	renderer := wiresphere.NewRenderer()
	renderer.SetSize(64, 32)
	renderer.SetPixelRatio(2)
	renderer.SetClearColor(wiresphere.NewColorFromHex(0x102030))

	snapshot.AppendChild(renderer.Canvas())
	assert.Nil(t, snapshot.Image(), "nothing should be captured before a frame is presented")

	renderer.Render(wiresphere.NewScene("Empty"), wiresphere.NewCamera(45, 2, 0.1, 100))

	require.NoError(t, snapshot.Err())
	require.NotNil(t, snapshot.Image())
	assert.Equal(t, image.Rect(0, 0, 128, 64), snapshot.Image().Bounds())
	assert.NotSame(t, renderer.Canvas().Image(), snapshot.Image(), "the snapshot should keep its own copy of the frame")

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 128, 64), img.Bounds())

	r, g, b, a := img.At(10, 10).RGBA()
	assert.Equal(t, [4]uint32{0x10, 0x20, 0x30, 0xff}, [4]uint32{r >> 8, g >> 8, b >> 8, a >> 8})

}

func TestSnapshotInMemory(t *testing.T) {

	snapshot := NewSnapshot("")

	renderer := wiresphere.NewRenderer()
	snapshot.AppendChild(renderer.Canvas())
	renderer.Render(wiresphere.NewScene("Empty"), wiresphere.NewCamera(45, 2, 0.1, 100))

	require.NoError(t, snapshot.Err())
	assert.Equal(t, image.Rect(0, 0, 300, 150), snapshot.Image().Bounds())

}

func TestSnapshotWriteError(t *testing.T) {

	snapshot := NewSnapshot(filepath.Join(t.TempDir(), "missing", "frame.png"))

	renderer := wiresphere.NewRenderer()
	snapshot.AppendChild(renderer.Canvas())
	renderer.Render(wiresphere.NewScene("Empty"), wiresphere.NewCamera(45, 2, 0.1, 100))

	assert.Error(t, snapshot.Err())
	assert.NotNil(t, snapshot.Image(), "the frame should still be kept in memory")

}

func TestGroup(t *testing.T) {

	first, second := NewSnapshot(""), NewSnapshot("")

	renderer := wiresphere.NewRenderer()
	Group{first, second}.AppendChild(renderer.Canvas())
	renderer.Render(wiresphere.NewScene("Empty"), wiresphere.NewCamera(45, 2, 0.1, 100))

	assert.NotNil(t, first.Image())
	assert.NotNil(t, second.Image())

}
