package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udhos/gwob"

	"glsandbox/internal/logger"
)

func quietLogger() *logger.Logger {
	return logger.NewWriterLogger("error", io.Discard)
}

func TestDecodeImageFlipsRows(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	src.Set(0, 0, red)
	src.Set(1, 0, red)
	src.Set(0, 1, blue)
	src.Set(1, 1, blue)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	rgba, err := decodeImage(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, rgba.Rect.Dx())
	// The top row of the file ends up last
	assert.Equal(t, color.RGBA{B: 255, A: 255}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, rgba.RGBAAt(0, 1))
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	_, err := decodeImage(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

const triangleOBJ = `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`

func TestInterleaveOrdersPositionNormalUV(t *testing.T) {
	obj, err := gwob.NewObjFromBuf("triangle", []byte(triangleOBJ), parserOptions())
	require.NoError(t, err)

	vertices, err := interleave(obj)
	require.NoError(t, err)
	require.Len(t, vertices, 3*vertexFloats)

	second := vertices[vertexFloats : 2*vertexFloats]
	assert.Equal(t, []float32{1, 0, 0, 0, 0, 1, 1, 0}, second)
	assert.Equal(t, []uint32{0, 1, 2}, indices32(obj.Indices))
}

func TestInterleaveEmptyModel(t *testing.T) {
	_, err := interleave(&gwob.Obj{})
	assert.Error(t, err)
}

func TestShaderUses(t *testing.T) {
	s := &Shader{VertexPath: "assets/shaders/postProcessingVS.glsl", FragmentPath: "assets/shaders/postProcessingFS.glsl"}
	assert.True(t, s.Uses("./assets/shaders/postProcessingFS.glsl"))
	assert.False(t, s.Uses("assets/shaders/lightingFS.glsl"))
}

func TestShaderFilesSorted(t *testing.T) {
	rm := NewResourceManager(quietLogger())
	rm.shaders["post_proc"] = &Shader{VertexPath: "b.vs", FragmentPath: "b.fs"}
	rm.shaders["lighting"] = &Shader{VertexPath: "a.vs", FragmentPath: "a.fs"}

	assert.Equal(t, []string{"a.fs", "a.vs", "b.fs", "b.vs"}, rm.ShaderFiles())
	assert.Equal(t, []string{"lighting", "post_proc"}, rm.shaderNames())

	_, ok := rm.Shader("lighting")
	assert.True(t, ok)
	_, ok = rm.Texture("floor")
	assert.False(t, ok)
}

func TestReadShaderSourcesMissingFile(t *testing.T) {
	_, _, err := readShaderSources(filepath.Join(t.TempDir(), "missing.vs"), "missing.fs")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "postProcessingFS.glsl")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(watched, []byte("void main() {}"), 0o644))

	w, err := NewWatcher(quietLogger(), watched)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(watched, []byte("void main() { }"), 0o644))

	select {
	case path := <-w.Changes():
		assert.Equal(t, absPath(watched), path)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherDrainDeduplicates(t *testing.T) {
	w := &Watcher{changes: make(chan string, 4)}
	w.changes <- "/a"
	w.changes <- "/b"
	w.changes <- "/a"

	assert.Equal(t, []string{"/a", "/b"}, w.Drain())
	assert.Empty(t, w.Drain())
}
