package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attrib describes one float vertex attribute
type Attrib struct {
	Location   uint32
	Components int32
}

// VertexBuffer is a static interleaved float32 vertex buffer with its
// vertex array, drawn as a triangle list.
type VertexBuffer struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// NewVertexBuffer uploads vertices and links the interleaved attributes in order
func NewVertexBuffer(vertices []float32, attribs ...Attrib) *VertexBuffer {
	var stride int32
	for _, a := range attribs {
		stride += a.Components
	}

	vb := &VertexBuffer{vertexCount: int32(len(vertices)) / stride}

	gl.GenVertexArrays(1, &vb.vao)
	gl.GenBuffers(1, &vb.vbo)
	gl.BindVertexArray(vb.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	var offset int32
	for _, a := range attribs {
		gl.VertexAttribPointer(a.Location, a.Components, gl.FLOAT, false, stride*4, gl.PtrOffset(int(offset*4)))
		gl.EnableVertexAttribArray(a.Location)
		offset += a.Components
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vb
}

// Draw issues a triangle list draw over the whole buffer
func (vb *VertexBuffer) Draw() {
	gl.BindVertexArray(vb.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, vb.vertexCount)
	gl.BindVertexArray(0)
}

// Destroy releases the buffer and vertex array
func (vb *VertexBuffer) Destroy() {
	gl.DeleteBuffers(1, &vb.vbo)
	gl.DeleteVertexArrays(1, &vb.vao)
}

// screenQuadVertices covers clip space with two triangles: position, uv
var screenQuadVertices = []float32{
	-1.0, 1.0, 0.0, 1.0,
	-1.0, -1.0, 0.0, 0.0,
	1.0, -1.0, 1.0, 0.0,

	-1.0, 1.0, 0.0, 1.0,
	1.0, -1.0, 1.0, 0.0,
	1.0, 1.0, 1.0, 1.0,
}

// NewScreenQuad builds the full-screen quad used by the post-process pass
func NewScreenQuad() *VertexBuffer {
	return NewVertexBuffer(screenQuadVertices, Attrib{0, 2}, Attrib{1, 2})
}
