package assets

import (
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
	"github.com/udhos/gwob"
)

// Vertex layout shared with the floor plane: position, normal, uv
const (
	AttribPosition = 0
	AttribNormal   = 1
	AttribUV       = 2

	vertexFloats = 8
)

// mesh is a contiguous index range drawn with one diffuse texture
type mesh struct {
	name       string
	indexBegin int
	indexCount int
	diffuse    *Texture2D
}

// Model is an OBJ model uploaded to one vertex array, drawn per material group
type Model struct {
	Path string

	vao, vbo, ebo uint32
	meshes        []mesh
	textures      []*Texture2D
}

func parserOptions() *gwob.ObjParserOptions {
	return &gwob.ObjParserOptions{Logger: func(string) {}}
}

// LoadModel parses an OBJ file with its material library and uploads it.
// Diffuse maps are loaded relative to the model's directory.
func LoadModel(path string) (*Model, error) {
	obj, err := gwob.NewObjFromFile(path, parserOptions())
	if err != nil {
		return nil, errors.Wrapf(err, "parse model %s", path)
	}

	vertices, err := interleave(obj)
	if err != nil {
		return nil, errors.Wrapf(err, "model %s", path)
	}

	m := &Model{Path: path}
	dir := filepath.Dir(path)

	var materials gwob.MaterialLib
	if obj.Mtllib != "" {
		materials, err = gwob.ReadMaterialLibFromFile(filepath.Join(dir, obj.Mtllib), parserOptions())
		if err != nil {
			return nil, errors.Wrapf(err, "material library %s", obj.Mtllib)
		}
	}

	loaded := make(map[string]*Texture2D)
	for _, group := range obj.Groups {
		mh := mesh{name: group.Name, indexBegin: group.IndexBegin, indexCount: group.IndexCount}

		if mtl, ok := materials.Lib[group.Usemtl]; ok && mtl.MapKd != "" {
			tex, seen := loaded[mtl.MapKd]
			if !seen {
				tex, err = LoadTexture(filepath.Join(dir, mtl.MapKd), false)
				if err != nil {
					m.Destroy()
					return nil, errors.Wrapf(err, "material %s", mtl.Name)
				}
				loaded[mtl.MapKd] = tex
				m.textures = append(m.textures, tex)
			}
			mh.diffuse = tex
		}
		m.meshes = append(m.meshes, mh)
	}

	m.upload(vertices, indices32(obj.Indices))
	return m, nil
}

// interleave repacks gwob's coordinate stream into position, normal, uv.
// Missing normals or texture coordinates are zero filled.
func interleave(obj *gwob.Obj) ([]float32, error) {
	if obj.StrideSize == 0 {
		return nil, errors.New("model has no vertices")
	}
	stride := obj.StrideSize / 4
	posOff := obj.StrideOffsetPosition / 4
	uvOff := obj.StrideOffsetTexture / 4
	normOff := obj.StrideOffsetNormal / 4

	count := len(obj.Coord) / stride
	out := make([]float32, 0, count*vertexFloats)
	for i := 0; i < count; i++ {
		v := obj.Coord[i*stride : (i+1)*stride]
		out = append(out, v[posOff], v[posOff+1], v[posOff+2])
		if obj.NormCoordFound {
			out = append(out, v[normOff], v[normOff+1], v[normOff+2])
		} else {
			out = append(out, 0, 0, 0)
		}
		if obj.TextCoordFound {
			out = append(out, v[uvOff], v[uvOff+1])
		} else {
			out = append(out, 0, 0)
		}
	}
	return out, nil
}

func indices32(indices []int) []uint32 {
	out := make([]uint32, len(indices))
	for i, idx := range indices {
		out[i] = uint32(idx)
	}
	return out
}

func (m *Model) upload(vertices []float32, indices []uint32) {
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(vertexFloats * 4)
	gl.VertexAttribPointerWithOffset(AttribPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(AttribPosition)
	gl.VertexAttribPointerWithOffset(AttribNormal, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(AttribNormal)
	gl.VertexAttribPointerWithOffset(AttribUV, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(AttribUV)

	gl.BindVertexArray(0)
}

// Draw draws every group with its diffuse texture bound to unit 0
func (m *Model) Draw(shader *Shader) {
	shader.Use()
	shader.SetInteger("texture_diffuse1", 0)

	gl.BindVertexArray(m.vao)
	for _, mh := range m.meshes {
		if mh.diffuse != nil {
			mh.diffuse.Bind(0)
		}
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(mh.indexCount), gl.UNSIGNED_INT, uintptr(mh.indexBegin*4))
	}
	gl.BindVertexArray(0)
	UnbindTexture()
}

// Destroy releases the buffers and the model's textures
func (m *Model) Destroy() {
	for _, tex := range m.textures {
		tex.Destroy()
	}
	m.textures = nil
	if m.vao != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
