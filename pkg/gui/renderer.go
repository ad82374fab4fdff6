package gui

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
)

const vertexShader = `
#version 410 core

uniform mat4 ProjMtx;

layout(location = 0) in vec2 Position;
layout(location = 1) in vec2 UV;
layout(location = 2) in vec4 Color;

out vec2 Frag_UV;
out vec4 Frag_Color;

void main() {
    Frag_UV = UV;
    Frag_Color = Color;
    gl_Position = ProjMtx * vec4(Position.xy, 0, 1);
}
`

const fragmentShader = `
#version 410 core

uniform sampler2D Texture;

in vec2 Frag_UV;
in vec4 Frag_Color;

out vec4 Out_Color;

void main() {
    Out_Color = Frag_Color * texture(Texture, Frag_UV.st);
}
`

// renderer draws imgui draw lists with OpenGL 4.1
type renderer struct {
	program     uint32
	locTexture  int32
	locProjMtx  int32
	vao         uint32
	vbo         uint32
	ebo         uint32
	fontTexture uint32
}

func newRenderer(io imgui.IO) (*renderer, error) {
	program, err := createProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}

	r := &renderer{
		program:    program,
		locTexture: gl.GetUniformLocation(program, gl.Str("Texture\x00")),
		locProjMtx: gl.GetUniformLocation(program, gl.Str("ProjMtx\x00")),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	vertexSize, posOffset, uvOffset, colOffset := imgui.VertexBufferLayout()
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.EnableVertexAttribArray(0)
	gl.EnableVertexAttribArray(1)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, int32(vertexSize), uintptr(posOffset))
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, int32(vertexSize), uintptr(uvOffset))
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), uintptr(colOffset))
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.createFontTexture(io)
	return r, nil
}

func (r *renderer) createFontTexture(io imgui.IO) {
	fonts := io.Fonts()
	image := fonts.TextureDataRGBA32()

	gl.GenTextures(1, &r.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(image.Width), int32(image.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, image.Pixels)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	fonts.SetTextureID(imgui.TextureID(r.fontTexture))
}

// orthoProjection maps imgui display coordinates (origin top-left) to clip space
func orthoProjection(width, height float32) [16]float32 {
	return [16]float32{
		2 / width, 0, 0, 0,
		0, -2 / height, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}

// scissorRect converts an imgui clip rectangle to a GL scissor box
func scissorRect(clip imgui.Vec4, framebufferHeight float32) (x, y, w, h int32) {
	return int32(clip.X), int32(framebufferHeight - clip.W), int32(clip.Z - clip.X), int32(clip.W - clip.Y)
}

func (r *renderer) render(displaySize, framebufferSize [2]float32, drawData imgui.DrawData) {
	fbWidth, fbHeight := framebufferSize[0], framebufferSize[1]
	if fbWidth <= 0 || fbHeight <= 0 || !drawData.Valid() {
		return
	}
	drawData.ScaleClipRects(imgui.Vec2{X: fbWidth / displaySize[0], Y: fbHeight / displaySize[1]})

	var lastPolygonMode [2]int32
	gl.GetIntegerv(gl.POLYGON_MODE, &lastPolygonMode[0])
	lastBlend := gl.IsEnabled(gl.BLEND)
	lastCullFace := gl.IsEnabled(gl.CULL_FACE)
	lastDepthTest := gl.IsEnabled(gl.DEPTH_TEST)
	lastScissorTest := gl.IsEnabled(gl.SCISSOR_TEST)

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	projection := orthoProjection(displaySize[0], displaySize[1])
	gl.UseProgram(r.program)
	gl.Uniform1i(r.locTexture, 0)
	gl.UniformMatrix4fv(r.locProjMtx, 1, false, &projection[0])
	gl.ActiveTexture(gl.TEXTURE0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	indexSize := imgui.IndexBufferLayout()
	var indexType uint32 = gl.UNSIGNED_SHORT
	if indexSize == 4 {
		indexType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		var indexOffset uintptr
		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				gl.Scissor(scissorRect(cmd.ClipRect(), fbHeight))
				gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), indexType, indexOffset)
			}
			indexOffset += uintptr(cmd.ElementCount() * indexSize)
		}
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)

	gl.PolygonMode(gl.FRONT_AND_BACK, uint32(lastPolygonMode[0]))
	setEnabled(gl.BLEND, lastBlend)
	setEnabled(gl.CULL_FACE, lastCullFace)
	setEnabled(gl.DEPTH_TEST, lastDepthTest)
	setEnabled(gl.SCISSOR_TEST, lastScissorTest)
}

func setEnabled(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func (r *renderer) destroy() {
	gl.DeleteTextures(1, &r.fontTexture)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteBuffers(1, &r.ebo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}

func createProgram(vertexSource, fragmentSource string) (uint32, error) {
	vs, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("gui program linking failed: %v", log)
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("gui shader compilation failed: %v", log)
	}
	return shader, nil
}
