package assets

import (
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// uniformCacheSize bounds the uniform location cache per program
const uniformCacheSize = 64

// Shader is a linked vertex + fragment program loaded from files
type Shader struct {
	ID           uint32
	VertexPath   string
	FragmentPath string

	uniforms *lru.Cache[string, int32]
}

// LoadShader reads, compiles and links a program from two source files
func LoadShader(vertexPath, fragmentPath string) (*Shader, error) {
	vs, fs, err := readShaderSources(vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}

	id, err := linkProgram(vs, fs)
	if err != nil {
		return nil, errors.Wrapf(err, "shader %s + %s", vertexPath, fragmentPath)
	}

	uniforms, err := lru.New[string, int32](uniformCacheSize)
	if err != nil {
		gl.DeleteProgram(id)
		return nil, errors.Wrap(err, "uniform cache")
	}

	return &Shader{ID: id, VertexPath: vertexPath, FragmentPath: fragmentPath, uniforms: uniforms}, nil
}

func readShaderSources(vertexPath, fragmentPath string) (string, string, error) {
	vs, err := os.ReadFile(vertexPath)
	if err != nil {
		return "", "", errors.Wrap(err, "read vertex shader")
	}
	fs, err := os.ReadFile(fragmentPath)
	if err != nil {
		return "", "", errors.Wrap(err, "read fragment shader")
	}
	return string(vs), string(fs), nil
}

// Uses reports whether path is one of the shader's source files
func (s *Shader) Uses(path string) bool {
	return samePath(s.VertexPath, path) || samePath(s.FragmentPath, path)
}

// Reload recompiles the sources. On failure the previous program stays active.
func (s *Shader) Reload() error {
	vs, fs, err := readShaderSources(s.VertexPath, s.FragmentPath)
	if err != nil {
		return err
	}
	id, err := linkProgram(vs, fs)
	if err != nil {
		return errors.Wrapf(err, "reload %s + %s", s.VertexPath, s.FragmentPath)
	}

	gl.DeleteProgram(s.ID)
	s.ID = id
	s.uniforms.Purge()
	return nil
}

// Use makes the program current
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

func (s *Shader) location(name string) int32 {
	if loc, ok := s.uniforms.Get(name); ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	s.uniforms.Add(name, loc)
	return loc
}

// SetInteger sets an int or bool uniform on the current program
func (s *Shader) SetInteger(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

// SetFloat sets a float uniform on the current program
func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

// SetMatrix4 sets a mat4 uniform on the current program
func (s *Shader) SetMatrix4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &m[0])
}

// Destroy deletes the program
func (s *Shader) Destroy() {
	gl.DeleteProgram(s.ID)
	s.ID = 0
}

func linkProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteProgram(program)
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)
		return 0, errors.Errorf("program linking failed: %s", strings.TrimRight(log, "\x00"))
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

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
		return 0, errors.Errorf("%s compilation failed: %s", shaderKind(shaderType), strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

func shaderKind(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex shader"
	case gl.FRAGMENT_SHADER:
		return "fragment shader"
	default:
		return "shader"
	}
}
