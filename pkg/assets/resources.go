// Package assets loads shaders, textures and models and keeps them by name.
package assets

import (
	"sort"
	"time"

	"github.com/pkg/errors"

	"glsandbox/internal/logger"
	"glsandbox/internal/util"
	"glsandbox/pkg/config"
)

// ResourceManager owns named GPU resources. It is used from the render thread only.
type ResourceManager struct {
	shaders  map[string]*Shader
	textures map[string]*Texture2D
	models   map[string]*Model
	logger   *logger.Logger
}

// NewResourceManager creates an empty manager
func NewResourceManager(log *logger.Logger) *ResourceManager {
	return &ResourceManager{
		shaders:  make(map[string]*Shader),
		textures: make(map[string]*Texture2D),
		models:   make(map[string]*Model),
		logger:   log,
	}
}

// LoadShader compiles a program and stores it under name, replacing any previous one
func (rm *ResourceManager) LoadShader(vertexPath, fragmentPath, name string) (*Shader, error) {
	shader, err := LoadShader(vertexPath, fragmentPath)
	if err != nil {
		return nil, errors.Wrapf(err, "load shader %q", name)
	}
	if old, ok := rm.shaders[name]; ok {
		old.Destroy()
	}
	rm.shaders[name] = shader
	rm.logger.Debugf("Loaded shader %s", name)
	return shader, nil
}

// LoadTexture uploads an image and stores it under name
func (rm *ResourceManager) LoadTexture(path string, alpha bool, name string) (*Texture2D, error) {
	tex, err := LoadTexture(path, alpha)
	if err != nil {
		return nil, errors.Wrapf(err, "load texture %q", name)
	}
	if old, ok := rm.textures[name]; ok {
		old.Destroy()
	}
	rm.textures[name] = tex
	rm.logger.Debugf("Loaded texture %s (%dx%d)", name, tex.Width, tex.Height)
	return tex, nil
}

// LoadModel parses and uploads a model and stores it under name
func (rm *ResourceManager) LoadModel(path, name string) (*Model, error) {
	start := time.Now()
	model, err := LoadModel(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load model %q", name)
	}
	if old, ok := rm.models[name]; ok {
		old.Destroy()
	}
	rm.models[name] = model
	rm.logger.Debugf("Loaded model %s in %v", name, util.TimeTrack(start))
	return model, nil
}

// LoadManifest loads every manifest entry, stopping at the first failure
func (rm *ResourceManager) LoadManifest(manifest config.AssetManifest) error {
	for _, entry := range manifest {
		var err error
		switch entry.Type {
		case config.AssetTypeShader:
			_, err = rm.LoadShader(entry.Vertex, entry.Fragment, entry.Name)
		case config.AssetTypeTexture:
			_, err = rm.LoadTexture(entry.Path, entry.Alpha, entry.Name)
		case config.AssetTypeModel:
			_, err = rm.LoadModel(entry.Path, entry.Name)
		default:
			err = errors.Errorf("asset %q has unknown type %q", entry.Name, entry.Type)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Shader returns a loaded shader
func (rm *ResourceManager) Shader(name string) (*Shader, bool) {
	s, ok := rm.shaders[name]
	return s, ok
}

// Texture returns a loaded texture
func (rm *ResourceManager) Texture(name string) (*Texture2D, bool) {
	t, ok := rm.textures[name]
	return t, ok
}

// Model returns a loaded model
func (rm *ResourceManager) Model(name string) (*Model, bool) {
	m, ok := rm.models[name]
	return m, ok
}

// ShaderFiles lists every shader source file, for the hot-reload watcher
func (rm *ResourceManager) ShaderFiles() []string {
	var files []string
	for _, s := range rm.shaders {
		files = append(files, s.VertexPath, s.FragmentPath)
	}
	sort.Strings(files)
	return files
}

// ReloadShaders recompiles every shader using one of the changed files and
// returns the names of those reloaded. Failed reloads keep the old program.
func (rm *ResourceManager) ReloadShaders(changed []string) []string {
	var reloaded []string
	for _, name := range rm.shaderNames() {
		shader := rm.shaders[name]
		for _, path := range changed {
			if !shader.Uses(path) {
				continue
			}
			if err := shader.Reload(); err != nil {
				rm.logger.Errorf("Shader %s: %v", name, err)
			} else {
				rm.logger.Infof("Reloaded shader %s", name)
				reloaded = append(reloaded, name)
			}
			break
		}
	}
	return reloaded
}

func (rm *ResourceManager) shaderNames() []string {
	names := make([]string, 0, len(rm.shaders))
	for name := range rm.shaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clear destroys every resource
func (rm *ResourceManager) Clear() {
	for _, s := range rm.shaders {
		s.Destroy()
	}
	for _, t := range rm.textures {
		t.Destroy()
	}
	for _, m := range rm.models {
		m.Destroy()
	}
	rm.shaders = make(map[string]*Shader)
	rm.textures = make(map[string]*Texture2D)
	rm.models = make(map[string]*Model)
}
