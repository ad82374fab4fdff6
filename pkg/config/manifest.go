package config

import (
	"fmt"
	"sort"
)

// AssetType represents the type of asset
type AssetType string

const (
	AssetTypeTexture AssetType = "texture"
	AssetTypeModel   AssetType = "model"
	AssetTypeShader  AssetType = "shader"
)

// Names the sandbox looks assets up by
const (
	ModelBackpack  = "backpack"
	TextureFloor   = "floor"
	ShaderLighting = "lighting"
	ShaderPostProc = "post_proc"
)

// AssetEntry describes one named asset on disk
type AssetEntry struct {
	Name string    `yaml:"name"`
	Type AssetType `yaml:"type"`
	// Path is the file for models and textures
	Path string `yaml:"path,omitempty"`
	// Vertex and Fragment are the stage sources for shaders
	Vertex   string `yaml:"vertex,omitempty"`
	Fragment string `yaml:"fragment,omitempty"`
	// Alpha loads a texture with its alpha channel
	Alpha bool `yaml:"alpha,omitempty"`
}

// Files returns every path the entry reads
func (e AssetEntry) Files() []string {
	if e.Type == AssetTypeShader {
		return []string{e.Vertex, e.Fragment}
	}
	return []string{e.Path}
}

// AssetManifest is the list of assets to load
type AssetManifest []AssetEntry

// DefaultManifest lists the assets the sandbox scene needs
func DefaultManifest() AssetManifest {
	return AssetManifest{
		{Name: ModelBackpack, Type: AssetTypeModel, Path: "assets/objects/backpack/backpack.obj"},
		{Name: TextureFloor, Type: AssetTypeTexture, Path: "assets/textures/old_floor.jpg"},
		{Name: ShaderLighting, Type: AssetTypeShader, Vertex: "assets/shaders/lightingVS.glsl", Fragment: "assets/shaders/lightingFS.glsl"},
		{Name: ShaderPostProc, Type: AssetTypeShader, Vertex: "assets/shaders/postProcessingVS.glsl", Fragment: "assets/shaders/postProcessingFS.glsl"},
	}
}

// Validate checks for missing fields and duplicate names
func (m AssetManifest) Validate() error {
	seen := make(map[string]bool, len(m))
	for i, e := range m {
		if e.Name == "" {
			return fmt.Errorf("asset %d: name cannot be empty", i)
		}
		if seen[e.Name] {
			return fmt.Errorf("asset with name '%s' already exists", e.Name)
		}
		seen[e.Name] = true

		switch e.Type {
		case AssetTypeModel, AssetTypeTexture:
			if e.Path == "" {
				return fmt.Errorf("asset '%s': path cannot be empty", e.Name)
			}
		case AssetTypeShader:
			if e.Vertex == "" || e.Fragment == "" {
				return fmt.Errorf("asset '%s': shaders need vertex and fragment sources", e.Name)
			}
		default:
			return fmt.Errorf("asset '%s': unknown type '%s'", e.Name, e.Type)
		}
	}
	return nil
}

// Find returns the entry with the given name
func (m AssetManifest) Find(name string) (AssetEntry, bool) {
	for _, e := range m {
		if e.Name == name {
			return e, true
		}
	}
	return AssetEntry{}, false
}

// ByType returns the entries of one type sorted by name
func (m AssetManifest) ByType(assetType AssetType) []AssetEntry {
	var result []AssetEntry
	for _, e := range m {
		if e.Type == assetType {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
