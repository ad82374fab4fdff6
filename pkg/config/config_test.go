package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glsandbox/pkg/render"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Render.Samples)
	assert.Equal(t, render.EffectSelection{}, cfg.PostProcessing.Initial)
	assert.Len(t, cfg.Assets.Manifest, 4)
}

func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultConfig().Window, cfg.Window)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
window:
  width: 800
  height: 600
render:
  samples: 8
post_processing:
  initial:
    kernel: blur
    color: greyscale
camera:
  fov: 30
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "OpenGL Sandbox", cfg.Window.Title, "unset fields keep defaults")
	assert.Equal(t, 8, cfg.Render.Samples)
	assert.Equal(t, render.KernelBlur, cfg.PostProcessing.Initial.Kernel)
	assert.Equal(t, render.ColorGreyscale, cfg.PostProcessing.Initial.Color)
	assert.Equal(t, float32(30), cfg.Camera.Fov)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"samples":  "render:\n  samples: 1\n",
		"size":     "window:\n  width: 0\n",
		"fov":      "camera:\n  fov: 90\n",
		"planes":   "camera:\n  near_plane: 5\n  far_plane: 1\n",
		"effect":   "post_processing:\n  initial:\n    kernel: emboss\n",
		"manifest": "assets:\n  manifest:\n    - name: a\n      type: texture\n",
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0644))

			cfg, err := LoadConfig(path)
			assert.Error(t, err)
			assert.Equal(t, DefaultConfig().Render, cfg.Render)
		})
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.PostProcessing.Initial.SetKernel(render.KernelRidge, true)
	cfg.Assets.HotReload = true

	require.NoError(t, SaveConfig(cfg, path))
	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestManifestValidate(t *testing.T) {
	m := DefaultManifest()
	require.NoError(t, m.Validate())

	dup := append(AssetManifest{}, m...)
	dup = append(dup, m[0])
	assert.ErrorContains(t, dup.Validate(), "already exists")

	shader := AssetManifest{{Name: "s", Type: AssetTypeShader, Vertex: "a.glsl"}}
	assert.ErrorContains(t, shader.Validate(), "vertex and fragment")

	unknown := AssetManifest{{Name: "x", Type: "sound", Path: "x.wav"}}
	assert.ErrorContains(t, unknown.Validate(), "unknown type")
}

func TestManifestLookup(t *testing.T) {
	m := DefaultManifest()

	e, ok := m.Find(ShaderPostProc)
	require.True(t, ok)
	assert.Equal(t, []string{"assets/shaders/postProcessingVS.glsl", "assets/shaders/postProcessingFS.glsl"}, e.Files())

	_, ok = m.Find("nope")
	assert.False(t, ok)

	shaders := m.ByType(AssetTypeShader)
	require.Len(t, shaders, 2)
	assert.Equal(t, ShaderLighting, shaders[0].Name)
	assert.Equal(t, ShaderPostProc, shaders[1].Name)
}
