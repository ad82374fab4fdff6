package render

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func flagMap(sel EffectSelection) map[string]bool {
	m := make(map[string]bool)
	for _, f := range sel.Flags() {
		m[f.Uniform] = f.On
	}
	return m
}

func countOn(m map[string]bool, names ...string) int {
	n := 0
	for _, name := range names {
		if m[name] {
			n++
		}
	}
	return n
}

func TestInitialSelectionHasNoEffects(t *testing.T) {
	var sel EffectSelection
	for _, f := range sel.Flags() {
		assert.False(t, f.On, f.Uniform)
	}
	assert.Len(t, sel.Flags(), 6)
}

func TestBlurThenSharpen(t *testing.T) {
	var sel EffectSelection
	sel.SetKernel(KernelBlur, true)
	sel.SetKernel(KernelSharpen, true)

	m := flagMap(sel)
	assert.False(t, m[UniformBlur])
	assert.True(t, m[UniformSharpen])
	assert.False(t, m[UniformEdge])
	assert.False(t, m[UniformRidge])
}

func TestDisableActiveAndInactive(t *testing.T) {
	sel := EffectSelection{Kernel: KernelEdge, Color: ColorGreyscale}

	sel.SetKernel(KernelBlur, false)
	assert.Equal(t, KernelEdge, sel.Kernel, "disabling an inactive kernel changes nothing")

	sel.SetKernel(KernelEdge, false)
	assert.Equal(t, KernelNone, sel.Kernel)

	sel.SetColor(ColorInversion, true)
	assert.Equal(t, ColorInversion, sel.Color)
	sel.SetColor(ColorInversion, false)
	assert.Equal(t, ColorNone, sel.Color)
}

func TestGroupsAreIndependent(t *testing.T) {
	var sel EffectSelection
	sel.SetKernel(KernelRidge, true)
	sel.SetColor(ColorGreyscale, true)

	assert.Equal(t, EffectSelection{Kernel: KernelRidge, Color: ColorGreyscale}, sel)
	assert.Equal(t, "kernel=ridge color=greyscale", sel.String())
}

func TestAtMostOneEffectPerGroup(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var sel EffectSelection

	for i := 0; i < 10000; i++ {
		if rng.Intn(2) == 0 {
			sel.SetKernel(KernelEffects[rng.Intn(len(KernelEffects))], rng.Intn(3) > 0)
		} else {
			sel.SetColor(ColorEffects[rng.Intn(len(ColorEffects))], rng.Intn(3) > 0)
		}

		m := flagMap(sel)
		require.LessOrEqual(t, countOn(m, UniformBlur, UniformSharpen, UniformEdge, UniformRidge), 1)
		require.LessOrEqual(t, countOn(m, UniformGreyscale, UniformInversion), 1)
	}
}

func TestParseEffects(t *testing.T) {
	k, err := ParseKernelEffect(" Sharpen ")
	require.NoError(t, err)
	assert.Equal(t, KernelSharpen, k)

	k, err = ParseKernelEffect("")
	require.NoError(t, err)
	assert.Equal(t, KernelNone, k)

	_, err = ParseKernelEffect("emboss")
	assert.Error(t, err)

	c, err := ParseColorEffect("grayscale")
	require.NoError(t, err)
	assert.Equal(t, ColorGreyscale, c)

	_, err = ParseColorEffect("sepia")
	assert.Error(t, err)

	assert.Equal(t, "Ridge", KernelRidge.Label())
	assert.Equal(t, "Inversion", ColorInversion.Label())
}

func TestSelectionYAML(t *testing.T) {
	var sel EffectSelection
	require.NoError(t, yaml.Unmarshal([]byte("kernel: edge\ncolor: inversion\n"), &sel))
	assert.Equal(t, EffectSelection{Kernel: KernelEdge, Color: ColorInversion}, sel)

	out, err := yaml.Marshal(sel)
	require.NoError(t, err)
	assert.Equal(t, "kernel: edge\ncolor: inversion\n", string(out))

	assert.Error(t, yaml.Unmarshal([]byte("kernel: wobble\n"), &sel))
}
