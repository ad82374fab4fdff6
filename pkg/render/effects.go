package render

import (
	"fmt"
	"strings"
)

// KernelEffect is the convolution applied by the post-process pass
type KernelEffect int

const (
	KernelNone KernelEffect = iota
	KernelBlur
	KernelSharpen
	KernelEdge
	KernelRidge
)

// KernelEffects lists the selectable kernels in display order
var KernelEffects = []KernelEffect{KernelBlur, KernelSharpen, KernelRidge, KernelEdge}

var kernelNames = map[KernelEffect]string{
	KernelNone:    "none",
	KernelBlur:    "blur",
	KernelSharpen: "sharpen",
	KernelEdge:    "edge",
	KernelRidge:   "ridge",
}

func (k KernelEffect) String() string {
	if name, ok := kernelNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kernel(%d)", int(k))
}

// Label is the capitalised name shown in the GUI
func (k KernelEffect) Label() string {
	return label(k.String())
}

// ParseKernelEffect converts a name to a KernelEffect. The empty string is KernelNone.
func ParseKernelEffect(s string) (KernelEffect, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return KernelNone, nil
	}
	for k, name := range kernelNames {
		if name == s {
			return k, nil
		}
	}
	return KernelNone, fmt.Errorf("unknown kernel effect %q", s)
}

func (k KernelEffect) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

func (k *KernelEffect) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseKernelEffect(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ColorEffect is the per-pixel colour transform applied after the kernel
type ColorEffect int

const (
	ColorNone ColorEffect = iota
	ColorGreyscale
	ColorInversion
)

// ColorEffects lists the selectable colour effects in display order
var ColorEffects = []ColorEffect{ColorGreyscale, ColorInversion}

var colorNames = map[ColorEffect]string{
	ColorNone:      "none",
	ColorGreyscale: "greyscale",
	ColorInversion: "inversion",
}

func (c ColorEffect) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

// Label is the capitalised name shown in the GUI
func (c ColorEffect) Label() string {
	return label(c.String())
}

// ParseColorEffect converts a name to a ColorEffect. The empty string is ColorNone.
func ParseColorEffect(s string) (ColorEffect, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ColorNone, nil
	}
	if s == "grayscale" {
		s = "greyscale"
	}
	for c, name := range colorNames {
		if name == s {
			return c, nil
		}
	}
	return ColorNone, fmt.Errorf("unknown color effect %q", s)
}

func (c ColorEffect) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

func (c *ColorEffect) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseColorEffect(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func label(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// EffectSelection is the active post-process configuration. Each group holds
// a single value, so at most one kernel and one colour effect are ever active.
type EffectSelection struct {
	Kernel KernelEffect `yaml:"kernel"`
	Color  ColorEffect  `yaml:"color"`
}

// SetKernel enables or disables a kernel effect. Enabling replaces whatever
// kernel was active; disabling only affects the active kernel.
func (s *EffectSelection) SetKernel(k KernelEffect, on bool) {
	switch {
	case on:
		s.Kernel = k
	case s.Kernel == k:
		s.Kernel = KernelNone
	}
}

// SetColor enables or disables a colour effect with the same rules as SetKernel
func (s *EffectSelection) SetColor(c ColorEffect, on bool) {
	switch {
	case on:
		s.Color = c
	case s.Color == c:
		s.Color = ColorNone
	}
}

// Uniform names read by the post-processing fragment shader
const (
	UniformBlur      = "postProcessing.blur"
	UniformSharpen   = "postProcessing.sharpen"
	UniformEdge      = "postProcessing.edge"
	UniformRidge     = "postProcessing.ridge"
	UniformGreyscale = "postProcessing.greyscale"
	UniformInversion = "postProcessing.inversion"
)

// EffectFlag is one boolean shader parameter
type EffectFlag struct {
	Uniform string
	On      bool
}

// Flags expands the selection into the per-effect booleans the shader reads
func (s EffectSelection) Flags() []EffectFlag {
	return []EffectFlag{
		{UniformBlur, s.Kernel == KernelBlur},
		{UniformSharpen, s.Kernel == KernelSharpen},
		{UniformEdge, s.Kernel == KernelEdge},
		{UniformRidge, s.Kernel == KernelRidge},
		{UniformGreyscale, s.Color == ColorGreyscale},
		{UniformInversion, s.Color == ColorInversion},
	}
}

func (s EffectSelection) String() string {
	return fmt.Sprintf("kernel=%s color=%s", s.Kernel, s.Color)
}
