// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/iox/yamlx"
)

// RenderStateAsset is the on-disk, human-editable form of a [RenderState],
// loadable from TOML, YAML, or JSON depending on file extension.
type RenderStateAsset struct {
	Cull       string `toml:"cull" yaml:"cull" json:"cull"`
	ZTest      string `toml:"zTest" yaml:"zTest" json:"zTest"`
	ZWrite     bool   `toml:"zWrite" yaml:"zWrite" json:"zWrite"`
	AlphaBlend string `toml:"alphaBlend" yaml:"alphaBlend" json:"alphaBlend"`
}

// FromRenderState converts a [RenderState] to its asset form.
func FromRenderState(s RenderState) RenderStateAsset {
	return RenderStateAsset{
		Cull:       cullModeNames[s.Cull],
		ZTest:      zTestFuncNames[s.ZTest],
		ZWrite:     s.ZWrite,
		AlphaBlend: alphaBlendModeNames[s.AlphaBlend],
	}
}

var cullModeNames = map[CullMode]string{CullOff: "off", CullFront: "front", CullBack: "back"}
var zTestFuncNames = map[ZTestFunc]string{
	ZAlways: "always", ZLess: "less", ZGreater: "greater",
	ZLEqual: "lequal", ZGEqual: "gequal", ZEqual: "equal", ZNotEqual: "notequal",
}
var alphaBlendModeNames = map[AlphaBlendMode]string{BlendOff: "off", BlendSrcAlpha: "srcAlpha"}

func reverseLookup[K comparable](m map[K]string, name string, what string) (K, error) {
	for k, v := range m {
		if v == name {
			return k, nil
		}
	}
	var zero K
	return zero, fmt.Errorf("xyz: unknown %s %q", what, name)
}

// RenderState converts the asset back to a [RenderState].
func (a RenderStateAsset) RenderState() (RenderState, error) {
	cull, err := reverseLookup(cullModeNames, a.Cull, "cull mode")
	if err != nil {
		return RenderState{}, err
	}
	zTest, err := reverseLookup(zTestFuncNames, a.ZTest, "z-test function")
	if err != nil {
		return RenderState{}, err
	}
	blend, err := reverseLookup(alphaBlendModeNames, a.AlphaBlend, "alpha blend mode")
	if err != nil {
		return RenderState{}, err
	}
	return RenderState{Cull: cull, ZTest: zTest, ZWrite: a.ZWrite, AlphaBlend: blend}, nil
}

// LoadRenderState reads a [RenderState] from filename, dispatching on its
// extension (.toml, .yaml/.yml, or .json).
func LoadRenderState(filename string) (RenderState, error) {
	var asset RenderStateAsset
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Open(&asset, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(&asset, filename)
	case ".json":
		err = jsonx.Open(&asset, filename)
	default:
		return RenderState{}, fmt.Errorf("xyz: unsupported render state file extension %q", ext)
	}
	if err != nil {
		return RenderState{}, err
	}
	return asset.RenderState()
}

// SaveRenderState writes state to filename, dispatching on its extension.
func SaveRenderState(state RenderState, filename string) error {
	asset := FromRenderState(state)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return tomlx.Save(&asset, filename)
	case ".yaml", ".yml":
		return yamlx.Save(&asset, filename)
	case ".json":
		return jsonx.Save(&asset, filename)
	default:
		return fmt.Errorf("xyz: unsupported render state file extension %q", ext)
	}
}
