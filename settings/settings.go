// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings holds the editor's persisted preferences: canvas
// and zoom behavior, grid display, resize defaults, and theme tokens,
// stored as a YAML file.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"stencilui.org/stencil/canvas"
	"stencilui.org/stencil/render"
	"stencilui.org/stencil/resize"
)

// Zoom configures the viewport's scale behavior.
type Zoom struct {
	Min  float32 `yaml:"min"`
	Max  float32 `yaml:"max"`
	Step float32 `yaml:"step"`

	// FitMargin is the padding in screen pixels kept around content by
	// fit-to-content.
	FitMargin float32 `yaml:"fitMargin"`
}

// Grid configures the document-space alignment grid.
type Grid struct {
	Enabled  bool    `yaml:"enabled"`
	CellSize float32 `yaml:"cellSize"`
}

// Resize configures default element size limits for resize drags.
type Resize struct {
	MinSize float32 `yaml:"minSize"`
	MaxSize float32 `yaml:"maxSize"`
}

// Settings is the full persisted preference set. Use [Defaults] for a
// fully populated value.
type Settings struct {
	Zoom   Zoom          `yaml:"zoom"`
	Grid   Grid          `yaml:"grid"`
	Resize Resize        `yaml:"resize"`
	Theme  render.Tokens `yaml:"theme"`
}

// Defaults returns the settings used when no file exists yet.
func Defaults() *Settings {
	return &Settings{
		Zoom: Zoom{
			Min:       canvas.ScaleMin,
			Max:       canvas.ScaleMax,
			Step:      canvas.ZoomStep,
			FitMargin: canvas.FitMargin,
		},
		Grid: Grid{
			Enabled:  true,
			CellSize: canvas.GridCellSize,
		},
		Resize: Resize{
			MinSize: resize.DefaultMinSize,
			MaxSize: resize.DefaultMaxSize,
		},
		Theme: render.DefaultTokens(),
	}
}

// sanitize backfills zero values so a sparse or hand-edited file still
// yields usable settings.
func (s *Settings) sanitize() {
	def := Defaults()
	if s.Zoom.Min <= 0 {
		s.Zoom.Min = def.Zoom.Min
	}
	if s.Zoom.Max <= s.Zoom.Min {
		s.Zoom.Max = def.Zoom.Max
	}
	if s.Zoom.Step <= 1 {
		s.Zoom.Step = def.Zoom.Step
	}
	if s.Zoom.FitMargin < 0 {
		s.Zoom.FitMargin = def.Zoom.FitMargin
	}
	if s.Grid.CellSize <= 0 {
		s.Grid.CellSize = def.Grid.CellSize
	}
	if s.Resize.MinSize <= 0 {
		s.Resize.MinSize = def.Resize.MinSize
	}
	if s.Resize.MaxSize <= s.Resize.MinSize {
		s.Resize.MaxSize = def.Resize.MaxSize
	}
	if s.Theme.TextPrimary == "" {
		s.Theme.TextPrimary = def.Theme.TextPrimary
	}
	if s.Theme.BodyFontSize <= 0 {
		s.Theme.BodyFontSize = def.Theme.BodyFontSize
	}
	if s.Theme.BodyFontFamily == "" {
		s.Theme.BodyFontFamily = def.Theme.BodyFontFamily
	}
}

// Open reads settings from the YAML file at path. A missing file is
// not an error and yields the defaults.
func Open(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("settings: read %s: %w", path, err)
	}
	s := &Settings{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("settings: parse %s: %w", path, err)
	}
	s.sanitize()
	return s, nil
}

// Save writes the settings to the YAML file at path, creating parent
// directories as needed.
func (s *Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("settings: mkdir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("settings: write %s: %w", path, err)
	}
	return nil
}
