// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stencilui.org/stencil/element"
	"stencilui.org/stencil/math32"
)

func TestComposeSizes(t *testing.T) {
	var c Composer
	p := c.Compose(element.Config{
		Type: element.Frame,
		Size: element.Size{
			Width:  element.Px(400),
			Height: element.Dimension{Mode: element.FillParent},
		},
		Style: element.Style{Opacity: 1},
	})
	assert.Equal(t, SizeValue{Kind: SizeFixed, Value: 400}, p.Width)
	assert.Equal(t, SizeValue{Kind: SizeFill}, p.Height)
}

func TestComposeAutoAndHug(t *testing.T) {
	var c Composer
	p := c.Compose(element.Config{
		Type: element.Frame,
		Size: element.Size{
			Width:  element.Dimension{Mode: element.Auto},
			Height: element.Dimension{Mode: element.HugContent},
		},
		Style: element.Style{Opacity: 1},
	})
	assert.Equal(t, SizeAuto, p.Width.Kind)
	assert.Equal(t, SizeHug, p.Height.Kind)
}

func TestComposeAspectRatioDerivesAxis(t *testing.T) {
	var c Composer
	p := c.Compose(element.Config{
		Type: element.ImageType,
		Size: element.Size{
			Width:       element.Px(400),
			Height:      element.Dimension{Mode: element.Auto},
			AspectRatio: 2,
		},
		Style: element.Style{Opacity: 1},
	})
	assert.Equal(t, SizeValue{Kind: SizeFixed, Value: 200}, p.Height)

	p = c.Compose(element.Config{
		Type: element.ImageType,
		Size: element.Size{
			Width:       element.Dimension{Mode: element.Auto},
			Height:      element.Px(100),
			AspectRatio: 2,
		},
		Style: element.Style{Opacity: 1},
	})
	assert.Equal(t, SizeValue{Kind: SizeFixed, Value: 200}, p.Width)
}

func TestComposeClampsDegenerateValues(t *testing.T) {
	var c Composer
	p := c.Compose(element.Config{
		Type: element.Frame,
		Size: element.Size{
			Width:    element.Px(math32.NaN()),
			Height:   element.Px(-50),
			MinWidth: math32.Inf(1),
		},
		Style: element.Style{Opacity: 7, Blur: -3},
	})
	assert.Equal(t, float32(0), p.Width.Value)
	assert.Equal(t, float32(0), p.Height.Value)
	assert.Equal(t, float32(0), p.MinWidth)
	assert.Equal(t, float32(1), p.Opacity)
	assert.Equal(t, float32(0), p.Blur)
}

func TestComposeTextualDefaults(t *testing.T) {
	var c Composer
	p := c.Compose(element.Config{Type: element.TextType, Style: element.Style{Opacity: 1}})
	assert.Equal(t, "text-primary", p.Text.Color)
	assert.Equal(t, float32(16), p.Text.FontSize)
	assert.Contains(t, p.Text.FontFamily, "Inter")

	// Non-textual elements get no typography defaults.
	p = c.Compose(element.Config{Type: element.Frame, Style: element.Style{Opacity: 1}})
	assert.Empty(t, p.Text.Color)
}

func TestComposeCustomTokens(t *testing.T) {
	c := Composer{Tokens: Tokens{TextPrimary: "#111", BodyFontSize: 14, BodyFontFamily: "Georgia"}}
	p := c.Compose(element.Config{Type: element.ButtonType, Style: element.Style{Opacity: 1}})
	assert.Equal(t, "#111", p.Text.Color)
	assert.Equal(t, float32(14), p.Text.FontSize)
}

func TestComposeLegacyShorthands(t *testing.T) {
	var c Composer
	p := c.Compose(element.Config{
		Type: element.TextType,
		Style: element.Style{
			Opacity:         1,
			Color:           "#abc",
			BackgroundColor: "#def",
		},
	})
	assert.Equal(t, "#abc", p.Text.Color)
	assert.Equal(t, Fill{Kind: FillSolid, Color: "#def"}, p.Background)
}

func TestComposeLegacyDoesNotOverrideStructured(t *testing.T) {
	var c Composer
	p := c.Compose(element.Config{
		Type: element.TextType,
		Style: element.Style{
			Opacity:    1,
			Color:      "#legacy",
			Text:       element.Typography{Color: "#structured"},
			Background: element.Background{Kind: element.BackgroundSolid, Color: "#solid"},

			BackgroundColor: "#legacybg",
		},
	})
	assert.Equal(t, "#structured", p.Text.Color)
	assert.Equal(t, "#solid", p.Background.Color)
}

func TestResolveBackgroundDegradesInvalid(t *testing.T) {
	assert.Equal(t, FillNone, resolveBackground(element.Background{Kind: element.BackgroundSolid}).Kind)
	assert.Equal(t, FillNone, resolveBackground(element.Background{Kind: element.BackgroundGradient}).Kind)
	assert.Equal(t, FillNone, resolveBackground(element.Background{Kind: element.BackgroundImage, Image: &element.ImageFill{}}).Kind)
}

func TestResolveBackgroundImageDefaults(t *testing.T) {
	f := resolveBackground(element.Background{
		Kind:  element.BackgroundImage,
		Image: &element.ImageFill{Source: "bg.png"},
	})
	assert.Equal(t, FillImage, f.Kind)
	assert.Equal(t, "cover", f.Image.Size)
	assert.Equal(t, "center", f.Image.Position)
	assert.Equal(t, "no-repeat", f.Image.Repeat)
}

func TestComposeCarriesHidden(t *testing.T) {
	var c Composer
	p := c.Compose(element.Config{Type: element.Frame, Hidden: true, Style: element.Style{Opacity: 1}})
	assert.True(t, p.Hidden)
}
