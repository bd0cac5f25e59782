// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"stencilui.org/stencil/element"
	"stencilui.org/stencil/math32"
)

// Tokens are the theme values the compositor falls back to for textual
// elements that do not set their own typography.
type Tokens struct {

	// TextPrimary is the default text color token.
	TextPrimary string `yaml:"textPrimary"`

	// BodyFontSize is the default body text size in document units.
	BodyFontSize float32 `yaml:"bodyFontSize"`

	// BodyFontFamily is the default font stack.
	BodyFontFamily string `yaml:"bodyFontFamily"`
}

// DefaultTokens returns the built-in theme tokens.
func DefaultTokens() Tokens {
	return Tokens{
		TextPrimary:    "text-primary",
		BodyFontSize:   16,
		BodyFontFamily: "Inter, system-ui, sans-serif",
	}
}

// Composer maps effective configurations to render properties using a
// fixed set of theme tokens. The zero value uses [DefaultTokens].
type Composer struct {
	Tokens Tokens
}

// Compose resolves the effective configuration of one element into
// concrete render properties.
func (c Composer) Compose(cfg element.Config) Props {
	tok := c.Tokens
	if tok == (Tokens{}) {
		tok = DefaultTokens()
	}

	st := cfg.Style
	foldLegacy(&st)

	p := Props{
		Width:       resolveDimension(cfg.Size.Width),
		Height:      resolveDimension(cfg.Size.Height),
		MinWidth:    clampLimit(cfg.Size.MinWidth),
		MaxWidth:    clampLimit(cfg.Size.MaxWidth),
		MinHeight:   clampLimit(cfg.Size.MinHeight),
		MaxHeight:   clampLimit(cfg.Size.MaxHeight),
		AspectRatio: clampLimit(cfg.Size.AspectRatio),
		Padding:     st.Padding,
		Margin:      st.Margin,
		Radius:      st.Radius,
		Background:  resolveBackground(st.Background),
		Border: BorderProps{
			Style: st.Border.Style,
			Width: st.Border.Width,
			Color: st.Border.Color,
		},
		Shadows:     st.Shadows,
		Text:        st.Text,
		Opacity:     math32.Clamp(math32.Finite(st.Opacity, 1), 0, 1),
		Blur:        math32.Max(math32.Finite(st.Blur, 0), 0),
		Overflow:    st.Overflow,
		Transitions: st.Transitions,
		Hidden:      cfg.Hidden,
	}

	applyAspectRatio(&p)

	if cfg.Type.IsTextual() {
		if p.Text.Color == "" {
			p.Text.Color = tok.TextPrimary
		}
		if p.Text.FontSize == 0 {
			p.Text.FontSize = tok.BodyFontSize
		}
		if p.Text.FontFamily == "" {
			p.Text.FontFamily = tok.BodyFontFamily
		}
	}
	return p
}

// foldLegacy folds the flat color / backgroundColor shorthands still
// found in older documents into the structured fields. They are a
// compatibility fallback and are never silently dropped.
func foldLegacy(st *element.Style) {
	if st.Color != "" && st.Text.Color == "" {
		st.Text.Color = st.Color
	}
	if st.BackgroundColor != "" && st.Background.Kind == element.BackgroundNone {
		st.Background = element.Background{
			Kind:  element.BackgroundSolid,
			Color: st.BackgroundColor,
		}
	}
}

// resolveDimension maps one size axis to its render meaning. Fixed
// values are clamped to finite non-negative numbers.
func resolveDimension(d element.Dimension) SizeValue {
	switch d.Mode {
	case element.Fixed:
		return SizeValue{Kind: SizeFixed, Value: math32.Max(math32.Finite(d.Value, 0), 0)}
	case element.FillParent:
		return SizeValue{Kind: SizeFill}
	case element.HugContent:
		return SizeValue{Kind: SizeHug}
	default:
		return SizeValue{Kind: SizeAuto}
	}
}

// applyAspectRatio constrains one axis from the other after mode
// resolution: with a ratio set and exactly one fixed axis, the other
// axis becomes fixed too.
func applyAspectRatio(p *Props) {
	if p.AspectRatio <= 0 {
		return
	}
	wf := p.Width.Kind == SizeFixed
	hf := p.Height.Kind == SizeFixed
	switch {
	case wf && !hf:
		p.Height = SizeValue{Kind: SizeFixed, Value: p.Width.Value / p.AspectRatio}
	case hf && !wf:
		p.Width = SizeValue{Kind: SizeFixed, Value: p.Height.Value * p.AspectRatio}
	}
}

// resolveBackground normalizes the background: a solid without a color
// or a gradient without stops degrades to no fill rather than an
// undrawable value.
func resolveBackground(bg element.Background) Fill {
	switch bg.Kind {
	case element.BackgroundSolid:
		if bg.Color == "" {
			return Fill{Kind: FillNone}
		}
		return Fill{Kind: FillSolid, Color: bg.Color}
	case element.BackgroundGradient:
		if bg.Gradient == nil || len(bg.Gradient.Stops) == 0 {
			return Fill{Kind: FillNone}
		}
		return Fill{Kind: FillGradient, Gradient: bg.Gradient}
	case element.BackgroundImage:
		if bg.Image == nil || bg.Image.Source == "" {
			return Fill{Kind: FillNone}
		}
		img := *bg.Image
		if img.Size == "" {
			img.Size = "cover"
		}
		if img.Position == "" {
			img.Position = "center"
		}
		if img.Repeat == "" {
			img.Repeat = "no-repeat"
		}
		return Fill{Kind: FillImage, Image: &img}
	default:
		return Fill{Kind: FillNone}
	}
}

// clampLimit guards min/max/ratio limits against degenerate values.
func clampLimit(v float32) float32 {
	return math32.Max(math32.Finite(v, 0), 0)
}
