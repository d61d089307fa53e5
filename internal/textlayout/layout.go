/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package textlayout isolates text measurement and line breaking behind
// deterministic interfaces. Each render adapter supplies its own measurement
// model: the preview measures with a real font face, the PDF adapter wraps
// against a fixed average glyph width, and the document adapter delegates
// wrapping to the consuming word processor. Line counts may differ between
// them; page membership never does.
package textlayout

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FontSpec describes a requested font.
type FontSpec struct {
	Family string // logical family name
	SizePt float64
	Bold   bool
	Italic bool
}

// LineEstimator predicts how many wrapped lines a text occupies in a box of
// the given width. Estimates from different implementations are compared for
// plausibility only, never for equality.
type LineEstimator interface {
	EstimateLines(text string, width float64, spec FontSpec) int
}

// Metrics provides font metrics in pixels for the resolved face.
type Metrics struct {
	Ascent, Descent, LineGap float64
}

// Provider maps FontSpec to a concrete font.Face.
type Provider interface {
	Resolve(FontSpec) (font.Face, Metrics)
}

// BasicProvider uses x/image basicfont Face7x13 for deterministic results.
type BasicProvider struct{}

func (BasicProvider) Resolve(FontSpec) (font.Face, Metrics) {
	f := basicfont.Face7x13
	m := f.Metrics()
	return f, Metrics{
		Ascent:  float64(m.Ascent.Round()),
		Descent: float64(m.Descent.Round()),
		LineGap: float64(m.Height.Round() - m.Ascent.Round() - m.Descent.Round()),
	}
}

// FaceEstimator measures words against a resolved font face and breaks on
// spaces. This is the preview's measurement model.
type FaceEstimator struct{ Provider Provider }

func NewFaceEstimator(p Provider) *FaceEstimator {
	if p == nil {
		p = BasicProvider{}
	}
	return &FaceEstimator{Provider: p}
}

func (e *FaceEstimator) EstimateLines(text string, width float64, spec FontSpec) int {
	if text == "" {
		return 1
	}
	face, _ := e.Provider.Resolve(spec)
	d := &font.Drawer{Face: face}
	measure := func(s string) float64 { return float64(d.MeasureString(s) >> 6) }
	spaceW := measure(" ")
	lines := 0
	for _, para := range strings.Split(text, "\n") {
		lines++
		var lineW float64
		for _, word := range strings.Fields(para) {
			w := measure(word)
			if lineW > 0 {
				w += spaceW
			}
			if width > 0 && lineW > 0 && lineW+w > width {
				lines++
				lineW = measure(word)
				continue
			}
			lineW += w
		}
	}
	return lines
}

// RuneWidthEstimator wraps by counting runes against a fixed average glyph
// width, the same approximation a fixed-width PDF text flow uses. CharWidth is
// in the same unit as width (points).
type RuneWidthEstimator struct{ CharWidth float64 }

func (e RuneWidthEstimator) EstimateLines(text string, width float64, spec FontSpec) int {
	cw := e.CharWidth
	if cw <= 0 {
		// Helvetica-ish average at the requested size
		cw = spec.SizePt * 0.5
		if cw <= 0 {
			cw = 6
		}
	}
	if width <= 0 {
		return strings.Count(text, "\n") + 1
	}
	perLine := int(width / cw)
	if perLine < 1 {
		perLine = 1
	}
	lines := 0
	for _, para := range strings.Split(text, "\n") {
		n := len([]rune(para))
		if n == 0 {
			lines++
			continue
		}
		lines += (n + perLine - 1) / perLine
	}
	if lines < 1 {
		lines = 1
	}
	return lines
}

// DelegatedEstimator represents a renderer that performs no wrapping of its
// own (the word processor consuming the document does it). Every text is one
// logical line.
type DelegatedEstimator struct{}

func (DelegatedEstimator) EstimateLines(text string, _ float64, _ FontSpec) int {
	return strings.Count(text, "\n") + 1
}

// WrapRunes splits text into rune-count-bounded physical lines, breaking at
// spaces where possible. Used by the PDF adapter for scripts gofpdf's own
// splitter cannot measure.
func WrapRunes(text string, perLine int) []string {
	if perLine < 1 {
		perLine = 1
	}
	var out []string
	for _, para := range strings.Split(text, "\n") {
		runes := []rune(para)
		if len(runes) == 0 {
			out = append(out, "")
			continue
		}
		for len(runes) > 0 {
			if len(runes) <= perLine {
				out = append(out, string(runes))
				break
			}
			cut := perLine
			for i := perLine; i > 0; i-- {
				if runes[i] == ' ' {
					cut = i
					break
				}
			}
			out = append(out, strings.TrimRight(string(runes[:cut]), " "))
			runes = runes[cut:]
			for len(runes) > 0 && runes[0] == ' ' {
				runes = runes[1:]
			}
		}
	}
	return out
}
