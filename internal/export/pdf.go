/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"gopaperwriter/internal/domain"
	"gopaperwriter/internal/render"
	"gopaperwriter/internal/textlayout"
)

// PDFOptions controls PDF export behavior.
// Units are points (pt) unless otherwise noted.
//
// Text uses built-in Helvetica for portability. Non-Latin scripts (Hindi,
// Odia) need a Unicode TTF supplied via FontFile; Helvetica cannot encode
// them. Wrapping follows the rune-count model of textlayout, so line breaks
// are deterministic regardless of the embedded font.
type PDFOptions struct {
	PageSize string // preset name: a4 (default), letter, legal
	FontFile string // optional TTF to embed for full Unicode coverage
}

// WritePaperPDF renders the paper to a multi-page PDF at outPath. Every
// engine page starts a new sheet; a page whose questions outgrow the sheet
// continues onto extra sheets, questions never move between engine pages.
func WritePaperPDF(p domain.Paper, outPath string, opt PDFOptions) error {
	pdf := buildPaperPDF(p, opt)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func buildPaperPDF(p domain.Paper, opt PDFOptions) *gofpdf.Fpdf {
	m := render.Build(p)
	preset, _ := ResolvePageSize(opt.PageSize)

	margin := settingPt(p.Layout.MarginSize, 32)
	qSize := settingPt(p.Layout.QuestionSize, 16)
	oSize := settingPt(p.Layout.OptionSize, 14)
	spacing := settingFloat(p.Layout.LineSpacing, 1.5)
	qGap := settingPt(p.Layout.QuestionSpacing, 24)
	usable := preset.WidthPt - 2*margin

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: preset.WidthPt, Ht: preset.HeightPt},
		OrientationStr: "",
	})
	pdf.SetTitle(m.Title, true)
	pdf.SetAuthor("Go Paper Writer", true)

	family := "Helvetica"
	if opt.FontFile != "" {
		pdf.AddUTF8Font("paper", "", opt.FontFile)
		pdf.AddUTF8Font("paper", "B", opt.FontFile)
		family = "paper"
	}

	// perLine maps a font size to the rune budget of one printed line, the
	// same approximation textlayout.RuneWidthEstimator uses.
	perLine := func(size, width float64) int {
		n := int(width / (size * 0.5))
		if n < 1 {
			n = 1
		}
		return n
	}

	var y float64
	line := func(x, size float64, style, text string) {
		pdf.SetFont(family, style, size)
		for _, l := range textlayout.WrapRunes(text, perLine(size, usable-(x-margin))) {
			pdf.Text(x, y, l)
			y += size * spacing
		}
	}
	centered := func(size float64, style, text string) {
		pdf.SetFont(family, style, size)
		w := pdf.GetStringWidth(text)
		x := (preset.WidthPt - w) / 2
		if x < margin {
			x = margin
		}
		pdf.Text(x, y, text)
		y += size * spacing
	}

	// blockHeight predicts a question block's printed height so the loop can
	// start a continuation sheet before drawing past the bottom edge.
	blockHeight := func(b render.QuestionBlock) float64 {
		h := float64(len(textlayout.WrapRunes(b.Heading, perLine(qSize, usable)))) * qSize * spacing
		for _, row := range b.Rows {
			var rh float64
			for i, cell := range row.Cells {
				x := margin + 18
				if len(row.Cells) == 2 && i == 1 {
					x = margin + usable/2
				}
				ch := float64(len(textlayout.WrapRunes(cell, perLine(oSize, usable-(x-margin))))) * oSize * spacing
				if ch > rh {
					rh = ch
				}
			}
			h += rh
		}
		return h + qGap
	}

	top := func() float64 { return margin + qSize }
	bottom := preset.HeightPt - margin

	for pi, pg := range m.Pages {
		pdf.AddPage()
		y = top()

		if pi == 0 {
			centered(qSize+4, "B", m.Title)
			centered(oSize, "", m.Subtitle)
			if m.HeaderDetails != "" {
				centered(oSize, "", m.HeaderDetails)
			}
			if m.Instructions != "" {
				y += oSize * 0.5
				line(margin, oSize, "", m.Instructions)
			}
			y += qGap
		}

		for _, b := range pg.Blocks {
			// a block taller than a whole sheet still gets drawn from the top
			if y > top() && y+blockHeight(b) > bottom {
				pdf.AddPage()
				y = top()
			}
			heading := b.Heading
			if b.MarksTag != "" {
				pdf.SetFont(family, "", oSize)
				pdf.Text(preset.WidthPt-margin-pdf.GetStringWidth(b.MarksTag), y, b.MarksTag)
			}
			line(margin, qSize, "B", heading)
			for _, row := range b.Rows {
				switch len(row.Cells) {
				case 2: // grid
					pdf.SetFont(family, "", oSize)
					rowTop := y
					line(margin+18, oSize, "", row.Cells[0])
					colEnd := y
					y = rowTop
					line(margin+usable/2, oSize, "", row.Cells[1])
					if colEnd > y {
						y = colEnd
					}
				default:
					line(margin+18, oSize, "", row.Cells[0])
				}
			}
			y += qGap
		}

		if pi == len(m.Pages)-1 {
			y += qGap
			if y+oSize*spacing > bottom {
				pdf.AddPage()
				y = top()
			}
			centered(oSize, "", render.Footer)
		}
	}
	if len(m.Pages) == 0 {
		// an empty paper still produces a valid document with its header
		pdf.AddPage()
		y = margin + qSize
		centered(qSize+4, "B", m.Title)
		centered(oSize, "", m.Subtitle)
	}
	return pdf
}

// settingPt parses a point-valued layout setting, falling back when the
// stored string is not a positive number.
func settingPt(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func settingFloat(s string, def float64) float64 {
	return settingPt(s, def)
}
