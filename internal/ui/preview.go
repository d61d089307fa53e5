/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package ui is the on-screen preview shell. The real window only exists in
// fyne builds; this file holds the build-tag-free page formatting shared by
// the app and its tests.
package ui

import (
	"fmt"
	"strings"

	"gopaperwriter/internal/render"
	"gopaperwriter/internal/textlayout"
)

// PageText flattens one render page into the plain-text block the preview
// shows. The page header appears only on the first page.
func PageText(m render.Model, pageIdx int) string {
	if pageIdx < 0 || pageIdx >= len(m.Pages) {
		return ""
	}
	var b strings.Builder
	pg := m.Pages[pageIdx]
	if pageIdx == 0 {
		b.WriteString(m.Title + "\n")
		b.WriteString(m.Subtitle + "\n")
		if m.HeaderDetails != "" {
			b.WriteString(m.HeaderDetails + "\n")
		}
		if m.Instructions != "" {
			b.WriteString(m.Instructions + "\n")
		}
		b.WriteString("\n")
	}
	for _, blk := range pg.Blocks {
		b.WriteString(blk.Heading)
		if blk.MarksTag != "" {
			b.WriteString("  " + blk.MarksTag)
		}
		b.WriteString("\n")
		for _, row := range blk.Rows {
			b.WriteString("    " + strings.Join(row.Cells, "        ") + "\n")
		}
		b.WriteString("\n")
	}
	if pageIdx == len(m.Pages)-1 {
		b.WriteString(render.Footer + "\n")
	}
	return b.String()
}

// PageCaption labels the navigation bar, e.g. "Page 2 of 3".
func PageCaption(m render.Model, pageIdx int) string {
	if len(m.Pages) == 0 {
		return "No pages"
	}
	return fmt.Sprintf("Page %d of %d", pageIdx+1, len(m.Pages))
}

// PageLineEstimate measures how many printed lines the page needs at the
// given box width, using face metrics. The window uses it to warn when a
// page is unlikely to fit one printed sheet.
func PageLineEstimate(m render.Model, pageIdx int, widthPt float64) int {
	if pageIdx < 0 || pageIdx >= len(m.Pages) {
		return 0
	}
	e := textlayout.NewFaceEstimator(nil)
	spec := textlayout.FontSpec{SizePt: 14}
	total := 0
	for _, s := range strings.Split(strings.TrimRight(PageText(m, pageIdx), "\n"), "\n") {
		if s == "" {
			total++
			continue
		}
		total += e.EstimateLines(s, widthPt, spec)
	}
	return total
}
