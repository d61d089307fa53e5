/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package render builds the medium-independent model of a paper: global
// question numbering, language-resolved labels and option rows, grouped into
// the pages the pagination engine derived. The preview, PDF and document
// adapters all consume this model, which is what keeps their page membership
// identical; only line wrapping within a page is adapter-specific.
package render

import (
	"fmt"
	"strings"

	"gopaperwriter/internal/domain"
	"gopaperwriter/internal/language"
	"gopaperwriter/internal/paginate"
)

// Footer is printed after the last question on the last page.
const Footer = "*** End of Question Paper ***"

// OptionRow is one printed row of options. Vertical and horizontal layouts
// produce single-cell rows; the grid layout produces two-cell rows.
type OptionRow struct {
	Cells []string
}

// QuestionBlock is one question prepared for rendering. Number is the global
// 1-based position in the question store; it never resets per page.
type QuestionBlock struct {
	Number   int
	Heading  string // e.g. "Q7. What is ...?"
	Language string
	MarksTag string // e.g. "[2]" in professional mode, else empty
	Rows     []OptionRow
}

// PageModel groups the blocks of one physical page.
type PageModel struct {
	Number     int
	StartIndex int
	EndIndex   int
	Blocks     []QuestionBlock
}

// Model is the full paper prepared for any renderer.
type Model struct {
	Title         string
	Subtitle      string
	HeaderDetails string // professional mode: "Subject: ... | Class: ..."
	Instructions  string
	Pages         []PageModel
}

// Build derives the render model from the paper. Pagination happens here,
// once, through the pagination engine; adapters must not re-partition.
// Missing or blank fields render as empty strings, never as errors: export
// always produces a complete document for whatever data exists.
func Build(p domain.Paper) Model {
	m := Model{
		Title:    strings.TrimSpace(p.Name),
		Subtitle: fmt.Sprintf("Total Questions: %d", len(p.Questions)),
	}
	if m.Title == "" {
		m.Title = "QUESTION PAPER"
	}
	if p.Mode == domain.ModeProfessional {
		var details []string
		if p.Subject != "" {
			details = append(details, "Subject: "+p.Subject)
		}
		if p.Class != "" {
			details = append(details, "Class: "+p.Class)
		}
		if p.TotalMarks != "" {
			details = append(details, "Total Marks: "+p.TotalMarks)
		}
		if p.Duration != "" {
			details = append(details, "Duration: "+p.Duration)
		}
		m.HeaderDetails = strings.Join(details, " | ")
		m.Instructions = strings.TrimSpace(p.Instructions)
	}

	pages := paginate.Paginate(p.Questions, p.PageSettings)
	m.Pages = make([]PageModel, 0, len(pages))
	for _, pg := range pages {
		pm := PageModel{Number: pg.Number, StartIndex: pg.StartIndex, EndIndex: pg.EndIndex}
		for local, q := range pg.Questions {
			global := pg.StartIndex + local
			pm.Blocks = append(pm.Blocks, buildBlock(p, q, global))
		}
		m.Pages = append(m.Pages, pm)
	}
	return m
}

func buildBlock(p domain.Paper, q domain.Question, globalIndex int) QuestionBlock {
	lang := p.QuestionLanguage(q)
	b := QuestionBlock{
		Number:   globalIndex + 1,
		Language: lang,
		Heading:  fmt.Sprintf("%s%d. %s", language.QuestionPrefix(lang), globalIndex+1, q.Text),
	}
	if p.Mode == domain.ModeProfessional && q.Marks > 0 {
		b.MarksTag = fmt.Sprintf("[%d]", q.Marks)
	}
	switch p.OptionLayout {
	case domain.LayoutHorizontal:
		parts := make([]string, len(q.Options))
		for i, opt := range q.Options {
			parts[i] = optionCell(i, opt, lang)
		}
		b.Rows = []OptionRow{{Cells: []string{strings.Join(parts, "    ")}}}
	case domain.LayoutGrid:
		for i := 0; i < len(q.Options); i += 2 {
			row := OptionRow{Cells: []string{optionCell(i, q.Options[i], lang)}}
			if i+1 < len(q.Options) {
				row.Cells = append(row.Cells, optionCell(i+1, q.Options[i+1], lang))
			}
			b.Rows = append(b.Rows, row)
		}
	default: // vertical
		for i, opt := range q.Options {
			b.Rows = append(b.Rows, OptionRow{Cells: []string{optionCell(i, opt, lang)}})
		}
	}
	return b
}

func optionCell(i int, opt, lang string) string {
	return fmt.Sprintf("(%s) %s", language.OptionLabel(i, lang), opt)
}
