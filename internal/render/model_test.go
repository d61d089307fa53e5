package render

import (
	"fmt"
	"strings"
	"testing"

	"gopaperwriter/internal/domain"
	"gopaperwriter/internal/paginate"
)

func paperWith(n int, layout domain.OptionLayout) domain.Paper {
	p := domain.NewPaper("Unit Test Paper", domain.ModeBasic)
	p.OptionLayout = layout
	for i := 0; i < n; i++ {
		zero := 0
		p.Questions = append(p.Questions, domain.Question{
			Text:          fmt.Sprintf("question %d", i+1),
			Options:       []string{"w", "x", "y", "z"},
			CorrectAnswer: &zero,
		})
	}
	return p
}

func TestGlobalNumberingAcrossPages(t *testing.T) {
	p := paperWith(23, domain.LayoutVertical)
	p.PageSettings = domain.PageSettings{Mode: domain.PaginationAuto, QuestionsPerPage: 10}
	m := Build(p)
	if len(m.Pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(m.Pages))
	}
	want := 1
	for _, pg := range m.Pages {
		for _, b := range pg.Blocks {
			if b.Number != want {
				t.Fatalf("block number = %d, want %d (numbering must be global)", b.Number, want)
			}
			if !strings.HasPrefix(b.Heading, fmt.Sprintf("Q%d. ", want)) {
				t.Fatalf("heading %q lacks global number %d", b.Heading, want)
			}
			want++
		}
	}
}

func TestModelPagesMatchEnginePartition(t *testing.T) {
	p := paperWith(23, domain.LayoutVertical)
	p.PageSettings = domain.PageSettings{Mode: domain.PaginationManual}
	p.Questions[4].PageBreakAfter = true
	m := Build(p)
	pages := paginate.Paginate(p.Questions, p.PageSettings)
	if len(m.Pages) != len(pages) {
		t.Fatalf("model pages %d != engine pages %d", len(m.Pages), len(pages))
	}
	for i := range pages {
		if m.Pages[i].StartIndex != pages[i].StartIndex || m.Pages[i].EndIndex != pages[i].EndIndex {
			t.Fatalf("page %d range mismatch with engine", i+1)
		}
	}
}

func TestLanguageOverrideWinsForLabelsAndPrefix(t *testing.T) {
	p := paperWith(2, domain.LayoutVertical)
	p.Language = "hindi"
	p.Questions[1].Language = "english"
	m := Build(p)
	blocks := m.Pages[0].Blocks
	if !strings.HasPrefix(blocks[0].Heading, "प्र1. ") {
		t.Fatalf("paper language should prefix question 1: %q", blocks[0].Heading)
	}
	if !strings.Contains(blocks[0].Rows[0].Cells[0], "(क)") {
		t.Fatalf("hindi label expected: %q", blocks[0].Rows[0].Cells[0])
	}
	if !strings.HasPrefix(blocks[1].Heading, "Q2. ") {
		t.Fatalf("question override should win for question 2: %q", blocks[1].Heading)
	}
	if !strings.Contains(blocks[1].Rows[0].Cells[0], "(A)") {
		t.Fatalf("english label expected: %q", blocks[1].Rows[0].Cells[0])
	}
}

func TestOptionLayouts(t *testing.T) {
	vertical := Build(paperWith(1, domain.LayoutVertical)).Pages[0].Blocks[0]
	if len(vertical.Rows) != 4 || len(vertical.Rows[0].Cells) != 1 {
		t.Fatalf("vertical: want 4 single-cell rows, got %+v", vertical.Rows)
	}

	horizontal := Build(paperWith(1, domain.LayoutHorizontal)).Pages[0].Blocks[0]
	if len(horizontal.Rows) != 1 {
		t.Fatalf("horizontal: want 1 row, got %d", len(horizontal.Rows))
	}
	if cell := horizontal.Rows[0].Cells[0]; !strings.Contains(cell, "(A) w") || !strings.Contains(cell, "(D) z") {
		t.Fatalf("horizontal row incomplete: %q", cell)
	}

	grid := Build(paperWith(1, domain.LayoutGrid)).Pages[0].Blocks[0]
	if len(grid.Rows) != 2 {
		t.Fatalf("grid: want 2 rows, got %d", len(grid.Rows))
	}
	if len(grid.Rows[0].Cells) != 2 || len(grid.Rows[1].Cells) != 2 {
		t.Fatalf("grid rows must have 2 cells: %+v", grid.Rows)
	}
}

func TestGridOddOptionCount(t *testing.T) {
	p := paperWith(1, domain.LayoutGrid)
	p.Questions[0].Options = []string{"a", "b", "c"}
	b := Build(p).Pages[0].Blocks[0]
	if len(b.Rows) != 2 {
		t.Fatalf("3 options in grid = 2 rows, got %d", len(b.Rows))
	}
	if len(b.Rows[1].Cells) != 1 {
		t.Fatalf("last grid row of odd count must have 1 cell, got %d", len(b.Rows[1].Cells))
	}
}

func TestProfessionalHeaderAndMarks(t *testing.T) {
	p := paperWith(1, domain.LayoutVertical)
	p.Mode = domain.ModeProfessional
	p.Subject = "Physics"
	p.Class = "X"
	p.TotalMarks = "80"
	p.Duration = "3 hours"
	p.Instructions = "Answer all questions."
	p.Questions[0].Marks = 2
	m := Build(p)
	if m.HeaderDetails != "Subject: Physics | Class: X | Total Marks: 80 | Duration: 3 hours" {
		t.Fatalf("header details: %q", m.HeaderDetails)
	}
	if m.Instructions != "Answer all questions." {
		t.Fatalf("instructions: %q", m.Instructions)
	}
	if m.Pages[0].Blocks[0].MarksTag != "[2]" {
		t.Fatalf("marks tag: %q", m.Pages[0].Blocks[0].MarksTag)
	}
}

func TestBasicModeOmitsProfessionalChrome(t *testing.T) {
	p := paperWith(1, domain.LayoutVertical)
	p.Subject = "ignored in basic mode"
	p.Questions[0].Marks = 5
	m := Build(p)
	if m.HeaderDetails != "" || m.Instructions != "" {
		t.Fatalf("basic mode must not emit professional header")
	}
	if m.Pages[0].Blocks[0].MarksTag != "" {
		t.Fatalf("basic mode must not tag marks")
	}
}

func TestEmptyPaperBuildsZeroPages(t *testing.T) {
	p := domain.NewPaper("", domain.ModeBasic)
	m := Build(p)
	if len(m.Pages) != 0 {
		t.Fatalf("empty paper must build zero pages, got %d", len(m.Pages))
	}
	if m.Title != "QUESTION PAPER" {
		t.Fatalf("blank name must fall back to default title, got %q", m.Title)
	}
}

func TestBlankFieldsRenderAsEmptyStrings(t *testing.T) {
	p := paperWith(1, domain.LayoutVertical)
	p.Questions[0].Text = ""
	p.Questions[0].Options = []string{"", ""}
	m := Build(p) // must not panic or error
	b := m.Pages[0].Blocks[0]
	if b.Heading != "Q1. " {
		t.Fatalf("blank text should render as empty string: %q", b.Heading)
	}
}
