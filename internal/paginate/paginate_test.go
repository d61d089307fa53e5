package paginate

import (
	"testing"

	"gopaperwriter/internal/domain"
)

func makeQuestions(n int) []domain.Question {
	qs := make([]domain.Question, n)
	for i := range qs {
		zero := 0
		qs[i] = domain.Question{Text: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: &zero}
	}
	return qs
}

func autoSettings(perPage int) domain.PageSettings {
	return domain.PageSettings{Mode: domain.PaginationAuto, QuestionsPerPage: perPage}
}

func manualSettings() domain.PageSettings {
	return domain.PageSettings{Mode: domain.PaginationManual}
}

func TestAutoPartitionSizes(t *testing.T) {
	// 23 questions at 10 per page: sizes [10 10 3], page 3 spans [20,22].
	pages := Paginate(makeQuestions(23), autoSettings(10))
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	wantSizes := []int{10, 10, 3}
	for i, p := range pages {
		if len(p.Questions) != wantSizes[i] {
			t.Fatalf("page %d size = %d, want %d", i+1, len(p.Questions), wantSizes[i])
		}
		if p.Number != i+1 {
			t.Fatalf("page number = %d, want %d", p.Number, i+1)
		}
	}
	last := pages[2]
	if last.StartIndex != 20 || last.EndIndex != 22 {
		t.Fatalf("last page range = [%d,%d], want [20,22]", last.StartIndex, last.EndIndex)
	}
}

func TestPartitionCompleteness(t *testing.T) {
	qs := makeQuestions(37)
	for i := range qs {
		qs[i].Text = string(rune('A' + i%26))
	}
	for _, settings := range []domain.PageSettings{autoSettings(1), autoSettings(7), autoSettings(50), manualSettings()} {
		pages := Paginate(qs, settings)
		var flat []domain.Question
		for _, p := range pages {
			flat = append(flat, p.Questions...)
		}
		if len(flat) != len(qs) {
			t.Fatalf("settings %+v: partition lost questions: %d != %d", settings, len(flat), len(qs))
		}
		for i := range qs {
			if flat[i].Text != qs[i].Text {
				t.Fatalf("settings %+v: question %d reordered", settings, i)
			}
		}
	}
}

func TestManualNoBreaksIsSinglePage(t *testing.T) {
	pages := Paginate(makeQuestions(23), manualSettings())
	if len(pages) != 1 {
		t.Fatalf("expected single page, got %d", len(pages))
	}
	if pages[0].StartIndex != 0 || pages[0].EndIndex != 22 {
		t.Fatalf("page range = [%d,%d], want [0,22]", pages[0].StartIndex, pages[0].EndIndex)
	}
}

func TestManualBreakFidelity(t *testing.T) {
	qs := makeQuestions(23)
	qs[4].PageBreakAfter = true
	pages := Paginate(qs, manualSettings())
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if len(pages[0].Questions) != 5 || len(pages[1].Questions) != 18 {
		t.Fatalf("page sizes = [%d,%d], want [5,18]", len(pages[0].Questions), len(pages[1].Questions))
	}
	if pages[1].StartIndex != 5 || pages[1].EndIndex != 22 {
		t.Fatalf("second page range = [%d,%d], want [5,22]", pages[1].StartIndex, pages[1].EndIndex)
	}
}

func TestManualBreakOnLastQuestionAddsNoEmptyPage(t *testing.T) {
	qs := makeQuestions(4)
	qs[3].PageBreakAfter = true
	pages := Paginate(qs, manualSettings())
	if len(pages) != 1 {
		t.Fatalf("break on last question must not create an empty page, got %d pages", len(pages))
	}
}

func TestEmptySequenceYieldsZeroPages(t *testing.T) {
	if pages := Paginate(nil, autoSettings(10)); len(pages) != 0 {
		t.Fatalf("auto: empty input produced %d pages", len(pages))
	}
	if pages := Paginate([]domain.Question{}, manualSettings()); len(pages) != 0 {
		t.Fatalf("manual: empty input produced %d pages", len(pages))
	}
}

func TestPerPageClamping(t *testing.T) {
	pages := Paginate(makeQuestions(5), autoSettings(0))
	if len(pages) != 5 {
		t.Fatalf("perPage<1 must clamp to 1: got %d pages", len(pages))
	}
	pages = Paginate(makeQuestions(60), autoSettings(999))
	if len(pages) != 2 {
		t.Fatalf("perPage>50 must clamp to 50: got %d pages", len(pages))
	}
	if len(pages[0].Questions) != 50 {
		t.Fatalf("first clamped page size = %d, want 50", len(pages[0].Questions))
	}
}

func TestPolicySwitchIdempotence(t *testing.T) {
	qs := makeQuestions(23)
	qs[7].PageBreakAfter = true // dormant under auto
	before := Paginate(qs, autoSettings(10))
	_ = Paginate(qs, manualSettings())
	after := Paginate(qs, autoSettings(10))
	if len(before) != len(after) {
		t.Fatalf("partition changed across policy switch: %d != %d", len(before), len(after))
	}
	for i := range before {
		if before[i].StartIndex != after[i].StartIndex || before[i].EndIndex != after[i].EndIndex {
			t.Fatalf("page %d range changed across policy switch", i+1)
		}
	}
}

func TestPageOf(t *testing.T) {
	pages := Paginate(makeQuestions(23), autoSettings(10))
	cases := map[int]int{0: 1, 9: 1, 10: 2, 19: 2, 20: 3, 22: 3}
	for idx, want := range cases {
		if got := PageOf(pages, idx); got != want {
			t.Fatalf("PageOf(%d) = %d, want %d", idx, got, want)
		}
	}
	if got := PageOf(pages, 23); got != 0 {
		t.Fatalf("out-of-range index should map to page 0, got %d", got)
	}
}
