package domain

import (
	"encoding/json"
	"testing"
)

func TestNewPaperDefaults(t *testing.T) {
	p := NewPaper("Midterm", "")
	if p.Mode != ModeBasic {
		t.Fatalf("empty mode should default to basic, got %q", p.Mode)
	}
	if p.Language != "english" {
		t.Fatalf("default language: got %q", p.Language)
	}
	if p.PageSettings.Mode != PaginationAuto || p.PageSettings.QuestionsPerPage != 10 {
		t.Fatalf("unexpected default page settings: %+v", p.PageSettings)
	}
	if p.Questions == nil {
		t.Fatalf("questions must be initialized")
	}
}

func TestQuestionLanguagePrecedence(t *testing.T) {
	p := NewPaper("P", ModeBasic)
	p.Language = "hindi"
	q := Question{Text: "x"}
	if got := p.QuestionLanguage(q); got != "hindi" {
		t.Fatalf("paper language should apply, got %q", got)
	}
	q.Language = "odia"
	if got := p.QuestionLanguage(q); got != "odia" {
		t.Fatalf("question override should win, got %q", got)
	}
}

func TestQuestionCloneIsDeep(t *testing.T) {
	idx := 1
	q := Question{Text: "q", Options: []string{"a", "b"}, CorrectAnswer: &idx}
	c := q.Clone()
	c.Options[0] = "changed"
	*c.CorrectAnswer = 0
	if q.Options[0] != "a" {
		t.Fatalf("clone shares options slice")
	}
	if *q.CorrectAnswer != 1 {
		t.Fatalf("clone shares correct answer pointer")
	}
}

func TestQuestionJSONKeysMatchInterchange(t *testing.T) {
	idx := 2
	q := Question{Text: "What is π?", Options: []string{"3", "3.14", "4"}, CorrectAnswer: &idx, PageBreakAfter: true}
	b, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"question", "options", "correctAnswer", "pageBreak"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("missing interchange key %q in %s", key, b)
		}
	}
}

func TestMathSymbolsNonEmpty(t *testing.T) {
	if len(MathSymbols) == 0 {
		t.Fatalf("math palette is empty")
	}
	for _, s := range MathSymbols {
		if s.Glyph == "" || s.Label == "" {
			t.Fatalf("palette entry incomplete: %+v", s)
		}
	}
}
