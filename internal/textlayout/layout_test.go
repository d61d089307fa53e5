package textlayout

import (
	"strings"
	"testing"
)

var fixtures = []string{
	"What is the value of π to two decimal places?",
	"A train travels 60 km in 45 minutes. What is its average speed in km/h?",
	"Short",
	"वर्गमूल √16 का मान क्या है?",
	"Line one\nLine two",
}

func TestFaceEstimatorPlausibility(t *testing.T) {
	e := NewFaceEstimator(nil)
	for _, s := range fixtures {
		narrow := e.EstimateLines(s, 80, FontSpec{SizePt: 12})
		wide := e.EstimateLines(s, 10000, FontSpec{SizePt: 12})
		if narrow < 1 || wide < 1 {
			t.Fatalf("estimate below 1 for %q: narrow=%d wide=%d", s, narrow, wide)
		}
		if narrow < wide {
			t.Fatalf("narrower box cannot need fewer lines: %q narrow=%d wide=%d", s, narrow, wide)
		}
	}
}

func TestFaceEstimatorCountsParagraphs(t *testing.T) {
	e := NewFaceEstimator(BasicProvider{})
	if got := e.EstimateLines("a\nb\nc", 10000, FontSpec{}); got != 3 {
		t.Fatalf("three paragraphs in a wide box = %d lines, want 3", got)
	}
}

func TestRuneWidthEstimatorPlausibility(t *testing.T) {
	e := RuneWidthEstimator{CharWidth: 6}
	for _, s := range fixtures {
		narrow := e.EstimateLines(s, 60, FontSpec{SizePt: 12})
		wide := e.EstimateLines(s, 6000, FontSpec{SizePt: 12})
		if narrow < 1 || wide < 1 {
			t.Fatalf("estimate below 1 for %q", s)
		}
		if narrow < wide {
			t.Fatalf("narrower box cannot need fewer lines for %q", s)
		}
	}
	if got := e.EstimateLines("", 60, FontSpec{}); got != 1 {
		t.Fatalf("empty text = %d lines, want 1", got)
	}
}

func TestDelegatedEstimatorIgnoresWidth(t *testing.T) {
	e := DelegatedEstimator{}
	if got := e.EstimateLines(fixtures[1], 5, FontSpec{}); got != 1 {
		t.Fatalf("delegated estimator must not wrap, got %d", got)
	}
	if got := e.EstimateLines("a\nb", 5, FontSpec{}); got != 2 {
		t.Fatalf("delegated estimator must honor hard newlines, got %d", got)
	}
}

func TestEstimatorsAgreeOnSingleShortLine(t *testing.T) {
	estimators := []LineEstimator{
		NewFaceEstimator(nil),
		RuneWidthEstimator{CharWidth: 6},
		DelegatedEstimator{},
	}
	for _, e := range estimators {
		if got := e.EstimateLines("Short", 10000, FontSpec{SizePt: 12}); got != 1 {
			t.Fatalf("%T: short text in a wide box = %d lines, want 1", e, got)
		}
	}
}

func TestWrapRunes(t *testing.T) {
	lines := WrapRunes("abcdef ghij klmno", 7)
	for _, l := range lines {
		if n := len([]rune(l)); n > 7 {
			t.Fatalf("line %q exceeds limit (%d runes)", l, n)
		}
	}
	if joined := strings.Join(lines, ""); strings.ReplaceAll(joined, " ", "") != "abcdefghijklmno" {
		t.Fatalf("wrapping lost content: %q", lines)
	}
	if got := WrapRunes("", 5); len(got) != 1 || got[0] != "" {
		t.Fatalf("empty text should wrap to one empty line, got %q", got)
	}
	long := WrapRunes("abcdefghij", 3)
	if len(long) != 4 {
		t.Fatalf("unbreakable word should hard-wrap: got %q", long)
	}
}
