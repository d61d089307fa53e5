package language

import "testing"

func TestResolveKnownTags(t *testing.T) {
	for _, tag := range []string{"english", "hindi", "odia"} {
		tab := Resolve(tag)
		if tab.Tag != tag {
			t.Fatalf("Resolve(%q) returned %q", tag, tab.Tag)
		}
		if len(tab.Labels) == 0 || tab.Prefix == "" {
			t.Fatalf("incomplete table for %q: %+v", tag, tab)
		}
	}
}

func TestResolveFallsBackToEnglish(t *testing.T) {
	for _, tag := range []string{"", "klingon", "  ENGLISH  "} {
		tab := Resolve(tag)
		if tab.Tag != DefaultTag {
			// trimmed/lowercased english resolves to english, which is the default anyway
			t.Fatalf("Resolve(%q) = %q, want fallback %q", tag, tab.Tag, DefaultTag)
		}
	}
}

func TestOptionLabels(t *testing.T) {
	if got := OptionLabel(0, "hindi"); got != "क" {
		t.Fatalf("hindi first label: got %q", got)
	}
	if got := OptionLabel(1, "odia"); got != "ଖ" {
		t.Fatalf("odia second label: got %q", got)
	}
	if got := OptionLabel(3, "nope"); got != "D" {
		t.Fatalf("unknown language label: got %q", got)
	}
	if got := OptionLabel(200, "english"); got != "" {
		t.Fatalf("out-of-alphabet index should yield empty label, got %q", got)
	}
}

func TestQuestionPrefixes(t *testing.T) {
	if QuestionPrefix("english") != "Q" {
		t.Fatalf("english prefix wrong")
	}
	if QuestionPrefix("hindi") != "प्र" {
		t.Fatalf("hindi prefix wrong")
	}
	if QuestionPrefix("missing") != "Q" {
		t.Fatalf("fallback prefix wrong")
	}
}

func TestMaxOptionsCoversCommonPaperSizes(t *testing.T) {
	if MaxOptions() < 4 {
		t.Fatalf("every language must label at least 4 options, got %d", MaxOptions())
	}
}
