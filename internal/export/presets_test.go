/*
 * Copyright (c) 2025
 */
package export

import "testing"

func TestResolvePageSize(t *testing.T) {
	for _, name := range []string{"a4", "Letter", " LEGAL "} {
		p, ok := ResolvePageSize(name)
		if !ok {
			t.Fatalf("preset %q not resolved", name)
		}
		if p.WidthPt <= 0 || p.HeightPt <= p.WidthPt/2 {
			t.Fatalf("implausible preset %+v", p)
		}
	}
	p, ok := ResolvePageSize("tabloid")
	if ok {
		t.Fatalf("unknown preset must report ok=false")
	}
	if p.Name != "a4" {
		t.Fatalf("unknown preset must fall back to a4, got %q", p.Name)
	}
}

func TestSafeFileName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Mid Term Physics 2025", "mid_term_physics_2025"},
		{"  Algebra / Unit-3  ", "algebra_unit_3"},
		{"", "question-paper"},
		{"!!!", "question-paper"},
		{"already_safe", "already_safe"},
	}
	for _, c := range cases {
		if got := SafeFileName(c.in); got != c.want {
			t.Fatalf("SafeFileName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
	if got := OutputName("Mid Term", "pdf"); got != "mid_term.pdf" {
		t.Fatalf("OutputName = %q", got)
	}
}
