/*
 * Copyright (c) 2025
 */
package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gopaperwriter/internal/domain"
)

func testPaper(name string, n int) domain.Paper {
	p := domain.NewPaper(name, domain.ModeBasic)
	for i := 0; i < n; i++ {
		zero := 0
		p.Questions = append(p.Questions, domain.Question{
			Text:          fmt.Sprintf("q%d", i+1),
			Options:       []string{"a", "b"},
			CorrectAnswer: &zero,
		})
	}
	return p
}

func TestPaperStoreSaveLoad(t *testing.T) {
	kv, _ := openTestKV(t)
	s := NewPaperStore(kv, 0)
	ctx := context.Background()

	if _, ok, err := s.LoadPaper(ctx); err != nil || ok {
		t.Fatalf("fresh store must be empty: ok=%v err=%v", ok, err)
	}

	p := testPaper("Algebra Midterm", 3)
	if err := s.SavePaper(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := s.LoadPaper(ctx)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got.Name != p.Name || len(got.Questions) != 3 || got.Questions[2].Text != "q3" {
		t.Fatalf("paper fields lost: %+v", got)
	}

	qs, ok, err := s.LoadQuestionsBackup(ctx)
	if err != nil || !ok || len(qs) != 3 {
		t.Fatalf("questions backup: n=%d ok=%v err=%v", len(qs), ok, err)
	}

	m, ok, err := s.LoadMeta(ctx)
	if err != nil || !ok {
		t.Fatalf("meta: ok=%v err=%v", ok, err)
	}
	if m.Name != "Algebra Midterm" || m.TotalQuestions != 3 || m.SavedAt.IsZero() {
		t.Fatalf("meta fields lost: %+v", m)
	}
}

func TestRecentListCapAndDedupe(t *testing.T) {
	kv, _ := openTestKV(t)
	s := NewPaperStore(kv, 0)
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		if err := s.SavePaper(ctx, testPaper(fmt.Sprintf("paper %d", i), 1)); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	// re-save an old name; it must move to the head, not duplicate
	if err := s.SavePaper(ctx, testPaper("paper 5", 1)); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, err := s.RecentPapers(ctx)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != RecentLimit {
		t.Fatalf("recent list length = %d, want %d", len(entries), RecentLimit)
	}
	if entries[0].Name != "paper 5" {
		t.Fatalf("re-saved paper must lead the list: %+v", entries)
	}
	seen := map[string]bool{}
	for _, e := range entries {
		if seen[e.Name] {
			t.Fatalf("duplicate entry %q", e.Name)
		}
		seen[e.Name] = true
	}
}

func TestUnnamedPaperNotInRecentList(t *testing.T) {
	kv, _ := openTestKV(t)
	s := NewPaperStore(kv, 0)
	ctx := context.Background()
	if err := s.SavePaper(ctx, testPaper("", 1)); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, err := s.RecentPapers(ctx)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("unnamed paper leaked into recent list: %+v", entries)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	kv, _ := openTestKV(t)
	s := NewPaperStore(kv, 0)
	ctx := context.Background()

	if _, ok, err := s.Setting(ctx, "language"); err != nil || ok {
		t.Fatalf("unset setting: ok=%v err=%v", ok, err)
	}
	if err := s.SetSetting(ctx, "language", "hindi"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Setting(ctx, "language")
	if err != nil || !ok || v != "hindi" {
		t.Fatalf("setting lost: %q ok=%v err=%v", v, ok, err)
	}
}

func TestScheduleSaveDebounces(t *testing.T) {
	kv, _ := openTestKV(t)
	s := NewPaperStore(kv, 40*time.Millisecond)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		s.ScheduleSave(testPaper("debounced", i))
	}
	deadline := time.Now().Add(2 * time.Second)
	for {
		p, ok, err := s.LoadPaper(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if ok && len(p.Questions) == 5 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("debounced save never landed (ok=%v)", ok)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestFlushWritesPendingImmediately(t *testing.T) {
	kv, _ := openTestKV(t)
	s := NewPaperStore(kv, time.Hour)
	ctx := context.Background()

	s.ScheduleSave(testPaper("flushed", 2))
	s.Flush()
	p, ok, err := s.LoadPaper(ctx)
	if err != nil || !ok || p.Name != "flushed" {
		t.Fatalf("flush did not persist: ok=%v err=%v", ok, err)
	}
}
