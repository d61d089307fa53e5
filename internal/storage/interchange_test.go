/*
 * Copyright (c) 2025
 */
package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopaperwriter/internal/domain"
)

func TestPaperFileRoundTrip(t *testing.T) {
	p := testPaper("Portable Paper", 4)
	p.OptionLayout = domain.LayoutGrid
	p.Questions[1].PageBreakAfter = true
	path := filepath.Join(t.TempDir(), "paper.json")

	if err := ExportPaperFile(p, path); err != nil {
		t.Fatalf("export: %v", err)
	}
	pf, err := ImportPaperFile(path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if pf.Version != InterchangeVersion || pf.PaperName != "Portable Paper" {
		t.Fatalf("header fields: %+v", pf)
	}
	if pf.Metadata.TotalQuestions != 4 || len(pf.Questions) != 4 {
		t.Fatalf("question count: %+v", pf.Metadata)
	}
	if !pf.Questions[1].PageBreakAfter {
		t.Fatalf("pageBreak flag lost")
	}

	target := domain.NewPaper("old name", domain.ModeProfessional)
	target.Subject = "kept"
	pf.Apply(&target)
	if target.Name != "Portable Paper" || len(target.Questions) != 4 {
		t.Fatalf("apply did not copy content: %+v", target)
	}
	if target.OptionLayout != domain.LayoutGrid {
		t.Fatalf("apply did not copy layout: %v", target.OptionLayout)
	}
	if target.Mode != domain.ModeProfessional || target.Subject != "kept" {
		t.Fatalf("apply must keep fields the file does not carry")
	}
}

func TestImportRejectsMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"questions": []}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ImportPaperFile(path); err == nil {
		t.Fatalf("missing version must be rejected")
	}
}

func TestImportRejectsMissingQuestions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"version": "1.0"}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ImportPaperFile(path); err == nil {
		t.Fatalf("missing questions must be rejected")
	}
}

func TestImportRejectsMalformedQuestions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	doc := `{"version": "1.0", "questions": [{"options": ["a"]}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := ImportPaperFile(path)
	if err == nil {
		t.Fatalf("question without text must be rejected")
	}
	if !strings.Contains(err.Error(), "invalid work file") {
		t.Fatalf("expected schema rejection, got: %v", err)
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.json")
	if err := os.WriteFile(path, []byte("not json at all"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ImportPaperFile(path); err == nil {
		t.Fatalf("garbage must be rejected")
	}
}

func TestExportOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper.json")
	if err := ExportPaperFile(testPaper("first", 1), path); err != nil {
		t.Fatalf("export: %v", err)
	}
	if err := ExportPaperFile(testPaper("second", 2), path); err != nil {
		t.Fatalf("re-export: %v", err)
	}
	pf, err := ImportPaperFile(path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if pf.PaperName != "second" || len(pf.Questions) != 2 {
		t.Fatalf("overwrite failed: %+v", pf)
	}
}
