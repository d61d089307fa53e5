package config

import (
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.General.Language != "english" {
		t.Fatalf("default language: got %q", cfg.General.Language)
	}
	if cfg.General.OptionLayout != "vertical" {
		t.Fatalf("default option layout: got %q", cfg.General.OptionLayout)
	}
	if cfg.Export.PageSize != "A4" {
		t.Fatalf("default page size: got %q", cfg.Export.PageSize)
	}
	if cfg.AutosaveMs <= 0 {
		t.Fatalf("default autosave delay must be positive")
	}
}

func TestMergeIntoKeepsDefaultsForEmptyFields(t *testing.T) {
	dst := Defaults()
	src := AppConfig{General: GeneralConfig{Language: "Hindi"}}
	mergeInto(&dst, &src)
	if dst.General.Language != "hindi" {
		t.Fatalf("merged language: got %q", dst.General.Language)
	}
	if dst.General.OptionLayout != "vertical" {
		t.Fatalf("empty src field must not clobber default, got %q", dst.General.OptionLayout)
	}
	if dst.Logging.Level != "info" {
		t.Fatalf("logging level default lost: %q", dst.Logging.Level)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLanguage, "odia")
	t.Setenv(EnvOptionLayout, "GRID")
	t.Setenv(EnvAutosaveMs, "250")
	cfg := Defaults()
	applyEnvOverrides(&cfg)
	if cfg.General.Language != "odia" {
		t.Fatalf("language env override not applied: %q", cfg.General.Language)
	}
	if cfg.General.OptionLayout != "grid" {
		t.Fatalf("option layout env override not lowercased: %q", cfg.General.OptionLayout)
	}
	if cfg.AutosaveMs != 250 {
		t.Fatalf("autosave env override not applied: %d", cfg.AutosaveMs)
	}
}

func TestApplyEnvOverridesIgnoresBadNumbers(t *testing.T) {
	t.Setenv(EnvAutosaveMs, "not-a-number")
	cfg := Defaults()
	applyEnvOverrides(&cfg)
	if cfg.AutosaveMs != Defaults().AutosaveMs {
		t.Fatalf("bad numeric override must be ignored, got %d", cfg.AutosaveMs)
	}
}

func TestEnvOverrideFor(t *testing.T) {
	t.Setenv(EnvPageSize, "Letter")
	name, ok := EnvOverrideFor("export.page_size")
	if !ok || name != EnvPageSize {
		t.Fatalf("expected override report for page size, got %q %v", name, ok)
	}
	if _, ok := EnvOverrideFor("no.such.key"); ok {
		t.Fatalf("unknown key must not report an override")
	}
}
