package log

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if lvl := parseLevel("bogus"); lvl != slog.LevelInfo {
		t.Fatalf("unknown level should default to info, got %v", lvl)
	}
}

func TestParseLevelKnownValues(t *testing.T) {
	cases := map[string]slog.Leveler{
		"debug":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromEnvReadsOverrides(t *testing.T) {
	t.Setenv("QPW_LOG_LEVEL", "debug")
	t.Setenv("QPW_LOG_FORMAT", "json")
	t.Setenv("QPW_LOG_SOURCE", "true")
	opts := FromEnv()
	if opts.Level != "debug" || opts.Format != "json" || !opts.AddSource {
		t.Fatalf("env overrides not applied: %+v", opts)
	}
}

func TestPrettyHandlerWritesOneLine(t *testing.T) {
	var sb strings.Builder
	h := &prettyTextHandler{opts: prettyOpts{Level: slog.LevelInfo}, w: &sb}
	r := slog.NewRecord(time.Now(), slog.LevelInfo, "paper saved", 0)
	r.AddAttrs(slog.String("paper", "midterm"), slog.Int("questions", 23))
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle error: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "INF") || !strings.Contains(out, "paper saved") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "paper=midterm") || !strings.Contains(out, "questions=23") {
		t.Fatalf("attributes missing from output: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected a single line, got %q", out)
	}
}

func TestInitSetsDefaultLogger(t *testing.T) {
	Init(Options{Level: "info", Format: "console"})
	if L() == nil {
		t.Fatalf("default logger is nil after Init")
	}
	if WithComponent("store") == nil {
		t.Fatalf("WithComponent returned nil")
	}
}
