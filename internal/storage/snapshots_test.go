/*
 * Copyright (c) 2025
 */
package storage

import (
	"context"
	"testing"
)

func TestCrashSnapshotRoundTrip(t *testing.T) {
	kv, _ := openTestKV(t)
	ctx := context.Background()

	if _, _, ok, err := LoadCrashSnapshot(ctx, kv); err != nil || ok {
		t.Fatalf("fresh store must have no snapshot: ok=%v err=%v", ok, err)
	}

	qs := testPaper("snap", 3).Questions
	if err := SaveCrashSnapshot(ctx, kv, qs); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ts, ok, err := LoadCrashSnapshot(ctx, kv)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if len(got) != 3 || got[0].Text != "q1" {
		t.Fatalf("snapshot content lost: %+v", got)
	}
	if ts.IsZero() {
		t.Fatalf("snapshot timestamp missing")
	}

	if err := ClearCrashSnapshot(ctx, kv); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, _, ok, _ := LoadCrashSnapshot(ctx, kv); ok {
		t.Fatalf("snapshot survived clear")
	}
}
