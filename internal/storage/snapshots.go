/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gopaperwriter/internal/domain"
)

const keyCrashSnapshot = "crash:questions"

type crashSnapshot struct {
	TS        string            `json:"ts"`
	Questions []domain.Question `json:"questions"`
}

// SaveCrashSnapshot persists the question sequence for recovery after a
// panic. It overwrites any previous snapshot.
func SaveCrashSnapshot(ctx context.Context, kv *KV, qs []domain.Question) error {
	if kv == nil {
		return errors.New("nil KV")
	}
	data, err := json.Marshal(crashSnapshot{
		TS:        time.Now().UTC().Format(time.RFC3339Nano),
		Questions: qs,
	})
	if err != nil {
		return err
	}
	return kv.Set(ctx, keyCrashSnapshot, string(data))
}

// LoadCrashSnapshot returns the last crash snapshot, if any.
func LoadCrashSnapshot(ctx context.Context, kv *KV) ([]domain.Question, time.Time, bool, error) {
	if kv == nil {
		return nil, time.Time{}, false, errors.New("nil KV")
	}
	raw, ok, err := kv.Get(ctx, keyCrashSnapshot)
	if err != nil || !ok {
		return nil, time.Time{}, false, err
	}
	var snap crashSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, time.Time{}, false, err
	}
	ts, err := time.Parse(time.RFC3339Nano, snap.TS)
	if err != nil {
		ts = time.Time{} // keep the questions even if the stamp is unreadable
	}
	return snap.Questions, ts, true, nil
}

// ClearCrashSnapshot removes the snapshot after a successful recovery.
func ClearCrashSnapshot(ctx context.Context, kv *KV) error {
	if kv == nil {
		return errors.New("nil KV")
	}
	return kv.Delete(ctx, keyCrashSnapshot)
}
